// seed creates the admin account and a few sample dogs listed for adoption.
// Running it again skips what already exists.
//
// Usage: SEED_ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"

	"github.com/jhoicas/straydog-api/internal/application/auth"
	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	"github.com/jhoicas/straydog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/straydog-api/pkg/config"
	"github.com/jhoicas/straydog-api/pkg/logger"
)

var sampleDogs = []dto.CreateAdoptionDogRequest{
	{
		Name: "Bruno", Breed: "Indie", Age: lo.ToPtr(24), Gender: "MALE", Size: "MEDIUM",
		Description: "Calm street dog rescued near the market. Loves long walks.",
		HealthStatus: "Healthy", Vaccinated: true, Neutered: true,
		Temperament: "Calm", GoodWithKids: true, GoodWithPets: true,
	},
	{
		Name: "Kaali", Breed: "Indie mix", Age: lo.ToPtr(8), Gender: "FEMALE", Size: "SMALL",
		Description: "Playful puppy found under a bridge during the monsoon.",
		HealthStatus: "Recovering from a leg injury", Vaccinated: true,
		Temperament: "Playful", GoodWithKids: true,
	},
	{
		Name: "Sheru", Breed: "Labrador mix", Age: lo.ToPtr(60), Gender: "MALE", Size: "LARGE",
		Description: "Senior dog abandoned by his family. Gentle and house trained.",
		HealthStatus: "Healthy", Vaccinated: true, Neutered: true,
		Temperament: "Gentle", GoodWithPets: true, SpecialNeeds: "Joint supplements twice a day",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Name: "seed"})

	if cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD is required")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	created, err := authUC.CreateAdmin(ctx, "Admin User", cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("create admin")
	}
	log.Info().Str("email", cfg.Seed.AdminEmail).Bool("created", created).Msg("admin account")

	adoptionRepo := postgres.NewAdoptionDogRepository(pool)
	adoptions := usecase.NewAdoptionUseCase(adoptionRepo)
	for _, d := range sampleDogs {
		exists, err := adoptionRepo.ExistsByName(ctx, d.Name)
		if err != nil {
			log.Fatal().Err(err).Str("dog", d.Name).Msg("check sample dog")
		}
		if exists {
			continue
		}
		if _, err := adoptions.Create(ctx, "", d); err != nil {
			log.Fatal().Err(err).Str("dog", d.Name).Msg("create sample dog")
		}
		log.Info().Str("dog", d.Name).Msg("sample dog listed")
	}
}
