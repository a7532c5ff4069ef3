// @title                       Stray Dog Rescue API
// @version                     1.0
// @description                 REST API of the stray dog rescue platform.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/straydog-api/docs"
	appanalytics "github.com/jhoicas/straydog-api/internal/application/analytics"
	"github.com/jhoicas/straydog-api/internal/application/auth"
	"github.com/jhoicas/straydog-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/straydog-api/internal/infrastructure/pdf"
	"github.com/jhoicas/straydog-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/straydog-api/internal/interfaces/http"
	"github.com/jhoicas/straydog-api/pkg/config"
	"github.com/jhoicas/straydog-api/pkg/logger"
	"github.com/jhoicas/straydog-api/pkg/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Name:  cfg.App.Name,
	})
	log.Info().Str("env", cfg.App.Env).Msg("starting")

	validator := validation.New()
	if err := validator.Verify(httpRouter.RuleSets()...); err != nil {
		log.Fatal().Err(err).Msg("validation rules")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}

	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewDogReportRepository(pool)
	adoptionRepo := postgres.NewAdoptionDogRepository(pool)
	donationRepo := postgres.NewDonationRepository(pool)
	volunteerRepo := postgres.NewVolunteerRepository(pool)
	taskRepo := postgres.NewVolunteerTaskRepository(pool)
	vaccinationRepo := postgres.NewVaccinationRepository(pool)
	forumRepo := postgres.NewForumPostRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	receipts := infrapdf.NewMarotoReceiptGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpRouter.NewMetrics(registry)

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))
	app.Use(metrics.Handler())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.AllowedOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	app.Use(compress.New())

	// Swagger UI in local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	health := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "version": docs.SwaggerInfo.Version})
	}
	app.Get("/health", health)
	app.Get("/actuator/health", health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		DogReportUC:    usecase.NewDogReportUseCase(reportRepo, notificationRepo, txRunner, log),
		AdoptionUC:     usecase.NewAdoptionUseCase(adoptionRepo),
		DonationUC:     usecase.NewDonationUseCase(donationRepo, notificationRepo, receipts, cfg.App.OrgName, log),
		VolunteerUC:    usecase.NewVolunteerUseCase(volunteerRepo, txRunner),
		TaskUC:         usecase.NewVolunteerTaskUseCase(taskRepo, volunteerRepo, notificationRepo, log),
		VaccinationUC:  usecase.NewVaccinationUseCase(vaccinationRepo),
		ForumUC:        usecase.NewForumUseCase(forumRepo),
		NotificationUC: usecase.NewNotificationUseCase(notificationRepo),
		DashboardUC:    appanalytics.NewDashboardUseCase(reportRepo, adoptionRepo, donationRepo, volunteerRepo),
		Validator:      validator,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	pool.Close()

	log.Info().Msg("stopped")
}
