package auth_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/straydog-api/internal/application/auth"
	"github.com/jhoicas/straydog-api/internal/application/dto"
	"github.com/jhoicas/straydog-api/internal/domain"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/straydog-api/pkg/jwt"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

const secret = "auth-usecase-test-secret"

func newUC(repo *memUsers) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"})
}

func TestRegister_IssuesTokenAndHashesPassword(t *testing.T) {
	repo := newMemUsers()
	uc := newUC(repo)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: " Ana ", Email: "Ana@Example.com", Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.Len(t, out.User.ID, 24)

	userID, role, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleUser, role)

	stored := repo.users[out.User.ID]
	assert.NotEqual(t, "secret1", stored.PasswordHash)
}

func TestRegister_NeverSelfAssignsAdmin(t *testing.T) {
	out, err := newUC(newMemUsers()).Register(context.Background(), dto.RegisterRequest{
		Name: "Eve", Email: "eve@example.com", Password: "secret1", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.User.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newUC(newMemUsers())
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Name: "B", Email: "A@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	repo := newMemUsers()
	uc := newUC(repo)
	reg, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.users[reg.User.ID].Active = false
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

func TestCreateAdmin_Idempotent(t *testing.T) {
	repo := newMemUsers()
	uc := newUC(repo)

	created, err := uc.CreateAdmin(context.Background(), "Admin", "admin@example.com", "changeme")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.CreateAdmin(context.Background(), "Admin", "admin@example.com", "changeme")
	require.NoError(t, err)
	assert.False(t, created)

	n, _ := repo.Count(context.Background())
	assert.EqualValues(t, 1, n)
}

func TestMe_NotFound(t *testing.T) {
	_, err := newUC(newMemUsers()).Me(context.Background(), "507f1f77bcf86cd799439011")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
