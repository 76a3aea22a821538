package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
)

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthFixture() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	uc, repo := newAuthFixture()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@almacen.test",
		Password: "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@almacen.test", out.Email)
	assert.Equal(t, entity.RoleOperario, out.Role, "rol por defecto")
	assert.Equal(t, "ana@almacen.test", out.Name, "sin nombre usa el email")

	stored := repo.byEmail["ana@almacen.test"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "la password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.test", Password: "x1234567"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.test", Password: "otra5678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_CamposVacios(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.test"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenConClaimsDelUsuario(t *testing.T) {
	uc, _ := newAuthFixture()

	reg, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "admin@almacen.test",
		Password: "secreto123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@almacen.test", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.User.ID)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@almacen.test", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@almacen.test", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@almacen.test", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"mismo error que password incorrecta: no se filtra si el email existe")
}
