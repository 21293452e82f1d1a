package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Ventas-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// fakeUserRepo repositorio en memoria para los tests del caso de uso.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	f.byEmail[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret})
}

func registerInput() dto.UserInput {
	return dto.UserInput{
		Name:     "Ana",
		LastName: "García",
		Email:    "ana@example.com",
		Password: "secreto123",
	}
}

func TestRegister_GuardaHashNuncaElPlano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	resp, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.NotEmpty(t, resp.ID)

	stored := repo.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.Password,
		"el password nunca debe persistirse en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secreto123")),
		"el hash almacenado debe verificar contra el password original")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registerInput())
	assert.ErrorIs(t, err, domain.ErrUserAlreadyRegistered,
		"el segundo registro con el mismo email debe fallar")
}

func TestAuthenticate_EmiteTokenConClaims(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	resp, err := uc.Authenticate(context.Background(), dto.AuthenticateInput{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err, "el token emitido debe validar con el mismo secret")
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "García", claims.LastName)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, repo.byEmail["ana@example.com"].ID.Hex(), claims.ID)
}

// Password incorrecto y email inexistente deben producir exactamente el mismo
// error, para no filtrar cuál de los dos falló.
func TestAuthenticate_MismoErrorParaEmailYPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, errBadPass := uc.Authenticate(context.Background(), dto.AuthenticateInput{
		Email:    "ana@example.com",
		Password: "incorrecto",
	})
	_, errNoUser := uc.Authenticate(context.Background(), dto.AuthenticateInput{
		Email:    "nadie@example.com",
		Password: "secreto123",
	})

	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errBadPass.Error(), errNoUser.Error(),
		"ambos fallos deben devolver el mismo mensaje")
}
