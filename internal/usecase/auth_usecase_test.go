package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"app/internal/config"
	"app/internal/usecase"
)

// acceptAllValidator lets every request through so the tests exercise the
// usecase itself, not the validation rules.
type acceptAllValidator struct{}

func (acceptAllValidator) ValidateRegister(context.Context, usecase.RegisterRequest) error {
	return nil
}
func (acceptAllValidator) ValidateLogin(context.Context, string, string) error { return nil }

func newAuthUsecase(repos *memRepos) *usecase.AuthUsecase {
	cfg := config.Config{JWTSecret: "test_secret"}
	return usecase.NewAuthUsecase(cfg, repos.Users(), acceptAllValidator{})
}

func registerReq() usecase.RegisterRequest {
	return usecase.RegisterRequest{
		Name:     "Carlos88",
		Email:    "carlos@example.com",
		Phone:    "987111222",
		Address:  "Av. Arequipa 1200",
		Password: "secret99",
	}
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	repos := newMemRepos()
	uc := newAuthUsecase(repos)

	res, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "Carlos88", res.User.Name)
	assert.Equal(t, "carlos@example.com", res.User.Email)
	assert.NotZero(t, res.User.ID)

	require.Len(t, repos.users, 1)
	stored := repos.users[0]
	assert.NotEqual(t, "secret99", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret99")))
}

func TestRegister_DuplicateRejected(t *testing.T) {
	repos := newMemRepos()
	uc := newAuthUsecase(repos)

	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registerReq())
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Len(t, repos.users, 1)
}

func TestLogin_IssuesToken(t *testing.T) {
	repos := newMemRepos()
	uc := newAuthUsecase(repos)

	reg, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	res, err := uc.Login(context.Background(), usecase.LoginRequest{
		Email:    "carlos@example.com",
		Password: "secret99",
	})
	require.NoError(t, err)

	assert.Equal(t, reg.User.ID, res.User.ID)
	assert.Equal(t, 900, res.Token.ExpiresIn)

	tok, err := jwt.Parse(res.Token.AccessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "1", claims["sub"])
	assert.Equal(t, "Carlos88", claims["nombre"])
}

func TestLogin_UnknownAndWrongPasswordShareMessage(t *testing.T) {
	repos := newMemRepos()
	uc := newAuthUsecase(repos)

	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, errUnknown := uc.Login(context.Background(), usecase.LoginRequest{
		Email: "nobody@example.com", Password: "whatever1",
	})
	_, errWrongPw := uc.Login(context.Background(), usecase.LoginRequest{
		Email: "carlos@example.com", Password: "wrongpass",
	})

	heUnknown, ok := usecase.AsHTTPError(errUnknown)
	require.True(t, ok)
	heWrongPw, ok := usecase.AsHTTPError(errWrongPw)
	require.True(t, ok)

	assert.Equal(t, http.StatusUnauthorized, heUnknown.Status)
	assert.Equal(t, http.StatusUnauthorized, heWrongPw.Status)
	assert.Equal(t, heUnknown.Message, heWrongPw.Message)
}

func TestMe(t *testing.T) {
	repos := newMemRepos()
	uc := newAuthUsecase(repos)

	reg, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	dto, err := uc.Me(context.Background(), reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carlos88", dto.Name)

	_, err = uc.Me(context.Background(), 0)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)

	_, err = uc.Me(context.Background(), 999)
	he, ok = usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

func TestListUsers(t *testing.T) {
	repos := newMemRepos()
	uc := newAuthUsecase(repos)

	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	second := registerReq()
	second.Name = "Lucia77"
	second.Email = "lucia@example.com"
	second.Phone = "987333444"
	_, err = uc.Register(context.Background(), second)
	require.NoError(t, err)

	list, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Carlos88", list[0].Name)
	assert.Equal(t, "Lucia77", list[1].Name)
}
