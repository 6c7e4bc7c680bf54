package validator_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/internal/domain/model"
	"app/internal/repository"
	"app/internal/usecase"
	"app/internal/validator"
)

type stubUserRepo struct {
	byName  map[string]*model.User
	byEmail map[string]*model.User
	byPhone map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byName:  map[string]*model.User{},
		byEmail: map[string]*model.User{},
		byPhone: map[string]*model.User{},
	}
}

func (s *stubUserRepo) add(u *model.User) {
	s.byName[u.Name] = u
	s.byPhone[u.Phone] = u
	if u.Email != nil {
		s.byEmail[*u.Email] = u
	}
}

func (s *stubUserRepo) Create(context.Context, *model.User) error { return nil }

func (s *stubUserRepo) FindByID(context.Context, int64) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindByName(_ context.Context, name string) (*model.User, error) {
	if u, ok := s.byName[name]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindByPhone(_ context.Context, phone string) (*model.User, error) {
	if u, ok := s.byPhone[phone]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) ListAll(context.Context) ([]model.User, error) { return nil, nil }

func validReq() usecase.RegisterRequest {
	return usecase.RegisterRequest{
		Name:     "Carlos88",
		Email:    "carlos@example.com",
		Phone:    "987111222",
		Address:  "Av. Arequipa 1200",
		Password: "secret99",
	}
}

func TestValidateRegister_OK(t *testing.T) {
	v := validator.NewAuthValidator(newStubUserRepo())
	assert.NoError(t, v.ValidateRegister(context.Background(), validReq()))
}

func TestValidateRegister_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterRequest)
	}{
		{"short name", func(r *usecase.RegisterRequest) { r.Name = "Ana1" }},
		{"name with spaces", func(r *usecase.RegisterRequest) { r.Name = "Juan Perez" }},
		{"empty name", func(r *usecase.RegisterRequest) { r.Name = "" }},
		{"bad email", func(r *usecase.RegisterRequest) { r.Email = "not-an-email" }},
		{"empty email", func(r *usecase.RegisterRequest) { r.Email = "" }},
		{"short phone", func(r *usecase.RegisterRequest) { r.Phone = "12345678" }},
		{"long phone", func(r *usecase.RegisterRequest) { r.Phone = "1234567890" }},
		{"phone with letters", func(r *usecase.RegisterRequest) { r.Phone = "98711a222" }},
		{"short password", func(r *usecase.RegisterRequest) { r.Password = "abc12" }},
	}

	v := validator.NewAuthValidator(newStubUserRepo())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validReq()
			tt.mutate(&req)

			err := v.ValidateRegister(context.Background(), req)
			he, ok := usecase.AsHTTPError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Status)
		})
	}
}

func TestValidateRegister_Duplicates(t *testing.T) {
	email := "carlos@example.com"
	repo := newStubUserRepo()
	repo.add(&model.User{ID: 1, Name: "Carlos88", Email: &email, Phone: "987111222"})
	v := validator.NewAuthValidator(repo)

	tests := []struct {
		name    string
		mutate  func(*usecase.RegisterRequest)
		message string
	}{
		{"name taken", func(r *usecase.RegisterRequest) {
			r.Email = "otro@example.com"
			r.Phone = "911222333"
		}, "El nombre ya está registrado."},
		{"email taken", func(r *usecase.RegisterRequest) {
			r.Name = "Otro2024"
			r.Phone = "911222333"
		}, "El correo ya está registrado."},
		{"phone taken", func(r *usecase.RegisterRequest) {
			r.Name = "Otro2024"
			r.Email = "otro@example.com"
		}, "El teléfono ya está registrado."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validReq()
			tt.mutate(&req)

			err := v.ValidateRegister(context.Background(), req)
			he, ok := usecase.AsHTTPError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Status)
			assert.Equal(t, tt.message, he.Message)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	v := validator.NewAuthValidator(newStubUserRepo())

	assert.NoError(t, v.ValidateLogin(context.Background(), "carlos@example.com", "secret99"))

	err := v.ValidateLogin(context.Background(), "", "secret99")
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	err = v.ValidateLogin(context.Background(), "carlos@example.com", "")
	_, ok = usecase.AsHTTPError(err)
	require.True(t, ok)
}
