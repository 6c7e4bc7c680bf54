package validator

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"regexp"
	"strings"

	"app/internal/repository"
	"app/internal/usecase"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z0-9]{5,}$`)
	phoneRe = regexp.MustCompile(`^\d{9}$`)
)

type authValidator struct {
	users repository.UserRepository
}

func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

func (v *authValidator) ValidateRegister(ctx context.Context, req usecase.RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if !nameRe.MatchString(name) {
		return usecase.NewHTTPError(http.StatusBadRequest, "El nombre debe tener al menos 5 caracteres alfanuméricos.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "Correo electrónico inválido.")
	}
	if !phoneRe.MatchString(phone) {
		return usecase.NewHTTPError(http.StatusBadRequest, "El teléfono debe tener exactamente 9 dígitos.")
	}
	if len(req.Password) < 6 {
		return usecase.NewHTTPError(http.StatusBadRequest, "La contraseña debe tener al menos 6 caracteres.")
	}

	// Duplicate checks: registration rejects rows that already exist rather
	// than surfacing a database conflict.
	if err := v.checkAvailable(ctx, name, email, phone); err != nil {
		return err
	}

	return nil
}

func (v *authValidator) checkAvailable(ctx context.Context, name, email, phone string) error {
	if _, err := v.users.FindByName(ctx, name); err == nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "El nombre ya está registrado.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return usecase.NewHTTPError(http.StatusInternalServerError, "Error interno.")
	}

	if _, err := v.users.FindByEmail(ctx, email); err == nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "El correo ya está registrado.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return usecase.NewHTTPError(http.StatusInternalServerError, "Error interno.")
	}

	if _, err := v.users.FindByPhone(ctx, phone); err == nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "El teléfono ya está registrado.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return usecase.NewHTTPError(http.StatusInternalServerError, "Error interno.")
	}

	return nil
}

func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "Completa todos los campos.")
	}
	return nil
}
