package usecase

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"
)

const accessTokenTTL = 15 * time.Minute

// AuthValidator checks registration and login input, including duplicate
// nombre/email/telefono lookups.
type AuthValidator interface {
	ValidateRegister(ctx context.Context, req RegisterRequest) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

type RegisterRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Phone    string `json:"telefono"`
	Address  string `json:"direccion"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO is the safe projection returned by the API: never the password.
type UserDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
}

type JwtAccessTokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type RegisterResponse struct {
	User UserDTO `json:"user"`
}

type LoginResponse struct {
	User  UserDTO           `json:"user"`
	Token JwtAccessTokenDTO `json:"token"`
}

type AuthUsecase struct {
	cfg       config.Config
	users     repository.UserRepository
	validator AuthValidator
}

func NewAuthUsecase(cfg config.Config, users repository.UserRepository, validator AuthValidator) *AuthUsecase {
	return &AuthUsecase{cfg: cfg, users: users, validator: validator}
}

func (u *AuthUsecase) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if err := u.validator.ValidateRegister(ctx, req); err != nil {
		return nil, err
	}

	// Never store the plain password.
	pwHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Error interno.")
	}

	user := &model.User{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: string(pwHash),
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	if err := u.users.Create(ctx, user); err != nil {
		// the validator already checked duplicates; a create failure here is
		// almost certainly a concurrent unique violation
		return nil, NewHTTPError(http.StatusBadRequest, "El nombre, correo o teléfono ya está registrado.")
	}

	return &RegisterResponse{User: toUserDTO(user)}, nil
}

func (u *AuthUsecase) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := u.validator.ValidateLogin(ctx, req.Email, req.Password); err != nil {
		return nil, err
	}

	// Unknown user and wrong password share one message so the endpoint
	// cannot be used to enumerate accounts.
	user, err := u.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusUnauthorized, "Correo o contraseña incorrectos.")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "Error interno.")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "Correo o contraseña incorrectos.")
	}

	token, expiresIn, err := u.issueAccessToken(user)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Error interno.")
	}

	return &LoginResponse{
		User: toUserDTO(user),
		Token: JwtAccessTokenDTO{
			AccessToken: token,
			ExpiresIn:   expiresIn,
		},
	}, nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (*UserDTO, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "No autorizado.")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewHTTPError(http.StatusUnauthorized, "No autorizado.")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "Error interno.")
	}

	dto := toUserDTO(user)
	return &dto, nil
}

func (u *AuthUsecase) ListUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Error al obtener los usuarios.")
	}

	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, toUserDTO(&users[i]))
	}
	return out, nil
}

func (u *AuthUsecase) issueAccessToken(user *model.User) (string, int, error) {
	now := time.Now()
	exp := now.Add(accessTokenTTL)

	claims := jwt.MapClaims{
		"sub":    strconv.FormatInt(user.ID, 10),
		"nombre": user.Name,
		"iat":    now.Unix(),
		"exp":    exp.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}

	return signed, int(exp.Sub(now).Seconds()), nil
}

func toUserDTO(u *model.User) UserDTO {
	email := ""
	if u.Email != nil {
		email = *u.Email
	}
	return UserDTO{
		ID:      u.ID,
		Name:    u.Name,
		Email:   email,
		Phone:   u.Phone,
		Address: u.Address,
	}
}
