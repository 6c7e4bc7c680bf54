package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByName(ctx context.Context, name string) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	// ListAll returns every user ordered by id ascending. No pagination.
	ListAll(ctx context.Context) ([]model.User, error)
}
