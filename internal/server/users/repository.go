package users

import (
	"context"
)

type Repository interface {
	// Create persists a new user. A username collision fails with
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}
