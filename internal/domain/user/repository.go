package user

import "context"

type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
}
