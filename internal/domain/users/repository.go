package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail también lo devuelven los repos ante violación de índice único.
	ErrDuplicateEmail = errors.New("email already exists")
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// AppendPet agrega petID a la lista de mascotas del usuario. ErrNotFound si no existe.
	AppendPet(ctx context.Context, userID, petID string) error
}
