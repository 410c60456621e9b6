package missingpets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("missing pet not found")

type Repository interface {
	Create(ctx context.Context, p MissingPet) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (MissingPet, error)
	ListAll(ctx context.Context) ([]MissingPet, error)
	ListByOwner(ctx context.Context, userID string) ([]MissingPet, error)
	// UpdateStatus cambia from -> to de forma condicional. ErrNotFound si ningún documento
	// tiene ese id con estado from.
	UpdateStatus(ctx context.Context, id string, from, to Status) (MissingPet, error)
}
