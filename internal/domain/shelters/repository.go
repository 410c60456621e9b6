package shelters

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("shelter not found")

type Repository interface {
	List(ctx context.Context) ([]Shelter, error)
	GetByID(ctx context.Context, id string) (Shelter, error)
	// FindByName busca por nombre exacto. ErrNotFound si no hay match.
	FindByName(ctx context.Context, name string) (Shelter, error)
	// InsertIfEmpty inserta s solo si no hay ningún shelter. Devuelve true si insertó.
	InsertIfEmpty(ctx context.Context, s Shelter) (bool, error)
}
