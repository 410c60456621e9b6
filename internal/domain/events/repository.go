package events

import "context"

type Repository interface {
	Create(ctx context.Context, e PetEvent) error
	// ListByPet devuelve los eventos ordenados por OccurredAt ascendente.
	ListByPet(ctx context.Context, petID string) ([]PetEvent, error)
}
