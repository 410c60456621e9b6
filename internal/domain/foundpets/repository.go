package foundpets

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("found pet not found")

type Repository interface {
	Create(ctx context.Context, p FoundPet) error
	GetByID(ctx context.Context, id string) (FoundPet, error)
	ListByStatus(ctx context.Context, status Status) ([]FoundPet, error)
	// Claim pasa de found a claimed si el estado sigue siendo found. ErrNotFound si no matchea.
	Claim(ctx context.Context, id, userID string) (FoundPet, error)
}
