package memory

import (
	"context"
	"errors"
	"sync"

	"findmypet/internal/domain/foundpets"
)

type foundPetRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]foundpets.FoundPet
}

func NewFoundPetRepo() foundpets.Repository {
	return &foundPetRepo{
		byID: make(map[string]foundpets.FoundPet),
	}
}

func (r *foundPetRepo) Create(ctx context.Context, p foundpets.FoundPet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}

	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *foundPetRepo) GetByID(ctx context.Context, id string) (foundpets.FoundPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return foundpets.FoundPet{}, foundpets.ErrNotFound
	}
	return p, nil
}

func (r *foundPetRepo) ListByStatus(ctx context.Context, status foundpets.Status) ([]foundpets.FoundPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]foundpets.FoundPet, 0)
	for _, id := range r.order {
		if p := r.byID[id]; p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *foundPetRepo) Claim(ctx context.Context, id, userID string) (foundpets.FoundPet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok || p.Status != foundpets.StatusFound {
		return foundpets.FoundPet{}, foundpets.ErrNotFound
	}
	p.Status = foundpets.StatusClaimed
	p.ClaimedBy = userID
	r.byID[id] = p
	return p, nil
}
