package memory

import (
	"context"
	"errors"
	"sync"

	"findmypet/internal/domain/missingpets"
)

// missingPetRepo conserva el orden de inserción (igual que el orden natural de mongo).
type missingPetRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]missingpets.MissingPet
}

func NewMissingPetRepo() missingpets.Repository {
	return &missingPetRepo{
		byID: make(map[string]missingpets.MissingPet),
	}
}

func (r *missingPetRepo) Create(ctx context.Context, p missingpets.MissingPet) error {
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

func (r *missingPetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return missingpets.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *missingPetRepo) GetByID(ctx context.Context, id string) (missingpets.MissingPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return missingpets.MissingPet{}, missingpets.ErrNotFound
	}
	return p, nil
}

func (r *missingPetRepo) ListAll(ctx context.Context) ([]missingpets.MissingPet, error) {
	return r.list(func(missingpets.MissingPet) bool { return true }), nil
}

func (r *missingPetRepo) ListByOwner(ctx context.Context, userID string) ([]missingpets.MissingPet, error) {
	return r.list(func(p missingpets.MissingPet) bool { return p.UserID == userID }), nil
}

func (r *missingPetRepo) list(keep func(missingpets.MissingPet) bool) []missingpets.MissingPet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]missingpets.MissingPet, 0, len(r.order))
	for _, id := range r.order {
		if p := r.byID[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (r *missingPetRepo) UpdateStatus(ctx context.Context, id string, from, to missingpets.Status) (missingpets.MissingPet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok || p.Status != from {
		return missingpets.MissingPet{}, missingpets.ErrNotFound
	}
	p.Status = to
	r.byID[id] = p
	return p, nil
}
