package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findmypet/internal/domain/events"
	"findmypet/internal/domain/foundpets"
	"findmypet/internal/domain/missingpets"
	"findmypet/internal/domain/shelters"
	"findmypet/internal/domain/users"
)

func TestUserRepo_UniqueEmailAndAppend(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, users.User{ID: "u1", Email: "a@b.c"}))
	assert.ErrorIs(t, repo.Create(ctx, users.User{ID: "u2", Email: "a@b.c"}), users.ErrDuplicateEmail)

	require.NoError(t, repo.AppendPet(ctx, "u1", "p1"))
	assert.ErrorIs(t, repo.AppendPet(ctx, "nobody", "p1"), users.ErrNotFound)

	got, err := repo.GetByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, got.Pets)

	// la copia devuelta no comparte el slice interno
	got.Pets[0] = "changed"
	again, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, again.Pets)
}

func TestMissingPetRepo_OrderAndTransition(t *testing.T) {
	repo := NewMissingPetRepo()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, missingpets.MissingPet{ID: id, UserID: "u", Status: missingpets.StatusMissing}))
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	ids := []string{all[0].ID, all[1].ID, all[2].ID}
	assert.Equal(t, []string{"c", "a", "b"}, ids)

	require.NoError(t, repo.Delete(ctx, "a"))
	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = repo.UpdateStatus(ctx, "b", missingpets.StatusMissing, missingpets.StatusReunited)
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, "b", missingpets.StatusMissing, missingpets.StatusReunited)
	assert.ErrorIs(t, err, missingpets.ErrNotFound)
}

func TestFoundPetRepo_Claim(t *testing.T) {
	repo := NewFoundPetRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, foundpets.FoundPet{ID: "f1", Status: foundpets.StatusFound}))

	got, err := repo.Claim(ctx, "f1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ClaimedBy)

	_, err = repo.Claim(ctx, "f1", "u2")
	assert.ErrorIs(t, err, foundpets.ErrNotFound)
}

func TestShelterRepo(t *testing.T) {
	repo := NewShelterRepo(shelters.Shelter{ID: "s1", Name: "Harbor"})
	ctx := context.Background()

	ok, err := repo.InsertIfEmpty(ctx, shelters.Shelter{ID: "s2", Name: "Other"})
	require.NoError(t, err)
	assert.False(t, ok)

	s, err := repo.FindByName(ctx, "Harbor")
	require.NoError(t, err)
	assert.Equal(t, "s1", s.ID)

	_, err = repo.GetByID(ctx, "s2")
	assert.ErrorIs(t, err, shelters.ErrNotFound)
}

func TestEventRepo_AscendingOrder(t *testing.T) {
	repo := NewEventRepo()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, events.PetEvent{ID: "e2", PetID: "p", OccurredAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, events.PetEvent{ID: "e1", PetID: "p", OccurredAt: base}))
	require.NoError(t, repo.Create(ctx, events.PetEvent{ID: "x", PetID: "other", OccurredAt: base}))
	assert.Error(t, repo.Create(ctx, events.PetEvent{ID: "e1", PetID: "p"}))

	got, err := repo.ListByPet(ctx, "p")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, "e2", got[1].ID)
}
