package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"findmypet/internal/adapters/auth/token"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[string]User
	creates int
	failGet error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(_ context.Context, u User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	r.creates++
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(_ context.Context, email string) (User, error) {
	if r.failGet != nil {
		return User{}, r.failGet
	}
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) AppendPet(_ context.Context, userID, petID string) error {
	u, ok := r.byID[userID]
	if !ok {
		return ErrNotFound
	}
	u.Pets = append(u.Pets, petID)
	r.byID[userID] = u
	return nil
}

type countingIssuer struct {
	inner  *token.Manager
	issued int
}

func (c *countingIssuer) Issue(ctx context.Context, userID string) (string, time.Time, error) {
	c.issued++
	return c.inner.Issue(ctx, userID)
}

func newTestService(t *testing.T) (*Service, *testRepo, *countingIssuer) {
	t.Helper()
	m, err := token.New(token.Config{Secret: "test-secret"})
	require.NoError(t, err)

	repo := newTestRepo()
	issuer := &countingIssuer{inner: m}
	svc := NewService(repo, issuer)
	svc.cost = bcrypt.MinCost
	return svc, repo, issuer
}

// -------------------------
// Tests
// -------------------------

func TestService_CreateThenLogin_TokenDecodesToUser(t *testing.T) {
	svc, repo, issuer := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		email := fmt.Sprintf("%d.%s", i, gofakeit.Email())
		password := gofakeit.Password(true, true, true, true, false, 14)

		u, err := svc.Create(ctx, email, password)
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.NotEqual(t, password, repo.byID[u.ID].PasswordHash)

		res, err := svc.Login(ctx, email, password)
		require.NoError(t, err)
		assert.Equal(t, u.ID, res.UserID)

		claims, err := issuer.inner.Verify(ctx, res.Token)
		require.NoError(t, err)
		assert.Equal(t, u.ID, claims.UserID)
	}
}

func TestService_Create_DuplicateEmail_NoWrite(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "ana@example.com", "pw-1")
	require.NoError(t, err)
	require.Equal(t, 1, repo.creates)

	_, err = svc.Create(ctx, "  ANA@example.com ", "pw-2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, repo.creates)
}

func TestService_Create_MissingFields(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.Create(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrMissingField)
	_, err = svc.Create(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Zero(t, repo.creates)
}

func TestService_Create_PropagatesStoreFailure(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.failGet = errors.New("store down")

	_, err := svc.Create(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDuplicateEmail))
	assert.Zero(t, repo.creates)
}

func TestService_Login_WrongPassword_NoToken(t *testing.T) {
	svc, _, issuer := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "bo@example.com", "right")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "bo@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, res.Token)
	assert.Zero(t, issuer.issued)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc, _, issuer := newTestService(t)

	_, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, issuer.issued)
}

func TestService_Login_EmailMatchesExactly(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, "Ana@Example.com", "pw")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "  Ana@Example.com ", "pw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.UserID)

	_, err = svc.Login(ctx, "ana@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_AppendPet(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, strings.ToLower(gofakeit.Email()), "pw")
	require.NoError(t, err)

	require.NoError(t, svc.AppendPet(ctx, u.ID, "pet-1"))
	assert.Equal(t, []string{"pet-1"}, repo.byID[u.ID].Pets)

	assert.ErrorIs(t, svc.AppendPet(ctx, "nobody", "pet-2"), ErrNotFound)
}
