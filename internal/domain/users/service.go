package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"findmypet/internal/ports/auth"
)

var (
	ErrMissingField       = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Costo de bcrypt; mismo valor que las cuentas ya existentes.
const PasswordCost = 10

type Service struct {
	repo   Repository
	tokens auth.TokenIssuer
	now    func() time.Time
	cost   int
}

func NewService(repo Repository, tokens auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
		cost:   PasswordCost,
	}
}

func (s *Service) Create(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, ErrMissingField
	}

	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, ErrDuplicateEmail
	case !errors.Is(err, ErrNotFound):
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
		Pets:         []string{},
	}
	// El índice único cubre la carrera entre el chequeo y el insert.
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

type LoginResult struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrMissingField
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(ctx, u.ID)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, UserID: u.ID, ExpiresAt: exp}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// AppendPet registra la mascota en la lista del dueño.
func (s *Service) AppendPet(ctx context.Context, userID, petID string) error {
	userID = strings.TrimSpace(userID)
	petID = strings.TrimSpace(petID)
	if userID == "" || petID == "" {
		return ErrNotFound
	}
	return s.repo.AppendPet(ctx, userID, petID)
}

// normalizeEmail solo recorta espacios: las cuentas existentes se buscan por
// el email exacto con el que se registraron (mayúsculas incluidas).
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
