package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"findmypet/internal/domain/foundpets"
)

type FoundPetsRepo struct {
	db *sql.DB
}

func NewFoundPetsRepo(db *sql.DB) *FoundPetsRepo {
	return &FoundPetsRepo{db: db}
}

const foundPetColumns = `
	id, latitude, longitude, date, shelter, picture, created_at, status, claimed_by
`

func (r *FoundPetsRepo) Create(ctx context.Context, p foundpets.FoundPet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO found_pets (`+foundPetColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Location.Latitude,
		p.Location.Longitude,
		p.Date,
		p.Shelter,
		p.Picture,
		p.CreatedAt,
		string(p.Status),
		p.ClaimedBy,
	)
	return err
}

func (r *FoundPetsRepo) GetByID(ctx context.Context, id string) (foundpets.FoundPet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return foundpets.FoundPet{}, foundpets.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+foundPetColumns+` FROM found_pets WHERE id = $1`, id)
	return scanFoundPet(row)
}

func (r *FoundPetsRepo) ListByStatus(ctx context.Context, status foundpets.Status) ([]foundpets.FoundPet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+foundPetColumns+` FROM found_pets
		WHERE status = $1
		ORDER BY created_at, id
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]foundpets.FoundPet, 0)
	for rows.Next() {
		p, err := scanFoundPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *FoundPetsRepo) Claim(ctx context.Context, id, userID string) (foundpets.FoundPet, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE found_pets SET status = $2, claimed_by = $3
		WHERE id = $1 AND status = $4
		RETURNING `+foundPetColumns,
		id, string(foundpets.StatusClaimed), userID, string(foundpets.StatusFound))
	return scanFoundPet(row)
}

func scanFoundPet(s scanner) (foundpets.FoundPet, error) {
	var p foundpets.FoundPet
	var status string
	if err := s.Scan(
		&p.ID,
		&p.Location.Latitude,
		&p.Location.Longitude,
		&p.Date,
		&p.Shelter,
		&p.Picture,
		&p.CreatedAt,
		&status,
		&p.ClaimedBy,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return foundpets.FoundPet{}, foundpets.ErrNotFound
		}
		return foundpets.FoundPet{}, err
	}
	p.Status = foundpets.Status(status)
	return p, nil
}
