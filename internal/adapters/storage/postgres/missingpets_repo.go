package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"findmypet/internal/domain/missingpets"
)

type MissingPetsRepo struct {
	db *sql.DB
}

func NewMissingPetsRepo(db *sql.DB) *MissingPetsRepo {
	return &MissingPetsRepo{db: db}
}

const missingPetColumns = `
	id, name, age, breed, color, gender, description,
	latitude, longitude, image, user_id, created_at, status
`

func (r *MissingPetsRepo) Create(ctx context.Context, p missingpets.MissingPet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO missing_pets (`+missingPetColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		p.ID,
		p.Name,
		p.Age,
		p.Breed,
		p.Color,
		p.Gender,
		p.Description,
		p.LastKnownLocation.Latitude,
		p.LastKnownLocation.Longitude,
		p.Image,
		p.UserID,
		p.CreatedAt,
		string(p.Status),
	)
	return err
}

func (r *MissingPetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM missing_pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return missingpets.ErrNotFound
	}
	return nil
}

func (r *MissingPetsRepo) GetByID(ctx context.Context, id string) (missingpets.MissingPet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return missingpets.MissingPet{}, missingpets.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+missingPetColumns+` FROM missing_pets WHERE id = $1`, id)
	return scanMissingPet(row)
}

func (r *MissingPetsRepo) ListAll(ctx context.Context) ([]missingpets.MissingPet, error) {
	return r.query(ctx, `SELECT `+missingPetColumns+` FROM missing_pets ORDER BY created_at, id`)
}

func (r *MissingPetsRepo) ListByOwner(ctx context.Context, userID string) ([]missingpets.MissingPet, error) {
	return r.query(ctx, `SELECT `+missingPetColumns+` FROM missing_pets WHERE user_id = $1 ORDER BY created_at, id`, userID)
}

func (r *MissingPetsRepo) UpdateStatus(ctx context.Context, id string, from, to missingpets.Status) (missingpets.MissingPet, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE missing_pets SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING `+missingPetColumns, id, string(from), string(to))
	return scanMissingPet(row)
}

func (r *MissingPetsRepo) query(ctx context.Context, q string, args ...any) ([]missingpets.MissingPet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]missingpets.MissingPet, 0)
	for rows.Next() {
		p, err := scanMissingPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMissingPet(s scanner) (missingpets.MissingPet, error) {
	var p missingpets.MissingPet
	var status string
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Breed,
		&p.Color,
		&p.Gender,
		&p.Description,
		&p.LastKnownLocation.Latitude,
		&p.LastKnownLocation.Longitude,
		&p.Image,
		&p.UserID,
		&p.CreatedAt,
		&status,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return missingpets.MissingPet{}, missingpets.ErrNotFound
		}
		return missingpets.MissingPet{}, err
	}
	p.Status = missingpets.Status(status)
	return p, nil
}
