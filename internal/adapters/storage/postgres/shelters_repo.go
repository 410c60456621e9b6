package postgres

import (
	"context"
	"database/sql"
	"errors"

	"findmypet/internal/domain/shelters"
)

type SheltersRepo struct {
	db *sql.DB
}

func NewSheltersRepo(db *sql.DB) *SheltersRepo {
	return &SheltersRepo{db: db}
}

func (r *SheltersRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, phone, website FROM shelters ORDER BY name, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]shelters.Shelter, 0)
	for rows.Next() {
		var s shelters.Shelter
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.Website); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SheltersRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *SheltersRepo) FindByName(ctx context.Context, name string) (shelters.Shelter, error) {
	return r.getOne(ctx, `WHERE name = $1 ORDER BY id LIMIT 1`, name)
}

func (r *SheltersRepo) getOne(ctx context.Context, where, arg string) (shelters.Shelter, error) {
	var s shelters.Shelter
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, address, phone, website FROM shelters
	`+where, arg).Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.Website)
	if errors.Is(err, sql.ErrNoRows) {
		return shelters.Shelter{}, shelters.ErrNotFound
	}
	return s, err
}

// InsertIfEmpty bloquea la tabla dentro de la transacción para que dos
// procesos que arrancan a la vez no siembren dos veces.
func (r *SheltersRepo) InsertIfEmpty(ctx context.Context, s shelters.Shelter) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `LOCK TABLE shelters IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO shelters (id, name, address, phone, website)
		SELECT $1,$2,$3,$4,$5
		WHERE NOT EXISTS (SELECT 1 FROM shelters)
	`, s.ID, s.Name, s.Address, s.Phone, s.Website)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return n > 0, nil
}
