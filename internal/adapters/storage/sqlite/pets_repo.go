package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"pet-health-bot/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_id,
			name, species, breed, sex,
			age_years, age_months, weight,
			neutered, diseases, medications, vaccine_status, notes,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Species,
		p.Breed,
		p.Sex,
		p.AgeYears,
		p.AgeMonths,
		toNullFloat(p.Weight),
		p.Neutered,
		p.Diseases,
		p.Medications,
		p.VaccineStatus,
		p.Notes,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_id,
			name, species, breed, sex,
			age_years, age_months, weight,
			neutered, diseases, medications, vaccine_status, notes,
			created_at, updated_at
		FROM pets
		WHERE id = ?
	`, id)

	p, err := scanPet(row)
	if err == sql.ErrNoRows {
		return pets.Pet{}, ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_id,
			name, species, breed, sex,
			age_years, age_months, weight,
			neutered, diseases, medications, vaccine_status, notes,
			created_at, updated_at
		FROM pets
		WHERE owner_id = ?
		ORDER BY created_at ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pets WHERE owner_id = ?`, ownerID,
	).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var weight sql.NullFloat64
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Sex,
		&p.AgeYears,
		&p.AgeMonths,
		&weight,
		&p.Neutered,
		&p.Diseases,
		&p.Medications,
		&p.VaccineStatus,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	if weight.Valid {
		w := weight.Float64
		p.Weight = &w
	}
	return p, nil
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
