package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dydtjq94/lycon-engine/internal/profile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectProfileColumns = `
	id, owner_id, name, birth_year, retirement_age, target_net_assets,
	has_spouse, spouse_birth_year, spouse_retirement_age, created_at, updated_at
`

func scanProfile(s scanner) (*profile.Profile, error) {
	var p profile.Profile

	if err := s.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.BirthYear, &p.RetirementAge, &p.TargetNetAssets,
		&p.HasSpouse, &p.SpouseBirthYear, &p.SpouseRetirementAge, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Store) CreateProfile(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (owner_id, name, birth_year, retirement_age, target_net_assets,
			has_spouse, spouse_birth_year, spouse_retirement_age, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.OwnerID,
		p.Name,
		p.BirthYear,
		p.RetirementAge,
		p.TargetNetAssets,
		p.HasSpouse,
		p.SpouseBirthYear,
		p.SpouseRetirementAge,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}

	return nil
}

func (s *Store) GetProfile(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + selectProfileColumns + ` FROM profiles WHERE id = $1`

	p, err := scanProfile(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrNotFound
		}

		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return p, nil
}

func (s *Store) ListProfiles(ctx context.Context, ownerID string) ([]*profile.Profile, error) {
	query := `SELECT ` + selectProfileColumns + ` FROM profiles WHERE owner_id = $1 ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*profile.Profile

	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}

		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

func (s *Store) UpdateProfile(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, birth_year = $2, retirement_age = $3, target_net_assets = $4,
			has_spouse = $5, spouse_birth_year = $6, spouse_retirement_age = $7, updated_at = NOW()
		WHERE id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.BirthYear,
		p.RetirementAge,
		p.TargetNetAssets,
		p.HasSpouse,
		p.SpouseBirthYear,
		p.SpouseRetirementAge,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}

	return nil
}

func (s *Store) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM profiles WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}

	return nil
}
