package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dydtjq94/lycon-engine/internal/instrument"
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

const selectRecordColumns = `
	id, profile_id, kind, title, category, start_year, end_year,
	amount, basis, growth_rate, interest_rate, start_age, end_age,
	current_value, appreciation_rate, is_rental, monthly_rent, liquidate_at_end_year,
	principal, term_years, maturity_year, repayment_type, created_at, updated_at
`

func scanRecord(s scanner) (*instrument.Record, error) {
	var (
		r          instrument.Record
		kind       string
		basis      sql.NullString
		repayment  sql.NullString
		amount     sql.NullFloat64
		currentVal sql.NullFloat64
		principal  sql.NullFloat64
	)

	if err := s.Scan(
		&r.ID, &r.ProfileID, &kind, &r.Title, &r.Category, &r.StartYear, &r.EndYear,
		&amount, &basis, &r.GrowthRatePercent, &r.InterestRatePercent, &r.StartAge, &r.EndAge,
		&currentVal, &r.AppreciationRatePercent, &r.IsRental, &r.MonthlyRent, &r.LiquidateAtEndYear,
		&principal, &r.TermYears, &r.MaturityYear, &repayment, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	r.Kind = instrument.Kind(kind)
	r.Basis = instrument.AmountBasis(basis.String)
	r.RepaymentType = instrument.RepaymentType(repayment.String)

	if amount.Valid {
		r.Amount = &amount.Float64
	}

	if currentVal.Valid {
		r.CurrentValue = &currentVal.Float64
	}

	if principal.Valid {
		r.Principal = &principal.Float64
	}

	return &r, nil
}

func (s *Store) CreateRecord(ctx context.Context, r *instrument.Record) error {
	query := `
		INSERT INTO instruments (profile_id, kind, title, category, start_year, end_year,
			amount, basis, growth_rate, interest_rate, start_age, end_age,
			current_value, appreciation_rate, is_rental, monthly_rent, liquidate_at_end_year,
			principal, term_years, maturity_year, repayment_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, args(r)...).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating instrument: %w", err)
	}

	return nil
}

func (s *Store) CreateRecords(ctx context.Context, records []*instrument.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning batch insert: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO instruments (profile_id, kind, title, category, start_year, end_year,
			amount, basis, growth_rate, interest_rate, start_age, end_age,
			current_value, appreciation_rate, is_rental, monthly_rent, liquidate_at_end_year,
			principal, term_years, maturity_year, repayment_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, NOW(), NOW())
		RETURNING id, created_at
	`

	for _, r := range records {
		if err := tx.QueryRowContext(ctx, query, args(r)...).Scan(&r.ID, &r.CreatedAt); err != nil {
			return fmt.Errorf("creating instrument %q: %w", r.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch insert: %w", err)
	}

	return nil
}

func (s *Store) GetRecord(ctx context.Context, id uuid.UUID) (*instrument.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM instruments WHERE id = $1`

	r, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, instrument.ErrNotFound
		}

		return nil, fmt.Errorf("getting instrument: %w", err)
	}

	return r, nil
}

func (s *Store) ListRecords(ctx context.Context, profileID uuid.UUID) ([]*instrument.Record, error) {
	query := `SELECT ` + selectRecordColumns + `
		FROM instruments WHERE profile_id = $1
		ORDER BY kind, start_year, created_at`

	rows, err := s.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing instruments: %w", err)
	}
	defer rows.Close()

	var records []*instrument.Record

	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning instrument: %w", err)
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

func (s *Store) UpdateRecord(ctx context.Context, r *instrument.Record) error {
	query := `
		UPDATE instruments
		SET title = $1, category = $2, start_year = $3, end_year = $4,
			amount = $5, basis = $6, growth_rate = $7, interest_rate = $8,
			start_age = $9, end_age = $10, current_value = $11, appreciation_rate = $12,
			is_rental = $13, monthly_rent = $14, liquidate_at_end_year = $15,
			principal = $16, term_years = $17, maturity_year = $18, repayment_type = $19,
			updated_at = NOW()
		WHERE id = $20
	`

	_, err := s.db.ExecContext(ctx, query,
		r.Title, r.Category, r.StartYear, r.EndYear,
		r.Amount, nullString(string(r.Basis)), r.GrowthRatePercent, r.InterestRatePercent,
		r.StartAge, r.EndAge, r.CurrentValue, r.AppreciationRatePercent,
		r.IsRental, r.MonthlyRent, r.LiquidateAtEndYear,
		r.Principal, r.TermYears, r.MaturityYear, nullString(string(r.RepaymentType)),
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating instrument: %w", err)
	}

	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM instruments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting instrument: %w", err)
	}

	return nil
}

func args(r *instrument.Record) []any {
	return []any{
		r.ProfileID, string(r.Kind), r.Title, r.Category, r.StartYear, r.EndYear,
		r.Amount, nullString(string(r.Basis)), r.GrowthRatePercent, r.InterestRatePercent,
		r.StartAge, r.EndAge, r.CurrentValue, r.AppreciationRatePercent,
		r.IsRental, r.MonthlyRent, r.LiquidateAtEndYear,
		r.Principal, r.TermYears, r.MaturityYear, nullString(string(r.RepaymentType)),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
