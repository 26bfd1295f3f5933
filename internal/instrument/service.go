package instrument

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=instrument
type Repository interface {
	CreateRecord(ctx context.Context, r *Record) error
	CreateRecords(ctx context.Context, records []*Record) error
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
	ListRecords(ctx context.Context, profileID uuid.UUID) ([]*Record, error)
	UpdateRecord(ctx context.Context, r *Record) error
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, r *Record) (*Record, error) {
	if err := s.repo.CreateRecord(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// CreateBatch persists imported records in one shot.
func (s *Service) CreateBatch(ctx context.Context, records []*Record) error {
	if len(records) == 0 {
		return nil
	}

	return s.repo.CreateRecords(ctx, records)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetRecord(ctx, id)
}

// List returns every record of a profile across the seven collections.
func (s *Service) List(ctx context.Context, profileID uuid.UUID) ([]*Record, error) {
	return s.repo.ListRecords(ctx, profileID)
}

func (s *Service) Update(ctx context.Context, r *Record) error {
	return s.repo.UpdateRecord(ctx, r)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRecord(ctx, id)
}
