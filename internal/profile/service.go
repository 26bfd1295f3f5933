package profile

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=profile
type Repository interface {
	CreateProfile(ctx context.Context, p *Profile) error
	GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error)
	ListProfiles(ctx context.Context, ownerID string) ([]*Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) error
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	OwnerID             string
	Name                string
	BirthYear           int
	RetirementAge       int
	TargetNetAssets     float64
	HasSpouse           bool
	SpouseBirthYear     int
	SpouseRetirementAge int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Profile, error) {
	p := &Profile{
		OwnerID:             params.OwnerID,
		Name:                params.Name,
		BirthYear:           params.BirthYear,
		RetirementAge:       params.RetirementAge,
		TargetNetAssets:     params.TargetNetAssets,
		HasSpouse:           params.HasSpouse,
		SpouseBirthYear:     params.SpouseBirthYear,
		SpouseRetirementAge: params.SpouseRetirementAge,
	}
	if err := s.repo.CreateProfile(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.repo.GetProfile(ctx, id)
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*Profile, error) {
	return s.repo.ListProfiles(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, p *Profile) error {
	return s.repo.UpdateProfile(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProfile(ctx, id)
}
