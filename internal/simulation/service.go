package simulation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dydtjq94/lycon-engine/internal/instrument"
	"github.com/dydtjq94/lycon-engine/internal/profile"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=simulation
type ProfileSource interface {
	Get(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
}

type RecordSource interface {
	List(ctx context.Context, profileID uuid.UUID) ([]*instrument.Record, error)
}

// ResultCache is a best-effort cache; misses and failures are never fatal.
type ResultCache interface {
	Get(ctx context.Context, key string) (*RunOutput, bool)
	Set(ctx context.Context, key string, out *RunOutput) error
}

// RunOutput bundles everything one simulation run produces.
type RunOutput struct {
	Result

	Metrics Metrics              `json:"metrics"`
	Summary Summary              `json:"summary"`
	Skipped []instrument.Skipped `json:"skipped,omitempty"`
}

// Service fetches a frozen snapshot of a profile's data, normalizes it and
// runs the projection. The engine itself never touches storage; this is the
// "fetch snapshot, then compute" boundary.
type Service struct {
	profiles ProfileSource
	records  RecordSource
	cache    ResultCache
}

func NewService(profiles ProfileSource, records RecordSource, cache ResultCache) *Service {
	return &Service{profiles: profiles, records: records, cache: cache}
}

// Run projects the profile identified by id as of now. now is a parameter,
// not a clock read, so callers and tests control the horizon start.
func (s *Service) Run(ctx context.Context, id uuid.UUID, now time.Time) (*RunOutput, error) {
	p, err := s.profiles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}

	records, err := s.records.List(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching instruments: %w", err)
	}

	currentYear := now.Year()

	key := digest(p, records, currentYear)
	if s.cache != nil {
		if out, ok := s.cache.Get(ctx, key); ok {
			return out, nil
		}
	}

	norm := instrument.Normalize(instrument.HorizonInput{
		BirthYear:   p.BirthYear,
		CurrentYear: currentYear,
		FinalYear:   p.DeathYear(),
	}, records)

	res := Project(Input{Profile: p, Set: norm.Set, CurrentYear: currentYear})
	metrics := ComputeMetrics(p, res)

	out := &RunOutput{
		Result:  *res,
		Metrics: metrics,
		Summary: BuildSummary(p, res, metrics),
		Skipped: norm.Skipped,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, out); err != nil {
			slog.Warn("failed to cache simulation result", "profile", id, "error", err)
		}
	}

	return out, nil
}

// digest keys the cache on everything that can change the output: the
// profile assumptions, the instrument set and the horizon start.
func digest(p *profile.Profile, records []*instrument.Record, currentYear int) string {
	h := sha256.New()

	enc := json.NewEncoder(h)
	_ = enc.Encode(currentYear)
	_ = enc.Encode(p)
	_ = enc.Encode(records)

	return "simulation:" + hex.EncodeToString(h.Sum(nil))
}
