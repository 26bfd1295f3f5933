package profile

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// LifeExpectancyAge is the fixed planning horizon: projections run until the
// (younger) household member turns 90.
const LifeExpectancyAge = 90

// Profile holds the household assumptions a simulation runs against.
// All monetary fields are in manwon (10,000 KRW).
type Profile struct {
	ID      uuid.UUID
	OwnerID string // advisor subject from the auth token
	Name    string

	BirthYear     int
	RetirementAge int

	TargetNetAssets float64 // manwon; 0 means no goal set

	HasSpouse           bool
	SpouseBirthYear     int
	SpouseRetirementAge int

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// CurrentAge returns the age reached during currentYear.
func (p *Profile) CurrentAge(currentYear int) int {
	return currentYear - p.BirthYear
}

// RetirementYear is the calendar year the main member retires.
func (p *Profile) RetirementYear() int {
	return p.BirthYear + p.RetirementAge
}

// DeathYear is the last projected year. With a spouse the horizon follows the
// younger member, so the household is covered for its full span.
func (p *Profile) DeathYear() int {
	birth := p.BirthYear
	if p.HasSpouse && p.SpouseBirthYear > birth {
		birth = p.SpouseBirthYear
	}

	return birth + LifeExpectancyAge
}
