package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPetLimit     = errors.New("pet limit reached")
)

// TierLimiter reports how many pets the owner's subscription tier allows.
type TierLimiter interface {
	PetLimit(ctx context.Context, ownerID int64) int
}

type Service struct {
	repo  Repository
	limit TierLimiter
	now   func() time.Time
}

func NewService(repo Repository, limit TierLimiter) *Service {
	return &Service{
		repo:  repo,
		limit: limit,
		now:   time.Now,
	}
}

type CreateInput struct {
	Name          string
	Species       string
	Breed         string
	Sex           string
	AgeYears      int
	AgeMonths     int
	Weight        *float64
	Neutered      bool
	Diseases      string
	Medications   string
	VaccineStatus string
	Notes         string
}

func (s *Service) Create(ctx context.Context, ownerID int64, in CreateInput) (Pet, error) {
	if ownerID == 0 {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.AgeYears < 0 || in.AgeMonths < 0 {
		return Pet{}, ErrInvalidInput
	}
	if in.Weight != nil && *in.Weight <= 0 {
		return Pet{}, ErrInvalidInput
	}

	if s.limit != nil {
		n, err := s.repo.CountByOwner(ctx, ownerID)
		if err != nil {
			return Pet{}, err
		}
		if n >= s.limit.PetLimit(ctx, ownerID) {
			return Pet{}, ErrPetLimit
		}
	}

	now := s.now()
	p := Pet{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(in.Name),
		Species:       parseSpecies(in.Species),
		Breed:         strings.TrimSpace(in.Breed),
		Sex:           parseSex(in.Sex),
		AgeYears:      in.AgeYears,
		AgeMonths:     in.AgeMonths,
		Weight:        in.Weight,
		Neutered:      in.Neutered,
		Diseases:      strings.TrimSpace(in.Diseases),
		Medications:   strings.TrimSpace(in.Medications),
		VaccineStatus: strings.TrimSpace(in.VaccineStatus),
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// GetOwned fetches the pet and checks ownership in one step. A pet owned by
// somebody else is reported as invalid input, not leaked.
func (s *Service) GetOwned(ctx context.Context, ownerID int64, id string) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerID != ownerID {
		return Pet{}, ErrInvalidInput
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func parseSpecies(s string) Species {
	switch Species(strings.ToLower(strings.TrimSpace(s))) {
	case SpeciesDog:
		return SpeciesDog
	case SpeciesCat:
		return SpeciesCat
	default:
		return SpeciesOther
	}
}

func parseSex(s string) Sex {
	switch Sex(strings.ToLower(strings.TrimSpace(s))) {
	case SexMale:
		return SexMale
	case SexFemale:
		return SexFemale
	default:
		return SexUnknown
	}
}
