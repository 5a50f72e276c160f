package pets

import (
	"strconv"
	"time"
)

// Species define the supported species.
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Sex of the pet.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Pet is the profile of one registered pet. OwnerID is the Telegram user ID
// of the registering account.
type Pet struct {
	ID      string
	OwnerID int64

	Name    string
	Species Species
	Breed   string
	Sex     Sex

	AgeYears  int
	AgeMonths int
	Weight    *float64 // baseline weight in kg, nil when not given

	Neutered      bool
	Diseases      string
	Medications   string
	VaccineStatus string

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Age renders the profile age for display and prompts.
func (p Pet) Age() string {
	switch {
	case p.AgeYears <= 0 && p.AgeMonths <= 0:
		return "unknown"
	case p.AgeYears <= 0:
		return plural(p.AgeMonths, "month")
	case p.AgeMonths <= 0:
		return plural(p.AgeYears, "year")
	default:
		return plural(p.AgeYears, "year") + " " + plural(p.AgeMonths, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
