package pricing

import (
	"fmt"

	"github.com/pkg/errors"
)

// Category price classification of a movie
type Category int

// Codes match the legacy price codes
const (
	Regular    Category = 0
	NewRelease Category = 1
	Children   Category = 2
)

const (
	regularBase      = 2.0
	regularDaysFree  = 2
	childrenBase     = 1.5
	childrenDaysFree = 3
	extraDayRate     = 1.5
	newReleaseRate   = 3.0

	// New releases kept longer than this earn the bonus point
	newReleaseBonusDays = 1
)

// ErrUnknownCategory returned for price codes outside the known set
var ErrUnknownCategory = errors.New("unknown price category")

// FromCode converts a legacy price code
func FromCode(code int) (Category, error) {
	c := Category(code)
	if !c.Valid() {
		return 0, errors.Wrapf(ErrUnknownCategory, "code %d", code)
	}
	return c, nil
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case Regular, NewRelease, Children:
		return true
	}
	return false
}

// Code legacy numeric price code
func (c Category) Code() int {
	return int(c)
}

func (c Category) String() string {
	switch c {
	case Regular:
		return "Regular"
	case NewRelease:
		return "New Release"
	case Children:
		return "Children"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Charge amount owed for renting a movie of category c for daysRented days.
// daysRented must not be negative.
func Charge(c Category, daysRented int) float64 {
	switch c {
	case Regular:
		return regularBase + extraDays(daysRented, regularDaysFree)*extraDayRate
	case Children:
		return childrenBase + extraDays(daysRented, childrenDaysFree)*extraDayRate
	case NewRelease:
		return float64(daysRented) * newReleaseRate
	}
	panic(fmt.Sprintf("pricing: charge for invalid %s", c))
}

// LoyaltyPoints frequent renter points earned by a single rental
func LoyaltyPoints(c Category, daysRented int) int {
	switch c {
	case Regular, Children:
		return 1
	case NewRelease:
		if daysRented > newReleaseBonusDays {
			return 2
		}
		return 1
	}
	panic(fmt.Sprintf("pricing: points for invalid %s", c))
}

func extraDays(daysRented, free int) float64 {
	if daysRented <= free {
		return 0
	}
	return float64(daysRented - free)
}
