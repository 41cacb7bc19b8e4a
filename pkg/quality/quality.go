package quality

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is a named quality level. The zero value is not a valid tier.
type Tier string

const (
	Low    Tier = "low"
	Medium Tier = "medium"
	High   Tier = "high"
)

var ErrUnknownTier = errors.New("unknown quality tier")

// tiers is ordered lowest to highest; a tier's rank is its index plus one.
var tiers = []Tier{Low, Medium, High}

// Tiers returns every known tier ordered from lowest to highest
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// Names returns the tier names, useful for validation tags and help text
func Names() []string {
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = string(t)
	}
	return names
}

// Parse converts a configured name into a Tier. Matching is case insensitive.
func Parse(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if t.Rank() == 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}

// Rank returns the position of t on the scale starting at 1, or 0 if t is unknown
func (t Tier) Rank() int {
	for i, known := range tiers {
		if known == t {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether t is on the scale
func (t Tier) Valid() bool {
	return t.Rank() > 0
}

func (t Tier) String() string {
	return string(t)
}

// Compare returns -1 if a ranks below b, +1 if above and 0 if equal
func Compare(a, b Tier) int {
	ra, rb := a.Rank(), b.Rank()
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// Max returns the higher of the two tiers
func Max(a, b Tier) Tier {
	if Compare(a, b) < 0 {
		return b
	}
	return a
}
