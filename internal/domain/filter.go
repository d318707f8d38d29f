package domain

import (
	"strconv"
	"strings"
)

// FilterCriteria is a snapshot of the user's constraints at the moment a
// lookup is requested. A nil field means "no constraint".
type FilterCriteria struct {
	Type             *ActivityType
	Participants     *int
	MinPrice         *float64
	MaxPrice         *float64
	MinAccessibility *float64
	MaxAccessibility *float64
}

// IsZero reports whether the criteria carry no constraint at all
func (c FilterCriteria) IsZero() bool {
	return c.Type == nil && c.Participants == nil &&
		c.MinPrice == nil && c.MaxPrice == nil &&
		c.MinAccessibility == nil && c.MaxAccessibility == nil
}

// FilterInput holds the raw text the user typed into the filter fields.
// Nothing here is validated; Criteria applies the tolerant reading rules.
type FilterInput struct {
	Participants     string
	MinPrice         string
	MaxPrice         string
	MinAccessibility string
	MaxAccessibility string
}

// Clear resets every field to unset
func (in *FilterInput) Clear() {
	*in = FilterInput{}
}

// Criteria reads the raw input into filter criteria. The reading is
// deliberately forgiving: anything unparseable is treated as absent, ranged
// values are clamped into [0,1], a value of zero or below counts as unset
// (zero doubles as "no constraint" in the service's encoding), and an
// inverted min/max pair is swapped rather than rejected.
func (in FilterInput) Criteria() FilterCriteria {
	minPrice, maxPrice := orderRange(parseScore(in.MinPrice), parseScore(in.MaxPrice))
	minAccess, maxAccess := orderRange(parseScore(in.MinAccessibility), parseScore(in.MaxAccessibility))
	return FilterCriteria{
		Participants:     parseCount(in.Participants),
		MinPrice:         minPrice,
		MaxPrice:         maxPrice,
		MinAccessibility: minAccess,
		MaxAccessibility: maxAccess,
	}
}

// parseCount reads a participant count; anything that isn't a positive
// integer is absent.
func parseCount(raw string) *int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return nil
	}
	return &value
}

// parseScore reads a price or accessibility score; non-numbers and values
// at or below zero are absent, everything else is clamped into [0,1].
func parseScore(raw string) *float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value <= 0 {
		return nil
	}
	if value > 1 {
		value = 1
	}
	return &value
}

// orderRange swaps an inverted min/max pair
func orderRange(min, max *float64) (*float64, *float64) {
	if min != nil && max != nil && *max < *min {
		return max, min
	}
	return min, max
}
