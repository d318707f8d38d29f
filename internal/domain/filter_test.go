package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterInput_Criteria_Participants(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected *int
	}{
		{
			name:     "Blank entry is absent",
			raw:      "",
			expected: nil,
		},
		{
			name:     "Non-numeric entry is absent",
			raw:      "lots",
			expected: nil,
		},
		{
			name:     "Zero is absent",
			raw:      "0",
			expected: nil,
		},
		{
			name:     "Negative is absent",
			raw:      "-3",
			expected: nil,
		},
		{
			name:     "Positive count is kept",
			raw:      "4",
			expected: intPtr(4),
		},
		{
			name:     "Surrounding whitespace is ignored",
			raw:      "  2  ",
			expected: intPtr(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := FilterInput{Participants: tt.raw}.Criteria()
			assert.Equal(t, tt.expected, criteria.Participants)
		})
	}
}

func TestFilterInput_Criteria_RangedFields(t *testing.T) {
	tests := []struct {
		name        string
		min, max    string
		expectedMin *float64
		expectedMax *float64
	}{
		{
			name: "Both blank means no constraint",
		},
		{
			name:        "Valid pair is kept",
			min:         "0.2",
			max:         "0.8",
			expectedMin: floatPtr(0.2),
			expectedMax: floatPtr(0.8),
		},
		{
			name:        "Inverted pair is swapped, not rejected",
			min:         "0.9",
			max:         "0.1",
			expectedMin: floatPtr(0.1),
			expectedMax: floatPtr(0.9),
		},
		{
			name:        "Zero doubles as unset",
			min:         "0",
			max:         "0.5",
			expectedMax: floatPtr(0.5),
		},
		{
			name:        "Negative values are unset",
			min:         "-0.4",
			max:         "-1",
			expectedMin: nil,
			expectedMax: nil,
		},
		{
			name:        "Values above one are clamped",
			min:         "0.5",
			max:         "7",
			expectedMin: floatPtr(0.5),
			expectedMax: floatPtr(1),
		},
		{
			name:        "Garbage is absent",
			min:         "cheap",
			max:         "0.3",
			expectedMax: floatPtr(0.3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := FilterInput{
				MinPrice:         tt.min,
				MaxPrice:         tt.max,
				MinAccessibility: tt.min,
				MaxAccessibility: tt.max,
			}.Criteria()

			assert.Equal(t, tt.expectedMin, criteria.MinPrice, "min price")
			assert.Equal(t, tt.expectedMax, criteria.MaxPrice, "max price")
			assert.Equal(t, tt.expectedMin, criteria.MinAccessibility, "min accessibility")
			assert.Equal(t, tt.expectedMax, criteria.MaxAccessibility, "max accessibility")
		})
	}
}

func TestFilterInput_Criteria_SwappedPairIsOrdered(t *testing.T) {
	// Whatever the user typed, the effective pair always has min <= max.
	pairs := [][2]string{
		{"0.1", "0.9"},
		{"0.9", "0.1"},
		{"0.5", "0.5"},
		{"1", "0.001"},
	}
	for _, pair := range pairs {
		criteria := FilterInput{MinPrice: pair[0], MaxPrice: pair[1]}.Criteria()
		require.NotNil(t, criteria.MinPrice)
		require.NotNil(t, criteria.MaxPrice)
		assert.LessOrEqual(t, *criteria.MinPrice, *criteria.MaxPrice)
	}
}

func TestFilterInput_Clear(t *testing.T) {
	in := FilterInput{
		Participants: "3",
		MinPrice:     "0.1",
		MaxPrice:     "0.9",
	}
	in.Clear()
	assert.Equal(t, FilterInput{}, in)
	assert.True(t, in.Criteria().IsZero())
}

func TestFilterCriteria_IsZero(t *testing.T) {
	assert.True(t, FilterCriteria{}.IsZero())
	assert.False(t, FilterCriteria{Participants: intPtr(2)}.IsZero())

	tag := TypeSocial
	assert.False(t, FilterCriteria{Type: &tag}.IsZero())
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
