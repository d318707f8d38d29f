package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActivityType is the category facet of an activity, drawn from the fixed
// set the suggestion service understands.
type ActivityType string

const (
	TypeEducation    ActivityType = "education"
	TypeRecreational ActivityType = "recreational"
	TypeSocial       ActivityType = "social"
	TypeDIY          ActivityType = "diy"
	TypeCharity      ActivityType = "charity"
	TypeCooking      ActivityType = "cooking"
	TypeRelaxation   ActivityType = "relaxation"
	TypeMusic        ActivityType = "music"
	TypeBusywork     ActivityType = "busywork"
)

// ActivityTypes returns every known activity type, in display order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		TypeEducation,
		TypeRecreational,
		TypeSocial,
		TypeDIY,
		TypeCharity,
		TypeCooking,
		TypeRelaxation,
		TypeMusic,
		TypeBusywork,
	}
}

// ParseActivityType parses a type code into an ActivityType
func ParseActivityType(code string) (ActivityType, error) {
	for _, t := range ActivityTypes() {
		if string(t) == code {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown activity type %q", code)
}

// Title returns the type code with its first letter upper-cased, for display
func (t ActivityType) Title() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t)[:1]) + string(t)[1:]
}

// Activity is one suggestion the user has accepted into their list. The ID
// exists only in memory: it identifies an entry for move and remove
// operations and is never persisted.
type Activity struct {
	ID            uuid.UUID    `json:"-"`
	Activity      string       `json:"activity"`
	Type          ActivityType `json:"type"`
	Participants  int          `json:"participants"`
	Price         float64      `json:"price"`
	Accessibility float64      `json:"accessibility"`
	Link          string       `json:"link,omitempty"`
	Key           string       `json:"key,omitempty"`
	ChosenAt      time.Time    `json:"chosen_at"`
}

// Validate checks the activity's field invariants
func (a Activity) Validate() error {
	if strings.TrimSpace(a.Activity) == "" {
		return fmt.Errorf("activity text is empty")
	}
	if _, err := ParseActivityType(string(a.Type)); err != nil {
		return err
	}
	if a.Participants < 1 {
		return fmt.Errorf("participants must be at least 1, got %d", a.Participants)
	}
	if a.Price < 0 || a.Price > 1 {
		return fmt.Errorf("price %v outside [0,1]", a.Price)
	}
	if a.Accessibility < 0 || a.Accessibility > 1 {
		return fmt.Errorf("accessibility %v outside [0,1]", a.Accessibility)
	}
	return nil
}

// Description renders the activity's details as a sentence for display.
func (a Activity) Description() string {
	var b strings.Builder
	fmt.Fprintf(
		&b,
		"It's considered to have an accessibility score of %v"+
			" (0 being the most accessible; 1 being the least), "+
			"is a %s type of activity, ",
		a.Accessibility, a.Type,
	)
	if a.Participants > 1 {
		fmt.Fprintf(&b, "requires %d participants ", a.Participants)
	}
	fmt.Fprintf(&b, "and has a price score of %v (0 being free).", a.Price)
	return b.String()
}

// HasLink reports whether the activity carries a web link
func (a Activity) HasLink() bool {
	return a.Link != ""
}
