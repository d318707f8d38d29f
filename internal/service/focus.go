package service

import (
	"github.com/google/uuid"

	"unbored/internal/domain"
)

// FocusKind identifies which UI region owns input focus
type FocusKind int

const (
	// FocusTypePicker is the initial state: the row of type choices
	FocusTypePicker FocusKind = iota
	// FocusActivity means one specific activity in the list is focused
	FocusActivity
	// FocusFilters means the filter panel is open and owns input
	FocusFilters
)

// FocusState is exactly one of the three regions; ActivityID is only
// meaningful when Kind is FocusActivity.
type FocusState struct {
	Kind       FocusKind
	ActivityID uuid.UUID
}

// FocusCoordinator arbitrates which region owns input focus. Exactly one
// region is active at any time; activating one deactivates the others. It
// lives for the process lifetime and has no terminal state.
type FocusCoordinator struct {
	state FocusState
}

// NewFocusCoordinator creates a coordinator with focus on the type picker
func NewFocusCoordinator() *FocusCoordinator {
	return &FocusCoordinator{
		state: FocusState{Kind: FocusTypePicker},
	}
}

// Current returns the current focus state
func (c *FocusCoordinator) Current() FocusState {
	return c.state
}

// FocusActivity gives focus to the activity with the given identity
func (c *FocusCoordinator) FocusActivity(id uuid.UUID) {
	c.state = FocusState{Kind: FocusActivity, ActivityID: id}
}

// OpenFilters gives focus to the filter panel
func (c *FocusCoordinator) OpenFilters() {
	c.state = FocusState{Kind: FocusFilters}
}

// CloseFilters returns focus to the type picker when the filter panel owns
// it; closing an already-closed panel changes nothing.
func (c *FocusCoordinator) CloseFilters() {
	if c.state.Kind == FocusFilters {
		c.state = FocusState{Kind: FocusTypePicker}
	}
}

// Deselect returns focus from a focused activity to the type picker
func (c *FocusCoordinator) Deselect() {
	if c.state.Kind == FocusActivity {
		c.state = FocusState{Kind: FocusTypePicker}
	}
}

// HandleListEvent keeps focus consistent with list mutations: removing the
// focused activity hands focus back to the type picker.
func (c *FocusCoordinator) HandleListEvent(event domain.ListEvent) {
	if event.Kind == domain.ListRemoved &&
		c.state.Kind == FocusActivity &&
		c.state.ActivityID == event.Activity.ID {
		c.state = FocusState{Kind: FocusTypePicker}
	}
}
