package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"unbored/internal/domain"
)

func TestFocusCoordinator_InitialStateIsTypePicker(t *testing.T) {
	coordinator := NewFocusCoordinator()
	assert.Equal(t, FocusTypePicker, coordinator.Current().Kind)
}

func TestFocusCoordinator_ActivatingOneRegionDeactivatesTheOthers(t *testing.T) {
	coordinator := NewFocusCoordinator()
	id := uuid.New()

	coordinator.FocusActivity(id)
	assert.Equal(t, FocusState{Kind: FocusActivity, ActivityID: id}, coordinator.Current())

	coordinator.OpenFilters()
	assert.Equal(t, FocusFilters, coordinator.Current().Kind)

	coordinator.FocusActivity(id)
	assert.Equal(t, FocusActivity, coordinator.Current().Kind)
}

func TestFocusCoordinator_DeselectReturnsToTypePicker(t *testing.T) {
	coordinator := NewFocusCoordinator()
	coordinator.FocusActivity(uuid.New())

	coordinator.Deselect()
	assert.Equal(t, FocusTypePicker, coordinator.Current().Kind)

	// Deselecting with nothing focused changes nothing.
	coordinator.OpenFilters()
	coordinator.Deselect()
	assert.Equal(t, FocusFilters, coordinator.Current().Kind)
}

func TestFocusCoordinator_ClosingFiltersReturnsToTypePicker(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*FocusCoordinator)
		want  FocusKind
	}{
		{
			name:  "Close while filters own focus",
			setup: func(c *FocusCoordinator) { c.OpenFilters() },
			want:  FocusTypePicker,
		},
		{
			name:  "Close while an activity owns focus is a no-op",
			setup: func(c *FocusCoordinator) { c.FocusActivity(uuid.New()) },
			want:  FocusActivity,
		},
		{
			name:  "Close while the picker owns focus is a no-op",
			setup: func(*FocusCoordinator) {},
			want:  FocusTypePicker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coordinator := NewFocusCoordinator()
			tt.setup(coordinator)
			coordinator.CloseFilters()
			assert.Equal(t, tt.want, coordinator.Current().Kind)
		})
	}
}

func TestFocusCoordinator_RemovingTheFocusedActivityRevertsFocus(t *testing.T) {
	coordinator := NewFocusCoordinator()
	focused := testActivity("focused")
	other := testActivity("other")

	coordinator.FocusActivity(focused.ID)

	// Removing a different activity leaves focus alone.
	coordinator.HandleListEvent(domain.ListEvent{Kind: domain.ListRemoved, Activity: other})
	assert.Equal(t, FocusActivity, coordinator.Current().Kind)

	// Moving the focused activity leaves focus alone.
	coordinator.HandleListEvent(domain.ListEvent{Kind: domain.ListMoved, Activity: focused})
	assert.Equal(t, FocusActivity, coordinator.Current().Kind)

	// Removing the focused activity hands focus back to the type picker.
	coordinator.HandleListEvent(domain.ListEvent{Kind: domain.ListRemoved, Activity: focused})
	assert.Equal(t, FocusTypePicker, coordinator.Current().Kind)
}
