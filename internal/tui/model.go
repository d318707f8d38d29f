// Package tui is the Bubble Tea front end: a type picker, the reorderable
// activity list, and a pop-over filter panel. All state mutations happen in
// the update loop; the only asynchronous boundary is the lookup command.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"unbored/internal/container"
	"unbored/internal/domain"
	"unbored/internal/service"
	apperrors "unbored/pkg/errors"
	"unbored/pkg/logger"
)

// noticeDuration is how long the transient no-match notice stays up
const noticeDuration = 2 * time.Second

// suggestDoneMsg delivers the outcome of a lookup back into the update loop
type suggestDoneMsg struct {
	activity *domain.Activity
	err      error
}

// noticeExpiredMsg dismisses a transient notice; seq guards against a stale
// timer wiping a newer notice.
type noticeExpiredMsg struct {
	seq int
}

// Model is the top-level Bubble Tea model
type Model struct {
	log     *logger.Logger
	list    *service.ListService
	focus   *service.FocusCoordinator
	suggest *service.SuggestionService

	width  int
	height int

	typeCursor int
	listCursor int
	filters    filterPanel

	fetching  bool
	notice    string
	noticeSeq int
	errMsg    string
}

// New creates the top-level model from the wired application container
func New(c *container.Container) Model {
	return Model{
		log:     c.Logger,
		list:    c.List,
		focus:   c.Focus,
		suggest: c.Suggestions,
		filters: newFilterPanel(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case suggestDoneMsg:
		return m.handleSuggestDone(msg)

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus.Current().Kind {
		case service.FocusFilters:
			return m.updateFilters(msg)
		case service.FocusActivity:
			return m.updateActivity(msg)
		default:
			return m.updateTypePicker(msg)
		}
	}
	return m, nil
}

// updateTypePicker handles keys while the type choices own focus
func (m Model) updateTypePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case "right", "l":
		if m.typeCursor < len(domain.ActivityTypes()) {
			m.typeCursor++
		}
	case "enter", " ":
		if !m.fetching {
			return m.startFetch()
		}
	case "f":
		m.focus.OpenFilters()
		return m, m.filters.Focus()
	case "tab", "down", "j":
		if activity, ok := m.list.ActivityAt(0); ok {
			m.listCursor = 0
			m.focus.FocusActivity(activity.ID)
		}
	}
	return m, nil
}

// updateActivity handles keys while one activity owns focus
func (m Model) updateActivity(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.focus.Current()
	switch msg.String() {
	case "esc":
		m.focus.Deselect()
	case "up", "k":
		if m.listCursor == 0 {
			m.focus.Deselect()
		} else {
			m.listCursor--
			if activity, ok := m.list.ActivityAt(m.listCursor); ok {
				m.focus.FocusActivity(activity.ID)
			}
		}
	case "down", "j":
		if m.listCursor < m.list.Len()-1 {
			m.listCursor++
			if activity, ok := m.list.ActivityAt(m.listCursor); ok {
				m.focus.FocusActivity(activity.ID)
			}
		}
	case "ctrl+up":
		if _, err := m.list.MoveUp(context.Background(), state.ActivityID); err != nil {
			m.errMsg = "Warning: the list could not be saved: " + err.Error()
		}
		m.listCursor = m.list.IndexOf(state.ActivityID)
	case "ctrl+down":
		if _, err := m.list.MoveDown(context.Background(), state.ActivityID); err != nil {
			m.errMsg = "Warning: the list could not be saved: " + err.Error()
		}
		m.listCursor = m.list.IndexOf(state.ActivityID)
	case "d":
		if _, err := m.list.Remove(context.Background(), state.ActivityID); err != nil {
			m.errMsg = "Warning: the list could not be saved: " + err.Error()
		}
		// Focus reverted via the list event subscription.
		if m.listCursor >= m.list.Len() {
			m.listCursor = m.list.Len() - 1
		}
	case "enter", "o":
		if activity, ok := m.list.ActivityAt(m.listCursor); ok && activity.HasLink() {
			if err := browser.OpenURL(activity.Link); err != nil {
				m.errMsg = "Could not open the link: " + err.Error()
			}
		}
	}
	return m, nil
}

// updateFilters handles keys while the filter panel owns focus
func (m Model) updateFilters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filters.Blur()
		m.focus.CloseFilters()
		return m, nil
	case "tab", "enter", "down":
		return m, m.filters.Next()
	case "shift+tab", "up":
		return m, m.filters.Prev()
	case "ctrl+r":
		m.filters.Clear()
		return m, nil
	}
	var cmd tea.Cmd
	m.filters, cmd = m.filters.Update(msg)
	return m, cmd
}

// startFetch kicks off one lookup for the currently selected type choice
func (m Model) startFetch() (tea.Model, tea.Cmd) {
	var typeTag *domain.ActivityType
	if m.typeCursor > 0 {
		tag := domain.ActivityTypes()[m.typeCursor-1]
		typeTag = &tag
	}
	criteria := m.filters.Input().Criteria()

	m.fetching = true
	m.errMsg = ""
	suggest := m.suggest
	return m, func() tea.Msg {
		activity, err := suggest.Request(context.Background(), typeTag, criteria)
		return suggestDoneMsg{activity: activity, err: err}
	}
}

// handleSuggestDone folds the lookup outcome back into the model
func (m Model) handleSuggestDone(msg suggestDoneMsg) (tea.Model, tea.Cmd) {
	m.fetching = false

	switch {
	case msg.err == nil:
		// Selecting a type never steals focus for the new entry; the
		// picker keeps it. Keep the cursor pinned to the focused
		// activity, which the insert shifted down one place.
		if m.focus.Current().Kind == service.FocusActivity {
			m.listCursor = m.list.IndexOf(m.focus.Current().ActivityID)
		}
		return m, nil

	case apperrors.IsNoMatch(msg.err):
		m.notice = "Unable to find any activities that satisfy the current filters."
		m.noticeSeq++
		seq := m.noticeSeq
		return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
			return noticeExpiredMsg{seq: seq}
		})

	case apperrors.IsPersistence(msg.err):
		// The activity made it into the in-memory list; only the write
		// failed.
		m.errMsg = "Warning: the list could not be saved: " + msg.err.Error()
		return m, nil

	default:
		m.errMsg = "Error fetching an activity: " + msg.err.Error()
		return m, nil
	}
}
