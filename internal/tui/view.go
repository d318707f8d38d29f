package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"unbored/internal/domain"
	"unbored/internal/service"
)

// timestampLayout is a human-readable form of the chosen-at time
const timestampLayout = "Mon Jan 2 15:04:05 2006"

// View implements tea.Model
func (m Model) View() string {
	sections := []string{
		titleStyle.Render("Unbored"),
		m.viewTypePicker(),
	}

	if m.focus.Current().Kind == service.FocusFilters {
		sections = append(sections, m.viewFilters())
	}

	sections = append(sections, m.viewActivities(), m.viewStatus())

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// viewTypePicker renders the row of type choices, "Any" first
func (m Model) viewTypePicker() string {
	pickerFocused := m.focus.Current().Kind == service.FocusTypePicker

	chips := make([]string, 0, len(domain.ActivityTypes())+1)
	labels := append([]string{"Any"}, typeTitles()...)
	for i, label := range labels {
		style := chipStyle
		if m.fetching {
			style = chipInertStyle
		}
		if pickerFocused && i == m.typeCursor {
			style = chipSelectedStyle
		}
		chips = append(chips, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func typeTitles() []string {
	types := domain.ActivityTypes()
	titles := make([]string, len(types))
	for i, t := range types {
		titles[i] = t.Title()
	}
	return titles
}

// viewActivities renders one card per chosen activity, head first
func (m Model) viewActivities() string {
	activities := m.list.Snapshot()
	if len(activities) == 0 {
		return helpStyle.Render("No chosen activities yet. Pick a type above to fetch one.")
	}

	state := m.focus.Current()
	cards := make([]string, 0, len(activities))
	for _, activity := range activities {
		focused := state.Kind == service.FocusActivity && state.ActivityID == activity.ID
		cards = append(cards, m.viewCard(activity, focused))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) viewCard(activity domain.Activity, focused bool) string {
	var b strings.Builder
	b.WriteString(timestampStyle.Render(activity.ChosenAt.Format(timestampLayout)))
	b.WriteString("\n")
	b.WriteString(activityTextStyle.Render(activity.Activity))
	b.WriteString("\n\n")
	b.WriteString(activity.Description())
	if activity.HasLink() {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("🔗 " + activity.Link))
	}

	style := cardStyle
	if focused {
		style = cardFocusedStyle
	}
	if m.width > 4 {
		style = style.Width(min(m.width-2, 78))
	}
	return style.Render(b.String())
}

// viewFilters renders the filter panel pop-over
func (m Model) viewFilters() string {
	rows := []string{panelTitleStyle.Render("Filters")}
	rejected := false
	for i, input := range m.filters.inputs {
		rows = append(rows, labelStyle.Render(fieldLabels[i]), input.View())
		rejected = rejected || input.Err != nil
	}
	if rejected {
		rows = append(rows, errorStyle.Render("Numbers only"))
	}
	rows = append(rows, "", helpStyle.Render("tab next · shift+tab previous · ctrl+r clear · esc close"))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// viewStatus renders the transient notice, the last error, or a help line
func (m Model) viewStatus() string {
	if m.notice != "" {
		return noticeStyle.Render(m.notice)
	}
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	if m.fetching {
		return helpStyle.Render("Fetching an activity…")
	}
	switch m.focus.Current().Kind {
	case service.FocusActivity:
		return helpStyle.Render("d delete · ctrl+↑/↓ move · enter open link · esc back")
	case service.FocusFilters:
		return helpStyle.Render("Editing filters")
	default:
		return helpStyle.Render("←/→ choose type · enter fetch · f filters · tab list · q quit")
	}
}
