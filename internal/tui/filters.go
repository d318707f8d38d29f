package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"unbored/internal/domain"
)

// The order of the filter fields, top to bottom.
const (
	fieldParticipants = iota
	fieldMinPrice
	fieldMaxPrice
	fieldMinAccessibility
	fieldMaxAccessibility
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Participants:",
	"Minimum Price:",
	"Maximum Price:",
	"Minimum Accessibility:",
	"Maximum Accessibility:",
}

// filterPanel is the pop-over holding the five filter inputs. It only
// handles keys while the focus coordinator says it owns input.
type filterPanel struct {
	inputs  [fieldCount]textinput.Model
	focused int
}

func newFilterPanel() filterPanel {
	var p filterPanel
	for i := range p.inputs {
		in := textinput.New()
		in.CharLimit = 16
		in.Width = 30
		switch i {
		case fieldParticipants:
			in.Placeholder = "Number of participants"
			in.Validate = IntValidator
		case fieldMinPrice, fieldMaxPrice:
			in.Placeholder = "Between 0 (free) and 1 (expensive)"
			in.Validate = FloatValidator
		default:
			in.Placeholder = "Between 0 (most) and 1 (least)"
			in.Validate = FloatValidator
		}
		p.inputs[i] = in
	}
	return p
}

// Focus gives input focus to the first field
func (p *filterPanel) Focus() tea.Cmd {
	p.focused = 0
	return p.focusCurrent()
}

// Blur removes input focus from every field
func (p *filterPanel) Blur() {
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
}

// Next moves input focus to the following field, wrapping around
func (p *filterPanel) Next() tea.Cmd {
	p.focused = (p.focused + 1) % fieldCount
	return p.focusCurrent()
}

// Prev moves input focus to the preceding field, wrapping around
func (p *filterPanel) Prev() tea.Cmd {
	p.focused = (p.focused + fieldCount - 1) % fieldCount
	return p.focusCurrent()
}

func (p *filterPanel) focusCurrent() tea.Cmd {
	var cmd tea.Cmd
	for i := range p.inputs {
		if i == p.focused {
			cmd = p.inputs[i].Focus()
		} else {
			p.inputs[i].Blur()
		}
	}
	return cmd
}

// Update forwards a message to the focused field
func (p filterPanel) Update(msg tea.Msg) (filterPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.inputs[p.focused], cmd = p.inputs[p.focused].Update(msg)
	return p, cmd
}

// Clear resets every field to unset
func (p *filterPanel) Clear() {
	for i := range p.inputs {
		p.inputs[i].SetValue("")
	}
}

// Input snapshots the raw field text for a lookup
func (p filterPanel) Input() domain.FilterInput {
	return domain.FilterInput{
		Participants:     p.inputs[fieldParticipants].Value(),
		MinPrice:         p.inputs[fieldMinPrice].Value(),
		MaxPrice:         p.inputs[fieldMaxPrice].Value(),
		MinAccessibility: p.inputs[fieldMinAccessibility].Value(),
		MaxAccessibility: p.inputs[fieldMaxAccessibility].Value(),
	}
}
