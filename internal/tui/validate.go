package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// The filter fields validate at edit time: a keystroke that would make the
// text unparseable is rejected and the prior value kept. Each input gets
// its validator injected via textinput's Validate hook; range clamping and
// the zero-means-unset reading happen later, when a lookup snapshots the
// filters.

// IntValidator accepts text that is empty or parses as an integer
func IntValidator(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	_, err := strconv.Atoi(strings.TrimSpace(value))
	return err
}

// FloatValidator accepts text that is empty or parses as a number
func FloatValidator(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err
}

var _ textinput.ValidateFunc = IntValidator
var _ textinput.ValidateFunc = FloatValidator
