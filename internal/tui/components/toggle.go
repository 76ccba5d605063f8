package components

import (
	"github.com/rgehrsitz/wonpay/internal/tui/tuistyles"
)

// Toggle is an on/off input such as "include severance".
type Toggle struct {
	Label     string
	On        bool
	IsFocused bool
}

// NewToggle creates a toggle.
func NewToggle(label string, on bool) *Toggle {
	return &Toggle{Label: label, On: on}
}

// Flip switches the toggle and returns the new state.
func (t *Toggle) Flip() bool {
	t.On = !t.On
	return t.On
}

// Render returns "[x] label" or "[ ] label".
func (t *Toggle) Render() string {
	box := "[ ]"
	if t.On {
		box = "[x]"
	}
	style := tuistyles.ParameterLabelStyle
	if t.IsFocused {
		style = style.Foreground(tuistyles.ColorPrimary)
		box = tuistyles.StatusKeyStyle.Render(box)
	}
	return box + " " + style.Render(t.Label)
}
