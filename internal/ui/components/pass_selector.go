package components

import (
	"github.com/charmbracelet/lipgloss"
)

// passDirectionOption names one step of the four-deal pass rotation, paired
// with the round.Round/decision.CardsToPassRequest Direction value it maps
// to: 1 left, NumPlayers-1 right, 2 across, 0 hold.
type passDirectionOption struct {
	Direction int
	Label     string
}

var passDirections = []passDirectionOption{
	{Direction: 1, Label: "Pass Left"},
	{Direction: 3, Label: "Pass Right"},
	{Direction: 2, Label: "Pass Across"},
	{Direction: 0, Label: "Hold"},
}

// PassDirectionSelector is a visual selector cycling through the four-deal
// Hearts pass rotation.
type PassDirectionSelector struct {
	Selected int
}

// NewPassDirectionSelector creates a selector starting on "Pass Left", the
// first deal of the rotation.
func NewPassDirectionSelector() *PassDirectionSelector {
	return &PassDirectionSelector{Selected: 0}
}

// MoveLeft moves selection to the previous option in the rotation.
func (s *PassDirectionSelector) MoveLeft() {
	s.Selected--
	if s.Selected < 0 {
		s.Selected = len(passDirections) - 1
	}
}

// MoveRight moves selection to the next option in the rotation.
func (s *PassDirectionSelector) MoveRight() {
	s.Selected = (s.Selected + 1) % len(passDirections)
}

// Direction returns the round.Round-compatible Direction value currently
// selected.
func (s *PassDirectionSelector) Direction() int {
	return passDirections[s.Selected].Direction
}

// Render returns the visual representation of the pass direction selector.
func (s *PassDirectionSelector) Render() string {
	var parts []string

	for i, d := range passDirections {
		var style lipgloss.Style
		if i == s.Selected {
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#3498DB")).
				Bold(true).
				Padding(0, 1)
		} else {
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFF8E7")).
				Padding(0, 1)
		}
		parts = append(parts, style.Render(d.Label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
