// Package ui is the process-wide presentation context: the named theme
// variables and compact flag every screen renders with. The preference layer
// pushes state in; commands read styles out. Setting the same state twice is
// harmless.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Vars are the named style variables a template provides, mirroring the
// web client's document-level custom properties.
type Vars struct {
	Bg          string
	Bg2         string
	Grad1       string
	Grad2       string
	Grad3       string
	Text        string
	Muted       string
	Primary     string
	PrimaryDark string
	Accent      string
	Border      string
	CardSoft    string
	Balance1    string
	Balance2    string
	Balance3    string
}

// State is the full presentation state.
type State struct {
	Vars    Vars
	Compact bool
	Dark    bool
}

var current State

// SetActive replaces the active presentation state.
func SetActive(s State) { current = s }

// Active returns the active presentation state.
func Active() State { return current }

// Title styles section headings.
func Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(current.Vars.Primary))
}

// Muted styles secondary text.
func Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(current.Vars.Muted))
}

// Accent styles highlighted values.
func Accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(current.Vars.Accent))
}

// Positive styles income and on-track values.
func Positive() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(current.Vars.Primary))
}

// Negative styles expenses and warnings.
func Negative() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(current.Vars.Accent)).Bold(true)
}

// Balance styles the headline balance figure with the template's balance
// gradient midpoint.
func Balance() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(current.Vars.Balance2))
}

// Card styles a panel. Compact mode tightens padding.
func Card() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(current.Vars.Border))
	if current.Compact {
		return style.Padding(0, 1)
	}
	return style.Padding(1, 2)
}

// Swatch renders a colored dot for legends.
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}
