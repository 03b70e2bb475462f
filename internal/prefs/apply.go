package prefs

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

// DarkProbe reports whether the environment prefers a dark color scheme.
// The default probe asks the terminal.
type DarkProbe func() bool

// Apply resolves the effective theme and pushes the template's variables and
// compact flag into the presentation context. Side-effecting, no return
// value, safe to call redundantly.
func Apply(p Preferences) {
	ApplyWith(p, lipgloss.HasDarkBackground)
}

// ApplyWith is Apply with an explicit environment probe, for tests and
// callers that already know the scheme.
func ApplyWith(p Preferences, probe DarkProbe) {
	normalized := Normalize(p)
	template, ok := TemplateByID(normalized.TemplateID)
	if !ok {
		template = Templates[0]
	}
	ui.SetActive(ui.State{
		Vars:    template.Colors,
		Compact: normalized.CompactMode,
		Dark:    resolveTheme(normalized.Theme, probe) == ThemeDark,
	})
}

// resolveTheme collapses "system" to light or dark via the probe.
func resolveTheme(theme Theme, probe DarkProbe) Theme {
	if theme == ThemeSystem {
		if probe != nil && probe() {
			return ThemeDark
		}
		return ThemeLight
	}
	if theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}
