// Package prefs maintains one normalized UI preference record per user
// identity: persistence, cross-view broadcast, and application to the
// presentation context.
package prefs

// Theme is the user's color scheme choice. "system" defers to the
// environment.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Layout selects how the reports screen arranges itself.
type Layout string

const (
	LayoutCards  Layout = "cards"
	LayoutCharts Layout = "charts"
	LayoutTable  Layout = "table"
)

// Preferences is the per-user UI preference record. JSON field names match
// the original client's persisted shape.
type Preferences struct {
	Theme        Theme  `json:"theme"`
	CompactMode  bool   `json:"compactMode"`
	ReportLayout Layout `json:"reportLayout"`
	TemplateID   string `json:"templateId"`
}

// Default returns the preference record every identity starts from.
func Default() Preferences {
	return Preferences{
		Theme:        ThemeLight,
		CompactMode:  false,
		ReportLayout: LayoutCards,
		TemplateID:   Templates[0].ID,
	}
}

// Normalize coerces every invalid field to its default. Idempotent: the
// store never holds a record Normalize would change.
func Normalize(p Preferences) Preferences {
	out := p
	switch out.Theme {
	case ThemeDark, ThemeSystem:
	default:
		out.Theme = ThemeLight
	}
	switch out.ReportLayout {
	case LayoutCharts, LayoutTable:
	default:
		out.ReportLayout = LayoutCards
	}
	if _, ok := TemplateByID(out.TemplateID); !ok {
		out.TemplateID = Templates[0].ID
	}
	return out
}
