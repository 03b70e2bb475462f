package prefs

import (
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

// Template is a named bundle of theme variables selectable as a preference.
type Template struct {
	ID          string
	Name        string
	Description string
	Theme       Theme
	Colors      ui.Vars
}

// Templates is the fixed catalog, in display order. The first entry is the
// default.
var Templates = []Template{
	{
		ID:          "classic",
		Name:        "Classic Cream",
		Description: "Thanh lịch, dễ đọc",
		Theme:       ThemeLight,
		Colors: ui.Vars{
			Bg: "#f6f3ef", Bg2: "#fefcf9",
			Grad1: "#f3ede6", Grad2: "#f8f5f2", Grad3: "#fefbf7",
			Text: "#171717", Muted: "#6f6b67",
			Primary: "#1565c0", PrimaryDark: "#0c418c", Accent: "#ff8b5f",
			Border: "#e6e0d9", CardSoft: "#f6ede4",
			Balance1: "#12274b", Balance2: "#1f4a82", Balance3: "#f0a27b",
		},
	},
	{
		ID:          "mint",
		Name:        "Mint Matcha",
		Description: "Mát mắt, dịu nhẹ",
		Theme:       ThemeLight,
		Colors: ui.Vars{
			Bg: "#eef6f0", Bg2: "#fbfffc",
			Grad1: "#e6f3ec", Grad2: "#f2fbf6", Grad3: "#fcfffd",
			Text: "#1c2b25", Muted: "#6a7c72",
			Primary: "#2d7a5f", PrimaryDark: "#1f5f48", Accent: "#8fd3a8",
			Border: "#dbe8df", CardSoft: "#e6f3ec",
			Balance1: "#1c4b3a", Balance2: "#2d7a5f", Balance3: "#a8e0c0",
		},
	},
	{
		ID:          "peach",
		Name:        "Peach Soda",
		Description: "Ấm áp, đáng yêu",
		Theme:       ThemeLight,
		Colors: ui.Vars{
			Bg: "#fff2e6", Bg2: "#fffaf6",
			Grad1: "#ffe9d9", Grad2: "#fff3ea", Grad3: "#fffdf8",
			Text: "#2f1f1a", Muted: "#7d6a62",
			Primary: "#d86a4b", PrimaryDark: "#b65136", Accent: "#ffb596",
			Border: "#f0d9cf", CardSoft: "#ffe8dc",
			Balance1: "#7a3b2e", Balance2: "#c06449", Balance3: "#ffb28f",
		},
	},
	{
		ID:          "sky",
		Name:        "Sky Picnic",
		Description: "Tươi sáng, nhẹ nhàng",
		Theme:       ThemeLight,
		Colors: ui.Vars{
			Bg: "#eef6ff", Bg2: "#f9fcff",
			Grad1: "#e6f0fb", Grad2: "#f2f7ff", Grad3: "#ffffff",
			Text: "#1c2733", Muted: "#6e7c8a",
			Primary: "#2e6bd1", PrimaryDark: "#1e4d9f", Accent: "#9bc2ff",
			Border: "#dbe6f3", CardSoft: "#e6f0fb",
			Balance1: "#1f3b6d", Balance2: "#2e6bd1", Balance3: "#9bc2ff",
		},
	},
	{
		ID:          "midnight",
		Name:        "Midnight Blue",
		Description: "Đậm, dễ tập trung",
		Theme:       ThemeDark,
		Colors: ui.Vars{
			Bg: "#0f141f", Bg2: "#161d2a",
			Grad1: "#0c111b", Grad2: "#111827", Grad3: "#1a2232",
			Text: "#e8edf3", Muted: "#a2acba",
			Primary: "#4f8cff", PrimaryDark: "#2a62d6", Accent: "#f8b36d",
			Border: "#2a3242", CardSoft: "#1b2230",
			Balance1: "#0c1e3d", Balance2: "#1a3d78", Balance3: "#f0a46b",
		},
	},
}

// TemplateByID looks up a catalog entry.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
