package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/kvstore"
	"github.com/pocketfin-dev/pocketfin/internal/prefs"
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

func newPrefsCommand(a *app) *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "UI preferences: theme, template, layout, density",
	}
	prefsCmd.AddCommand(newPrefsShowCommand(a))
	prefsCmd.AddCommand(newPrefsSetCommand(a))
	prefsCmd.AddCommand(newPrefsTemplatesCommand(a))
	return prefsCmd
}

func newPrefsShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			p := a.prefs.Get(userKey)
			a.applyPrefs(userKey)

			fmt.Printf("theme     %s\n", p.Theme)
			fmt.Printf("template  %s\n", p.TemplateID)
			fmt.Printf("layout    %s\n", p.ReportLayout)
			fmt.Printf("compact   %v\n", p.CompactMode)
			return nil
		},
	}
}

func newPrefsSetCommand(a *app) *cobra.Command {
	var theme, template, layout string
	var compact bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save preferences; invalid values fall back to defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			p := a.prefs.Get(userKey)

			if cmd.Flags().Changed("theme") {
				p.Theme = prefs.Theme(theme)
			}
			if cmd.Flags().Changed("template") {
				p.TemplateID = template
			}
			if cmd.Flags().Changed("layout") {
				p.ReportLayout = prefs.Layout(layout)
			}
			if cmd.Flags().Changed("compact") {
				p.CompactMode = compact
			}

			// The presentation context follows the store's broadcast, the
			// same path every long-lived view uses.
			me := userKey
			if me == "" {
				me = kvstore.GuestKey
			}
			unsubscribe := a.prefs.Subscribe(func(change prefs.Change) {
				if change.UserKey == me {
					prefs.Apply(change.Prefs)
				}
			})
			defer unsubscribe()

			saved := a.prefs.Save(userKey, p)
			fmt.Printf("Saved: theme=%s template=%s layout=%s compact=%v\n",
				saved.Theme, saved.TemplateID, saved.ReportLayout, saved.CompactMode)
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "light, dark, or system")
	cmd.Flags().StringVar(&template, "template", "", "template id, see \"prefs templates\"")
	cmd.Flags().StringVar(&layout, "layout", "", "cards, charts, or table")
	cmd.Flags().BoolVar(&compact, "compact", false, "tighter spacing")

	return cmd
}

func newPrefsTemplatesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the selectable theme templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			a.applyPrefs(userKey)
			current := a.prefs.Get(userKey).TemplateID

			for _, t := range prefs.Templates {
				marker := "  "
				if t.ID == current {
					marker = ui.Accent().Render("* ")
				}
				fmt.Printf("%s%s %-10s %-14s %s\n",
					marker, ui.Swatch(t.Colors.Primary), t.ID, t.Name, ui.Muted().Render(t.Description))
			}
			return nil
		},
	}
}
