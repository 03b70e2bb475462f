package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/scratch"
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

func newSettingsCommand(a *app) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Notification and privacy toggles",
	}
	settingsCmd.AddCommand(newSettingsShowCommand(a))
	settingsCmd.AddCommand(newSettingsSetCommand(a))
	settingsCmd.AddCommand(newSettingsExportCommand(a))
	settingsCmd.AddCommand(newSettingsImportCommand(a))
	return settingsCmd
}

func newSettingsShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current toggles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			a.applyPrefs(userKey)

			settings := scratch.NewSettingsStore(a.dataDir).Get(userKey)
			onOff := func(v bool) string {
				if v {
					return ui.Positive().Render("on")
				}
				return ui.Muted().Render("off")
			}
			fmt.Printf("push-notifications   %s\n", onOff(settings.PushNotifications))
			fmt.Printf("email-notifications  %s\n", onOff(settings.EmailNotifications))
			fmt.Printf("threshold-alerts     %s\n", onOff(settings.ThresholdAlerts))
			fmt.Printf("cloud-sync           %s\n", onOff(settings.CloudSync))
			fmt.Printf("ai-opt-in            %s\n", onOff(settings.AIOptIn))
			fmt.Printf("keep-prompt-logs     %s\n", onOff(settings.KeepPromptLogs))
			fmt.Printf("estimated AI cost    $%d/month\n", settings.EstimatedMonthlyCost)
			return nil
		},
	}
}

func newSettingsSetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Flip toggles; unspecified flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			store := scratch.NewSettingsStore(a.dataDir)
			settings := store.Get(userKey)

			bools := map[string]*bool{
				"push-notifications":  &settings.PushNotifications,
				"email-notifications": &settings.EmailNotifications,
				"threshold-alerts":    &settings.ThresholdAlerts,
				"cloud-sync":          &settings.CloudSync,
				"ai-opt-in":           &settings.AIOptIn,
				"keep-prompt-logs":    &settings.KeepPromptLogs,
			}
			for name, target := range bools {
				if cmd.Flags().Changed(name) {
					value, err := cmd.Flags().GetBool(name)
					if err != nil {
						return err
					}
					*target = value
				}
			}
			if cmd.Flags().Changed("estimated-cost") {
				value, err := cmd.Flags().GetInt("estimated-cost")
				if err != nil {
					return err
				}
				settings.EstimatedMonthlyCost = value
			}

			if err := store.Put(userKey, settings); err != nil {
				return err
			}
			fmt.Println("Settings saved.")
			return nil
		},
	}

	cmd.Flags().Bool("push-notifications", true, "push notifications")
	cmd.Flags().Bool("email-notifications", true, "email notifications")
	cmd.Flags().Bool("threshold-alerts", true, "budget threshold alerts")
	cmd.Flags().Bool("cloud-sync", false, "sync scratch data to the cloud")
	cmd.Flags().Bool("ai-opt-in", true, "allow AI features")
	cmd.Flags().Bool("keep-prompt-logs", true, "keep AI prompt logs")
	cmd.Flags().Int("estimated-cost", 3, "estimated monthly AI cost in dollars")

	return cmd
}

func newSettingsExportCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export settings, budgets, tags, and accounts to JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			bundle := scratch.Export(a.dataDir, userKey, time.Now())

			data, err := json.MarshalIndent(bundle, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling export: %w", err)
			}
			if out == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Printf("Exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file, default stdout")

	return cmd
}

func newSettingsImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace local data with an exported bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading bundle: %w", err)
			}
			var bundle scratch.Bundle
			if err := json.Unmarshal(data, &bundle); err != nil {
				return fmt.Errorf("parsing bundle: %w", err)
			}

			userKey := a.userKey(cmd.Context())
			if err := scratch.Import(a.dataDir, userKey, bundle); err != nil {
				return err
			}
			fmt.Println("Import complete. Last write wins; previous local data was replaced.")
			return nil
		},
	}
}
