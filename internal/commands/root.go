// Package commands wires the CLI surface: one file per screen, all sharing
// the app context built by the root command.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/api"
	"github.com/pocketfin-dev/pocketfin/internal/buildinfo"
	"github.com/pocketfin-dev/pocketfin/internal/config"
	"github.com/pocketfin-dev/pocketfin/internal/prefs"
)

// app is the per-invocation context: resolved profile, config, logger, and
// the API client. Populated once in the root PersistentPreRunE.
type app struct {
	profileDir string
	dataDir    string
	cfg        *config.Config
	log        zerolog.Logger
	tokens     *api.TokenStore
	client     *api.Client
	prefs      *prefs.Store
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}
	var profileDir string

	rootCmd := &cobra.Command{
		Use:     "pocketfin",
		Short:   "Personal finance tracker client",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(profileDir)
		},
	}
	rootCmd.PersistentFlags().StringVar(&profileDir, "profile", ".", "profile directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newLoginCommand(a))
	rootCmd.AddCommand(newLogoutCommand(a))
	rootCmd.AddCommand(newWhoamiCommand(a))
	rootCmd.AddCommand(newRegisterCommand(a))
	rootCmd.AddCommand(newResetPasswordCommand(a))
	rootCmd.AddCommand(newDashboardCommand(a))
	rootCmd.AddCommand(newTransactionsCommand(a))
	rootCmd.AddCommand(newCategoriesCommand(a))
	rootCmd.AddCommand(newBudgetsCommand(a))
	rootCmd.AddCommand(newTagsCommand(a))
	rootCmd.AddCommand(newAccountsCommand(a))
	rootCmd.AddCommand(newChatCommand(a))
	rootCmd.AddCommand(newSettingsCommand(a))
	rootCmd.AddCommand(newPrefsCommand(a))
	rootCmd.AddCommand(newReceiptCommand(a))

	return rootCmd
}

// setup resolves the profile and builds the shared context. A missing config
// file falls back to defaults so commands work in a bare directory too.
func (a *app) setup(profileDir string) error {
	absDir, err := filepath.Abs(profileDir)
	if err != nil {
		return fmt.Errorf("resolving profile path: %w", err)
	}
	a.profileDir = absDir

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		cfg = config.Default("")
	}
	a.cfg = cfg
	a.dataDir = cfg.DataDir(absDir)

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	a.tokens = api.NewTokenStore(a.dataDir)
	a.client = api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, a.tokens, a.log)
	a.prefs = prefs.NewStore(a.dataDir, a.log)
	return nil
}

// userKey resolves the identity scratch data is keyed by: the authenticated
// email, or "" for guest. An expired token tears the session down and falls
// back to guest rather than failing the command.
func (a *app) userKey(ctx context.Context) string {
	if a.tokens.Token() == "" {
		return ""
	}
	user, err := a.client.Me(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			a.log.Warn().Msg("session expired, continuing as guest")
			if clearErr := a.tokens.Clear(); clearErr != nil {
				a.log.Warn().Err(clearErr).Msg("clearing stale token")
			}
		} else {
			a.log.Warn().Err(err).Msg("resolving identity")
		}
		return ""
	}
	return user.Email
}

// requireAuth is userKey for commands that cannot run as guest.
func (a *app) requireAuth(ctx context.Context) (string, error) {
	if a.tokens.Token() == "" {
		return "", errors.New("not logged in, run \"pocketfin login\" first")
	}
	user, err := a.client.Me(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			if clearErr := a.tokens.Clear(); clearErr != nil {
				a.log.Warn().Err(clearErr).Msg("clearing stale token")
			}
			return "", errors.New("session expired, run \"pocketfin login\" again")
		}
		return "", err
	}
	return user.Email, nil
}

// applyPrefs pushes the identity's saved preferences into the presentation
// context before a command renders anything.
func (a *app) applyPrefs(userKey string) {
	prefs.Apply(a.prefs.Get(userKey))
}
