package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/palette"
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

func newCategoriesCommand(a *app) *cobra.Command {
	catCmd := &cobra.Command{
		Use:   "categories",
		Short: "Category operations",
	}
	catCmd.AddCommand(newCategoriesListCommand(a))
	catCmd.AddCommand(newCategoriesAddCommand(a))
	catCmd.AddCommand(newCategoriesRenameCommand(a))
	catCmd.AddCommand(newCategoriesRemoveCommand(a))
	return catCmd
}

func newCategoriesListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey, err := a.requireAuth(cmd.Context())
			if err != nil {
				return err
			}
			a.applyPrefs(userKey)

			categories, err := a.client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				fmt.Println("No categories yet.")
				return nil
			}
			for _, c := range categories {
				fmt.Printf("%5d  %s %s\n", c.ID, ui.Swatch(palette.ForLabel(c.Name)), c.Name)
			}
			return nil
		},
	}
}

func newCategoriesAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			category, err := a.client.CreateCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created category %d (%s)\n", category.ID, category.Name)
			return nil
		},
	}
}

func newCategoriesRenameCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing category id %q: %w", args[0], err)
			}
			if _, err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			category, err := a.client.UpdateCategory(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Renamed category %d to %s\n", category.ID, category.Name)
			return nil
		},
	}
}

func newCategoriesRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a category; transactions keep their stale reference",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing category id %q: %w", args[0], err)
			}
			if _, err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			if err := a.client.DeleteCategory(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted category %d\n", id)
			return nil
		},
	}
}
