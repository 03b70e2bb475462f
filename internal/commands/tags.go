package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/model"
	"github.com/pocketfin-dev/pocketfin/internal/palette"
	"github.com/pocketfin-dev/pocketfin/internal/scratch"
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

func newTagsCommand(a *app) *cobra.Command {
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "Local tag labels",
	}

	tagsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			a.applyPrefs(userKey)

			tags := scratch.NewTagStore(a.dataDir).List(userKey)
			if len(tags) == 0 {
				fmt.Println("No tags yet.")
				return nil
			}
			for _, tag := range tags {
				fmt.Printf("%s %s  %s\n", ui.Swatch(tag.Color), tag.Name, ui.Muted().Render(tag.ID))
			}
			return nil
		},
	})

	var color string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			tag := model.Tag{Name: args[0], Color: color}
			if tag.Color == "" {
				tag.Color = palette.ForLabel(tag.Name)
			}
			if err := scratch.ValidateTag(tag); err != nil {
				return err
			}
			stored, err := scratch.NewTagStore(a.dataDir).Upsert(userKey, tag)
			if err != nil {
				return err
			}
			fmt.Printf("Created tag %s (%s)\n", stored.ID, stored.Name)
			return nil
		},
	}
	addCmd.Flags().StringVar(&color, "color", "", "hex color, default assigned from the name")
	tagsCmd.AddCommand(addCmd)

	tagsCmd.AddCommand(&cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a tag",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			if err := scratch.NewTagStore(a.dataDir).Remove(userKey, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted tag %s\n", args[0])
			return nil
		},
	})

	return tagsCmd
}
