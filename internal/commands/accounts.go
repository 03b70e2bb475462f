package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/format"
	"github.com/pocketfin-dev/pocketfin/internal/model"
	"github.com/pocketfin-dev/pocketfin/internal/scratch"
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

func newAccountsCommand(a *app) *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Local money pots for display",
	}

	accountsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			a.applyPrefs(userKey)

			accounts := scratch.NewAccountStore(a.dataDir).List(userKey)
			if len(accounts) == 0 {
				fmt.Println("No accounts yet.")
				return nil
			}
			total := decimal.Zero
			for _, account := range accounts {
				total = total.Add(account.Balance)
				fmt.Printf("%-20s %-8s %-16s %12s  %s\n",
					account.Name, account.Type, account.Number,
					format.Currency(account.Balance), ui.Muted().Render(account.ID))
			}
			fmt.Printf("%s %s\n", ui.Muted().Render("Total:"), ui.Balance().Render(format.Currency(total)))
			return nil
		},
	})

	var accountType, number, balance string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			value := decimal.Zero
			if balance != "" {
				parsed, err := decimal.NewFromString(balance)
				if err != nil {
					return fmt.Errorf("parsing balance %q: %w", balance, err)
				}
				value = parsed
			}
			account := model.Account{Name: args[0], Type: accountType, Number: number, Balance: value}
			if err := scratch.ValidateAccount(account); err != nil {
				return err
			}
			stored, err := scratch.NewAccountStore(a.dataDir).Upsert(userKey, account)
			if err != nil {
				return err
			}
			fmt.Printf("Created account %s (%s)\n", stored.ID, stored.Name)
			return nil
		},
	}
	addCmd.Flags().StringVar(&accountType, "type", "cash", "cash, bank, ewallet, ...")
	addCmd.Flags().StringVar(&number, "number", "", "account number for display")
	addCmd.Flags().StringVar(&balance, "balance", "", "opening balance in đồng")
	accountsCmd.AddCommand(addCmd)

	accountsCmd.AddCommand(&cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete an account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			if err := scratch.NewAccountStore(a.dataDir).Remove(userKey, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted account %s\n", args[0])
			return nil
		},
	})

	return accountsCmd
}
