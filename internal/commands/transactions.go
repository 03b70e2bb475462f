package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/api"
	"github.com/pocketfin-dev/pocketfin/internal/finance"
	"github.com/pocketfin-dev/pocketfin/internal/format"
	"github.com/pocketfin-dev/pocketfin/internal/model"
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

func newTransactionsCommand(a *app) *cobra.Command {
	txCmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Transaction operations",
	}
	txCmd.AddCommand(newTransactionsListCommand(a))
	txCmd.AddCommand(newTransactionsAddCommand(a))
	txCmd.AddCommand(newTransactionsEditCommand(a))
	txCmd.AddCommand(newTransactionsRemoveCommand(a))
	return txCmd
}

func newTransactionsListCommand(a *app) *cobra.Command {
	var filters api.TransactionFilters
	var txType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions in the window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey, err := a.requireAuth(cmd.Context())
			if err != nil {
				return err
			}
			a.applyPrefs(userKey)

			defaults := finance.DefaultFilters(time.Now())
			if filters.StartDate == "" {
				filters.StartDate = defaults.StartDate
			}
			if filters.EndDate == "" {
				filters.EndDate = defaults.EndDate
			}
			filters.Type = model.TransactionType(txType)

			data, err := finance.NewLoader(a.client).Load(cmd.Context(), filters)
			if err != nil {
				return err
			}
			if len(data.Transactions) == 0 {
				fmt.Println("No transactions in this window.")
				return nil
			}
			for _, tx := range data.Transactions {
				amount := format.Currency(tx.Amount)
				if tx.Type == model.TypeExpense {
					amount = ui.Negative().Render("-" + amount)
				} else {
					amount = ui.Positive().Render("+" + amount)
				}
				fmt.Printf("%5d  %s  %-28s %-14s %s\n",
					tx.ID, tx.Date, tx.Description,
					ui.Muted().Render(data.CategoryLabel(tx.CategoryID)), amount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filters.StartDate, "start", "", "window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filters.EndDate, "end", "", "window end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filters.CategoryID, "category", "", "filter by category id")
	cmd.Flags().StringVar(&txType, "type", "", "filter by type (income|expense)")

	return cmd
}

// transactionFlags binds the shared create/update fields.
func transactionFlags(cmd *cobra.Command, description, amount, txType, category, date *string) {
	cmd.Flags().StringVar(description, "description", "", "what the money was for")
	cmd.Flags().StringVar(amount, "amount", "", "amount in đồng")
	cmd.Flags().StringVar(txType, "type", string(model.TypeExpense), "income or expense")
	cmd.Flags().StringVar(category, "category", "", "category id, empty for none")
	cmd.Flags().StringVar(date, "date", "", "transaction date (YYYY-MM-DD, default today)")
}

func buildTransactionParams(description, amount, txType, category, date string) (api.TransactionParams, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return api.TransactionParams{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	params := api.TransactionParams{
		Description: description,
		Amount:      value,
		Type:        model.TransactionType(txType),
		Date:        date,
	}
	if params.Date == "" {
		params.Date = format.InputDate(time.Now())
	}
	if category != "" {
		id, err := strconv.Atoi(category)
		if err != nil {
			return api.TransactionParams{}, fmt.Errorf("parsing category id %q: %w", category, err)
		}
		params.CategoryID = &id
	}
	return params, nil
}

func newTransactionsAddCommand(a *app) *cobra.Command {
	var description, amount, txType, category, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			params, err := buildTransactionParams(description, amount, txType, category, date)
			if err != nil {
				return err
			}
			tx, err := a.client.CreateTransaction(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("Created transaction %d (%s, %s)\n", tx.ID, tx.Description, format.Currency(tx.Amount))
			return nil
		},
	}

	transactionFlags(cmd, &description, &amount, &txType, &category, &date)
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTransactionsEditCommand(a *app) *cobra.Command {
	var description, amount, txType, category, date string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a transaction's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing transaction id %q: %w", args[0], err)
			}
			if _, err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			params, err := buildTransactionParams(description, amount, txType, category, date)
			if err != nil {
				return err
			}
			tx, err := a.client.UpdateTransaction(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			fmt.Printf("Updated transaction %d\n", tx.ID)
			return nil
		},
	}

	transactionFlags(cmd, &description, &amount, &txType, &category, &date)
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTransactionsRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing transaction id %q: %w", args[0], err)
			}
			if _, err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			if err := a.client.DeleteTransaction(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Deleted transaction %d\n", id)
			return nil
		},
	}
}
