package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/api"
	"github.com/pocketfin-dev/pocketfin/internal/format"
	"github.com/pocketfin-dev/pocketfin/internal/model"
	"github.com/pocketfin-dev/pocketfin/internal/ocr"
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

func newReceiptCommand(a *app) *cobra.Command {
	var category string
	var create bool

	cmd := &cobra.Command{
		Use:   "receipt <image>",
		Short: "Extract a transaction draft from a receipt image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			a.applyPrefs(userKey)

			result, err := ocr.Mock{}.Extract(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderDraft(result)

			if !create {
				fmt.Println(ui.Muted().Render("Pass --create to turn the draft into a transaction."))
				return nil
			}
			if _, err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}

			params := api.TransactionParams{
				Description: result.Fields.Merchant + " - " + result.Fields.Note,
				Amount:      result.Fields.Total,
				Type:        model.TypeExpense,
				Date:        result.Fields.Date,
			}
			if category != "" {
				id, err := strconv.Atoi(category)
				if err != nil {
					return fmt.Errorf("parsing category id %q: %w", category, err)
				}
				params.CategoryID = &id
			}
			tx, err := a.client.CreateTransaction(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("Created transaction %d from the receipt.\n", tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category id for the created transaction")
	cmd.Flags().BoolVar(&create, "create", false, "create the transaction instead of just showing the draft")

	return cmd
}

func renderDraft(result ocr.Result) {
	confidence := func(v float64) string {
		return ui.Muted().Render(fmt.Sprintf("(confidence %d%%)", int(v*100+0.5)))
	}
	fmt.Println(ui.Title().Render("Receipt draft"))
	fmt.Printf("  date      %s %s\n", result.Fields.Date, confidence(result.Confidence.Date))
	fmt.Printf("  merchant  %s %s\n", result.Fields.Merchant, confidence(result.Confidence.Merchant))
	fmt.Printf("  total     %s %s\n", format.Currency(result.Fields.Total), confidence(result.Confidence.Total))
	fmt.Printf("  vat       %s %s\n", format.Currency(result.Fields.VAT), confidence(result.Confidence.VAT))
	fmt.Printf("  note      %s\n", result.Fields.Note)
}
