package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocketfin-dev/pocketfin/internal/api"
	"github.com/pocketfin-dev/pocketfin/internal/budget"
	"github.com/pocketfin-dev/pocketfin/internal/format"
	"github.com/pocketfin-dev/pocketfin/internal/model"
	"github.com/pocketfin-dev/pocketfin/internal/scratch"
	"github.com/pocketfin-dev/pocketfin/internal/ui"
)

func newBudgetsCommand(a *app) *cobra.Command {
	budgetsCmd := &cobra.Command{
		Use:   "budgets",
		Short: "Local budget plans with spend tracking",
	}
	budgetsCmd.AddCommand(newBudgetsListCommand(a))
	budgetsCmd.AddCommand(newBudgetsAddCommand(a))
	budgetsCmd.AddCommand(newBudgetsEditCommand(a))
	budgetsCmd.AddCommand(newBudgetsRemoveCommand(a))
	budgetsCmd.AddCommand(newBudgetsStatusCommand(a, "pause", model.BudgetPaused))
	budgetsCmd.AddCommand(newBudgetsStatusCommand(a, "resume", model.BudgetActive))
	budgetsCmd.AddCommand(newBudgetsStatusCommand(a, "complete", model.BudgetCompleted))
	return budgetsCmd
}

func newBudgetsListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budget plans with spend and forecast",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			a.applyPrefs(userKey)

			plans := scratch.NewBudgetStore(a.dataDir).List(userKey)
			if len(plans) == 0 {
				fmt.Println("No budget plans yet.")
				return nil
			}

			// Stats come from the server's transaction cache; a guest or an
			// unreachable backend still sees the plans, just without spend.
			var transactions []model.Transaction
			if userKey != "" {
				transactions, _ = a.client.ListTransactions(cmd.Context(), api.TransactionFilters{})
			}

			today := time.Now()
			for _, plan := range plans {
				renderBudget(plan, budget.ComputeStats(plan, transactions, today))
			}
			return nil
		},
	}
}

func renderBudget(plan model.BudgetPlan, stats budget.Stats) {
	status := ui.Muted().Render(string(plan.Status))
	if plan.Status == model.BudgetActive {
		status = ui.Positive().Render(string(plan.Status))
	}
	fmt.Printf("%s  %s  [%s]\n", ui.Title().Render(plan.Name), ui.Muted().Render(plan.ID), status)
	fmt.Printf("  %s / %s (%s), day %d of %d\n",
		format.Currency(stats.Spent), format.Currency(plan.Amount),
		format.Percent(stats.Progress), stats.ElapsedDays, stats.PeriodDays)

	forecast := fmt.Sprintf("  forecast %s", format.Currency(stats.Forecast))
	if stats.WillOverrun {
		fmt.Println(ui.Negative().Render(forecast + " (over budget)"))
	} else {
		fmt.Println(ui.Muted().Render(forecast))
	}
}

// budgetFlags binds the shared plan fields for add and edit.
func budgetFlags(cmd *cobra.Command, plan *model.BudgetPlan, amount *string, categories *[]string) {
	cmd.Flags().StringVar(&plan.Name, "name", "", "plan name")
	cmd.Flags().StringVar(amount, "amount", "", "budget amount in đồng")
	cmd.Flags().StringVar((*string)(&plan.Cycle), "cycle", string(model.CycleMonthly), "weekly, monthly, yearly, or one-time")
	cmd.Flags().StringVar(&plan.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&plan.EndDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&plan.Threshold, "threshold", 80, "alert threshold percentage (1-100)")
	cmd.Flags().StringSliceVar(categories, "categories", nil, "category ids the plan covers, empty for all")
}

func finishBudgetPlan(plan model.BudgetPlan, amount string, categories []string) (model.BudgetPlan, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return model.BudgetPlan{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	plan.Amount = value
	plan.CategoryIDs = categories
	if plan.Status == "" {
		plan.Status = model.BudgetActive
	}
	if err := budget.Validate(plan); err != nil {
		return model.BudgetPlan{}, err
	}
	return plan, nil
}

func newBudgetsAddCommand(a *app) *cobra.Command {
	var plan model.BudgetPlan
	var amount string
	var categories []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a budget plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			finished, err := finishBudgetPlan(plan, amount, categories)
			if err != nil {
				return err
			}
			stored, err := scratch.NewBudgetStore(a.dataDir).Upsert(userKey, finished)
			if err != nil {
				return err
			}
			fmt.Printf("Created budget plan %s (%s)\n", stored.ID, stored.Name)
			return nil
		},
	}

	budgetFlags(cmd, &plan, &amount, &categories)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newBudgetsEditCommand(a *app) *cobra.Command {
	var plan model.BudgetPlan
	var amount string
	var categories []string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a budget plan's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			store := scratch.NewBudgetStore(a.dataDir)
			existing, ok := findBudget(store.List(userKey), args[0])
			if !ok {
				return fmt.Errorf("no budget plan with id %s", args[0])
			}

			plan.ID = existing.ID
			plan.Status = existing.Status
			finished, err := finishBudgetPlan(plan, amount, categories)
			if err != nil {
				return err
			}
			if _, err := store.Upsert(userKey, finished); err != nil {
				return err
			}
			fmt.Printf("Updated budget plan %s\n", finished.ID)
			return nil
		},
	}

	budgetFlags(cmd, &plan, &amount, &categories)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newBudgetsRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a budget plan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			if err := scratch.NewBudgetStore(a.dataDir).Remove(userKey, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted budget plan %s\n", args[0])
			return nil
		},
	}
}

// Pause, resume, and complete are the same command with a different target
// status.
func newBudgetsStatusCommand(a *app, verb string, status model.BudgetStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: fmt.Sprintf("Mark a budget plan %s", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userKey := a.userKey(cmd.Context())
			store := scratch.NewBudgetStore(a.dataDir)
			plan, ok := findBudget(store.List(userKey), args[0])
			if !ok {
				return fmt.Errorf("no budget plan with id %s", args[0])
			}
			plan.Status = status
			if _, err := store.Upsert(userKey, plan); err != nil {
				return err
			}
			fmt.Printf("Budget plan %s is now %s\n", plan.ID, status)
			return nil
		},
	}
}

func findBudget(plans []model.BudgetPlan, id string) (model.BudgetPlan, bool) {
	for _, plan := range plans {
		if plan.ID == id {
			return plan, true
		}
	}
	return model.BudgetPlan{}, false
}
