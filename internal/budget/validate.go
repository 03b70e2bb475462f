package budget

import (
	"errors"
	"strings"

	"github.com/pocketfin-dev/pocketfin/internal/model"
)

// Form-level constraints, checked before a plan is ever persisted. The store
// below this layer does no validation of its own.
var (
	ErrNameRequired      = errors.New("budget name is required")
	ErrAmountNotPositive = errors.New("budget amount must be greater than zero")
	ErrThresholdRange    = errors.New("alert threshold must be between 1 and 100")
)

// Validate checks a plan against the form constraints.
func Validate(plan model.BudgetPlan) error {
	if strings.TrimSpace(plan.Name) == "" {
		return ErrNameRequired
	}
	if !plan.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if plan.Threshold < 1 || plan.Threshold > 100 {
		return ErrThresholdRange
	}
	return nil
}
