package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// MinBudget is the smallest accepted budget, in USD.
	MinBudget = decimal.NewFromInt(100)
	// BudgetStep is the granularity of accepted budgets, in USD.
	BudgetStep = decimal.NewFromInt(50)
)

// PortfolioRequest is the user input of a suggestion.
type PortfolioRequest struct {
	Tier   RiskTier
	Budget decimal.Decimal // in USD
}

// DefaultRequest returns the request a new or reset session starts with.
func DefaultRequest() PortfolioRequest {
	return PortfolioRequest{Tier: Low, Budget: MinBudget}
}

// Validate checks the request at the input boundary: the budget must be at
// least MinBudget and a multiple of BudgetStep.
func (r PortfolioRequest) Validate() error {
	if r.Tier < Low || r.Tier > High {
		return fmt.Errorf("%w: %d", ErrUnknownRiskTier, int(r.Tier))
	}
	if r.Budget.LessThan(MinBudget) {
		return fmt.Errorf("%w: %s is below the minimum of %s", ErrInvalidBudget, r.Budget, MinBudget)
	}
	if !r.Budget.Mod(BudgetStep).IsZero() {
		return fmt.Errorf("%w: %s is not a multiple of %s", ErrInvalidBudget, r.Budget, BudgetStep)
	}
	return nil
}

// ParseBudget parses a decimal budget such as "250" or "1500.00".
func ParseBudget(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidBudget, s)
	}
	return d, nil
}
