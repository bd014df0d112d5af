package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type insightCmd struct {
	symbol string
	amount string
	budget string
}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "explain the place of a coin in a portfolio" }
func (*insightCmd) Usage() string {
	return `cra insight -s <symbol> -a <amount> -b <budget>

  Print the commentary for a coin holding amount out of budget.
`
}

func (c *insightCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "coin symbol")
	f.StringVar(&c.amount, "a", "0", "amount allocated to the coin")
	f.StringVar(&c.budget, "b", advisor.MinBudget.String(), "budget of the portfolio")
}

func (c *insightCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		return usage(errors.New("a coin symbol is required (-s)"))
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil || amount.IsNegative() {
		return usage(fmt.Errorf("invalid amount %q", c.amount))
	}
	budget, err := decimal.NewFromString(c.budget)
	if err != nil || budget.IsNegative() {
		return usage(fmt.Errorf("invalid budget %q", c.budget))
	}

	catalog, err := loadCatalog()
	if err != nil {
		return fail("loading catalog", err)
	}
	fmt.Println(catalog.Insight(c.symbol, amount, budget))
	return subcommands.ExitSuccess
}
