package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// suggestCmd holds the flags for the 'suggest' subcommand.
type suggestCmd struct {
	risk         string
	budget       string
	currency     string
	seed         int64
	size         int
	json         bool
	skipInsights bool
	skipChart    bool
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest a crypto portfolio" }
func (*suggestCmd) Usage() string {
	return `cra suggest -r <tier> -b <budget> [-c <currency>] [-seed <n>] [-n <size>] [-json]

  Suggest a portfolio for a risk tier (low, medium, high) and a budget in USD.
  The budget must be at least 100 and a multiple of 50.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.risk, "r", advisor.Low.String(), "risk tier (low, medium, high)")
	f.StringVar(&c.budget, "b", advisor.MinBudget.String(), "budget in USD")
	f.StringVar(&c.currency, "c", "", "display currency. Defaults to the global -currency.")
	f.Int64Var(&c.seed, "seed", -1, "seed of the random draw, negative for a random seed")
	f.IntVar(&c.size, "n", 0, "number of coins to draw, 0 for a random 3 or 4")
	f.BoolVar(&c.json, "json", false, "print the report as JSON")
	f.BoolVar(&c.skipInsights, "no-insights", false, "do not print the insights")
	f.BoolVar(&c.skipChart, "no-chart", false, "do not print the distribution")
}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tier, err := advisor.ParseRiskTier(c.risk)
	if err != nil {
		return usage(err)
	}
	budget, err := advisor.ParseBudget(c.budget)
	if err != nil {
		return usage(err)
	}
	req := advisor.PortfolioRequest{Tier: tier, Budget: budget}
	if err := req.Validate(); err != nil {
		return usage(err)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return fail("loading catalog", err)
	}
	var r advisor.Rand
	if c.seed >= 0 {
		r = advisor.NewSeededRand(uint64(c.seed))
	}
	engine := advisor.NewEngine(catalog, r)

	session := advisor.NewSession()
	if c.size > 0 {
		err = session.SubmitN(engine, req, c.size)
	} else {
		err = session.Submit(engine, req)
	}
	if errors.Is(err, advisor.ErrInsufficientPoolSize) {
		return usage(err)
	}
	if err != nil {
		return fail("suggesting portfolio", err)
	}
	log.Debug().
		Stringer("tier", tier).
		Stringer("budget", budget).
		Strs("coins", session.Allocation.Symbols()).
		Msg("suggested portfolio")

	report, err := advisor.NewReport(catalog, catalog.Converter(), session, currencyOr(c.currency))
	if err != nil {
		return fail("building report", err)
	}

	if c.json {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fail("encoding report", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderReport(report, renderer.ReportRenderOptions{
		SkipInsights: c.skipInsights,
		SkipChart:    c.skipChart,
	}))
	return subcommands.ExitSuccess
}
