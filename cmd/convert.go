package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	currency string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a USD amount to the display currency" }
func (*convertCmd) Usage() string {
	return `cra convert [-c <currency>] <amount>

  Print a USD amount converted and formatted in another currency.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "target currency. Defaults to the global -currency.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage(fmt.Errorf("convert expects one amount, got %d arguments", f.NArg()))
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		return usage(fmt.Errorf("invalid amount %q", f.Arg(0)))
	}

	catalog, err := loadCatalog()
	if err != nil {
		return fail("loading catalog", err)
	}
	s, err := catalog.Converter().Format(amount, currencyOr(c.currency))
	if err != nil {
		return fail("converting amount", err)
	}
	fmt.Println(s)
	return subcommands.ExitSuccess
}
