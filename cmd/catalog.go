package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type catalogCmd struct{}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "show or query the coin catalog" }
func (*catalogCmd) Usage() string {
	return `cra catalog [<jsonpath>]

  Without argument, print the coins and the pools of each risk tier.
  With a JSONPath expression, print the matching part of the catalog as JSON,
  for instance:

    cra catalog '$.pools.High[*].symbol'
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		return usage(fmt.Errorf("catalog expects at most one query, got %d arguments", f.NArg()))
	}
	catalog, err := loadCatalog()
	if err != nil {
		return fail("loading catalog", err)
	}

	if f.NArg() == 0 {
		printMarkdown(renderer.RenderCatalog(catalog))
		return subcommands.ExitSuccess
	}

	result, err := catalog.Query(f.Arg(0))
	if err != nil {
		return fail("querying catalog", err)
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fail("encoding query result", err)
	}
	fmt.Println(string(data))
	return subcommands.ExitSuccess
}
