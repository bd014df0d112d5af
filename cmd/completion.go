package cmd

import (
	"flag"
	"io"
	"strings"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of cra, global flags included. The
// main package calls its Complete method once the global flags are set and
// before parsing the command line.
func Completion() *complete.Command {
	tiers := make(predict.Set, 0, len(advisor.RiskTiers))
	for _, t := range advisor.RiskTiers {
		tiers = append(tiers, strings.ToLower(t.String()))
	}
	currencies := predict.Set(advisor.DefaultCatalog().Converter().Codes())
	topics, _ := docs.GetAllTopics()

	// flag predictions that differ from "any value".
	known := map[string]complete.Predictor{
		"r":        tiers,
		"c":        currencies,
		"currency": currencies,
		"catalog":  predict.Files("*.yaml"),
		"s":        predict.Set(advisor.DefaultCatalog().Symbols()),
	}

	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(known, flag.CommandLine),
	}
	for _, c := range Commands {
		sub := &complete.Command{Flags: flagPredictors(known, commandFlags(c))}
		if c.Name() == "topic" {
			sub.Args = predict.Set(topics)
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

// commandFlags returns the flags of c.
func commandFlags(c subcommands.Command) *flag.FlagSet {
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	f.SetOutput(io.Discard)
	c.SetFlags(f)
	return f
}

// flagPredictors returns the predictors of the flags in f. Boolean flags take
// no value and get no predictor.
func flagPredictors(known map[string]complete.Predictor, f *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[fl.Name] = nil
			return
		}
		if p, ok := known[fl.Name]; ok {
			m[fl.Name] = p
			return
		}
		m[fl.Name] = predict.Something
	})
	return m
}
