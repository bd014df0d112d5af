// Package cmd implements the cra command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/config"
	"github.com/etnz/advisor/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Commands are the cra subcommands, registered by the main package.
var Commands = []subcommands.Command{
	&suggestCmd{},
	&insightCmd{},
	&convertCmd{},
	&catalogCmd{},
	&serveCmd{},
	&topicCmd{},
}

// builtins are the subcommands registered by the commander itself.
var builtins = []string{"help", "flags", "commands"}

// IsCommand reports whether name is a cra subcommand, as opposed to an
// extension.
func IsCommand(name string) bool {
	if slices.Contains(builtins, name) {
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	catalogFile     string
	defaultCurrency string
	Verbose         bool
	logLevel        string
	settings        = config.Default()
)

// SetFlags registers the global flags on f. Their defaults come from cfg.
func SetFlags(f *flag.FlagSet, cfg *config.Config) {
	settings = cfg
	f.StringVar(&catalogFile, "catalog", cfg.CatalogFile, "Path to a catalog file (YAML). Defaults to the embedded catalog.")
	f.StringVar(&defaultCurrency, "currency", cfg.Currency, "Currency used to display amounts.")
	f.BoolVar(&Verbose, "v", cfg.Verbose, "Verbose output, with debug logs.")
	f.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error).")
}

// Setup configures logging from the parsed global flags.
func Setup() {
	level := logLevel
	if Verbose {
		level = "debug"
	}
	logger.SetGlobalLogger(logger.New(logger.Config{Level: level, Pretty: true}))
}

// current returns the configuration in effect after flag parsing.
func current() *config.Config {
	c := *settings
	c.CatalogFile = catalogFile
	c.Currency = defaultCurrency
	c.Verbose = Verbose
	c.LogLevel = logLevel
	return &c
}

// loadCatalog loads the catalog selected by the global flags.
func loadCatalog() (*advisor.Catalog, error) {
	if catalogFile == "" {
		log.Debug().Msg("using the embedded catalog")
	} else {
		log.Debug().Str("file", catalogFile).Msg("loading catalog")
	}
	c, err := advisor.LoadCatalog(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}

// currencyOr returns the currency flag of a subcommand, or the global one.
func currencyOr(c string) string {
	if c != "" {
		return c
	}
	return defaultCurrency
}

// fail reports err on stderr and returns the failure status.
func fail(what string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	return subcommands.ExitFailure
}

// usage reports err on stderr and returns the usage error status.
func usage(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}
