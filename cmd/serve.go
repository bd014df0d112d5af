package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/server"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type serveCmd struct {
	addr string
	ttl  time.Duration
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the advisor web form" }
func (*serveCmd) Usage() string {
	return `cra serve [-addr <addr>] [-ttl <duration>]

  Serve the portfolio form and its JSON API until interrupted.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", settings.Addr, "listen address")
	f.DurationVar(&c.ttl, "ttl", settings.SessionTTL, "idle time before a browser session is forgotten")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ttl <= 0 {
		return usage(errors.New("-ttl must be positive"))
	}
	catalog, err := loadCatalog()
	if err != nil {
		return fail("loading catalog", err)
	}
	if !catalog.Converter().Supports(defaultCurrency) {
		return usage(fmt.Errorf("%w: %q", advisor.ErrUnknownCurrency, defaultCurrency))
	}

	srv := server.New(server.Config{
		Addr:       c.addr,
		Log:        log.Logger,
		Engine:     advisor.NewEngine(catalog, nil),
		Currency:   defaultCurrency,
		SessionTTL: c.ttl,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fail("serving", err)
		}
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			return fail("shutting down", err)
		}
	}
	return subcommands.ExitSuccess
}
