package main

import (
	"context"
	"fmt"
	"os"

	"github.com/givers/contacts/internal/cli"
	"github.com/givers/contacts/internal/config"
	"github.com/givers/contacts/internal/logging"
	"github.com/givers/contacts/internal/relay"
	"github.com/givers/contacts/internal/repository"
	"github.com/givers/contacts/internal/service"
	"github.com/givers/contacts/internal/view"
)

func main() {
	root := cli.NewRootCommand(open)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "contactctl:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

// open builds the contact store from the same configuration the server uses.
func open(ctx context.Context) (*cli.Backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	// stdout carries command output, so logs go to stderr.
	logger := logging.New(os.Stderr, cfg.Log.Level, "text")

	store, closeStore, err := repository.OpenStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	form := view.NewFormState()
	contacts := service.NewContactStore(
		repository.NewSnapshotContactRepository(store, cfg.Storage.Slot),
		form,
		service.WithLogger(logger),
	)
	if err := contacts.Load(ctx); err != nil {
		closeStore()
		return nil, err
	}

	b := &cli.Backend{Contacts: contacts, Form: form, Close: closeStore}
	if cfg.Relay.Endpoint != "" {
		b.Relay = relay.NewClient(cfg.Relay.Endpoint, cfg.Relay.Subject, cfg.Relay.Timeout)
	}
	return b, nil
}
