// Package cli implements contactctl, a terminal surface over the contact store.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/givers/contacts/internal/model"
	"github.com/givers/contacts/internal/service"
	"github.com/givers/contacts/internal/view"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "text" | "json" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// Forwarder sends a new submission on to the form relay.
type Forwarder interface {
	Forward(ctx context.Context, fields model.ContactFields) (string, error)
}

// Backend is an opened contact store together with the surface it draws on.
type Backend struct {
	Contacts service.ContactService
	Form     *view.FormState
	// Relay is nil when forwarding is not configured.
	Relay Forwarder
	Close func()
}

// Opener opens the backend for a single command invocation.
type Opener func(ctx context.Context) (*Backend, error)

// NewRootCommand creates the root command for contactctl.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "contactctl",
		Short: "Manage stored contact form messages",
		Long:  "List, add, edit, delete and export the messages kept by the contact form.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")

	cmd.AddCommand(newListCommand(opts, open))
	cmd.AddCommand(newAddCommand(opts, open))
	cmd.AddCommand(newEditCommand(opts, open))
	cmd.AddCommand(newDeleteCommand(opts, open))
	cmd.AddCommand(newExportCommand(opts, open))

	return cmd
}

// withBackend opens the backend, runs fn and closes it again.
func withBackend(cmd *cobra.Command, open Opener, fn func(b *Backend) error) error {
	b, err := open(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "open contact store", err)
	}
	if b.Close != nil {
		defer b.Close()
	}
	return fn(b)
}
