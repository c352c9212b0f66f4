package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/givers/contacts/internal/model"
)

func newAddCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var (
		fields  model.ContactFields
		forward bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new message",
		Long: `Store a new message as if it had been sent through the contact form.

With --forward the message is also posted to the configured relay.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, open, func(b *Backend) error {
				if forward && b.Relay == nil {
					return NewExitError(ExitCommandError, "no relay is configured; nothing was saved")
				}
				d, err := b.Contacts.Submit(cmd.Context(), fields, forward)
				if err != nil {
					return WrapExitError(ExitCommandError, "save message", err)
				}
				if d.Rejection != nil {
					return NewExitError(ExitFailure, b.Form.Snapshot().Form.Message)
				}

				if forward && d.AllowForward {
					if _, err := b.Relay.Forward(cmd.Context(), fields); err != nil {
						return WrapExitError(ExitFailure, "message saved, but could not be sent", err)
					}
				}

				p := printer{format: rootOpts.Format, w: cmd.OutOrStdout()}
				return p.print(d.Record, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "saved message %d from %s\n", d.Record.ID, d.Record.Name)
					return err
				})
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&fields.Name, "name", "", "sender name")
	f.StringVar(&fields.Email, "email", "", "sender email")
	f.StringVar(&fields.Phone, "phone", "", "sender phone")
	f.StringVar(&fields.Message, "message", "", "message text")
	f.BoolVar(&forward, "forward", false, "also post the message to the relay")
	return cmd
}
