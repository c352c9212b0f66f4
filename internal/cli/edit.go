package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/givers/contacts/internal/model"
	"github.com/givers/contacts/internal/service"
)

func newEditCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var set model.ContactFields

	cmd := &cobra.Command{
		Use:   "edit <position>",
		Short: "Change a stored message",
		Long: `Change the fields of the message at <position>. Fields whose flag is
not given keep their current value. Edits are never forwarded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid position %q", args[0]))
			}
			return withBackend(cmd, open, func(b *Backend) error {
				current, err := b.Contacts.BeginEdit(pos)
				if err != nil {
					return storeExitError(err)
				}

				fields := current.Fields()
				flags := cmd.Flags()
				if flags.Changed("name") {
					fields.Name = set.Name
				}
				if flags.Changed("email") {
					fields.Email = set.Email
				}
				if flags.Changed("phone") {
					fields.Phone = set.Phone
				}
				if flags.Changed("message") {
					fields.Message = set.Message
				}

				rec, err := b.Contacts.CommitEdit(cmd.Context(), fields)
				if err != nil {
					b.Contacts.CancelEdit()
					var verr *model.ValidationError
					if errors.As(err, &verr) {
						return NewExitError(ExitFailure, b.Form.Snapshot().Form.Message)
					}
					return storeExitError(err)
				}

				p := printer{format: rootOpts.Format, w: cmd.OutOrStdout()}
				return p.print(rec, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "updated message %d at position %d\n", rec.ID, pos)
					return err
				})
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&set.Name, "name", "", "new sender name")
	f.StringVar(&set.Email, "email", "", "new sender email")
	f.StringVar(&set.Phone, "phone", "", "new sender phone")
	f.StringVar(&set.Message, "message", "", "new message text")
	return cmd
}

func storeExitError(err error) error {
	if errors.Is(err, service.ErrPositionOutOfRange) {
		return WrapExitError(ExitCommandError, "no message at that position", err)
	}
	return WrapExitError(ExitCommandError, "contact store", err)
}
