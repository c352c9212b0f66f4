package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/givers/contacts/internal/service"
)

type deleteResult struct {
	Position int  `json:"position" yaml:"position"`
	Deleted  bool `json:"deleted"  yaml:"deleted"`
}

func newDeleteCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <position>",
		Short: "Delete a stored message",
		Long: `Delete the message at <position> after asking for confirmation on
stdin. --yes skips the question.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid position %q", args[0]))
			}
			var confirmer service.Confirmer = service.Always(true)
			if !yes {
				confirmer = promptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
			}

			return withBackend(cmd, open, func(b *Backend) error {
				deleted, err := b.Contacts.Delete(cmd.Context(), pos, confirmer)
				if err != nil {
					return storeExitError(err)
				}
				res := deleteResult{Position: pos, Deleted: deleted}
				p := printer{format: rootOpts.Format, w: cmd.OutOrStdout()}
				return p.print(res, func(w io.Writer) error {
					msg := "kept"
					if deleted {
						msg = "deleted"
					}
					_, err := fmt.Fprintf(w, "%s message at position %d\n", msg, pos)
					return err
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

// promptConfirmer asks on out and reads a y/yes answer from in.
// Anything else, including EOF, declines.
func promptConfirmer(in io.Reader, out io.Writer) service.Confirmer {
	return service.ConfirmFunc(func(_ context.Context, prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}
