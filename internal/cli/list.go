package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/givers/contacts/internal/view"
)

func newListCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored messages",
		Long: `List stored messages, newest last.

With --search only messages whose name or email contains the term
(ignoring case) are shown. POS is the position to pass to edit and delete.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, open, func(b *Backend) error {
				b.Contacts.Search(search)
				lv := b.Form.Snapshot().List
				p := printer{format: rootOpts.Format, w: cmd.OutOrStdout()}
				return p.print(lv, func(w io.Writer) error { return writeCards(w, lv) })
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name or email")
	return cmd
}

func writeCards(w io.Writer, lv view.ListView) error {
	if lv.Empty {
		_, err := fmt.Fprintln(w, lv.Placeholder)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tID\tDATE\tNAME\tEMAIL\tPHONE\tSENT\tMESSAGE")
	for _, c := range lv.Cards {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%t\t%s\n",
			c.Position, c.ID, c.Date, c.Name, c.Email, c.Phone, c.EmailSent, oneLine(c.Message))
	}
	return tw.Flush()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
