package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored message",
		Long: `Write every stored message in store order. The text format writes the
same JSON array the snapshot holds; --format yaml writes YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd, open, func(b *Backend) error {
				w := cmd.OutOrStdout()
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return WrapExitError(ExitCommandError, "create output", err)
					}
					defer f.Close()
					w = f
				}

				format := rootOpts.Format
				if format == "text" {
					format = "json"
				}
				p := printer{format: format, w: w}
				if err := p.print(b.Contacts.Records(), nil); err != nil {
					return WrapExitError(ExitCommandError, "write export", err)
				}
				if output != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d messages to %s\n", len(b.Contacts.Records()), output)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
