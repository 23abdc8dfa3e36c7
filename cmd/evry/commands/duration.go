package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/evry/internal/app"
)

func (c *CLI) newDurationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duration <duration>...",
		Short: "Parse duration terms and print the total in seconds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			jsonMode, _ := cmd.Flags().GetBool("json")

			return c.app.Duration(strings.Join(args, " "), app.RunOptions{
				Debug: debug,
				JSON:  jsonMode,
			})
		},
	}
	cmd.Flags().BoolP("debug", "d", false, "Also print milliseconds and the pretty form")
	cmd.Flags().BoolP("json", "j", false, "Print the parse result as a JSON blob on stdout")
	return cmd
}
