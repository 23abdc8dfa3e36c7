package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/evry/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <duration>... --tag <name>",
		Short: "Exit 0 when the duration has elapsed since the tag's last run",
		Long: `Run parses the duration terms, compares them against the tag's
recorded last run and exits 0 when enough time has passed (recording
now as the new last run), or 2 when it has not. Parse and storage
failures exit 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, _ := cmd.Flags().GetString("tag")
			lock, _ := cmd.Flags().GetBool("lock")
			debug, _ := cmd.Flags().GetBool("debug")
			jsonMode, _ := cmd.Flags().GetBool("json")

			return c.app.Run(cmd.Context(), tag, strings.Join(args, " "), app.RunOptions{
				Debug: debug,
				JSON:  jsonMode,
				Lock:  lock,
			})
		},
	}
	cmd.Flags().StringP("tag", "t", "", "Name identifying this schedule")
	_ = cmd.MarkFlagRequired("tag")
	cmd.Flags().Bool("lock", false, "Hold the per-tag lock across the decision")
	cmd.Flags().BoolP("debug", "d", false, "Print decision details to stderr")
	cmd.Flags().BoolP("json", "j", false, "Print decision details as a JSON blob on stdout")
	return cmd
}
