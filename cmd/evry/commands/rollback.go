package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRollbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollback --tag <name>",
		Short: "Restore a tag's last run from its pre-overwrite snapshot",
		Long: `Rollback undoes the most recent successful run decision for a tag.
Every time run overwrites a recorded timestamp it snapshots the old
value first; rollback puts that snapshot back so the next run behaves
as if the last permitted run never happened.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, _ := cmd.Flags().GetString("tag")
			return c.app.Rollback(tag)
		},
	}
	cmd.Flags().StringP("tag", "t", "", "Name identifying the schedule")
	_ = cmd.MarkFlagRequired("tag")
	return cmd
}
