package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLocationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location --tag <name>",
		Short: "Print the path of the file backing a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, _ := cmd.Flags().GetString("tag")
			return c.app.Location(tag)
		},
	}
	cmd.Flags().StringP("tag", "t", "", "Name identifying the schedule")
	_ = cmd.MarkFlagRequired("tag")
	return cmd
}
