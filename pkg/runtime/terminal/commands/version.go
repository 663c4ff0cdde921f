package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd reports the build version.
func NewVersionCmd(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ssa version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(opts.Output, "ssa %s\n", opts.Version)
		},
	}
}
