package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func NewVersionCmd(version string, out io.Writer) *cobra.Command {
	if version == "" {
		version = "dev"
	}
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(out, "splash %s\n", version)
		},
	}
}
