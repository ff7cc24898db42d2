package terminal

import (
	"io"
	"os"

	"github.com/de-tools/report-splash/pkg/runtime/terminal/commands"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	// Version is stamped at build time.
	Version string
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{}
	cli.rootCmd = cli.newRootCmd(opts)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splash",
		Short: "Report execution history dashboard generator",
		Long: `Splash turns report execution history CSV exports into a single
self-contained HTML analytics dashboard.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(commands.NewGenerateCmd())
	cmd.AddCommand(commands.NewVersionCmd(opts.Version, opts.Output))

	return cmd
}
