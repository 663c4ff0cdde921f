package terminal

import (
	"io"
	"os"

	"github.com/NotAShelf/ssa/pkg/runtime/terminal/commands"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	opts    Options
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Version   string
	Output    io.Writer
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	cli := &CLI{opts: opts}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ssa",
		Short: "Systemd security exposure summarizer",
		Long: `ssa captures the report produced by systemd-analyze security and renders
a filtered, ranked summary of how exposed the system's services are.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.opts.Output)
	cmd.SetErr(cli.opts.ErrOutput)

	cmdOpts := commands.Options{
		Version:   cli.opts.Version,
		Output:    cli.opts.Output,
		ErrOutput: cli.opts.ErrOutput,
	}

	// a bare `ssa` runs the analysis
	commands.BindAnalyze(cmd, cmdOpts)
	cmd.AddCommand(commands.NewAnalyzeCmd(cmdOpts))
	cmd.AddCommand(commands.NewVersionCmd(cmdOpts))

	return cmd
}
