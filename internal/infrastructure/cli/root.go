package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/calcli/internal/app"
	"github.com/doeshing/calcli/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Running calcli without a
// subcommand starts the interactive session.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "calcli",
		Short: "calcli - interactive calculator with undoable history",
		Long:  "calcli performs binary arithmetic, records every computation in an undoable history, and persists that history to a tabular file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			repl := NewRepl(container, cmd.InOrStdin(), cmd.OutOrStdout())
			return repl.Run()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newReplCommand(container))
	root.AddCommand(commands.NewEvalCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

func newReplCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive calculator session",
		RunE: func(cmd *cobra.Command, args []string) error {
			repl := NewRepl(container, cmd.InOrStdin(), cmd.OutOrStdout())
			return repl.Run()
		},
	}
}
