// Package commands contains the cobra subcommands mounted under the calcli
// root.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/calcli/internal/app"
	"github.com/doeshing/calcli/internal/infrastructure/cli/helpers"
	"github.com/doeshing/calcli/internal/services"
)

// NewEvalCommand creates the one-shot 'eval' command.
func NewEvalCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <operation> <a> <b>",
		Short: "Evaluate a single operation and record it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := services.ParseOperands(args[1:], container.Config)
			if err != nil {
				return err
			}
			result, err := container.Calculator.Calculate(args[0], a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), helpers.FormatResult(result))
			return nil
		},
	}
}
