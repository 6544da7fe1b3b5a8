package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/calcli/internal/app"
	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/infrastructure/cli/helpers"
	"github.com/doeshing/calcli/internal/infrastructure/history"
)

// NewHistoryCommand creates the history command with its subcommands.
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the persisted calculation history",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)

	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List persisted history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistoryEntries(cmd.OutOrStdout(), container, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Max entries to show (0 = all)")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the persisted history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := container.HistoryStore.Save(nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export the persisted history as a CSV table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := container.HistoryStore.Load()
			if err != nil {
				return err
			}
			dest := history.NewCSVStore(args[0], container.Config.History.Encoding)
			path, err := dest.Save(records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(records), path)
			return nil
		},
	}
}

func listHistoryEntries(out io.Writer, container *app.Container, limit int) error {
	records, err := container.HistoryStore.Load()
	if err != nil {
		if errors.Is(err, domain.ErrHistoryNotFound) || errors.Is(err, domain.ErrHistoryEmpty) {
			fmt.Fprintln(out, "No history recorded yet.")
			return nil
		}
		return err
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	helpers.RenderHistory(out, records)
	return nil
}
