package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/calcli/internal/app"
	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/infrastructure/cli/helpers"
)

// NewDoctorCommand creates the doctor diagnostics command.
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run environment diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			helpers.RenderReport(cmd.OutOrStdout(), report)
			if err != nil {
				return err
			}
			for _, check := range report.Checks {
				if check.Status == domain.HealthError {
					return fmt.Errorf("doctor found problems")
				}
			}
			return nil
		},
	}
}
