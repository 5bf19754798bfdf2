package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/doeshing/logan/internal/domain"
)

// ReportRenderer prints a doctor report.
type ReportRenderer interface {
	RenderDoctorReport(domain.HealthReport)
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand(container ContainerFunc, renderer func(*cobra.Command) ReportRenderer) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the logan root, config files and action executables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := container()
			if c == nil {
				return errors.New(ErrContainerUnavailable)
			}
			report, err := c.DoctorService.Run(cmd.Context())
			renderer(cmd).RenderDoctorReport(report)
			return err
		},
	}
}
