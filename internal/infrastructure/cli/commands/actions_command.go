package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doeshing/logan/internal/app"
)

// NewActionsCommand creates the 'actions' command listing the merged registry.
func NewActionsCommand(container ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List registered actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := container()
			if c == nil {
				return errors.New(ErrContainerUnavailable)
			}
			return listActions(cmd, c)
		},
	}
}

func listActions(cmd *cobra.Command, c *app.Container) error {
	cfg, err := c.Registry.LoadConfig(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load actions: %w", err)
	}
	actions := cfg.Actions()
	out := cmd.OutOrStdout()
	if len(actions) == 0 {
		fmt.Fprintln(out, MsgNoActions)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tCONTEXT\tPATH\tSTATUS")
	for _, action := range actions {
		context := action.Context
		if context == "" {
			context = "-"
		}
		status := "ok"
		if _, err := c.Executor.BuildInvocation(action, ""); err != nil {
			status = "missing"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", action.Key, context, c.Executor.ResolvePath(action), status)
	}
	return tw.Flush()
}
