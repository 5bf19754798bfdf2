package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/logan/internal/app"
	"github.com/doeshing/logan/internal/domain"
	"github.com/doeshing/logan/internal/infrastructure/cli/commands"
	"github.com/doeshing/logan/internal/infrastructure/config"
	"github.com/doeshing/logan/internal/version"
)

// Options holds CLI-level configuration.
type Options struct {
	Settings config.Settings
	Out      io.Writer
	ErrOut   io.Writer
}

// ExitError carries the process exit code for a finished dispatch. Its
// message has already been reported when it is returned.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCmd wires the cobra root command. The container is built after
// flags are parsed so --root, --debug and --timeout take effect.
func NewRootCmd(_ context.Context, opts Options) *cobra.Command {
	settings := opts.Settings
	var container *app.Container
	getContainer := func() *app.Container { return container }

	root := &cobra.Command{
		Use:   "logan <verb>:<object>[:<context>] <params...>",
		Short: "Logan - command line organizer",
		Long: `Logan maps a short semantic phrase to a registered action and runs it.

An action is written <verb>:<object>[:<context>], e.g. create:file:windows.
Params follow the action and are passed to the action's executable:

  logan create:file report.txt
  logan list:files:usr -ltr`,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.BuildContainer(cmd.Context(), settings)
			if err != nil {
				return err
			}
			container = c
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runDispatch(cmd, container, strings.Join(args, " "))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if opts.Out != nil {
		root.SetOut(opts.Out)
	}
	if opts.ErrOut != nil {
		root.SetErr(opts.ErrOut)
	}

	root.Flags().SetInterspersed(false)
	root.PersistentFlags().StringVar(&settings.Root, "root", settings.Root, "Logan root directory (default ~/.logan, env LOGAN_ROOT)")
	root.PersistentFlags().BoolVar(&settings.Debug, "debug", settings.Debug, "Enable verbose logging (env LOGAN_DEBUG)")
	root.PersistentFlags().DurationVar(&settings.Timeout, "timeout", settings.Timeout, "Kill the action after this duration, 0 waits forever (env LOGAN_TIMEOUT)")
	root.PersistentFlags().BoolVar(&settings.NoColor, "no-color", settings.NoColor, "Disable colored output (env NO_COLOR)")

	root.AddCommand(
		commands.NewActionsCommand(getContainer),
		commands.NewCacheCommand(getContainer),
		commands.NewInitCommand(getContainer),
		commands.NewDoctorCommand(getContainer, func(cmd *cobra.Command) commands.ReportRenderer {
			return NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), settings.NoColor)
		}),
		commands.NewVersionCommand(),
	)
	return root
}

func runDispatch(cmd *cobra.Command, container *app.Container, command string) error {
	renderer := NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), container.Settings.NoColor)
	container.DispatchService.Reporter = renderer

	outcome, err := container.DispatchService.Process(cmd.Context(), command)
	if err != nil {
		return &ExitError{Code: domain.ExitFail}
	}
	if code := outcome.Result.ExitCode; code != domain.ExitOK {
		if code < 0 {
			code = domain.ExitFail
		}
		return &ExitError{Code: code}
	}
	return nil
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, opts Options) int {
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	root := NewRootCmd(ctx, opts)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return domain.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintln(errOut, "error:", err)
	return domain.ExitFail
}
