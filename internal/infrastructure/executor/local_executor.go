package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/doeshing/logan/internal/domain"
	"github.com/doeshing/logan/internal/pkg/filesystem"
	"github.com/doeshing/logan/internal/ports"
)

// pipeWaitDelay bounds how long Execute waits for output pipes to close
// after a timed-out action was killed.
const pipeWaitDelay = 500 * time.Millisecond

// LocalExecutor runs action executables found under the actions directory.
// Processes are spawned directly, never through a shell.
type LocalExecutor struct {
	actionsDir string
	timeout    time.Duration
	log        ports.Logger
}

// NewLocalExecutor builds an executor rooted at actionsDir. A zero timeout
// waits for the child indefinitely.
func NewLocalExecutor(actionsDir string, timeout time.Duration, log ports.Logger) *LocalExecutor {
	return &LocalExecutor{actionsDir: actionsDir, timeout: timeout, log: log}
}

// ResolvePath returns actionsDir/<context>/<path>, omitting an empty context.
func (e *LocalExecutor) ResolvePath(action domain.ActionDefinition) string {
	parts := []string{e.actionsDir}
	if action.Context != "" {
		parts = append(parts, action.Context)
	}
	parts = append(parts, action.Path)
	return filepath.Join(parts...)
}

// BuildInvocation implements ports.ActionExecutor. Params are split on
// whitespace; no quoting or expansion is applied.
func (e *LocalExecutor) BuildInvocation(action domain.ActionDefinition, params string) (domain.Invocation, error) {
	path := e.ResolvePath(action)
	if action.Path == "" || !filesystem.IsRegularFile(path) {
		return domain.Invocation{}, fmt.Errorf("%w: %s (action %s)", domain.ErrActionPathMissing, path, action.Key)
	}
	return domain.Invocation{Path: path, Args: strings.Fields(params)}, nil
}

// Execute implements ports.ActionExecutor. A non-zero exit is reported in
// the result, not as an error; errors mean the process could not run.
func (e *LocalExecutor) Execute(ctx context.Context, inv domain.Invocation) (domain.ExecutionResult, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, inv.Path, inv.Args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if e.timeout > 0 {
		killProcessGroupOnCancel(c)
		c.WaitDelay = pipeWaitDelay
	}

	e.debug("spawning action", map[string]interface{}{"path": inv.Path, "args": inv.Args})

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}
	if ctxErr := ctx.Err(); ctxErr != nil && e.timeout > 0 && errors.Is(ctxErr, context.DeadlineExceeded) {
		result.ExitCode = domain.TimeoutExitCode
		result.Err = fmt.Errorf("action timed out after %s: %w", e.timeout, ctxErr)
		return result, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		result.ExitCode = domain.ExitFail
		result.Err = err
		return result, fmt.Errorf("run %s: %w", inv.Path, err)
	}
	result.ExitCode = 0
	return result, nil
}

func (e *LocalExecutor) debug(msg string, fields map[string]interface{}) {
	if e.log != nil {
		e.log.Debug(msg, fields)
	}
}

var _ ports.ActionExecutor = (*LocalExecutor)(nil)
