package domain

// Invocation is a fully resolved process to spawn.
type Invocation struct {
	Path string
	Args []string
}

// ExecutionResult wraps what the child process produced.
type ExecutionResult struct {
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
	Err        error
}

// Succeeded reports whether the child exited cleanly with code 0.
func (r ExecutionResult) Succeeded() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Outcome is the single reported result of one dispatch.
type Outcome struct {
	Command string
	Parsed  ParsedCommand
	Action  ActionDefinition
	Result  ExecutionResult
}
