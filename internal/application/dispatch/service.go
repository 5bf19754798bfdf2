package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/doeshing/logan/internal/domain"
	"github.com/doeshing/logan/internal/ports"
)

// Service runs one command end-to-end: parse, resolve, execute, report.
// Every stage is terminal on failure.
type Service struct {
	Resolver ports.ActionResolver
	Executor ports.ActionExecutor
	Reporter ports.Reporter
	Logger   ports.Logger
}

// Process handles a single raw command. The returned error is non-nil only
// for dispatch failures; a child exiting non-zero is reported through the
// outcome's result.
func (s *Service) Process(ctx context.Context, command string) (domain.Outcome, error) {
	outcome, err := s.process(ctx, command)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Error("dispatch failed", err, map[string]interface{}{"command": command})
		}
		if s.Reporter != nil {
			s.Reporter.ReportFailure(command, err)
		}
		return outcome, err
	}
	if s.Reporter != nil {
		s.Reporter.ReportOutcome(outcome)
	}
	return outcome, nil
}

func (s *Service) process(ctx context.Context, command string) (domain.Outcome, error) {
	outcome := domain.Outcome{Command: command}
	if s.Resolver == nil || s.Executor == nil {
		return outcome, errors.New("dispatch.Service dependencies not satisfied")
	}

	parsed := domain.ParseCommand(command)
	if !parsed.Matched() {
		return outcome, fmt.Errorf("%w: %q, expected <verb>:<object>[:<context>] <params>", domain.ErrWrongSyntax, command)
	}

	attrs, err := parsed.Attributes()
	if err != nil {
		return outcome, err
	}
	outcome.Parsed = attrs

	cfg, err := s.Resolver.LoadConfig(ctx)
	if err != nil {
		return outcome, err
	}

	action, ok := s.Resolver.FindAction(cfg, attrs.Verb, attrs.Object, attrs.Context)
	if !ok {
		return outcome, fmt.Errorf("%w for %s", domain.ErrActionNotFound, describe(attrs))
	}
	outcome.Action = action

	inv, err := s.Executor.BuildInvocation(action, attrs.Params)
	if err != nil {
		return outcome, err
	}

	result, err := s.Executor.Execute(ctx, inv)
	outcome.Result = result
	if err != nil {
		return outcome, err
	}
	return outcome, nil
}

func describe(c domain.ParsedCommand) string {
	if c.HasContext() {
		return fmt.Sprintf("%s (context %s)", c.Key(), c.Context)
	}
	return c.Key()
}
