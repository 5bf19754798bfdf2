package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/doeshing/logan/internal/domain"
	"github.com/doeshing/logan/internal/pkg/filesystem"
	"github.com/doeshing/logan/internal/ports"
)

// ErrUnhealthy is returned by Run when at least one check failed.
var ErrUnhealthy = errors.New("installation has failing checks")

// Service runs installation diagnostics against the logan root.
type Service struct {
	Layout   domain.Layout
	Config   ports.ConfigSource
	Cache    ports.ActionCache
	Executor ports.ActionExecutor
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	if filesystem.IsDir(s.Layout.Root) {
		checks = append(checks, ok("Root directory", s.Layout.Root))
	} else {
		checks = append(checks, fail("Root directory", fmt.Sprintf("missing at %s (run `logan init`)", s.Layout.Root)))
	}

	_, defaultErr := s.Config.LoadDefault(ctx)
	checks = append(checks, loadCheck("Default config", s.Layout.DefaultConfigPath, defaultErr))
	_, userErr := s.Config.LoadUser(ctx)
	checks = append(checks, loadCheck("User config", s.Layout.UserConfigPath, userErr))

	if filesystem.IsDir(s.Layout.ActionsDir) {
		checks = append(checks, ok("Actions directory", s.Layout.ActionsDir))
	} else {
		checks = append(checks, warn("Actions directory", fmt.Sprintf("missing at %s", s.Layout.ActionsDir)))
	}

	if s.Cache != nil {
		if s.Cache.Contains(ctx, domain.CacheKey) {
			checks = append(checks, ok("Cache", s.Layout.CachePath))
		} else {
			checks = append(checks, warn("Cache", "no cached config yet, next command reloads both files"))
		}
	}

	if defaultErr == nil && userErr == nil {
		if merged, err := s.Config.LoadMerged(ctx); err != nil {
			checks = append(checks, fail("Merged config", err.Error()))
		} else {
			checks = append(checks, s.actionChecks(merged)...)
		}
	}

	report := domain.HealthReport{Checks: checks}
	if report.Failed() {
		return report, ErrUnhealthy
	}
	return report, nil
}

func (s *Service) actionChecks(cfg domain.Document) []domain.HealthCheck {
	actions := cfg.Actions()
	if len(actions) == 0 {
		return []domain.HealthCheck{warn("Actions", "no actions registered")}
	}
	checks := make([]domain.HealthCheck, 0, len(actions))
	for _, action := range actions {
		name := "Action " + action.Key
		inv, err := s.Executor.BuildInvocation(action, "")
		if err != nil {
			checks = append(checks, fail(name, err.Error()))
			continue
		}
		checks = append(checks, ok(name, inv.Path))
	}
	return checks
}

func loadCheck(name, path string, err error) domain.HealthCheck {
	if err != nil {
		return fail(name, err.Error())
	}
	return ok(name, fmt.Sprintf("loaded %s", path))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthFail, Details: details}
}
