package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/doeshing/logan/internal/domain"
	"github.com/doeshing/logan/internal/ports"
)

// Service owns the merged action registry. It reads through the cache:
// a miss loads the default and user documents, merges them and stores the
// result.
type Service struct {
	Layout domain.Layout
	Loader ports.DocumentLoader
	Cache  ports.ActionCache
	Logger ports.Logger
}

// LoadConfig implements ports.ActionResolver. The returned document is never
// nil.
func (s *Service) LoadConfig(ctx context.Context) (domain.Document, error) {
	if s.Loader == nil || s.Logger == nil {
		return nil, errors.New("registry.Service dependencies not satisfied")
	}

	if s.Cache != nil {
		if doc, ok := s.Cache.Get(ctx, domain.CacheKey); ok {
			s.Logger.Debug("config served from cache", map[string]interface{}{"key": domain.CacheKey})
			return nonNil(doc), nil
		}
	}

	merged, err := s.LoadMerged(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache == nil {
		return merged, nil
	}
	if !s.Cache.Put(ctx, domain.CacheKey, merged) {
		s.Logger.Warn("config not cached", map[string]interface{}{"key": domain.CacheKey})
		return merged, nil
	}
	// Serve the stored form so a later cache hit returns an equal document.
	if stored, ok := s.Cache.Get(ctx, domain.CacheKey); ok {
		return nonNil(stored), nil
	}
	return merged, nil
}

// LoadMerged reads both config files and merges them, bypassing the cache.
func (s *Service) LoadMerged(ctx context.Context) (domain.Document, error) {
	defaults, err := s.LoadDefault(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.LoadUser(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(domain.Merge(defaults, user)), nil
}

// LoadDefault reads the shipped configuration file.
func (s *Service) LoadDefault(ctx context.Context) (domain.Document, error) {
	doc, err := s.Loader.Load(ctx, s.Layout.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}
	return doc, nil
}

// LoadUser reads the user override file.
func (s *Service) LoadUser(ctx context.Context) (domain.Document, error) {
	doc, err := s.Loader.Load(ctx, s.Layout.UserConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load user config: %w", err)
	}
	return doc, nil
}

// FindAction implements ports.ActionResolver. An action registered for a
// different context than expectedContext is reported as not found.
func (s *Service) FindAction(cfg domain.Document, verb, object, expectedContext string) (domain.ActionDefinition, bool) {
	key := domain.ActionKey(verb, object)
	action, ok := cfg.Action(key)
	if !ok {
		s.debug("action not registered", map[string]interface{}{"key": key})
		return domain.ActionDefinition{}, false
	}
	if action.Context != expectedContext {
		s.debug("action registered for another context", map[string]interface{}{
			"key":      key,
			"context":  action.Context,
			"expected": expectedContext,
		})
		return domain.ActionDefinition{}, false
	}
	return action, true
}

func (s *Service) debug(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(msg, fields)
	}
}

func nonNil(doc domain.Document) domain.Document {
	if doc == nil {
		return domain.Document{}
	}
	return doc
}

var (
	_ ports.ActionResolver = (*Service)(nil)
	_ ports.ConfigSource   = (*Service)(nil)
)
