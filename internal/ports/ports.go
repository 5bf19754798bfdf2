// Package ports defines the interfaces between the dispatch core and its
// adapters.
//
// The application layer (resolver, dispatcher, doctor) depends only on these
// abstractions; the infrastructure layer provides the YAML loader, the SQLite
// cache store and the process executor that satisfy them.
package ports

import (
	"context"

	"github.com/doeshing/logan/internal/domain"
)

// DocumentLoader reads one structured configuration file.
// Missing files fail with domain.ErrConfigFileNotFound, unparsable ones with
// domain.ErrConfigLoad.
type DocumentLoader interface {
	Load(ctx context.Context, path string) (domain.Document, error)
}

// ActionCache is the read-through cache for the merged configuration.
// Read failures degrade to a miss; Put reports success as a bool.
type ActionCache interface {
	Get(ctx context.Context, key string) (domain.Document, bool)
	Put(ctx context.Context, key string, doc domain.Document) bool
	Contains(ctx context.Context, key string) bool
}

// ActionResolver turns a parsed command into an action definition.
type ActionResolver interface {
	LoadConfig(ctx context.Context) (domain.Document, error)
	FindAction(cfg domain.Document, verb, object, expectedContext string) (domain.ActionDefinition, bool)
}

// ConfigSource reads the configuration files directly, bypassing the cache.
type ConfigSource interface {
	LoadDefault(ctx context.Context) (domain.Document, error)
	LoadUser(ctx context.Context) (domain.Document, error)
	LoadMerged(ctx context.Context) (domain.Document, error)
}

// ActionExecutor builds and runs the process backing an action.
type ActionExecutor interface {
	BuildInvocation(action domain.ActionDefinition, params string) (domain.Invocation, error)
	Execute(ctx context.Context, inv domain.Invocation) (domain.ExecutionResult, error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

// Reporter renders the single outcome of a dispatch: either the executed
// action's result or the gate failure that stopped it.
type Reporter interface {
	ReportOutcome(outcome domain.Outcome)
	ReportFailure(command string, err error)
}
