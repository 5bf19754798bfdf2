package app

import (
	"context"

	"github.com/doeshing/logan/internal/application/dispatch"
	"github.com/doeshing/logan/internal/application/doctor"
	"github.com/doeshing/logan/internal/application/registry"
	"github.com/doeshing/logan/internal/domain"
	"github.com/doeshing/logan/internal/infrastructure/cache"
	"github.com/doeshing/logan/internal/infrastructure/config"
	"github.com/doeshing/logan/internal/infrastructure/executor"
	"github.com/doeshing/logan/internal/pkg/logger"
	"github.com/doeshing/logan/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Settings        config.Settings
	Layout          domain.Layout
	Logger          ports.Logger
	Loader          *config.FileLoader
	CacheStore      *cache.SQLiteStore
	Executor        *executor.LocalExecutor
	Registry        *registry.Service
	DispatchService *dispatch.Service
	DoctorService   *doctor.Service
}

// BuildContainer constructs the dependency graph from one Settings value.
// The dispatcher's Reporter is left for the CLI to attach.
func BuildContainer(_ context.Context, settings config.Settings) (*Container, error) {
	layout := settings.Layout()
	log := logger.NewStd(settings.Debug)

	loader := config.NewFileLoader()
	cacheStore := cache.NewSQLiteStore(layout.CachePath, log)
	exec := executor.NewLocalExecutor(layout.ActionsDir, settings.Timeout, log)

	registryService := &registry.Service{
		Layout: layout,
		Loader: loader,
		Cache:  cacheStore,
		Logger: log,
	}

	dispatchService := &dispatch.Service{
		Resolver: registryService,
		Executor: exec,
		Logger:   log,
	}

	doctorService := &doctor.Service{
		Layout:   layout,
		Config:   registryService,
		Cache:    cacheStore,
		Executor: exec,
	}

	log.Debug("container ready", map[string]interface{}{"root": layout.Root, "timeout": settings.Timeout.String()})

	return &Container{
		Settings:        settings,
		Layout:          layout,
		Logger:          log,
		Loader:          loader,
		CacheStore:      cacheStore,
		Executor:        exec,
		Registry:        registryService,
		DispatchService: dispatchService,
		DoctorService:   doctorService,
	}, nil
}
