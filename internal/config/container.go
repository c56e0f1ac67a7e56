package config

import (
	"fmt"

	"pdf-backend-bench/internal/backend"
	"pdf-backend-bench/internal/domain"
	"pdf-backend-bench/internal/registry"
	"pdf-backend-bench/internal/runner"
	"pdf-backend-bench/internal/service"
	"pdf-backend-bench/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config       domain.Config
	Logger       domain.Logger
	Runner       *runner.Runner
	Registry     *registry.Registry
	BenchService domain.BenchService
}

// NewContainer creates a new dependency injection container. Backend
// registration happens exactly once here; a duplicate identifier is a
// configuration error and aborts startup.
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	procRunner := runner.New(config.GetTempDir(), appLogger)

	reg := registry.New()
	backends := []domain.Backend{
		backend.NewFitz(appLogger),
		backend.NewPdfcpu(config.GetTempDir(), appLogger),
		backend.NewPdftotext(procRunner, config.GetPdftotextPath(), appLogger),
		backend.NewPdfalto(procRunner, config.GetPdfaltoPath(), config.GetXsltprocPath(), config.GetAltoStylesheet(), appLogger),
		backend.NewTika(config.GetTikaURL(), config.GetTikaTimeout(), appLogger),
	}
	for _, b := range backends {
		if err := reg.Register(b); err != nil {
			return nil, fmt.Errorf("backend registration failed: %w", err)
		}
	}

	benchService := service.NewBenchService(reg, appLogger)

	return &Container{
		Config:       config,
		Logger:       appLogger,
		Runner:       procRunner,
		Registry:     reg,
		BenchService: benchService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetRegistry returns the backend registry
func (c *Container) GetRegistry() *registry.Registry {
	return c.Registry
}

// GetBenchService returns the bench service instance
func (c *Container) GetBenchService() domain.BenchService {
	return c.BenchService
}
