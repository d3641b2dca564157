// Package app implements the application layer for debugdump.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/debugdump/internal/adapters/telemetry"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
	"go.trai.ch/debugdump/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	opener       ports.BackendOpener
	hasher       ports.Hasher
	logger       ports.Logger
	tracer       ports.Tracer
	engine       *reconcile.Engine
	renderer     ports.PlanRenderer
	stdout       io.Writer
	stderr       io.Writer
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.BackendOpener,
	hasher ports.Hasher,
	log ports.Logger,
	tracer ports.Tracer,
	engine *reconcile.Engine,
	renderer ports.PlanRenderer,
) *App {
	return &App{
		configLoader: loader,
		opener:       opener,
		hasher:       hasher,
		logger:       log,
		tracer:       tracer,
		engine:       engine,
		renderer:     renderer,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		now:          time.Now,
	}
}

// WithOutput redirects the messages the App prints itself.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithClock overrides the time source used for default dump names.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// open loads the configuration and opens the backend it names.
func (a *App) open(ctx context.Context, configPath string) (*domain.Config, ports.Backend, error) {
	if configPath == "" {
		configPath = domain.ConfigFileName
	}
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	backend, err := a.opener.Open(ctx, cfg.Backend)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to open package backend")
	}
	return cfg, backend, nil
}

// startTrace reports every finished span on stderr until the returned
// function runs.
func (a *App) startTrace(ctx context.Context, enabled bool) func() {
	if !enabled {
		return func() {}
	}
	shutdown := telemetry.InstallSummary(a.stderr)
	return func() {
		if err := shutdown(ctx); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to flush traces: %v", err))
		}
	}
}

func isFormatError(err error) bool {
	return errors.Is(err, domain.ErrBadVersion)
}
