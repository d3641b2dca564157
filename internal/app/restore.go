package app

import (
	"context"
	"fmt"

	"go.trai.ch/debugdump/internal/adapters/snapshot"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
	"go.trai.ch/debugdump/internal/engine/executor"
	"go.trai.ch/zerr"
)

// RestoreOptions configuration for the Restore method.
type RestoreOptions struct {
	Filename string
	// Output prints the plan instead of executing it.
	Output        bool
	InstallLatest bool
	IgnoreArch    bool
	// FilterTypes overrides the configured filter types when non-nil.
	FilterTypes []string
	ConfigPath  string
	Trace       bool
}

// Restore brings the installed package set back to the state recorded in a
// dump. Steps the package index rejects are logged and returned in the
// report; they do not make Restore fail.
func (a *App) Restore(ctx context.Context, opts RestoreOptions) (executor.Report, error) {
	defer a.startTrace(ctx, opts.Trace)()

	ctx, span := a.tracer.Start(ctx, "restore",
		ports.WithAttribute("file", opts.Filename),
		ports.WithAttribute("dry_run", opts.Output),
	)
	defer span.End()

	report, err := a.restore(ctx, opts)
	if err != nil {
		span.RecordError(err)
		return report, err
	}
	if report.Failed() {
		span.SetAttribute("failed_steps", len(report.Failures))
		a.logger.Warn(fmt.Sprintf("%d step(s) could not be carried out", len(report.Failures)))
	}
	return report, nil
}

func (a *App) restore(ctx context.Context, opts RestoreOptions) (executor.Report, error) {
	snap, err := snapshot.ReadFile(opts.Filename)
	if err != nil {
		if isFormatError(err) {
			return executor.Report{}, zerr.Wrap(err, "Bad dnf debug file: "+opts.Filename)
		}
		return executor.Report{}, zerr.Wrap(err, "failed to read dump")
	}

	cfg, backend, err := a.open(ctx, opts.ConfigPath)
	if err != nil {
		return executor.Report{}, err
	}

	filters := cfg.FilterTypes
	if opts.FilterTypes != nil {
		if filters, err = domain.ParseFilterTypes(opts.FilterTypes...); err != nil {
			return executor.Report{}, err
		}
	}

	installed, err := backend.Installed(ctx)
	if err != nil {
		return executor.Report{}, zerr.Wrap(err, "failed to read installed packages")
	}

	res := a.engine.Plan(ctx, installed, snap, domain.RestoreOptions{
		FilterTypes:   filters,
		InstallLatest: opts.InstallLatest,
		IgnoreArch:    opts.IgnoreArch,
	})

	exec := executor.NewExecutor(backend, a.renderer, a.logger, a.tracer)
	return exec.Execute(ctx, res.Plan, opts.Output)
}
