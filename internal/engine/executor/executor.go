// Package executor carries out or prints a reconciliation plan.
package executor

import (
	"context"
	"errors"

	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
	"go.trai.ch/zerr"
)

// Failure records a step the package index rejected.
type Failure struct {
	Step domain.Step
	Err  error
}

// Report summarises an execution.
type Report struct {
	// Executed counts the steps handed to the package index successfully.
	Executed int
	// Failures lists the rejected steps in plan order.
	Failures []Failure
}

// Failed reports whether any step was rejected.
func (r Report) Failed() bool {
	return len(r.Failures) > 0
}

// Executor walks a plan step by step.
type Executor struct {
	index    ports.PackageIndex
	renderer ports.PlanRenderer
	logger   ports.Logger
	tracer   ports.Tracer
}

// NewExecutor creates a new Executor.
func NewExecutor(
	index ports.PackageIndex,
	renderer ports.PlanRenderer,
	logger ports.Logger,
	tracer ports.Tracer,
) *Executor {
	return &Executor{
		index:    index,
		renderer: renderer,
		logger:   logger,
		tracer:   tracer,
	}
}

// Execute prints plan when dryRun is set. Otherwise it queues every step on
// the package index and applies the transaction. Rejected steps are logged
// and collected in the report; only rendering and Apply errors are returned.
func (e *Executor) Execute(ctx context.Context, plan domain.Plan, dryRun bool) (Report, error) {
	if dryRun {
		for _, step := range plan {
			if err := e.renderer.Render(step); err != nil {
				return Report{}, err
			}
		}
		return Report{}, nil
	}

	var report Report
	for _, step := range plan {
		if err := e.runStep(ctx, step); err != nil {
			e.report(step, err)
			report.Failures = append(report.Failures, Failure{Step: step, Err: err})
			continue
		}
		report.Executed++
	}

	if report.Executed == 0 {
		return report, nil
	}

	ctx, span := e.tracer.Start(ctx, "restore.apply", ports.WithAttribute("steps", report.Executed))
	defer span.End()

	if err := e.index.Apply(ctx); err != nil {
		span.RecordError(err)
		return report, zerr.Wrap(err, "failed to apply transaction")
	}
	return report, nil
}

func (e *Executor) runStep(ctx context.Context, step domain.Step) error {
	ctx, span := e.tracer.Start(ctx, "restore.step",
		ports.WithAttribute("kind", step.Kind.String()),
		ports.WithAttribute("reason", step.Reason.String()),
		ports.WithAttribute("spec", step.Spec),
	)
	defer span.End()

	var err error
	switch step.Kind {
	case domain.StepRemove:
		err = e.index.Remove(ctx, step.Package)
	case domain.StepInstall:
		err = e.index.Install(ctx, step.Spec)
	default:
		err = zerr.With(zerr.Wrap(domain.ErrInvalidAction, "unknown step kind"), "kind", step.Kind.String())
	}
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (e *Executor) report(step domain.Step, err error) {
	if errors.Is(err, domain.ErrPackageNotAvailable) {
		e.logger.Error(zerr.Wrap(err, "Package "+step.Spec+" is not available"))
		return
	}
	e.logger.Error(zerr.With(zerr.Wrap(err, "failed to "+step.Kind.String()+" package"), "spec", step.Spec))
}
