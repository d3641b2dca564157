// Package reconcile computes the steps that bring an installed package set
// back to a recorded snapshot.
package reconcile

import (
	"context"
	"slices"

	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
)

// Result is the outcome of a reconciliation.
type Result struct {
	// Plan lists removals in installed order, then installs in entry order.
	Plan domain.Plan
	// Remaining is the drained working copy of the snapshot: exact matches are
	// gone and entries whose slot held another build are tagged ActionReplace.
	Remaining domain.Snapshot
}

// Reconcile plans the steps that turn installed into snap. It is a pure
// function of its inputs; snap is never modified.
func Reconcile(installed []domain.Package, snap domain.Snapshot, opts domain.RestoreOptions) Result {
	work := snap.Clone()
	plan := removals(installed, work, opts.FilterTypes)
	plan = append(plan, installs(work, opts)...)
	return Result{Plan: plan, Remaining: work}
}

// removals walks the installed set in order. Exact matches are drained from
// work. A package whose slot is recorded with another build retags the entry
// as a replacement; its removal is then gated on replace instead of remove.
func removals(installed []domain.Package, work domain.Snapshot, filters domain.FilterTypes) domain.Plan {
	sorted := slices.Clone(installed)
	domain.SortPackages(sorted)

	var plan domain.Plan
	for _, pkg := range sorted {
		key := pkg.Key()
		entry, recorded := work[key]
		if recorded && entry.Package.SameIdentity(pkg) {
			delete(work, key)
			continue
		}

		gate := domain.ActionRemove
		if recorded && entry.Action == domain.ActionInstall {
			entry.Action = domain.ActionReplace
			work[key] = entry
			gate = domain.ActionReplace
		}
		if !filters.Has(gate) {
			continue
		}

		plan = append(plan, domain.Step{
			Kind:       domain.StepRemove,
			Reason:     gate,
			Package:    pkg,
			Spec:       pkg.String(),
			TargetArch: pkg.Arch,
		})
	}
	return plan
}

// installs emits one install per remaining entry. Only replacements and
// latest-version installs are subject to the filter.
func installs(work domain.Snapshot, opts domain.RestoreOptions) domain.Plan {
	var plan domain.Plan
	for _, entry := range work.Entries() {
		pkg := entry.Package

		var arch, suffix string
		if !opts.IgnoreArch && pkg.Arch != "" {
			arch = pkg.Arch
			suffix = "." + arch
		}

		var spec string
		var gate domain.Action
		if opts.InstallLatest && entry.Action == domain.ActionInstall {
			spec = pkg.Name + suffix
			gate = domain.ActionInstall
		} else {
			pinned := pkg
			pinned.Arch = ""
			spec = pinned.String() + suffix
			if entry.Action == domain.ActionReplace {
				gate = domain.ActionReplace
			}
		}
		if gate != 0 && !opts.FilterTypes.Has(gate) {
			continue
		}

		plan = append(plan, domain.Step{
			Kind:       domain.StepInstall,
			Reason:     entry.Action,
			Package:    pkg,
			Spec:       spec,
			TargetArch: arch,
		})
	}
	return plan
}

// Engine runs Reconcile inside a tracing span.
type Engine struct {
	tracer ports.Tracer
}

// NewEngine creates a new Engine.
func NewEngine(tracer ports.Tracer) *Engine {
	return &Engine{tracer: tracer}
}

// Plan reconciles installed against snap and records the plan on the span.
func (e *Engine) Plan(
	ctx context.Context,
	installed []domain.Package,
	snap domain.Snapshot,
	opts domain.RestoreOptions,
) Result {
	ctx, span := e.tracer.Start(ctx, "reconcile",
		ports.WithAttribute("filter_types", opts.FilterTypes.String()),
		ports.WithAttribute("install_latest", opts.InstallLatest),
		ports.WithAttribute("ignore_arch", opts.IgnoreArch),
	)
	defer span.End()

	res := Reconcile(installed, snap, opts)

	lines := make([]string, 0, len(res.Plan))
	for _, step := range res.Plan {
		lines = append(lines, step.String())
	}
	span.SetAttribute("installed", len(installed))
	span.SetAttribute("recorded", len(snap))
	e.tracer.EmitPlan(ctx, lines)

	return res
}
