package reconcile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports/mocks"
	"go.trai.ch/debugdump/internal/engine/reconcile"
	"go.uber.org/mock/gomock"
)

func pkgs(specs ...string) []domain.Package {
	out := make([]domain.Package, 0, len(specs))
	for _, s := range specs {
		out = append(out, domain.MustParseSpec(s))
	}
	return out
}

func snapshot(specs ...string) domain.Snapshot {
	s := domain.Snapshot{}
	for _, p := range pkgs(specs...) {
		s.Add(p)
	}
	return s
}

func lines(plan domain.Plan) []string {
	out := make([]string, 0, len(plan))
	for _, step := range plan {
		out = append(out, step.String())
	}
	return out
}

func allTypes() domain.RestoreOptions {
	return domain.RestoreOptions{FilterTypes: domain.AllFilterTypes}
}

func TestReconcile_ReplaceDifferentVersion(t *testing.T) {
	installed := pkgs("foo-1:2.0-1.x86_64")
	snap := snapshot("foo-1:1.0-1.x86_64")

	res := reconcile.Reconcile(installed, snap, allTypes())

	require.Len(t, res.Plan, 2)
	assert.Equal(t, domain.StepRemove, res.Plan[0].Kind)
	assert.Equal(t, domain.ActionReplace, res.Plan[0].Reason)
	assert.Equal(t, "foo-1:2.0-1.x86_64", res.Plan[0].Spec)
	assert.Equal(t, domain.StepInstall, res.Plan[1].Kind)
	assert.Equal(t, "foo-1:1.0-1.x86_64", res.Plan[1].Spec)

	key := domain.Key{Name: "foo", Arch: "x86_64"}
	assert.Equal(t, domain.ActionReplace, res.Remaining[key].Action)
	assert.Equal(t, domain.ActionInstall, snap[key].Action, "input snapshot must not change")
}

func TestReconcile_InstallOnlyFilterSuppressesReplace(t *testing.T) {
	opts := domain.RestoreOptions{FilterTypes: domain.NewFilterTypes(domain.ActionInstall)}

	res := reconcile.Reconcile(pkgs("foo-1:2.0-1.x86_64"), snapshot("foo-1:1.0-1.x86_64"), opts)

	assert.Empty(t, res.Plan)
}

func TestReconcile_ExactMatchDrainsEntry(t *testing.T) {
	res := reconcile.Reconcile(pkgs("bar-1.0-1.noarch"), snapshot("bar-0:1.0-1.noarch"), allTypes())

	assert.Empty(t, res.Plan)
	assert.NotContains(t, res.Remaining, domain.Key{Name: "bar", Arch: "noarch"})
}

func TestReconcile_RemoveUnrecorded(t *testing.T) {
	installed := pkgs("zsh-5.9-1.x86_64", "bash-5.2-1.x86_64")

	res := reconcile.Reconcile(installed, snapshot("bash-5.2-1.x86_64"), allTypes())
	assert.Equal(t, []string{"remove    zsh-5.9-1.x86_64"}, lines(res.Plan))
	assert.Equal(t, domain.ActionRemove, res.Plan[0].Reason)

	noRemove := domain.RestoreOptions{
		FilterTypes: domain.NewFilterTypes(domain.ActionInstall, domain.ActionReplace),
	}
	res = reconcile.Reconcile(installed, snapshot("bash-5.2-1.x86_64"), noRemove)
	assert.Empty(t, res.Plan)
}

func TestReconcile_DifferentArchIsSeparateSlot(t *testing.T) {
	res := reconcile.Reconcile(pkgs("foo-1.0-1.i686"), snapshot("foo-1.0-1.x86_64"), allTypes())

	assert.Equal(t, []string{
		"remove    foo-1.0-1.i686",
		"install   foo-1.0-1.x86_64",
	}, lines(res.Plan))
}

func TestReconcile_Ordering(t *testing.T) {
	installed := pkgs(
		"zlib-1.3-1.x86_64",
		"curl-8.0-1.x86_64",
		"acl-2.3-1.x86_64",
	)
	snap := snapshot(
		"curl-8.2-1.x86_64",
		"wget-1.21-1.x86_64",
		"bash-5.2-1.x86_64",
	)

	res := reconcile.Reconcile(installed, snap, allTypes())

	assert.Equal(t, []string{
		"remove    acl-2.3-1.x86_64",
		"remove    curl-8.0-1.x86_64",
		"remove    zlib-1.3-1.x86_64",
		"install   bash-5.2-1.x86_64",
		"install   wget-1.21-1.x86_64",
		"install   curl-8.2-1.x86_64",
	}, lines(res.Plan), "fresh installs sort before replacements")
}

func TestReconcile_InstallLatest(t *testing.T) {
	opts := domain.RestoreOptions{FilterTypes: domain.AllFilterTypes, InstallLatest: true}
	res := reconcile.Reconcile(
		pkgs("foo-2.0-1.x86_64"),
		snapshot("foo-1.0-1.x86_64", "bar-3.0-1.noarch"),
		opts,
	)

	assert.Equal(t, []string{
		"remove    foo-2.0-1.x86_64",
		"install   bar.noarch",
		"install   foo-1.0-1.x86_64",
	}, lines(res.Plan), "replacements stay pinned")

	opts.FilterTypes = domain.NewFilterTypes(domain.ActionReplace, domain.ActionRemove)
	res = reconcile.Reconcile(nil, snapshot("bar-3.0-1.noarch"), opts)
	assert.Empty(t, res.Plan, "latest installs are gated on install")
}

func TestReconcile_PinnedInstallIgnoresFilter(t *testing.T) {
	opts := domain.RestoreOptions{FilterTypes: domain.NewFilterTypes(domain.ActionRemove)}

	res := reconcile.Reconcile(nil, snapshot("bar-3.0-1.noarch"), opts)

	assert.Equal(t, []string{"install   bar-3.0-1.noarch"}, lines(res.Plan))
}

func TestReconcile_IgnoreArch(t *testing.T) {
	opts := domain.RestoreOptions{FilterTypes: domain.AllFilterTypes, IgnoreArch: true}

	res := reconcile.Reconcile(nil, snapshot("foo-2:1.0-1.x86_64"), opts)
	require.Len(t, res.Plan, 1)
	assert.Equal(t, "foo-2:1.0-1", res.Plan[0].Spec)
	assert.Empty(t, res.Plan[0].TargetArch)

	opts.InstallLatest = true
	res = reconcile.Reconcile(nil, snapshot("foo-2:1.0-1.x86_64"), opts)
	assert.Equal(t, "foo", res.Plan[0].Spec)
}

func TestReconcile_Deterministic(t *testing.T) {
	build := func() ([]domain.Package, domain.Snapshot) {
		return pkgs(
				"kernel-6.5.1-1.x86_64",
				"glibc-2.38-1.i686",
				"glibc-2.38-1.x86_64",
				"vim-2:9.0-1.x86_64",
			), snapshot(
				"glibc-2.38-2.x86_64",
				"glibc-2.38-1.i686",
				"kernel-6.6.1-1.x86_64",
				"nano-7.2-1.x86_64",
				"emacs-1:29.1-1.x86_64",
			)
	}

	installedA, snapA := build()
	installedB, snapB := build()
	// Reverse one input to rule out dependence on input order.
	for i, j := 0, len(installedB)-1; i < j; i, j = i+1, j-1 {
		installedB[i], installedB[j] = installedB[j], installedB[i]
	}

	first := reconcile.Reconcile(installedA, snapA, allTypes())
	second := reconcile.Reconcile(installedB, snapB, allTypes())

	assert.Equal(t, lines(first.Plan), lines(second.Plan))
	assert.Equal(t, first.Remaining, second.Remaining)
}

func TestReconcile_Idempotent(t *testing.T) {
	installed := pkgs("a-1.0-1.x86_64", "b-1.0-1.x86_64")
	snap := snapshot("a-1.0-1.x86_64", "b-2.0-1.x86_64", "c-1.0-1.noarch")

	first := reconcile.Reconcile(installed, snap, allTypes())
	second := reconcile.Reconcile(installed, snap, allTypes())

	assert.Equal(t, first, second)
}

func TestEngine_Plan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	ctx := context.Background()

	tracer.EXPECT().Start(ctx, "reconcile", gomock.Any()).Return(ctx, span)
	span.EXPECT().SetAttribute("installed", 1)
	span.EXPECT().SetAttribute("recorded", 1)
	tracer.EXPECT().EmitPlan(ctx, []string{
		"remove    foo-2.0-1.x86_64",
		"install   foo-1.0-1.x86_64",
	})
	span.EXPECT().End()

	engine := reconcile.NewEngine(tracer)
	res := engine.Plan(ctx, pkgs("foo-2.0-1.x86_64"), snapshot("foo-1.0-1.x86_64"), allTypes())

	assert.Len(t, res.Plan, 2)
}
