package executor_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/debugdump/internal/adapters/telemetry"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports/mocks"
	"go.trai.ch/debugdump/internal/engine/executor"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func testPlan() domain.Plan {
	old := domain.MustParseSpec("foo-2.0-1.x86_64")
	return domain.Plan{
		{Kind: domain.StepRemove, Reason: domain.ActionReplace, Package: old, Spec: old.String()},
		{Kind: domain.StepInstall, Reason: domain.ActionInstall, Spec: "baz-9.9-1.x86_64"},
		{Kind: domain.StepInstall, Reason: domain.ActionReplace, Spec: "foo-1.0-1.x86_64"},
	}
}

func TestExecutor_DryRunRendersOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockPackageIndex(ctrl)
	renderer := mocks.NewMockPlanRenderer(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	plan := testPlan()
	gomock.InOrder(
		renderer.EXPECT().Render(plan[0]).Return(nil),
		renderer.EXPECT().Render(plan[1]).Return(nil),
		renderer.EXPECT().Render(plan[2]).Return(nil),
	)

	exec := executor.NewExecutor(index, renderer, logger, telemetry.NewNoOpTracer())
	report, err := exec.Execute(context.Background(), plan, true)

	require.NoError(t, err)
	assert.False(t, report.Failed())
}

func TestExecutor_DryRunRenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockPlanRenderer(ctrl)
	renderErr := errors.New("broken pipe")
	renderer.EXPECT().Render(gomock.Any()).Return(renderErr)

	exec := executor.NewExecutor(mocks.NewMockPackageIndex(ctrl), renderer, mocks.NewMockLogger(ctrl), telemetry.NewNoOpTracer())
	_, err := exec.Execute(context.Background(), testPlan(), true)

	require.ErrorIs(t, err, renderErr)
}

func TestExecutor_UnavailablePackageContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockPackageIndex(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	ctx := context.Background()
	plan := testPlan()

	gomock.InOrder(
		index.EXPECT().Remove(gomock.Any(), plan[0].Package).Return(nil),
		index.EXPECT().Install(gomock.Any(), "baz-9.9-1.x86_64").
			Return(zerr.With(zerr.Wrap(domain.ErrPackageNotAvailable, "no match"), "spec", "baz-9.9-1.x86_64")),
		logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
			assert.ErrorIs(t, err, domain.ErrPackageNotAvailable)
			assert.True(t, strings.HasPrefix(err.Error(), "Package baz-9.9-1.x86_64 is not available"))
		}),
		index.EXPECT().Install(gomock.Any(), "foo-1.0-1.x86_64").Return(nil),
		index.EXPECT().Apply(gomock.Any()).Return(nil),
	)

	exec := executor.NewExecutor(index, mocks.NewMockPlanRenderer(ctrl), logger, telemetry.NewNoOpTracer())
	report, err := exec.Execute(ctx, plan, false)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Executed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "baz-9.9-1.x86_64", report.Failures[0].Step.Spec)
	assert.ErrorIs(t, report.Failures[0].Err, domain.ErrPackageNotAvailable)
}

func TestExecutor_OtherStepErrorIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockPackageIndex(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	plan := testPlan()[:1]

	index.EXPECT().Remove(gomock.Any(), plan[0].Package).Return(domain.ErrPackageNotInstalled)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrPackageNotInstalled)
		assert.Contains(t, err.Error(), "failed to remove package")
	})

	exec := executor.NewExecutor(index, mocks.NewMockPlanRenderer(ctrl), logger, telemetry.NewNoOpTracer())
	report, err := exec.Execute(context.Background(), plan, false)

	require.NoError(t, err, "nothing queued, nothing applied")
	assert.True(t, report.Failed())
	assert.Zero(t, report.Executed)
}

func TestExecutor_ApplyErrorIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockPackageIndex(ctrl)
	plan := domain.Plan{{Kind: domain.StepInstall, Spec: "bar.noarch"}}

	index.EXPECT().Install(gomock.Any(), "bar.noarch").Return(nil)
	index.EXPECT().Apply(gomock.Any()).Return(domain.ErrTransactionFailed)

	exec := executor.NewExecutor(index, mocks.NewMockPlanRenderer(ctrl), mocks.NewMockLogger(ctrl), telemetry.NewNoOpTracer())
	_, err := exec.Execute(context.Background(), plan, false)

	require.ErrorIs(t, err, domain.ErrTransactionFailed)
}

func TestExecutor_StepSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockPackageIndex(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	ctx := context.Background()
	stepErr := zerr.Wrap(domain.ErrPackageNotAvailable, "no match")

	tracer.EXPECT().Start(gomock.Any(), "restore.step", gomock.Any()).Return(ctx, span)
	index.EXPECT().Install(gomock.Any(), "qux").Return(stepErr)
	span.EXPECT().RecordError(stepErr)
	span.EXPECT().End()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, strings.HasPrefix(err.Error(), "Package qux is not available"))
	})

	exec := executor.NewExecutor(index, mocks.NewMockPlanRenderer(ctrl), logger, tracer)
	_, err := exec.Execute(ctx, domain.Plan{{Kind: domain.StepInstall, Spec: "qux"}}, false)

	require.NoError(t, err)
}
