package ports

import "go.trai.ch/debugdump/internal/core/domain"

// PlanRenderer presents reconciliation steps without executing them.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type PlanRenderer interface {
	// Render writes a single step.
	Render(step domain.Step) error
}
