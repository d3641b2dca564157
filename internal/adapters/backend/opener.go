// Package backend selects the package manager backend named by configuration.
package backend

import (
	"context"

	"go.trai.ch/debugdump/internal/adapters/inventory"
	"go.trai.ch/debugdump/internal/adapters/rpm"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BackendOpener = (*Opener)(nil)

// Opener implements ports.BackendOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open returns the backend for cfg.Kind. An empty kind selects rpm.
func (o *Opener) Open(_ context.Context, cfg domain.BackendConfig) (ports.Backend, error) {
	switch cfg.Kind {
	case domain.BackendRPM, "":
		return rpm.New(cfg), nil
	case domain.BackendInventory:
		if cfg.InventoryPath == "" {
			return nil, zerr.Wrap(domain.ErrInventoryReadFailed, "no inventory file configured")
		}
		b, err := inventory.Load(cfg.InventoryPath)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, zerr.With(domain.ErrUnknownBackend, "backend", string(cfg.Kind))
	}
}
