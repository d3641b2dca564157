// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/debugdump/internal/core/domain"
)

//go:generate mockgen -source=package_index.go -destination=mocks/mock_package_index.go -package=mocks

// PackageIndex is the view of the package database that dump and restore need.
type PackageIndex interface {
	// Installed returns every installed package.
	Installed(ctx context.Context) ([]domain.Package, error)

	// Repos returns the enabled repositories.
	Repos(ctx context.Context) ([]domain.Repo, error)

	// Available returns the packages offered by the repository with the given id.
	// It returns an error wrapping domain.ErrRepoAccess when the listing cannot be read.
	Available(ctx context.Context, repoID string) ([]domain.Package, error)

	// Install queues the installation of spec, which may be a name, name.arch
	// or a full package spec. It returns an error wrapping
	// domain.ErrPackageNotAvailable when no repository offers a match.
	Install(ctx context.Context, spec string) error

	// Remove queues the removal of an installed package.
	Remove(ctx context.Context, pkg domain.Package) error

	// Apply resolves and runs the queued transaction.
	Apply(ctx context.Context) error
}

// DependencyQuerier answers dependency questions about the installed set.
type DependencyQuerier interface {
	// Relations returns the requires and conflicts of every installed package.
	Relations(ctx context.Context) ([]domain.Relations, error)

	// Provided reports whether any installed package provides expr.
	Provided(ctx context.Context, expr string) (bool, error)
}

// HostInspector reports details of the running system.
type HostInspector interface {
	// HostInfo returns kernel, architecture and package manager details.
	HostInfo(ctx context.Context) (domain.HostInfo, error)
}

// Backend bundles everything a package manager backend offers.
type Backend interface {
	PackageIndex
	DependencyQuerier
	HostInspector
}

// BackendOpener creates a Backend from configuration.
type BackendOpener interface {
	// Open returns a ready to use backend.
	Open(ctx context.Context, cfg domain.BackendConfig) (Backend, error)
}
