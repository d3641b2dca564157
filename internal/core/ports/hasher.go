package ports

import "go.trai.ch/debugdump/internal/core/domain"

// Hasher defines the interface for fingerprinting a package set.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// SetDigest returns a stable "count:digest" fingerprint of the given packages.
	// The order of pkgs does not affect the result.
	SetDigest(pkgs []domain.Package) string
}
