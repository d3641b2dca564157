// Package hasher fingerprints package sets with xxhash.
package hasher

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes the RPMDB VERSIONS fingerprint of a package set.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// SetDigest returns "<count>:<xxhash64 of the sorted NEVRAs>".
func (h *Hasher) SetDigest(pkgs []domain.Package) string {
	nevras := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		nevras = append(nevras, p.NEVRA())
	}
	slices.Sort(nevras)

	digest := xxhash.New()
	for _, n := range nevras {
		_, _ = digest.WriteString(n)
		_, _ = digest.Write([]byte{0}) // Separator
	}

	return fmt.Sprintf("%d:%016x", len(nevras), digest.Sum64())
}
