package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/debugdump/internal/adapters/hasher"
	"go.trai.ch/debugdump/internal/core/domain"
)

func TestHasher_SetDigest(t *testing.T) {
	h := hasher.NewHasher()
	a := domain.MustParseSpec("foo-1.0-1.x86_64")
	b := domain.MustParseSpec("bar-2:3.0-1.noarch")

	first := h.SetDigest([]domain.Package{a, b})
	assert.Regexp(t, `^2:[0-9a-f]{16}$`, first)

	t.Run("order independent", func(t *testing.T) {
		assert.Equal(t, first, h.SetDigest([]domain.Package{b, a}))
	})

	t.Run("explicit zero epoch is the same package", func(t *testing.T) {
		zero := domain.MustParseSpec("foo-0:1.0-1.x86_64")
		assert.Equal(t, first, h.SetDigest([]domain.Package{zero, b}))
	})

	t.Run("content sensitive", func(t *testing.T) {
		other := domain.MustParseSpec("foo-1.0-2.x86_64")
		assert.NotEqual(t, first, h.SetDigest([]domain.Package{other, b}))
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, "0:ef46db3751d8e999", h.SetDigest(nil))
	})
}
