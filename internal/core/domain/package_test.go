package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/debugdump/internal/core/domain"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Package
		wantErr bool
	}{
		{
			name:  "full spec with arch",
			input: "bash-5.2.15-3.fc38.x86_64",
			want:  domain.Package{Name: "bash", Version: "5.2.15", Release: "3.fc38", Arch: "x86_64"},
		},
		{
			name:  "spec with epoch",
			input: "shadow-utils-2:4.14.0-2.fc39.x86_64",
			want:  domain.Package{Name: "shadow-utils", Epoch: "2", Version: "4.14.0", Release: "2.fc39", Arch: "x86_64"},
		},
		{
			name:  "spec without arch",
			input: "foo-1.0-1",
			want:  domain.Package{Name: "foo", Version: "1.0", Release: "1"},
		},
		{
			name:  "dashed name",
			input: "python3-libs-3.12.1-1.noarch",
			want:  domain.Package{Name: "python3-libs", Version: "3.12.1", Release: "1", Arch: "noarch"},
		},
		{
			name:  "surrounding whitespace",
			input: "  foo-1.0-1.x86_64\n",
			want:  domain.Package{Name: "foo", Version: "1.0", Release: "1", Arch: "x86_64"},
		},
		{
			name:  "expression with arch marker",
			input: "bash(x86-64) = 5.2.15-3.fc38",
			want:  domain.Package{Name: "bash", Version: "5.2.15", Release: "3.fc38", Arch: "x86_64"},
		},
		{
			name:  "expression with epoch and no marker",
			input: "tzdata = 1:2024a-1.fc39",
			want:  domain.Package{Name: "tzdata", Epoch: "1", Version: "2024a", Release: "1.fc39"},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "name only", input: "bash", wantErr: true},
		{name: "missing version", input: "bash-1", wantErr: true},
		{name: "empty arch", input: "bash-1.0-1.", wantErr: true},
		{name: "non numeric epoch", input: "bash-x:1.0-1.x86_64", wantErr: true},
		{name: "inner whitespace", input: "bash 1.0-1.x86_64", wantErr: true},
		{name: "unknown arch marker", input: "bash(sparc-64) = 1.0-1", wantErr: true},
		{name: "expression without release", input: "bash = 1.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseSpec(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidSpec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPackage_String(t *testing.T) {
	tests := []struct {
		name string
		pkg  domain.Package
		want string
	}{
		{
			name: "no epoch",
			pkg:  domain.Package{Name: "foo", Version: "1.0", Release: "1", Arch: "x86_64"},
			want: "foo-1.0-1.x86_64",
		},
		{
			name: "with epoch",
			pkg:  domain.Package{Name: "foo", Epoch: "3", Version: "1.0", Release: "1", Arch: "x86_64"},
			want: "foo-3:1.0-1.x86_64",
		},
		{
			name: "no arch",
			pkg:  domain.Package{Name: "foo", Version: "1.0", Release: "1"},
			want: "foo-1.0-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pkg.String())
		})
	}
}

func TestParseSpec_RoundTrip(t *testing.T) {
	specs := []string{
		"foo-1.0-1.x86_64",
		"foo-0:1.0-1.x86_64",
		"kernel-core-6.6.9-200.fc39.x86_64",
		"perl-Errno-1.37-502.fc39.x86_64",
		"glibc-langpack-en-2.38-16.fc39.i686",
		"vim-enhanced-2:9.1.016-1.fc39.aarch64",
		"python3-3.12.1-2.fc39.noarch",
	}

	for _, s := range specs {
		t.Run(s, func(t *testing.T) {
			pkg, err := domain.ParseSpec(s)
			require.NoError(t, err)
			assert.Equal(t, s, pkg.String())

			again, err := domain.ParseSpec(pkg.String())
			require.NoError(t, err)
			assert.Equal(t, pkg, again)
		})
	}
}

func TestPackage_NEVRA(t *testing.T) {
	pkg := domain.MustParseSpec("foo-1.0-1.x86_64")
	assert.Equal(t, "foo-0:1.0-1.x86_64", pkg.NEVRA())
	assert.Equal(t, "1.0-1", pkg.EVR())
	assert.Equal(t, domain.Key{Name: "foo", Arch: "x86_64"}, pkg.Key())
	assert.Equal(t, "foo.x86_64", pkg.Key().String())
}

func TestPackage_SameIdentity(t *testing.T) {
	base := domain.MustParseSpec("foo-1.0-1.x86_64")

	assert.True(t, base.SameIdentity(domain.MustParseSpec("foo-0:1.0-1.x86_64")), "absent epoch equals 0")
	assert.False(t, base.SameIdentity(domain.MustParseSpec("foo-1:1.0-1.x86_64")))
	assert.False(t, base.SameIdentity(domain.MustParseSpec("foo-1.0-2.x86_64")))
	assert.False(t, base.SameIdentity(domain.MustParseSpec("foo-1.0-1.i686")))
	assert.False(t, base.SameIdentity(domain.MustParseSpec("bar-1.0-1.x86_64")))
}

func TestPackage_Compare(t *testing.T) {
	ordered := []string{
		"a-2.0-1.i686",
		"a-1.0-1.x86_64",
		"a-0:1.0-2.x86_64",
		"a-1:0.5-1.x86_64",
		"a-10:0.1-1.x86_64",
		"b-0.1-1.noarch",
	}

	for i := 0; i < len(ordered)-1; i++ {
		lo := domain.MustParseSpec(ordered[i])
		hi := domain.MustParseSpec(ordered[i+1])
		assert.Negative(t, lo.Compare(hi), "%s < %s", lo, hi)
		assert.Positive(t, hi.Compare(lo), "%s > %s", hi, lo)
	}

	t.Run("epoch spelling is a tie breaker", func(t *testing.T) {
		plain := domain.MustParseSpec("a-1.0-1.x86_64")
		zero := domain.MustParseSpec("a-0:1.0-1.x86_64")
		assert.Negative(t, plain.Compare(zero))
		assert.Zero(t, plain.Compare(plain))
	})
}
