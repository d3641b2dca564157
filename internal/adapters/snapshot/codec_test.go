package snapshot_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/debugdump/internal/adapters/snapshot"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := snapshot.Write(&buf, snapshot.VersionMarker,
		snapshot.Section{Label: snapshot.SectionSystemInfo, Lines: []string{"uname: 6.6.9-200.fc39.x86_64, x86_64"}},
		snapshot.Section{Label: snapshot.SectionProblems},
		snapshot.Section{Label: snapshot.SectionRPMDB, Lines: []string{
			"bash-5.2.26-1.fc39.x86_64",
			"tzdata-2024a-1.fc39.noarch",
		}},
		snapshot.Section{Label: snapshot.SectionVersions, Lines: []string{"all: 2:5a1c0ee4d8b5c1a2"}},
	)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "write_sections", buf.Bytes())
}

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name: "stops at next section",
			input: "dnf-debug-dump version 1\n" +
				"%%SYSTEM INFO\n" +
				"  uname: 6.6.9, x86_64\n" +
				"%%RPMDB\n" +
				"  foo-1.0-1.x86_64\n" +
				"  bar-1:2.0-3.noarch\n" +
				"%%REPOS\n" +
				"  %fedora - https://mirrors.example/fedora\n" +
				"  baz-1.0-1.x86_64\n",
			want: []string{"bar-1:2.0-3.noarch", "foo-1.0-1.x86_64"},
		},
		{
			name: "stops at blank line",
			input: "dnf-debug-dump version 1\n" +
				"%%RPMDB\n" +
				"  foo-1.0-1.x86_64\n" +
				"\n" +
				"  bar-1.0-1.x86_64\n",
			want: []string{"foo-1.0-1.x86_64"},
		},
		{
			name: "last line without newline",
			input: "dnf-debug-dump version 1\n" +
				"%%RPMDB\n" +
				"  foo-1.0-1.x86_64",
			want: []string{"foo-1.0-1.x86_64"},
		},
		{
			name: "later entry wins",
			input: "dnf-debug-dump version 1\n" +
				"%%RPMDB\n" +
				"  foo-1.0-1.x86_64\n" +
				"  foo-2.0-1.x86_64\n",
			want: []string{"foo-2.0-1.x86_64"},
		},
		{
			name:  "no rpmdb section",
			input: "dnf-debug-dump version 1\n%%SYSTEM INFO\n  uname: x\n",
			want:  nil,
		},
		{
			name: "problems section is not the rpmdb section",
			input: "dnf-debug-dump version 1\n" +
				"%%RPMDB PROBLEMS\n" +
				"  Package foo-1.0-1.x86_64 requires bar\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := snapshot.Read(strings.NewReader(tt.input))
			require.NoError(t, err)

			var got []string
			for _, p := range recorded(snap) {
				got = append(got, p.String())
			}
			assert.Equal(t, tt.want, got)

			for _, e := range snap {
				assert.Equal(t, domain.ActionInstall, e.Action)
			}
		})
	}
}

func TestRead_BadVersion(t *testing.T) {
	inputs := map[string]string{
		"empty":           "",
		"other version":   "dnf-debug-dump version 2\n%%RPMDB\n  foo-1.0-1.x86_64\n",
		"missing newline": "dnf-debug-dump version 1",
		"trailing space":  "dnf-debug-dump version 1 \n",
		"yum dump":        "yum-debug-dump version 1\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := snapshot.Read(strings.NewReader(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrBadVersion)
		})
	}
}

func TestRead_InvalidSpec(t *testing.T) {
	input := "dnf-debug-dump version 1\n" +
		"%%RPMDB\n" +
		"  foo-1.0-1.x86_64\n" +
		"  not-a-valid spec\n"

	snap, err := snapshot.Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, domain.ErrInvalidSpec)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 4, zErr.Metadata()["line"])
}

func TestRoundTrip(t *testing.T) {
	pkgs := []domain.Package{
		domain.MustParseSpec("bash-5.2.26-1.fc39.x86_64"),
		domain.MustParseSpec("shadow-utils-2:4.14.0-2.fc39.x86_64"),
		domain.MustParseSpec("tzdata-2024a-1.fc39.noarch"),
	}
	lines := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		lines = append(lines, p.String())
	}

	var buf bytes.Buffer
	require.NoError(t, snapshot.Write(&buf, snapshot.VersionMarker,
		snapshot.Section{Label: snapshot.SectionRPMDB, Lines: lines},
		snapshot.Section{Label: snapshot.SectionVersions, Lines: []string{"all: 3:0"}},
	))

	snap, err := snapshot.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, pkgs, recorded(snap))
}

// recorded lists the snapshot's packages in entry order.
func recorded(snap domain.Snapshot) []domain.Package {
	var pkgs []domain.Package
	for _, e := range snap.Entries() {
		pkgs = append(pkgs, e.Package)
	}
	return pkgs
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_Error(t *testing.T) {
	w := snapshot.NewWriter(failingWriter{})
	w.WriteHeader(snapshot.VersionMarker)
	w.WriteSection(snapshot.SectionRPMDB, strings.Repeat("x", 8192))

	err := w.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), domain.ErrSnapshotWriteFailed.Error())
}
