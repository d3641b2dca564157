// Package snapshot reads and writes the line-oriented dump file format.
//
// A dump starts with a version marker line, followed by sections that open
// with a "%%<LABEL>" line. Data lines inside a section are indented by two
// spaces. Restores only consume the RPMDB section.
package snapshot

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/zerr"
)

// VersionMarker is the first line of every dump.
const VersionMarker = "dnf-debug-dump version 1"

// Section labels in the order a dump writes them.
const (
	SectionSystemInfo = "SYSTEM INFO"
	SectionDNFInfo    = "DNF INFO"
	SectionProblems   = "RPMDB PROBLEMS"
	SectionRPMDB      = "RPMDB"
	SectionRepos      = "REPOS"
	SectionVersions   = "RPMDB VERSIONS"
)

const (
	sectionPrefix = "%%"
	indent        = "  "
)

// Section is a labelled block of data lines.
type Section struct {
	Label string
	Lines []string
}

// Writer emits a dump incrementally. The first write error is kept and
// returned by Flush; later writes are skipped.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the version marker line.
func (w *Writer) WriteHeader(marker string) {
	w.write(marker + "\n")
}

// WriteSection opens a new section and writes lines into it.
func (w *Writer) WriteSection(label string, lines ...string) {
	w.write(sectionPrefix + label + "\n")
	for _, line := range lines {
		w.WriteLine(line)
	}
}

// WriteLine writes an indented data line into the current section.
func (w *Writer) WriteLine(text string) {
	w.write(indent + text + "\n")
}

// Flush writes any buffered data and reports the first error seen.
func (w *Writer) Flush() error {
	if w.err == nil {
		w.err = w.w.Flush()
	}
	if w.err != nil {
		return zerr.Wrap(w.err, domain.ErrSnapshotWriteFailed.Error())
	}
	return nil
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}

// Write emits marker followed by sections.
func Write(w io.Writer, marker string, sections ...Section) error {
	sw := NewWriter(w)
	sw.WriteHeader(marker)
	for _, s := range sections {
		sw.WriteSection(s.Label, s.Lines...)
	}
	return sw.Flush()
}

// Read parses the RPMDB section of a dump into a snapshot whose entries are
// all tagged for installation. Later lines for the same (name, arch) win.
// A dump without an RPMDB section yields an empty snapshot.
func Read(r io.Reader) (domain.Snapshot, error) {
	br := bufio.NewReader(r)

	first, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error())
	}
	if first != VersionMarker+"\n" {
		return nil, zerr.With(zerr.Wrap(domain.ErrBadVersion, "unexpected version marker"), "marker", strings.TrimSpace(first))
	}

	snap := domain.Snapshot{}
	inRPMDB := false
	lineNo := 1

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "line", lineNo+1)
		}
		if line == "" && err != nil {
			return snap, nil
		}
		lineNo++
		text := strings.TrimSuffix(line, "\n")

		if !inRPMDB {
			inRPMDB = text == sectionPrefix+SectionRPMDB
		} else {
			if !strings.HasPrefix(text, indent) || strings.TrimSpace(text) == "" {
				return snap, nil
			}
			pkg, perr := domain.ParseSpec(text)
			if perr != nil {
				return nil, zerr.With(perr, "line", lineNo)
			}
			snap.Add(pkg)
		}

		if err != nil {
			return snap, nil
		}
	}
}
