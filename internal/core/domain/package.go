package domain

import (
	"cmp"
	"strings"

	"go.trai.ch/zerr"
)

// Package identifies one concrete build of an rpm package.
// It is a value type and is never mutated after construction.
type Package struct {
	Name    string
	Epoch   string
	Version string
	Release string
	Arch    string
}

// Key identifies a package slot on a system: at most one package is
// installed per (name, arch).
type Key struct {
	Name string
	Arch string
}

// String renders the key as name.arch.
func (k Key) String() string {
	if k.Arch == "" {
		return k.Name
	}
	return k.Name + "." + k.Arch
}

// Key returns the (name, arch) identity key of the package.
func (p Package) Key() Key {
	return Key{Name: p.Name, Arch: p.Arch}
}

// EVR renders [epoch:]version-release.
func (p Package) EVR() string {
	evr := p.Version + "-" + p.Release
	if p.Epoch != "" {
		evr = p.Epoch + ":" + evr
	}
	return evr
}

// String renders the canonical spec name-[epoch:]version-release[.arch].
func (p Package) String() string {
	s := p.Name + "-" + p.EVR()
	if p.Arch != "" {
		s += "." + p.Arch
	}
	return s
}

// NEVRA renders name-epoch:version-release.arch with an explicit epoch.
func (p Package) NEVRA() string {
	return p.Name + "-" + p.epoch() + ":" + p.Version + "-" + p.Release + "." + p.Arch
}

// SameIdentity reports whether both packages denote the same build.
// An absent epoch is equal to epoch 0.
func (p Package) SameIdentity(other Package) bool {
	return p.Name == other.Name &&
		p.Arch == other.Arch &&
		p.epoch() == other.epoch() &&
		p.Version == other.Version &&
		p.Release == other.Release
}

// Compare orders packages by name, arch, epoch, version and release.
// The order is total: epochs that only differ in their spelling ("" and "0")
// are ordered by the raw value last.
func (p Package) Compare(other Package) int {
	if c := cmp.Compare(p.Name, other.Name); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Arch, other.Arch); c != 0 {
		return c
	}
	if c := compareEpoch(p.epoch(), other.epoch()); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Version, other.Version); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Release, other.Release); c != 0 {
		return c
	}
	return cmp.Compare(p.Epoch, other.Epoch)
}

func (p Package) epoch() string {
	if p.Epoch == "" {
		return "0"
	}
	return p.Epoch
}

// compareEpoch compares two digit-only epochs numerically.
func compareEpoch(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

// archMarkers maps the arch qualifiers rpm puts into provides to architectures.
var archMarkers = map[string]string{
	"x86-64":   "x86_64",
	"x86-32":   "i686",
	"aarch-64": "aarch64",
	"ppc-64":   "ppc64le",
	"s390-64":  "s390x",
}

// ParseSpec parses either a canonical spec (name-[epoch:]version-release[.arch])
// or a resolver expression (name[(marker)] = [epoch:]version-release).
func ParseSpec(text string) (Package, error) {
	s := strings.TrimSpace(text)
	if s == "" || strings.ContainsAny(s, "\t\n") {
		return Package{}, invalidSpec(text, "empty or multi-line spec")
	}

	if name, evr, ok := strings.Cut(s, " = "); ok {
		return parseExpression(text, name, evr)
	}
	if strings.Contains(s, " ") {
		return Package{}, invalidSpec(text, "unexpected whitespace")
	}
	return parseCanonical(text, s)
}

// MustParseSpec is like ParseSpec but panics on malformed input.
func MustParseSpec(text string) Package {
	p, err := ParseSpec(text)
	if err != nil {
		panic(err)
	}
	return p
}

func parseCanonical(raw, s string) (Package, error) {
	var p Package

	lastDash := strings.LastIndexByte(s, '-')
	if lastDash <= 0 {
		return Package{}, invalidSpec(raw, "missing release")
	}

	rest := s[lastDash+1:]
	if dot := strings.LastIndexByte(rest, '.'); dot >= 0 {
		p.Arch = rest[dot+1:]
		rest = rest[:dot]
		if p.Arch == "" {
			return Package{}, invalidSpec(raw, "empty arch")
		}
	}
	p.Release = rest

	head := s[:lastDash]
	verDash := strings.LastIndexByte(head, '-')
	if verDash <= 0 {
		return Package{}, invalidSpec(raw, "missing version")
	}
	p.Name = head[:verDash]

	if err := splitEpochVersion(head[verDash+1:], &p); err != nil {
		return Package{}, invalidSpec(raw, err.Error())
	}
	if p.Version == "" || p.Release == "" {
		return Package{}, invalidSpec(raw, "empty version or release")
	}
	return p, nil
}

func parseExpression(raw, name, evr string) (Package, error) {
	var p Package

	name = strings.TrimSpace(name)
	if open := strings.IndexByte(name, '('); open >= 0 {
		if !strings.HasSuffix(name, ")") {
			return Package{}, invalidSpec(raw, "unterminated arch marker")
		}
		marker := name[open+1 : len(name)-1]
		arch, ok := archMarkers[marker]
		if !ok {
			return Package{}, invalidSpec(raw, "unknown arch marker "+marker)
		}
		p.Arch = arch
		name = name[:open]
	}
	if name == "" {
		return Package{}, invalidSpec(raw, "empty name")
	}
	p.Name = name

	evr = strings.TrimSpace(evr)
	dash := strings.LastIndexByte(evr, '-')
	if dash <= 0 {
		return Package{}, invalidSpec(raw, "missing release")
	}
	p.Release = evr[dash+1:]

	if err := splitEpochVersion(evr[:dash], &p); err != nil {
		return Package{}, invalidSpec(raw, err.Error())
	}
	if p.Version == "" || p.Release == "" {
		return Package{}, invalidSpec(raw, "empty version or release")
	}
	return p, nil
}

func splitEpochVersion(s string, p *Package) error {
	epoch, version, ok := strings.Cut(s, ":")
	if !ok {
		p.Version = s
		return nil
	}
	if epoch == "" || strings.Trim(epoch, "0123456789") != "" {
		return zerr.New("epoch must be numeric")
	}
	p.Epoch = epoch
	p.Version = version
	return nil
}

func invalidSpec(text, reason string) error {
	err := zerr.Wrap(ErrInvalidSpec, "malformed package spec")
	err = zerr.With(err, "spec", text)
	return zerr.With(err, "reason", reason)
}
