package domain

import (
	"cmp"
	"slices"
)

// Relations holds the dependency expressions an installed package declares.
type Relations struct {
	Package   Package
	Requires  []string
	Conflicts []string
}

// Problem pairs a dependency expression with the installed package that declares it.
type Problem struct {
	Expr  string
	Owner Package
}

// Compare orders problems by owner, then expression.
func (p Problem) Compare(other Problem) int {
	if c := p.Owner.Compare(other.Owner); c != 0 {
		return c
	}
	return cmp.Compare(p.Expr, other.Expr)
}

// Problems is the result of scanning the installed set for broken dependencies.
type Problems struct {
	// MissingRequires lists requirements no installed package provides.
	MissingRequires []Problem
	// ExistingConflicts lists conflicts an installed package provides.
	ExistingConflicts []Problem
}

// Lines renders the problems as report lines in display order.
func (p Problems) Lines() []string {
	requires := slices.Clone(p.MissingRequires)
	conflicts := slices.Clone(p.ExistingConflicts)
	slices.SortFunc(requires, Problem.Compare)
	slices.SortFunc(conflicts, Problem.Compare)

	lines := make([]string, 0, len(requires)+len(conflicts))
	for _, pr := range requires {
		lines = append(lines, "Package "+pr.Owner.String()+" requires "+pr.Expr)
	}
	for _, pr := range conflicts {
		lines = append(lines, "Package "+pr.Owner.String()+" conflicts with "+pr.Expr)
	}
	return lines
}

// Repo describes an enabled package repository.
type Repo struct {
	ID         string
	Metalink   string
	Mirrorlist string
	BaseURLs   []string
	Excludes   []string
}

// URL returns the metalink, else the mirrorlist, else the first base URL.
func (r Repo) URL() string {
	switch {
	case r.Metalink != "":
		return r.Metalink
	case r.Mirrorlist != "":
		return r.Mirrorlist
	case len(r.BaseURLs) > 0:
		return r.BaseURLs[0]
	default:
		return ""
	}
}

// HostInfo describes the system a dump is taken on.
type HostInfo struct {
	Hostname       string
	Release        string
	Machine        string
	Arch           string
	BaseArch       string
	ReleaseVer     string
	RPMVersion     string
	ManagerVersion string
	Plugins        []string
	// Excludes are the global package excludes configured in the package manager.
	Excludes []string
}

// BackendKind selects a package index implementation.
type BackendKind string

const (
	// BackendRPM drives the rpm and dnf command line tools.
	BackendRPM BackendKind = "rpm"
	// BackendInventory reads a YAML inventory file.
	BackendInventory BackendKind = "inventory"
)

// BackendConfig carries what is needed to open a package index.
type BackendConfig struct {
	Kind          BackendKind
	InventoryPath string
	RPMBinary     string
	DNFBinary     string
}
