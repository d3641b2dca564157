package domain

import (
	"maps"
	"slices"
)

// SnapshotEntry is one recorded package together with the action it requires.
type SnapshotEntry struct {
	Action  Action
	Package Package
}

// Compare orders entries by action, then by package.
func (e SnapshotEntry) Compare(other SnapshotEntry) int {
	if e.Action != other.Action {
		if e.Action < other.Action {
			return -1
		}
		return 1
	}
	return e.Package.Compare(other.Package)
}

// Snapshot holds the recorded packages keyed by (name, arch).
type Snapshot map[Key]SnapshotEntry

// Add records pkg tagged for installation, replacing any entry for the same key.
func (s Snapshot) Add(pkg Package) {
	s[pkg.Key()] = SnapshotEntry{Action: ActionInstall, Package: pkg}
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	return maps.Clone(s)
}

// Entries returns all entries in SnapshotEntry.Compare order.
func (s Snapshot) Entries() []SnapshotEntry {
	entries := slices.Collect(maps.Values(s))
	slices.SortFunc(entries, SnapshotEntry.Compare)
	return entries
}

// SortPackages sorts pkgs in place by Package.Compare.
func SortPackages(pkgs []Package) {
	slices.SortFunc(pkgs, Package.Compare)
}
