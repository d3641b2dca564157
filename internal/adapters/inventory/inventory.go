// Package inventory implements ports.Backend over a YAML description of a
// system, for offline inspection and tests.
package inventory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"slices"

	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Backend = (*Backend)(nil)

type installed struct {
	pkg       domain.Package
	provides  []domain.Capability
	requires  []string
	conflicts []string
	// extra keeps the declared provides for writing the file back.
	extra []string
}

type repo struct {
	info     domain.Repo
	disabled bool
	err      string
	packages []domain.Package
}

type operation struct {
	kind domain.StepKind
	pkg  domain.Package
}

// Backend is an in-memory package database loaded from an inventory file.
type Backend struct {
	path      string
	host      HostDTO
	installed []installed
	repos     []repo
	queue     []operation
}

// Load reads the inventory at path.
func Load(path string) (*Backend, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInventoryReadFailed, err.Error()), "path", path)
	}

	b, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	b.path = path
	return b, nil
}

// Parse builds a Backend from inventory YAML. The result is not tied to a
// file, so Apply only changes memory.
func Parse(data []byte) (*Backend, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(domain.ErrInventoryParseFailed, err.Error())
	}

	b := &Backend{host: file.Host}
	for _, dto := range file.Installed {
		pkg, err := domain.ParseSpec(dto.Package)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrInventoryParseFailed.Error())
		}
		b.installed = append(b.installed, newInstalled(pkg, dto))
	}
	for _, dto := range file.Repos {
		r := repo{
			info: domain.Repo{
				ID:         dto.ID,
				Metalink:   dto.Metalink,
				Mirrorlist: dto.Mirrorlist,
				BaseURLs:   dto.BaseURLs,
				Excludes:   dto.Excludes,
			},
			disabled: dto.Disabled,
			err:      dto.Error,
		}
		for _, spec := range dto.Packages {
			pkg, err := domain.ParseSpec(spec)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrInventoryParseFailed.Error()), "repo", dto.ID)
			}
			r.packages = append(r.packages, pkg)
		}
		b.repos = append(b.repos, r)
	}
	return b, nil
}

func newInstalled(pkg domain.Package, dto InstalledDTO) installed {
	inst := installed{
		pkg:       pkg,
		provides:  domain.ProvideOf(pkg),
		requires:  dto.Requires,
		conflicts: dto.Conflicts,
		extra:     dto.Provides,
	}
	for _, p := range dto.Provides {
		inst.provides = append(inst.provides, domain.ParseCapability(p))
	}
	return inst
}

// Installed returns the installed packages in file order.
func (b *Backend) Installed(_ context.Context) ([]domain.Package, error) {
	pkgs := make([]domain.Package, 0, len(b.installed))
	for _, inst := range b.installed {
		pkgs = append(pkgs, inst.pkg)
	}
	return pkgs, nil
}

// Relations returns the declared requires and conflicts.
func (b *Backend) Relations(_ context.Context) ([]domain.Relations, error) {
	rels := make([]domain.Relations, 0, len(b.installed))
	for _, inst := range b.installed {
		rels = append(rels, domain.Relations{
			Package:   inst.pkg,
			Requires:  inst.requires,
			Conflicts: inst.conflicts,
		})
	}
	return rels, nil
}

// Provided reports whether any installed package provides expr.
func (b *Backend) Provided(_ context.Context, expr string) (bool, error) {
	req := domain.ParseCapability(expr)
	for _, inst := range b.installed {
		for _, p := range inst.provides {
			if p.Satisfies(req) {
				return true, nil
			}
		}
	}
	return false, nil
}

// Repos returns the enabled repositories.
func (b *Backend) Repos(_ context.Context) ([]domain.Repo, error) {
	var repos []domain.Repo
	for _, r := range b.repos {
		if !r.disabled {
			repos = append(repos, r.info)
		}
	}
	return repos, nil
}

// Available lists the packages of the repository repoID.
func (b *Backend) Available(_ context.Context, repoID string) ([]domain.Package, error) {
	for _, r := range b.repos {
		if r.info.ID != repoID || r.disabled {
			continue
		}
		if r.err != "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrRepoAccess, r.err), "repo", repoID)
		}
		return slices.Clone(r.packages), nil
	}
	return nil, zerr.With(domain.ErrRepoNotFound, "repo", repoID)
}

// Install resolves spec against the enabled repositories and queues the
// highest matching build.
func (b *Backend) Install(_ context.Context, spec string) error {
	var best domain.Package
	found := false
	for _, r := range b.repos {
		if r.disabled || r.err != "" {
			continue
		}
		for _, pkg := range r.packages {
			if !Matches(spec, pkg) {
				continue
			}
			if !found || domain.CompareEVR(pkg.EVRTriple(), best.EVRTriple()) > 0 {
				best = pkg
				found = true
			}
		}
	}
	if !found {
		return zerr.With(zerr.Wrap(domain.ErrPackageNotAvailable, "no repository offers a match"), "spec", spec)
	}
	b.queue = append(b.queue, operation{kind: domain.StepInstall, pkg: best})
	return nil
}

// Remove queues the removal of an installed package.
func (b *Backend) Remove(_ context.Context, pkg domain.Package) error {
	if b.indexOf(pkg) < 0 {
		return zerr.With(domain.ErrPackageNotInstalled, "spec", pkg.String())
	}
	b.queue = append(b.queue, operation{kind: domain.StepRemove, pkg: pkg})
	return nil
}

// Apply performs the queued removals, then the queued installs. An install
// replaces an installed package with the same name and architecture. When
// the backend was loaded from a file the new state is written back.
func (b *Backend) Apply(_ context.Context) error {
	if len(b.queue) == 0 {
		return nil
	}

	for _, op := range b.queue {
		if op.kind != domain.StepRemove {
			continue
		}
		if i := b.indexOf(op.pkg); i >= 0 {
			b.installed = slices.Delete(b.installed, i, i+1)
		}
	}
	for _, op := range b.queue {
		if op.kind != domain.StepInstall {
			continue
		}
		inst := newInstalled(op.pkg, InstalledDTO{})
		i := slices.IndexFunc(b.installed, func(cur installed) bool {
			return cur.pkg.Key() == op.pkg.Key()
		})
		if i >= 0 {
			b.installed[i] = inst
		} else {
			b.installed = append(b.installed, inst)
		}
	}
	b.queue = nil

	if b.path == "" {
		return nil
	}
	return b.save()
}

// HostInfo returns the host section of the inventory.
func (b *Backend) HostInfo(_ context.Context) (domain.HostInfo, error) {
	return domain.HostInfo{
		Hostname:       b.host.Hostname,
		Release:        b.host.Release,
		Machine:        b.host.Machine,
		Arch:           b.host.Arch,
		BaseArch:       b.host.BaseArch,
		ReleaseVer:     b.host.ReleaseVer,
		RPMVersion:     b.host.RPMVersion,
		ManagerVersion: b.host.DNFVersion,
		Plugins:        b.host.Plugins,
		Excludes:       b.host.Excludes,
	}, nil
}

func (b *Backend) indexOf(pkg domain.Package) int {
	return slices.IndexFunc(b.installed, func(cur installed) bool {
		return cur.pkg.SameIdentity(pkg)
	})
}

func (b *Backend) save() error {
	file := File{Host: b.host}
	for _, inst := range b.installed {
		file.Installed = append(file.Installed, InstalledDTO{
			Package:   inst.pkg.String(),
			Provides:  inst.extra,
			Requires:  inst.requires,
			Conflicts: inst.conflicts,
		})
	}
	for _, r := range b.repos {
		dto := RepoDTO{
			ID:         r.info.ID,
			Disabled:   r.disabled,
			Metalink:   r.info.Metalink,
			Mirrorlist: r.info.Mirrorlist,
			BaseURLs:   r.info.BaseURLs,
			Excludes:   r.info.Excludes,
			Error:      r.err,
		}
		for _, pkg := range r.packages {
			dto.Packages = append(dto.Packages, pkg.String())
		}
		file.Repos = append(file.Repos, dto)
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return zerr.Wrap(domain.ErrTransactionFailed, err.Error())
	}
	if err := os.WriteFile(b.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrTransactionFailed, err.Error()), "path", b.path)
	}
	return nil
}
