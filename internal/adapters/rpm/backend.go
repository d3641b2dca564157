// Package rpm implements ports.Backend by driving the rpm and dnf binaries.
package rpm

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/go-ini/ini"
	"go.trai.ch/debugdump/internal/adapters/host"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	nevraFormat     = "%{NAME}\t%{EPOCH}\t%{VERSION}\t%{RELEASE}\t%{ARCH}\n"
	relationsFormat = "@" + nevraFormat + "[R\t%{REQUIRENEVRS}\n][C\t%{CONFLICTNEVRS}\n]"
	providesFormat  = "[%{PROVIDENEVRS}\n]"
	repoqueryFormat = "%{name}\t%{epoch}\t%{version}\t%{release}\t%{arch}\n"

	// gpgPubkey entries in the rpmdb are keys, not packages.
	gpgPubkey = "gpg-pubkey"
)

var _ ports.Backend = (*Backend)(nil)

// pluginGlob matches the python modules of installed dnf plugins.
var pluginGlob = "/usr/lib/python3*/site-packages/dnf-plugins/*.py"

// dnfConfig is the main dnf configuration file.
var dnfConfig = "/etc/dnf/dnf.conf"

// Backend talks to the local rpm database and dnf repositories.
type Backend struct {
	rpm    string
	dnf    string
	run    runFunc
	uname  func() (host.Uname, error)
	stdout io.Writer

	provides map[string][]domain.Capability
	queue    []string
}

// New creates a Backend using the binaries named in cfg.
func New(cfg domain.BackendConfig) *Backend {
	return newBackend(cfg, execRun)
}

func newBackend(cfg domain.BackendConfig, run runFunc) *Backend {
	rpmBin, dnfBin := cfg.RPMBinary, cfg.DNFBinary
	if rpmBin == "" {
		rpmBin = "rpm"
	}
	if dnfBin == "" {
		dnfBin = "dnf"
	}
	return &Backend{
		rpm:    rpmBin,
		dnf:    dnfBin,
		run:    run,
		uname:  host.ReadUname,
		stdout: os.Stdout,
	}
}

// Installed returns every package in the rpm database.
func (b *Backend) Installed(ctx context.Context) ([]domain.Package, error) {
	out, err := b.output(ctx, b.rpm, "-qa", "--qf", nevraFormat)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list installed packages")
	}

	var pkgs []domain.Package
	for _, line := range lines(out) {
		pkg, err := parseFields(line)
		if err != nil {
			return nil, err
		}
		if pkg.Name == gpgPubkey {
			continue
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

// Relations returns the requires and conflicts of every installed package.
func (b *Backend) Relations(ctx context.Context) ([]domain.Relations, error) {
	out, err := b.output(ctx, b.rpm, "-qa", "--qf", relationsFormat)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to query package relations")
	}

	var rels []domain.Relations
	for _, line := range lines(out) {
		tag, value, _ := strings.Cut(line, "\t")
		switch {
		case strings.HasPrefix(tag, "@"):
			pkg, err := parseFields(line[1:])
			if err != nil {
				return nil, err
			}
			rels = append(rels, domain.Relations{Package: pkg})
		case len(rels) == 0 || value == "" || value == "(none)":
			continue
		case tag == "R":
			cur := &rels[len(rels)-1]
			cur.Requires = append(cur.Requires, value)
		case tag == "C":
			cur := &rels[len(rels)-1]
			cur.Conflicts = append(cur.Conflicts, value)
		}
	}

	return slices.DeleteFunc(rels, func(r domain.Relations) bool {
		return r.Package.Name == gpgPubkey
	}), nil
}

// Provided reports whether an installed package provides expr. Versioned
// capabilities are matched against the provides of the rpm database; file
// paths and rich dependencies are delegated to rpm --whatprovides.
func (b *Backend) Provided(ctx context.Context, expr string) (bool, error) {
	req := domain.ParseCapability(expr)
	if strings.HasPrefix(req.Name, "/") || strings.HasPrefix(req.Name, "(") {
		res, err := b.run(ctx, nil, b.rpm, "-q", "--whatprovides", expr)
		if err != nil {
			return false, err
		}
		return res.code == 0, nil
	}

	if err := b.loadProvides(ctx); err != nil {
		return false, err
	}
	for _, p := range b.provides[req.Name] {
		if p.Satisfies(req) {
			return true, nil
		}
	}
	return false, nil
}

func (b *Backend) loadProvides(ctx context.Context) error {
	if b.provides != nil {
		return nil
	}
	out, err := b.output(ctx, b.rpm, "-qa", "--qf", providesFormat)
	if err != nil {
		return zerr.Wrap(err, "failed to query provides")
	}

	b.provides = make(map[string][]domain.Capability)
	for _, line := range lines(out) {
		c := domain.ParseCapability(line)
		b.provides[c.Name] = append(b.provides[c.Name], c)
	}
	return nil
}

// Repos returns the enabled repositories as reported by dnf repolist.
func (b *Backend) Repos(ctx context.Context) ([]domain.Repo, error) {
	out, err := b.output(ctx, b.dnf, "-q", "-v", "repolist", "--enabled")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list repositories")
	}
	return parseRepolist(out), nil
}

// Available lists the packages offered by repoID.
func (b *Backend) Available(ctx context.Context, repoID string) ([]domain.Package, error) {
	args := []string{"-q", "repoquery", "--repo=" + repoID, "--available", "--qf", repoqueryFormat}
	res, err := b.run(ctx, nil, b.dnf, args...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRepoAccess, err.Error()), "repo", repoID)
	}
	if res.code != 0 {
		return nil, zerr.With(commandFailed(domain.ErrRepoAccess, b.dnf, args, res), "repo", repoID)
	}

	var pkgs []domain.Package
	for _, line := range lines(res.stdout) {
		pkg, err := parseFields(line)
		if err != nil {
			return nil, zerr.With(err, "repo", repoID)
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

// Install checks that spec resolves in an enabled repository and queues it.
func (b *Backend) Install(ctx context.Context, spec string) error {
	out, err := b.output(ctx, b.dnf, "-q", "repoquery", "--available", "--qf", repoqueryFormat, spec)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve package"), "spec", spec)
	}
	if len(lines(out)) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrPackageNotAvailable, "no repository offers a match"), "spec", spec)
	}
	b.queue = append(b.queue, "install "+spec)
	return nil
}

// Remove queues the removal of pkg.
func (b *Backend) Remove(_ context.Context, pkg domain.Package) error {
	b.queue = append(b.queue, "remove "+pkg.String())
	return nil
}

// Apply runs the queued operations as a single dnf shell transaction.
func (b *Backend) Apply(ctx context.Context) error {
	if len(b.queue) == 0 {
		return nil
	}

	script := strings.Join(b.queue, "\n") + "\nrun\n"
	args := []string{"-y", "shell"}
	res, err := b.run(ctx, strings.NewReader(script), b.dnf, args...)
	if err != nil {
		return zerr.Wrap(domain.ErrTransactionFailed, err.Error())
	}
	_, _ = b.stdout.Write(res.stdout)
	if res.code != 0 {
		return commandFailed(domain.ErrTransactionFailed, b.dnf, args, res)
	}

	b.queue = nil
	return nil
}

// HostInfo gathers kernel, architecture and package manager details.
func (b *Backend) HostInfo(ctx context.Context) (domain.HostInfo, error) {
	u, err := b.uname()
	if err != nil {
		return domain.HostInfo{}, err
	}

	rpmVersion, err := b.firstLine(ctx, b.rpm, "--version")
	if err != nil {
		return domain.HostInfo{}, err
	}
	dnfVersion, err := b.firstLine(ctx, b.dnf, "--version")
	if err != nil {
		return domain.HostInfo{}, err
	}
	arch, err := b.firstLine(ctx, b.rpm, "--eval", "%{_arch}")
	if err != nil {
		return domain.HostInfo{}, err
	}
	// A system without system-release has no releasever; dnf reports it empty too.
	releasever, _ := b.firstLine(ctx, b.rpm, "-q", "--qf", "%{VERSION}\n", "--whatprovides", "system-release")
	excludes, err := mainExcludes(dnfConfig)
	if err != nil {
		return domain.HostInfo{}, err
	}

	return domain.HostInfo{
		Hostname:       u.Nodename,
		Release:        u.Release,
		Machine:        u.Machine,
		Arch:           arch,
		BaseArch:       host.BaseArch(arch),
		ReleaseVer:     releasever,
		RPMVersion:     strings.TrimPrefix(rpmVersion, "RPM version "),
		ManagerVersion: dnfVersion,
		Plugins:        plugins(),
		Excludes:       excludes,
	}, nil
}

// mainExcludes reads the global excludes from the [main] section of a dnf
// configuration file. A missing file has no excludes.
func mainExcludes(path string) ([]string, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{Loose: true, AllowPythonMultilineValues: true}, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHostInfoFailed.Error()), "path", path)
	}

	section := cfg.Section("main")
	var excludes []string
	// exclude is the older spelling of excludepkgs.
	for _, key := range []string{"excludepkgs", "exclude"} {
		if !section.HasKey(key) {
			continue
		}
		excludes = append(excludes, strings.FieldsFunc(section.Key(key).String(), func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}
	return excludes, nil
}

func (b *Backend) firstLine(ctx context.Context, name string, args ...string) (string, error) {
	out, err := b.output(ctx, name, args...)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrHostInfoFailed.Error())
	}
	if l := lines(out); len(l) > 0 {
		return l[0], nil
	}
	return "", nil
}

func plugins() []string {
	matches, _ := filepath.Glob(pluginGlob)
	var names []string
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), ".py")
		if strings.HasPrefix(name, "_") {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// parseFields parses a tab separated name, epoch, version, release, arch line.
func parseFields(line string) (domain.Package, error) {
	f := strings.Split(line, "\t")
	if len(f) != 5 {
		return domain.Package{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidSpec, "unexpected package query output"), "line", line)
	}
	epoch := f[1]
	if epoch == "(none)" || epoch == "0" {
		epoch = ""
	}
	return domain.Package{Name: f[0], Epoch: epoch, Version: f[2], Release: f[3], Arch: f[4]}, nil
}

// parseRepolist reads the "Key : value" blocks of dnf repolist -v.
func parseRepolist(out []byte) []domain.Repo {
	var repos []domain.Repo
	var cur *domain.Repo

	sc := bufio.NewScanner(strings.NewReader(string(out)))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if key == "repo-id" {
			repos = append(repos, domain.Repo{ID: value})
			cur = &repos[len(repos)-1]
			continue
		}
		if cur == nil {
			continue
		}
		switch key {
		case "repo-metalink":
			cur.Metalink = value
		case "repo-mirrors", "repo-mirrorlist":
			cur.Mirrorlist = value
		case "repo-baseurl":
			cur.BaseURLs = splitList(value)
		case "repo-exclude", "repo-excludepkgs":
			cur.Excludes = splitList(value)
		}
	}

	slices.SortFunc(repos, func(a, b domain.Repo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return repos
}

func splitList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' '
	})
}
