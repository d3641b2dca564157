package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/debugdump/internal/adapters/snapshot"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
	"go.trai.ch/debugdump/internal/engine/problems"
	"go.trai.ch/zerr"
)

// DumpOptions configuration for the Dump method.
type DumpOptions struct {
	// Filename is the dump to write. Empty picks dump-<host>-<time>.txt.gz.
	Filename   string
	NoRepos    bool
	ConfigPath string
	Trace      bool
}

// Dump records the installed package set, its dependency problems and the
// repository contents into a dump file and returns its absolute path.
func (a *App) Dump(ctx context.Context, opts DumpOptions) (string, error) {
	defer a.startTrace(ctx, opts.Trace)()

	ctx, span := a.tracer.Start(ctx, "dump", ports.WithAttribute("norepos", opts.NoRepos))
	defer span.End()

	path, err := a.dump(ctx, opts)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	_, _ = fmt.Fprintf(a.stdout, "Output written to: %s\n", path)
	return path, nil
}

func (a *App) dump(ctx context.Context, opts DumpOptions) (string, error) {
	cfg, backend, err := a.open(ctx, opts.ConfigPath)
	if err != nil {
		return "", err
	}

	info, err := backend.HostInfo(ctx)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read system information")
	}

	filename := opts.Filename
	if filename == "" {
		filename = domain.DefaultDumpName(info.Hostname, a.now())
	}
	path, err := filepath.Abs(filename)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "file", filename)
	}

	installed, err := backend.Installed(ctx)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read installed packages")
	}
	domain.SortPackages(installed)

	found, err := problems.NewScanner(backend).Scan(ctx)
	if err != nil {
		return "", zerr.Wrap(err, "failed to scan for dependency problems")
	}

	sections := []snapshot.Section{
		{Label: snapshot.SectionSystemInfo, Lines: systemInfoLines(info)},
		{Label: snapshot.SectionDNFInfo, Lines: dnfInfoLines(info, cfg.Excludes)},
		{Label: snapshot.SectionProblems, Lines: found.Lines()},
		{Label: snapshot.SectionRPMDB, Lines: specLines(installed)},
	}
	if !opts.NoRepos {
		repoLines, err := a.repoLines(ctx, backend)
		if err != nil {
			return "", err
		}
		sections = append(sections, snapshot.Section{Label: snapshot.SectionRepos, Lines: repoLines})
	}
	sections = append(sections, snapshot.Section{
		Label: snapshot.SectionVersions,
		Lines: []string{"all: " + a.hasher.SetDigest(installed)},
	})

	if err := writeDump(path, sections); err != nil {
		return "", err
	}
	return path, nil
}

func writeDump(path string, sections []snapshot.Section) error {
	w, err := snapshot.Create(path)
	if err != nil {
		return err
	}
	if err := snapshot.Write(w, snapshot.VersionMarker, sections...); err != nil {
		_ = w.Close()
		return zerr.With(err, "file", path)
	}
	if err := w.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "file", path)
	}
	return nil
}

func systemInfoLines(info domain.HostInfo) []string {
	return []string{
		"uname: " + info.Release + ", " + info.Machine,
		"rpm ver: " + info.RPMVersion,
		"go ver: " + runtime.Version(),
	}
}

// dnfInfoLines reports the package manager settings. Excludes configured
// for debugdump follow the ones the package manager itself applies.
func dnfInfoLines(info domain.HostInfo, extraExcludes []string) []string {
	excludes := slices.Clone(info.Excludes)
	for _, e := range extraExcludes {
		if !slices.Contains(excludes, e) {
			excludes = append(excludes, e)
		}
	}
	return []string{
		"arch: " + info.Arch,
		"basearch: " + info.BaseArch,
		"releasever: " + info.ReleaseVer,
		"dnf ver: " + info.ManagerVersion,
		"enabled plugins: " + strings.Join(info.Plugins, ","),
		"global excludes: " + strings.Join(excludes, ","),
	}
}

func specLines(pkgs []domain.Package) []string {
	lines := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		lines = append(lines, p.String())
	}
	return lines
}

// repoLines lists every enabled repository with its packages. A repository
// whose listing fails is reported in place and skipped.
func (a *App) repoLines(ctx context.Context, backend ports.PackageIndex) ([]string, error) {
	repos, err := backend.Repos(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list repositories")
	}
	sortRepos(repos)

	var lines []string
	for _, repo := range repos {
		available, err := backend.Available(ctx, repo.ID)
		if err != nil {
			a.logger.Error(zerr.With(zerr.Wrap(err, "failed to list repository"), "repo", repo.ID))
			lines = append(lines, "Error accessing repo "+repo.ID+": "+repoError(err))
			continue
		}
		domain.SortPackages(available)

		lines = append(lines,
			"%"+repo.ID+" - "+repo.URL(),
			"excludes: "+strings.Join(repo.Excludes, ","),
		)
		lines = append(lines, specLines(available)...)
	}
	return lines, nil
}

// repoError returns the most specific description of a failed listing: the
// command's stderr when there is one, else the top-level message.
func repoError(err error) string {
	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		return err.Error()
	}
	if stderr, ok := zErr.Metadata()["stderr"].(string); ok && stderr != "" {
		return stderr
	}
	if msg := zErr.Message(); msg != "" {
		return msg
	}
	return err.Error()
}

func sortRepos(repos []domain.Repo) {
	slices.SortFunc(repos, func(a, b domain.Repo) int {
		return strings.Compare(a.ID, b.ID)
	})
}
