// Package problems finds broken dependencies in the installed package set.
package problems

import (
	"context"
	"strings"

	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
)

const (
	prereqMarker = "solvable:prereqmarker"
	rpmlibPrefix = "rpmlib("
)

// Scanner reports unmet requirements and satisfied conflicts.
type Scanner struct {
	querier ports.DependencyQuerier
}

// NewScanner creates a new Scanner.
func NewScanner(querier ports.DependencyQuerier) *Scanner {
	return &Scanner{querier: querier}
}

// Scan walks the installed set once. The result is unordered.
func (s *Scanner) Scan(ctx context.Context) (domain.Problems, error) {
	relations, err := s.querier.Relations(ctx)
	if err != nil {
		return domain.Problems{}, err
	}

	scan := &scan{
		querier:  s.querier,
		provided: make(map[string]bool),
		seen:     make(map[seenKey]struct{}),
	}

	var out domain.Problems
	for _, rel := range relations {
		for _, expr := range rel.Requires {
			if skipRequire(expr) {
				continue
			}
			ok, err := scan.isProvided(ctx, expr)
			if err != nil {
				return domain.Problems{}, err
			}
			if !ok && scan.first(requireKind, expr, rel.Package) {
				out.MissingRequires = append(out.MissingRequires, domain.Problem{Expr: expr, Owner: rel.Package})
			}
		}
		for _, expr := range rel.Conflicts {
			ok, err := scan.isProvided(ctx, expr)
			if err != nil {
				return domain.Problems{}, err
			}
			if ok && scan.first(conflictKind, expr, rel.Package) {
				out.ExistingConflicts = append(out.ExistingConflicts, domain.Problem{Expr: expr, Owner: rel.Package})
			}
		}
	}
	return out, nil
}

func skipRequire(expr string) bool {
	return expr == prereqMarker || strings.HasPrefix(expr, rpmlibPrefix)
}

type problemKind uint8

const (
	requireKind problemKind = iota
	conflictKind
)

type seenKey struct {
	kind  problemKind
	expr  string
	owner string
}

// scan holds the per-call memo of provider lookups.
type scan struct {
	querier  ports.DependencyQuerier
	provided map[string]bool
	seen     map[seenKey]struct{}
}

func (s *scan) isProvided(ctx context.Context, expr string) (bool, error) {
	if ok, cached := s.provided[expr]; cached {
		return ok, nil
	}
	ok, err := s.querier.Provided(ctx, expr)
	if err != nil {
		return false, err
	}
	s.provided[expr] = ok
	return ok, nil
}

func (s *scan) first(kind problemKind, expr string, owner domain.Package) bool {
	key := seenKey{kind: kind, expr: expr, owner: owner.NEVRA()}
	if _, dup := s.seen[key]; dup {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}
