package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Action is the reason a package change is made during a restore.
// The zero value is invalid.
type Action uint8

const (
	// ActionInstall marks a snapshot package that is absent from the system.
	ActionInstall Action = iota + 1
	// ActionReplace marks a snapshot package whose slot holds a different build.
	ActionReplace
	// ActionRemove marks an installed package that has no snapshot entry.
	ActionRemove
)

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case ActionInstall:
		return "install"
	case ActionReplace:
		return "replace"
	case ActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the defined actions.
func (a Action) Valid() bool {
	return a >= ActionInstall && a <= ActionRemove
}

// ParseAction parses an action name.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "install":
		return ActionInstall, nil
	case "replace":
		return ActionReplace, nil
	case "remove":
		return ActionRemove, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrInvalidAction, "cannot parse action"), "action", s)
	}
}

// FilterTypes is the set of actions a restore is allowed to carry out.
type FilterTypes uint8

// AllFilterTypes permits every action.
const AllFilterTypes = FilterTypes(1<<ActionInstall | 1<<ActionReplace | 1<<ActionRemove)

// NewFilterTypes builds a set from the given actions.
func NewFilterTypes(actions ...Action) FilterTypes {
	var f FilterTypes
	for _, a := range actions {
		f |= 1 << a
	}
	return f
}

// ParseFilterTypes parses action names separated by commas or whitespace,
// e.g. "install, remove" or "install,remove,replace".
func ParseFilterTypes(values ...string) (FilterTypes, error) {
	var f FilterTypes
	for _, v := range values {
		for _, field := range strings.Fields(strings.ReplaceAll(v, ",", " ")) {
			a, err := ParseAction(field)
			if err != nil {
				return 0, zerr.With(zerr.Wrap(ErrInvalidFilterType, "cannot parse filter types"), "value", field)
			}
			f |= 1 << a
		}
	}
	return f, nil
}

// Has reports whether a is permitted.
func (f FilterTypes) Has(a Action) bool {
	return a.Valid() && f&(1<<a) != 0
}

// String renders the set in install, replace, remove order.
func (f FilterTypes) String() string {
	var names []string
	for _, a := range []Action{ActionInstall, ActionReplace, ActionRemove} {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, ",")
}

// RestoreOptions controls how a snapshot is reconciled against the system.
type RestoreOptions struct {
	// FilterTypes limits the kinds of change that are emitted.
	FilterTypes FilterTypes
	// InstallLatest installs plain install entries by name only.
	InstallLatest bool
	// IgnoreArch drops the architecture suffix from install targets.
	IgnoreArch bool
}

// StepKind is the package operation a step performs.
type StepKind uint8

const (
	// StepRemove erases an installed package.
	StepRemove StepKind = iota + 1
	// StepInstall installs a package spec.
	StepInstall
)

// String returns the operation name.
func (k StepKind) String() string {
	switch k {
	case StepRemove:
		return "remove"
	case StepInstall:
		return "install"
	default:
		return "unknown"
	}
}

// Step is one operation of a reconciliation plan.
type Step struct {
	Kind StepKind
	// Reason is the filter type that gated the step.
	Reason Action
	// Package is the installed package for removals and the snapshot package for installs.
	Package Package
	// Spec is the target handed to the package index.
	Spec string
	// TargetArch is the architecture pinned by Spec, empty when arch is ignored.
	TargetArch string
}

// String renders the step as a dry-run line, e.g. "remove    foo-1-1.x86_64".
func (s Step) String() string {
	kind := s.Kind.String()
	return kind + strings.Repeat(" ", 10-len(kind)) + s.Spec
}

// Plan is an ordered list of steps. Removals always precede installs.
type Plan []Step
