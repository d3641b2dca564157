package domain

import "go.trai.ch/zerr"

var (
	// ErrBadVersion is returned when a snapshot does not start with the expected version marker.
	ErrBadVersion = zerr.New("bad dnf debug file")

	// ErrInvalidSpec is returned when a package spec cannot be parsed.
	ErrInvalidSpec = zerr.New("invalid package spec")

	// ErrInvalidAction is returned when an action name is not one of install, replace or remove.
	ErrInvalidAction = zerr.New("invalid action, expected 'install', 'replace' or 'remove'")

	// ErrInvalidFilterType is returned when a restore filter type is unknown.
	ErrInvalidFilterType = zerr.New("invalid filter type, expected 'install', 'replace' or 'remove'")

	// ErrPackageNotAvailable is returned when an install target cannot be resolved in any repository.
	ErrPackageNotAvailable = zerr.New("package is not available")

	// ErrPackageNotInstalled is returned when a removal targets a package that is not installed.
	ErrPackageNotInstalled = zerr.New("package is not installed")

	// ErrRepoAccess is returned when the package listing of a repository cannot be read.
	ErrRepoAccess = zerr.New("error accessing repo")

	// ErrRepoNotFound is returned when a repository id is unknown to the backend.
	ErrRepoNotFound = zerr.New("repo not found")

	// ErrBackendCommandFailed is returned when an rpm or dnf invocation fails.
	ErrBackendCommandFailed = zerr.New("package manager command failed")

	// ErrTransactionFailed is returned when the queued transaction cannot be applied.
	ErrTransactionFailed = zerr.New("transaction failed")

	// ErrUnknownBackend is returned when the configured backend kind is not supported.
	ErrUnknownBackend = zerr.New("unknown backend, expected 'rpm' or 'inventory'")

	// ErrInventoryReadFailed is returned when the inventory file cannot be read.
	ErrInventoryReadFailed = zerr.New("failed to read inventory")

	// ErrInventoryParseFailed is returned when the inventory file is not valid YAML.
	ErrInventoryParseFailed = zerr.New("failed to parse inventory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrSnapshotOpenFailed is returned when a snapshot file cannot be opened for reading.
	ErrSnapshotOpenFailed = zerr.New("failed to open snapshot")

	// ErrSnapshotReadFailed is returned when reading a snapshot stream fails.
	ErrSnapshotReadFailed = zerr.New("failed to read snapshot")

	// ErrSnapshotWriteFailed is returned when a snapshot cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write snapshot")

	// ErrHostInfoFailed is returned when the host system cannot be inspected.
	ErrHostInfoFailed = zerr.New("failed to inspect host")
)
