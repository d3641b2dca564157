package domain

import (
	"strings"
	"time"
)

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "debugdump.yaml"

	// DumpTimeLayout is the timestamp format used in default dump file names.
	DumpTimeLayout = "2006-01-02_15:04:05"

	// GzipSuffix marks snapshot files that are gzip compressed.
	GzipSuffix = ".gz"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultDumpName returns dump-<hostname>-<timestamp>.txt.gz.
func DefaultDumpName(hostname string, now time.Time) string {
	return "dump-" + hostname + "-" + now.Format(DumpTimeLayout) + ".txt" + GzipSuffix
}

// IsCompressed reports whether the snapshot at path is gzip compressed.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, GzipSuffix)
}
