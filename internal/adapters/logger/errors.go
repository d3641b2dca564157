package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager is implemented by zerr.Error.
type messager interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of err. zerr links contribute their own
// message and metadata; the first standard error ends the walk with its full text.
// Links without a message only carry metadata, which is merged into the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; current = errors.Unwrap(current) {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			return entries
		}

		meta := m.Metadata()
		if m.Message() == "" {
			if pending == nil {
				pending = make(map[string]any)
			}
			maps.Copy(pending, meta)
			continue
		}
		if pending != nil {
			maps.Copy(meta, pending)
			pending = nil
		}
		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
	}
	if pending != nil && len(entries) > 0 {
		maps.Copy(entries[len(entries)-1].Metadata, pending)
	}
	return entries
}

// formatErrorEntries renders entries as
//
//	Error: outer
//	       key: value
//
//	  Caused by:
//	    → inner
func formatErrorEntries(entries []ErrorEntry) string {
	var b strings.Builder

	for i, entry := range entries {
		head, indent := "    → ", "      "
		if i == 0 {
			head, indent = "Error: ", "       "
		}
		if i == 1 {
			b.WriteString("\n\n  Caused by:")
		}
		if i > 0 {
			b.WriteString("\n")
		}

		lines := strings.Split(entry.Message, "\n")
		b.WriteString(head + lines[0])
		for _, line := range lines[1:] {
			b.WriteString("\n" + indent + line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			fmt.Fprintf(&b, "\n%s%s: %v", indent, key, entry.Metadata[key])
		}
	}
	return b.String()
}
