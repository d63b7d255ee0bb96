package ui

import (
	"github.com/playdeck/playdeck/internal/platform"
)

// PathWarning identifies a problem with a user-selected filesystem path
type PathWarning int

const (
	// WarningNTFS means the path lives on a Windows-formatted drive
	WarningNTFS PathWarning = iota

	// WarningNonEmpty means the target directory already contains files
	WarningNonEmpty

	// WarningNotWritable means the destination cannot be written to
	WarningNotWritable
)

// Message returns the user-facing warning text
func (w PathWarning) Message() string {
	switch w {
	case WarningNTFS:
		return "Warning! The selected path is located on a drive formatted by Windows.\n" +
			"Games and programs installed on Windows drives usually don't work."
	case WarningNonEmpty:
		return "Warning! The selected path contains files. Installation might not work properly."
	case WarningNotWritable:
		return "Warning! The destination folder is not writable by the current user."
	}
	return ""
}

// WarningOptions selects which optional checks apply to a path entry.
// The writability check always runs.
type WarningOptions struct {
	WarnNonEmpty bool
	WarnNTFS     bool
}

// fsTypeFunc is swapped out in tests
var fsTypeFunc = platform.FilesystemType

// CheckPath inspects a path and returns the warnings that apply, in
// display order. An empty path yields none.
func CheckPath(path string, opts WarningOptions) []PathWarning {
	if path == "" {
		return nil
	}
	path = platform.ExpandUser(path)

	var warnings []PathWarning

	if opts.WarnNTFS && fsTypeFunc(path) == "ntfs" {
		warnings = append(warnings, WarningNTFS)
	}

	if opts.WarnNonEmpty && platform.DirNotEmpty(path) {
		warnings = append(warnings, WarningNonEmpty)
	}

	if parent := platform.ExistingParent(path); parent != "" && !platform.IsWritable(parent) {
		warnings = append(warnings, WarningNotWritable)
	}

	return warnings
}
