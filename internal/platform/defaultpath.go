package platform

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

// PathType categorizes what a path entry is selecting. PathTypeUnknown
// should be used by default.
type PathType int

const (
	PathTypeUnknown PathType = iota
	PathTypeBanner
	PathTypeIcon
	PathTypeCache
	PathTypeInstaller
	PathTypeInstallTo
)

// DefaultPathQuery carries the candidate paths considered when deciding
// where a path entry should point by default.
type DefaultPathQuery struct {
	Entry        string // what the user has typed in the control
	Default      string // control's defined default
	MainFilePath string // path to the game's main file
	InstallPath  string // where games are installed
	Type         PathType
}

// DefaultPathResolver decides the starting path for file selection dialogs
// and remembers the last directory the user picked per path type.
type DefaultPathResolver struct {
	mu           sync.Mutex
	lastSelected map[PathType]string
}

// NewDefaultPathResolver creates an empty resolver
func NewDefaultPathResolver() *DefaultPathResolver {
	return &DefaultPathResolver{
		lastSelected: make(map[PathType]string),
	}
}

// Resolve returns the default path to use. First valid candidate wins:
// the install path override (install-to entries only), the entry itself,
// the control default, the last selected path for this type, the main
// file's directory, the last selected path for any type, the install path,
// ~/Games, and finally the home directory.
func (r *DefaultPathResolver) Resolve(q DefaultPathQuery) string {
	r.mu.Lock()
	lspType := r.lastSelected[q.Type]
	lspAny := r.lastSelected[PathTypeUnknown]
	r.mu.Unlock()

	override := ""
	if q.Type == PathTypeInstallTo {
		override = q.InstallPath
	}

	candidates := []string{
		override,
		q.Entry,
		q.Default,
		lspType,
		pathToDirectory(q.MainFilePath),
		lspAny,
		q.InstallPath,
		"~/Games",
		"~",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		expanded := ExpandUser(candidate)
		if PathExists(expanded) {
			return expanded
		}
	}
	log.Printf("Could not find any valid default path, including ~")
	return ""
}

// SetSelected records the directory the user picked for this path type.
// File paths are reduced to their containing directory.
func (r *DefaultPathResolver) SetSelected(selectedPath string, pathType PathType) {
	dir := pathToDirectory(selectedPath)
	if dir == "" {
		return
	}
	r.mu.Lock()
	r.lastSelected[pathType] = dir
	r.mu.Unlock()
}

// pathToDirectory strips a possible file component, returning just the
// existing directory portion or "" for invalid paths
func pathToDirectory(path string) string {
	if path == "" {
		return ""
	}
	expanded := ExpandUser(path)
	info, err := os.Stat(expanded)
	if err != nil {
		return ""
	}
	if !info.IsDir() {
		return filepath.Dir(expanded)
	}
	return expanded
}
