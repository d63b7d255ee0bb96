package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPathResolver_Resolve(t *testing.T) {
	resolver := NewDefaultPathResolver()
	tempDir := t.TempDir()

	// A valid entry wins
	got := resolver.Resolve(DefaultPathQuery{Entry: tempDir})
	if got != tempDir {
		t.Errorf("Expected entry %q to win, got %q", tempDir, got)
	}

	// An invalid entry is skipped in favor of the default
	defaultDir := t.TempDir()
	got = resolver.Resolve(DefaultPathQuery{
		Entry:   filepath.Join(tempDir, "missing"),
		Default: defaultDir,
	})
	if got != defaultDir {
		t.Errorf("Expected default %q, got %q", defaultDir, got)
	}

	// With nothing valid the home directory is the last resort
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home dir: %v", err)
	}
	got = resolver.Resolve(DefaultPathQuery{})
	if got != home && got != filepath.Join(home, "Games") {
		t.Errorf("Expected fallback to home or ~/Games, got %q", got)
	}
}

func TestDefaultPathResolver_InstallToOverride(t *testing.T) {
	resolver := NewDefaultPathResolver()
	entryDir := t.TempDir()
	installDir := t.TempDir()

	// For install-to entries the install path beats even the entry
	got := resolver.Resolve(DefaultPathQuery{
		Entry:       entryDir,
		InstallPath: installDir,
		Type:        PathTypeInstallTo,
	})
	if got != installDir {
		t.Errorf("Expected install path %q to override, got %q", installDir, got)
	}

	// Other types keep the entry first
	got = resolver.Resolve(DefaultPathQuery{
		Entry:       entryDir,
		InstallPath: installDir,
		Type:        PathTypeIcon,
	})
	if got != entryDir {
		t.Errorf("Expected entry %q, got %q", entryDir, got)
	}
}

func TestDefaultPathResolver_MainFileDirectory(t *testing.T) {
	resolver := NewDefaultPathResolver()
	tempDir := t.TempDir()

	mainFile := filepath.Join(tempDir, "game.exe")
	if err := os.WriteFile(mainFile, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create main file: %v", err)
	}

	// A main file path is reduced to its directory
	got := resolver.Resolve(DefaultPathQuery{MainFilePath: mainFile})
	if got != tempDir {
		t.Errorf("Expected main file dir %q, got %q", tempDir, got)
	}
}

func TestDefaultPathResolver_SetSelected(t *testing.T) {
	resolver := NewDefaultPathResolver()
	tempDir := t.TempDir()

	selected := filepath.Join(tempDir, "selected.bin")
	if err := os.WriteFile(selected, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	resolver.SetSelected(selected, PathTypeInstaller)

	// The remembered directory is used for the same path type
	got := resolver.Resolve(DefaultPathQuery{Type: PathTypeInstaller})
	if got != tempDir {
		t.Errorf("Expected last selected dir %q, got %q", tempDir, got)
	}

	// Selections recorded for a specific type do not leak into untyped lookups
	otherDir := t.TempDir()
	resolver.SetSelected(otherDir, PathTypeUnknown)
	got = resolver.Resolve(DefaultPathQuery{Type: PathTypeBanner})
	if got != otherDir {
		t.Errorf("Expected untyped last selection %q, got %q", otherDir, got)
	}
}
