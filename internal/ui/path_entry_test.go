package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/playdeck/playdeck/internal/platform"
)

func newTestPathEntry(t *testing.T, options WarningOptions) *PathEntry {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(func() { app.Quit() })
	window := app.NewWindow("test")
	t.Cleanup(window.Close)
	resolver := platform.NewDefaultPathResolver()
	return NewPathEntry(window, PickFolder, platform.PathTypeInstallTo, resolver, options)
}

func TestPathEntry_PathExpandsHome(t *testing.T) {
	pe := newTestPathEntry(t, WarningOptions{})
	pe.SetText("~/Games")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	want := filepath.Join(home, "Games")
	if pe.Path() != want {
		t.Errorf("Path() = %q, want %q", pe.Path(), want)
	}
}

func TestPathEntry_WarningsAppearOnChange(t *testing.T) {
	pe := newTestPathEntry(t, WarningOptions{WarnNonEmpty: true})
	test.WidgetRenderer(pe) // force layout

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "leftover.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	pe.SetText(dir)
	if len(pe.warnBox.Objects) == 0 {
		t.Error("expected a warning for a non-empty directory")
	}

	pe.SetText(t.TempDir())
	if len(pe.warnBox.Objects) != 0 {
		t.Errorf("expected warnings to clear, got %d", len(pe.warnBox.Objects))
	}
}

func TestPathEntry_OnChangedReportsExpandedPath(t *testing.T) {
	pe := newTestPathEntry(t, WarningOptions{})

	var got string
	pe.OnChanged = func(path string) { got = path }

	dir := t.TempDir()
	pe.SetText(dir)
	if got != dir {
		t.Errorf("OnChanged got %q, want %q", got, dir)
	}
}
