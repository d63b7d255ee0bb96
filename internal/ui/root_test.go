package ui

import (
	"testing"

	"github.com/playdeck/playdeck/internal/model"
)

func TestInstalledFilter_String(t *testing.T) {
	tests := []struct {
		filter   InstalledFilter
		expected string
	}{
		{FilterAll, "All"},
		{FilterInstalled, "Installed"},
		{FilterNotInstalled, "Not Installed"},
		{InstalledFilter(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.filter.String(); got != tt.expected {
			t.Errorf("InstalledFilter(%d).String() = %q, want %q", tt.filter, got, tt.expected)
		}
	}
}

func TestRootUI_ShouldShowGame(t *testing.T) {
	installed := &model.Game{Slug: "quake", Installed: true}
	notInstalled := &model.Game{Slug: "doom"}

	tests := []struct {
		name     string
		filter   InstalledFilter
		game     *model.Game
		expected bool
	}{
		{"all shows installed", FilterAll, installed, true},
		{"all shows not installed", FilterAll, notInstalled, true},
		{"installed shows installed", FilterInstalled, installed, true},
		{"installed hides not installed", FilterInstalled, notInstalled, false},
		{"not installed hides installed", FilterNotInstalled, installed, false},
		{"not installed shows not installed", FilterNotInstalled, notInstalled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &RootUI{currentFilter: tt.filter}
			if got := ui.shouldShowGame(tt.game); got != tt.expected {
				t.Errorf("shouldShowGame(%q) with filter %s = %v, want %v",
					tt.game.Slug, tt.filter, got, tt.expected)
			}
		})
	}
}
