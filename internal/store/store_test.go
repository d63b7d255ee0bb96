package store

import (
	"path/filepath"
	"testing"

	"github.com/playdeck/playdeck/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "library.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_AddAndGet(t *testing.T) {
	s := openTestStore(t)

	game := model.NewGame("Quake")
	game.Runner = "linux"

	if err := s.Add(game); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if game.ID == 0 {
		t.Fatal("Expected assigned ID after Add")
	}

	got, err := s.Get(game.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Quake" || got.Slug != "quake" || got.Runner != "linux" {
		t.Errorf("Got unexpected game: %+v", got)
	}

	got, err = s.GetBySlug("", "quake")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if got.ID != game.ID {
		t.Errorf("GetBySlug returned ID %d, expected %d", got.ID, game.ID)
	}
}

func TestStore_DuplicateSlug(t *testing.T) {
	s := openTestStore(t)

	first := model.NewGame("Quake")
	if err := s.Add(first); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Same slug on the same service violates the unique constraint
	dupe := model.NewGame("Quake")
	if err := s.Add(dupe); err == nil {
		t.Error("Expected error for duplicate slug, got nil")
	}

	// The same slug from another service is fine
	imported := model.NewGame("Quake")
	imported.Service = "gog"
	if err := s.Add(imported); err != nil {
		t.Errorf("Expected duplicate slug on another service to succeed: %v", err)
	}
}

func TestStore_Update(t *testing.T) {
	s := openTestStore(t)

	game := model.NewGame("Doom II")
	if err := s.Add(game); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	game.Year = 1994
	game.Installed = true
	if err := s.Update(game); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := s.Get(game.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Year != 1994 || !got.Installed {
		t.Errorf("Update not persisted: %+v", got)
	}

	// Updating a missing row is an error
	missing := model.NewGame("Ghost")
	missing.ID = 9999
	if err := s.Update(missing); err == nil {
		t.Error("Expected error updating missing game, got nil")
	}
}

func TestStore_Search(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"Quake", "Quake II", "Doom"} {
		if err := s.Add(model.NewGame(name)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	tests := []struct {
		query    string
		expected int
	}{
		{"", 3},
		{"quake", 2},
		{"QUAKE", 2},
		{"doom", 1},
		{"hexen", 0},
	}

	for _, test := range tests {
		games, err := s.Search(test.query)
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", test.query, err)
		}
		if len(games) != test.expected {
			t.Errorf("Search(%q) returned %d games, expected %d", test.query, len(games), test.expected)
		}
	}
}

func TestStore_MarkInstalled(t *testing.T) {
	s := openTestStore(t)

	game := model.NewGame("Quake")
	if err := s.Add(game); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := s.MarkInstalled(game.ID, "/games/quake"); err != nil {
		t.Fatalf("MarkInstalled failed: %v", err)
	}

	got, err := s.Get(game.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Installed || got.Directory != "/games/quake" {
		t.Errorf("Expected installed in /games/quake, got %+v", got)
	}

	if err := s.MarkInstalled(9999, "/nowhere"); err == nil {
		t.Error("Expected error for missing game, got nil")
	}
}

func TestStore_Remove(t *testing.T) {
	s := openTestStore(t)

	game := model.NewGame("Quake")
	if err := s.Add(game); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := s.Remove(game.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, err := s.Get(game.ID); err == nil {
		t.Error("Expected error getting removed game, got nil")
	}
}

func TestStore_MediaURLs(t *testing.T) {
	s := openTestStore(t)

	withIcon := model.NewGame("Quake")
	withIcon.Service = "gog"
	withIcon.Details = `{"icon": "https://images.example.com/quake.png"}`
	if err := s.Add(withIcon); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	noDetails := model.NewGame("Doom")
	noDetails.Service = "gog"
	if err := s.Add(noDetails); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	otherService := model.NewGame("Hexen")
	otherService.Service = "steam"
	otherService.Details = `{"icon": "https://images.example.com/hexen.png"}`
	if err := s.Add(otherService); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	urls, err := s.MediaURLs("gog")
	if err != nil {
		t.Fatalf("MediaURLs failed: %v", err)
	}

	if len(urls) != 1 {
		t.Fatalf("Expected 1 URL, got %d: %v", len(urls), urls)
	}
	if urls["quake"] != "https://images.example.com/quake.png" {
		t.Errorf("Unexpected URL map: %v", urls)
	}
}
