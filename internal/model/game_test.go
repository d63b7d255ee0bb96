package model

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Quake", "quake"},
		{"Doom II", "doom-ii"},
		{"S.T.A.L.K.E.R.: Shadow of Chernobyl", "s-t-a-l-k-e-r-shadow-of-chernobyl"},
		{"  Half-Life 2  ", "half-life-2"},
		{"UPPER case", "upper-case"},
		{"", ""},
		{"---", ""},
		{"1943", "1943"},
	}

	for _, test := range tests {
		result := Slugify(test.name)
		if result != test.expected {
			t.Errorf("Slugify(%q) = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestGame_MatchesSearch(t *testing.T) {
	game := NewGame("Baldur's Gate")

	tests := []struct {
		query    string
		expected bool
	}{
		{"", true},
		{"baldur", true},
		{"GATE", true},
		{"baldur-s", true}, // slug match
		{"icewind", false},
	}

	for _, test := range tests {
		result := game.MatchesSearch(test.query)
		if result != test.expected {
			t.Errorf("MatchesSearch(%q) = %v, expected %v", test.query, result, test.expected)
		}
	}
}

func TestGame_DisplayName(t *testing.T) {
	game := NewGame("Quake")
	if game.DisplayName() != "Quake" {
		t.Errorf("Expected display name 'Quake', got %q", game.DisplayName())
	}

	game.Name = ""
	if game.DisplayName() != "quake" {
		t.Errorf("Expected fallback to slug 'quake', got %q", game.DisplayName())
	}
}

func TestNewGame(t *testing.T) {
	game := NewGame("Doom II")

	if game.Slug != "doom-ii" {
		t.Errorf("Expected slug 'doom-ii', got %q", game.Slug)
	}

	if game.CreatedAt.IsZero() || game.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
}
