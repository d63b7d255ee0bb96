package ui

import "testing"

func TestFilterSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"quake", "quake"},
		{"Quake", "quake"},
		{"doom-2", "doom-2"},
		{"Baldur's Gate!", "baldursgate"},
		{"half life 2", "halflife2"},
		{"...", ""},
		{"", ""},
	}

	for _, test := range tests {
		result := FilterSlug(test.input)
		if result != test.expected {
			t.Errorf("FilterSlug(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestFilterNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1996", "1996"},
		{"year 1996!", "1996"},
		{"abc", ""},
		{"", ""},
	}

	for _, test := range tests {
		result := FilterNumeric(test.input)
		if result != test.expected {
			t.Errorf("FilterNumeric(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSlugEntry_FiltersInput(t *testing.T) {
	entry := NewSlugEntry()

	var filtered string
	entry.OnFiltered = func(text string) { filtered = text }

	entry.SetText("Doom II!")
	if entry.Text != "doomii" {
		t.Errorf("Expected entry text 'doomii', got %q", entry.Text)
	}
	if filtered != "doomii" {
		t.Errorf("Expected OnFiltered with 'doomii', got %q", filtered)
	}
}

func TestNumberEntry_FiltersInput(t *testing.T) {
	entry := NewNumberEntry()

	entry.SetText("19a96")
	if entry.Text != "1996" {
		t.Errorf("Expected entry text '1996', got %q", entry.Text)
	}
}
