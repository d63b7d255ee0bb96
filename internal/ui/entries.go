package ui

import (
	"strings"
	"unicode"

	"fyne.io/fyne/v2/widget"
)

// FilterSlug keeps only characters valid in a game slug: letters, digits
// and dashes, lowercased
func FilterSlug(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else if r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FilterNumeric keeps only digits
func FilterNumeric(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FilteredEntry is an entry that rewrites its content through a filter
// function on every change
type FilteredEntry struct {
	widget.Entry

	filter func(string) string

	// OnFiltered fires after a change has passed the filter
	OnFiltered func(string)
}

// NewSlugEntry creates an entry accepting only slug characters
func NewSlugEntry() *FilteredEntry {
	return newFilteredEntry(FilterSlug)
}

// NewNumberEntry creates an entry accepting only digits
func NewNumberEntry() *FilteredEntry {
	return newFilteredEntry(FilterNumeric)
}

func newFilteredEntry(filter func(string) string) *FilteredEntry {
	entry := &FilteredEntry{filter: filter}
	entry.ExtendBaseWidget(entry)
	entry.OnChanged = entry.applyFilter
	return entry
}

// applyFilter rewrites the entry text whenever disallowed characters slip
// in. SetText re-triggers OnChanged, so only rewrite on actual change.
func (e *FilteredEntry) applyFilter(text string) {
	filtered := e.filter(text)
	if filtered != text {
		e.SetText(filtered)
		return
	}
	if e.OnFiltered != nil {
		e.OnFiltered(filtered)
	}
}
