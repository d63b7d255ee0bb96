package model

import (
	"strings"
	"time"
	"unicode"
)

// Game represents an entry in the local game library, either added manually
// or imported from a third party service.
type Game struct {
	ID        int64
	Service   string // source service name, empty for manual entries
	AppID     string // external ID of the game on the service
	Name      string
	Slug      string
	Runner    string // name of the runner used to launch the game
	Directory string // install directory
	Installed bool
	Year      int
	Details   string // additional service payload, JSON encoded
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGame creates a library entry with a slug derived from the name
func NewGame(name string) *Game {
	now := time.Now()
	return &Game{
		Name:      name,
		Slug:      Slugify(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DisplayName returns the name, falling back to the slug for entries
// imported without one
func (g *Game) DisplayName() string {
	if g.Name != "" {
		return g.Name
	}
	return g.Slug
}

// MatchesSearch reports whether the game matches a case-insensitive
// substring query. An empty query matches everything.
func (g *Game) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(g.Name), query) ||
		strings.Contains(g.Slug, query)
}

// Slugify normalizes a game name into a slug: lowercase letters, digits and
// dashes only. Runs of other characters collapse into a single dash.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress leading dashes
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
