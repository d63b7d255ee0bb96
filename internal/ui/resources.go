package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "playdeck.png"
)

// LoadLogoResource loads the application logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// GameIconResource loads a cached game icon; returns nil when the file is
// missing so callers can fall back to a placeholder.
func GameIconResource(path string) fyne.Resource {
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil
	}
	return res
}
