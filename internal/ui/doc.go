package ui

// Package ui contains the Fyne-based desktop user interface for the launcher.
// It wires user interactions to the game store and media loader and renders
// the library list, path inputs with warnings, and settings.
