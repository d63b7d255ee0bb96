package model

// Package model defines domain data structures used across the app: library
// games, media kinds, and media fetch jobs. Structures are designed for
// direct binding in the UI and explicit state transitions.
