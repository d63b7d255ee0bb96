package store

// Package store persists the game library in a local SQLite database. It
// holds both locally added games and entries imported from third party
// services, including the media URLs the loader fetches icons from.
