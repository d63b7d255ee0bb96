package installer

// Package installer parses and validates YAML installer scripts: the
// document that describes where a game's files come from, which runner
// launches it, and how its config is assembled.
