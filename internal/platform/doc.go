package platform

// Package platform wraps OS-level concerns: home-relative path expansion,
// filesystem inspection used for install-path warnings, shell completion
// candidates for path entries, and opening files in the system file manager.
