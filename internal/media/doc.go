package media

// Package media implements the game media pipeline: a local cache of icons
// and banners keyed by game slug, and a bounded-concurrency loader that
// fetches a batch of media URLs and relays completions one by one to the UI.
