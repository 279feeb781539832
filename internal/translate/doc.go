package translate

// Package translate holds the home page state machine: file selection, the
// simulated translation progress timer, the download acknowledgment and the
// single error slot. Every transition publishes a model.HomeState snapshot to
// the UI through the update callback.
