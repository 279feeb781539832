package model

// Package model defines the data structures shared by the services and the UI:
// the translation state enum, the home page snapshot, login credentials and the
// user-facing error taxonomy. Structures are plain values so the UI can render
// a snapshot without holding service locks.
