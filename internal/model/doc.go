package model

// Package model defines the domain data structures shared across the app: the
// quote reading produced by each fetch and the display state owned by the UI.
// Readings are immutable values; the UI derives its label text from the most
// recent successful one.
