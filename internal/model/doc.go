package model

// Package model defines the domain data structures used across the app: book
// records, the add-book input and the outcome statuses reported back to the UI.
// Structures are plain values so the UI can render them without extra mapping.
