package model

// Package model defines domain data structures used across the app: the
// persisted note record, its status enum, and its visual style. Structures
// are designed for direct use by the UI and the store without translation.
