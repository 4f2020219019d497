package ui

// Package ui implements the Fyne front end: the note board hosting one
// widget per shown note, the note widget itself with its drag/resize
// interaction, the styling and settings dialogs, and the all-notes
// management window.
