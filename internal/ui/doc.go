package ui

// Package ui contains the Fyne-based desktop user interface: a single window
// wiring user input to the platform registry and the download service, and
// rendering progress, log, and settings. All UI strings go through
// Localization.
