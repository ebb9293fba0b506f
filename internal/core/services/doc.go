// Package services implements the driving port interfaces.
// Services contain the core business logic (session orchestration,
// autosave debouncing, palette filtering) and orchestrate calls to
// driven ports (adapters).
package services
