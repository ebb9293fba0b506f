// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: Document persistence (two-tier, fallback handled
//     below this interface; callers never see which tier served a call)
//   - SettingsStore: Small key-value store for session markers
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Renderer: Turns markdown into a previewable form
//   - Exporter: Writes rendered output to a named artifact
//   - StoreWatcher: Reports external modification of the storage files
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
