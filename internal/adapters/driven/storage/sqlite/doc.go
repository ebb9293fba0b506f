// Package sqlite implements the primary document storage tier.
//
// Documents live in a single SQLite database with an index on
// updated_at for ordered retrieval. Each operation runs in its own
// implicit transaction; a failed write never corrupts unrelated rows.
// Schema changes are applied through embedded, versioned migrations.
package sqlite
