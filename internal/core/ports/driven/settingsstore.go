package driven

// SettingsStore provides persistent key-value storage for the small
// session markers (last opened document id, welcome-deleted flag).
// Injected into the session controller so it stays testable with an
// in-memory fake.
type SettingsStore interface {
	// Get retrieves a value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if absent.
	GetString(key string) string

	// GetBool retrieves a boolean value, or false if absent.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error
}
