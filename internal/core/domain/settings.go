package domain

// Settings keys for the persisted session markers.
const (
	// SettingLastOpened holds the id of the most recently persisted or
	// selected document, consulted during initial resolution.
	SettingLastOpened = "session.last_opened"

	// SettingWelcomeDeleted records that the user deleted the welcome
	// document, so empty-list resolution must not resynthesize it.
	SettingWelcomeDeleted = "session.welcome_deleted"
)
