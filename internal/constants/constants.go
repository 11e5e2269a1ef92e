package constants

const (
	AppName           = "arise"
	DefaultConfigPath = "~/.config/arise"
	Version           = "v0.1.0"

	// SnapshotSlot is the storage key the full state tree is persisted under.
	SnapshotSlot = "arise-data"

	// DefaultKeyringUser identifies the suggestion-service API key in the OS keyring.
	DefaultKeyringUser = "suggest-api-key"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultUserName is the display name before onboarding.
	DefaultUserName = "Achiever"

	// Gamification rewards
	XPPerTask         = 10
	XPPerJournalEntry = 15
	XPPerHabit        = 5
	XPPerFocusMinute  = 5
	XPPerLevel        = 100
)
