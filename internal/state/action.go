package state

import "github.com/ariseapp/arise/internal/models"

// Action is a named state transition applied by Reduce. Payload records carry
// a fully-formed entity (id and timestamps assigned by the caller before
// dispatch).
type Action interface {
	actionType() string
}

type AddTask struct{ Task models.Task }
type UpdateTask struct{ Task models.Task }
type DeleteTask struct{ ID string }
type ToggleTask struct{ ID string }

type AddJournalEntry struct{ Entry models.JournalEntry }
type UpdateJournalEntry struct{ Entry models.JournalEntry }
type DeleteJournalEntry struct{ ID string }

type AddFocusSession struct{ Session models.FocusSession }
type UpdateFocusSession struct{ Session models.FocusSession }

type AddCalendarEvent struct{ Event models.CalendarEvent }
type DeleteCalendarEvent struct{ ID string }

type LogMood struct{ Log models.MoodLog }

type AddHabit struct{ Habit models.Habit }
type UpdateHabit struct{ Habit models.Habit }
type DeleteHabit struct{ ID string }

// CompleteHabit marks the habit done on the given day. Already-recorded
// dates are deduplicated and leave the state unchanged.
type CompleteHabit struct {
	ID   string
	Date string // YYYY-MM-DD format
}

type AddCategory struct{ Category models.Category }
type DeleteCategory struct{ ID string }

type AddAIMessage struct{ Message models.AIMessage }

// UpdateStats merges the provided counter overrides into UserStats. Nil
// fields are left untouched; level is re-derived from the resulting XP.
type UpdateStats struct {
	TotalTasks           *int
	CompletedTasks       *int
	TotalFocusMinutes    *int
	TotalJournalEntries  *int
	CurrentTaskStreak    *int
	CurrentFocusStreak   *int
	CurrentJournalStreak *int
	XP                   *int
}

type AddXP struct{ Amount int }

// UnlockAchievement appends a stored achievement record. Kept only so
// imported snapshots from older exports survive a round trip; live
// achievement status is recomputed, not stored.
type UnlockAchievement struct{ Achievement models.Achievement }

type SetUserName struct{ Name string }

// UpdateProfile merges non-zero fields into the user profile.
type UpdateProfile struct {
	Name               string
	Goals              []string
	Priorities         []string
	OnboardingComplete *bool
}

// LoadState atomically replaces the entire tree.
type LoadState struct{ State AppState }

func (AddTask) actionType() string             { return "ADD_TASK" }
func (UpdateTask) actionType() string          { return "UPDATE_TASK" }
func (DeleteTask) actionType() string          { return "DELETE_TASK" }
func (ToggleTask) actionType() string          { return "TOGGLE_TASK" }
func (AddJournalEntry) actionType() string     { return "ADD_JOURNAL_ENTRY" }
func (UpdateJournalEntry) actionType() string  { return "UPDATE_JOURNAL_ENTRY" }
func (DeleteJournalEntry) actionType() string  { return "DELETE_JOURNAL_ENTRY" }
func (AddFocusSession) actionType() string     { return "ADD_FOCUS_SESSION" }
func (UpdateFocusSession) actionType() string  { return "UPDATE_FOCUS_SESSION" }
func (AddCalendarEvent) actionType() string    { return "ADD_CALENDAR_EVENT" }
func (DeleteCalendarEvent) actionType() string { return "DELETE_CALENDAR_EVENT" }
func (LogMood) actionType() string             { return "LOG_MOOD" }
func (AddHabit) actionType() string            { return "ADD_HABIT" }
func (UpdateHabit) actionType() string         { return "UPDATE_HABIT" }
func (DeleteHabit) actionType() string         { return "DELETE_HABIT" }
func (CompleteHabit) actionType() string       { return "COMPLETE_HABIT" }
func (AddCategory) actionType() string         { return "ADD_CATEGORY" }
func (DeleteCategory) actionType() string      { return "DELETE_CATEGORY" }
func (AddAIMessage) actionType() string        { return "ADD_AI_MESSAGE" }
func (UpdateStats) actionType() string         { return "UPDATE_STATS" }
func (AddXP) actionType() string               { return "ADD_XP" }
func (UnlockAchievement) actionType() string   { return "UNLOCK_ACHIEVEMENT" }
func (SetUserName) actionType() string         { return "SET_USER_NAME" }
func (UpdateProfile) actionType() string       { return "UPDATE_PROFILE" }
func (LoadState) actionType() string           { return "LOAD_STATE" }
