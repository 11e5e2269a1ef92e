package state

import (
	"github.com/ariseapp/arise/internal/constants"
	"github.com/ariseapp/arise/internal/models"
)

// AppState is the single source-of-truth state tree. It is treated as an
// immutable value: Reduce returns a new tree and never mutates its input,
// sharing unchanged collections between old and new trees.
type AppState struct {
	Tasks          []models.Task          `json:"tasks"`
	JournalEntries []models.JournalEntry  `json:"journal_entries"`
	FocusSessions  []models.FocusSession  `json:"focus_sessions"`
	CalendarEvents []models.CalendarEvent `json:"calendar_events"`
	MoodLogs       []models.MoodLog       `json:"mood_logs"`
	Habits         []models.Habit         `json:"habits"`
	Categories     []models.Category      `json:"categories"`
	Achievements   []models.Achievement   `json:"achievements"`
	AIMessages     []models.AIMessage     `json:"ai_messages"`
	UserStats      models.UserStats       `json:"user_stats"`
	UserProfile    models.UserProfile     `json:"user_profile"`
	UserName       string                 `json:"user_name"`
}

// DefaultState returns the initial state tree used on first run and as the
// merge base when loading a persisted snapshot.
func DefaultState() AppState {
	return AppState{
		Tasks:          []models.Task{},
		JournalEntries: []models.JournalEntry{},
		FocusSessions:  []models.FocusSession{},
		CalendarEvents: []models.CalendarEvent{},
		MoodLogs:       []models.MoodLog{},
		Habits:         []models.Habit{},
		Categories: []models.Category{
			{ID: "cat-personal", Name: "Personal", Color: "violet"},
			{ID: "cat-work", Name: "Work", Color: "blue"},
			{ID: "cat-health", Name: "Health", Color: "green"},
			{ID: "cat-learning", Name: "Learning", Color: "amber"},
		},
		Achievements: []models.Achievement{},
		AIMessages:   []models.AIMessage{},
		UserStats: models.UserStats{
			Level: 1,
			XP:    0,
		},
		UserName: constants.DefaultUserName,
	}
}

// FindTask returns the task with the given id, if present.
func (s AppState) FindTask(id string) (models.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// FindHabit returns the habit with the given id, if present.
func (s AppState) FindHabit(id string) (models.Habit, bool) {
	for _, h := range s.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// FindFocusSession returns the focus session with the given id, if present.
func (s AppState) FindFocusSession(id string) (models.FocusSession, bool) {
	for _, fs := range s.FocusSessions {
		if fs.ID == id {
			return fs, true
		}
	}
	return models.FocusSession{}, false
}
