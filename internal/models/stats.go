package models

// UserStats holds denormalized counters maintained by the reducer. Level is
// always derived from XP, never adjusted independently.
type UserStats struct {
	TotalTasks           int `json:"total_tasks"`
	CompletedTasks       int `json:"completed_tasks"`
	TotalFocusMinutes    int `json:"total_focus_minutes"`
	TotalJournalEntries  int `json:"total_journal_entries"`
	CurrentTaskStreak    int `json:"current_task_streak"`
	CurrentFocusStreak   int `json:"current_focus_streak"`
	CurrentJournalStreak int `json:"current_journal_streak"`
	Level                int `json:"level"`
	XP                   int `json:"xp"`
}

// UserProfile is free-form onboarding data consumed by the assistant.
type UserProfile struct {
	Name               string   `json:"name,omitempty"`
	Goals              []string `json:"goals,omitempty"`
	Priorities         []string `json:"priorities,omitempty"`
	OnboardingComplete bool     `json:"onboarding_complete"`
}
