package models

import (
	"fmt"
	"time"

	"github.com/ariseapp/arise/internal/constants"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Habit represents a recurring practice to track. CompletedDates is a set of
// day strings, no duplicates; BestStreak never drops below Streak.
type Habit struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Frequency      Frequency `json:"frequency"`
	Category       string    `json:"category"`
	Color          string    `json:"color"`
	Streak         int       `json:"streak"`
	BestStreak     int       `json:"best_streak"`
	CompletedDates []string  `json:"completed_dates"` // YYYY-MM-DD format
	CreatedAt      time.Time `json:"created_at"`
}

func (h Habit) Validate() error {
	if h.Title == "" {
		return fmt.Errorf("habit title must not be empty")
	}
	switch h.Frequency {
	case FrequencyDaily, FrequencyWeekly:
	default:
		return fmt.Errorf("invalid frequency: %s", h.Frequency)
	}
	if h.BestStreak < h.Streak {
		return fmt.Errorf("best streak (%d) must not be less than current streak (%d)", h.BestStreak, h.Streak)
	}
	return nil
}

// CompletedOn reports whether the habit was completed on the given day.
func (h Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// ValidDate reports whether the string is a well-formed day string.
func ValidDate(date string) bool {
	_, err := time.Parse(constants.DateFormat, date)
	return err == nil
}
