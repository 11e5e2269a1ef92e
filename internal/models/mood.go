package models

import (
	"fmt"
	"time"

	"github.com/ariseapp/arise/internal/constants"
)

// MoodLog records a mood check-in for a day. Storage does not enforce one
// per day; lookups treat the newest log for a date as that day's mood.
type MoodLog struct {
	ID      string   `json:"id"`
	Mood    int      `json:"mood"` // 1-5
	Energy  int      `json:"energy,omitempty"`
	Date    string   `json:"date"` // YYYY-MM-DD format
	Note    string   `json:"note,omitempty"`
	Factors []string `json:"factors,omitempty"`
}

func (m MoodLog) Validate() error {
	if m.Mood < 1 || m.Mood > 5 {
		return fmt.Errorf("mood must be between 1 and 5, got %d", m.Mood)
	}
	if m.Energy < 0 || m.Energy > 5 {
		return fmt.Errorf("energy must be between 0 and 5, got %d", m.Energy)
	}
	if _, err := time.Parse(constants.DateFormat, m.Date); err != nil {
		return fmt.Errorf("invalid mood date %q (expected YYYY-MM-DD): %w", m.Date, err)
	}
	return nil
}
