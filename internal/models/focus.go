package models

import (
	"fmt"
	"time"
)

// FocusSession records one timed focus block. Duration fields are seconds;
// CompletedDuration never exceeds Duration.
type FocusSession struct {
	ID                string     `json:"id"`
	Mode              string     `json:"mode"` // e.g. pomodoro, deep, custom
	Duration          int        `json:"duration"`
	CompletedDuration int        `json:"completed_duration"`
	TaskID            string     `json:"task_id,omitempty"`
	Quality           int        `json:"quality,omitempty"`
	StartedAt         time.Time  `json:"started_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Completed         bool       `json:"completed"`
	Interruptions     int        `json:"interruptions,omitempty"`
}

func (s FocusSession) Validate() error {
	if s.Duration <= 0 {
		return fmt.Errorf("session duration must be greater than zero")
	}
	if s.CompletedDuration < 0 || s.CompletedDuration > s.Duration {
		return fmt.Errorf("completed duration must be between 0 and %d, got %d", s.Duration, s.CompletedDuration)
	}
	if s.Completed && s.CompletedAt == nil {
		return fmt.Errorf("completed session must have a completion timestamp")
	}
	return nil
}

// Minutes returns the whole focus minutes actually completed.
func (s FocusSession) Minutes() int {
	return s.CompletedDuration / 60
}
