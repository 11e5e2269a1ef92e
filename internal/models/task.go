package models

import (
	"fmt"
	"time"

	"github.com/ariseapp/arise/internal/constants"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Subtask is a checklist item nested inside a task.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Completed        bool       `json:"completed"`
	Priority         Priority   `json:"priority"`
	DueDate          string     `json:"due_date"` // YYYY-MM-DD format
	Category         string     `json:"category"`
	Subtasks         []Subtask  `json:"subtasks"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	EstimatedMinutes int        `json:"estimated_minutes,omitempty"`
}

func (t Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title must not be empty")
	}
	switch t.Priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}
	if t.DueDate != "" {
		if _, err := time.Parse(constants.DateFormat, t.DueDate); err != nil {
			return fmt.Errorf("invalid due date %q (expected YYYY-MM-DD): %w", t.DueDate, err)
		}
	}
	if t.EstimatedMinutes < 0 {
		return fmt.Errorf("estimated minutes must not be negative")
	}
	return nil
}
