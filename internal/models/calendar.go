package models

import (
	"fmt"
	"time"

	"github.com/ariseapp/arise/internal/constants"
)

type EventType string

const (
	EventRoutine EventType = "routine"
	EventFocus   EventType = "focus"
	EventMeeting EventType = "meeting"
	EventBreak   EventType = "break"
	EventTask    EventType = "task"
	EventHabit   EventType = "habit"
)

// CalendarEvent is a scheduled block on a day. Date and Time together order
// events within a day.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      EventType `json:"type"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Time      string    `json:"time"` // HH:MM format
	Duration  string    `json:"duration"`
	TaskID    string    `json:"task_id,omitempty"`
	Color     string    `json:"color"`
	Recurring bool      `json:"recurring,omitempty"`
}

func (e CalendarEvent) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("event title must not be empty")
	}
	switch e.Type {
	case EventRoutine, EventFocus, EventMeeting, EventBreak, EventTask, EventHabit:
	default:
		return fmt.Errorf("invalid event type: %s", e.Type)
	}
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return fmt.Errorf("invalid event date %q (expected YYYY-MM-DD): %w", e.Date, err)
	}
	if e.Time != "" {
		if _, err := time.Parse(constants.TimeFormat, e.Time); err != nil {
			return fmt.Errorf("invalid event time %q (expected HH:MM): %w", e.Time, err)
		}
	}
	return nil
}
