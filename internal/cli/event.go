package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/printer"
	"github.com/ariseapp/arise/internal/selectors"
	"github.com/ariseapp/arise/internal/state"
	"github.com/ariseapp/arise/internal/utils"
)

type EventCmd struct {
	Add    EventAddCmd    `cmd:"" help:"Add a calendar event."`
	List   EventListCmd   `cmd:"" help:"List a day's events in time order."`
	Delete EventDeleteCmd `cmd:"" help:"Delete a calendar event."`
}

type EventAddCmd struct {
	Title     string `arg:"" help:"Event title."`
	Date      string `short:"d" help:"Date in YYYY-MM-DD format (default: today)."`
	Time      string `short:"t" help:"Time in HH:MM format." required:""`
	Type      string `help:"Event type (routine|focus|meeting|break|task|habit)." default:"routine" enum:"routine,focus,meeting,break,task,habit"`
	Duration  string `help:"Human-readable duration (e.g. 30m, 1h)." default:"30m"`
	Color     string `help:"Display color." default:"blue"`
	Recurring bool   `help:"Repeats on following days."`
}

func (c *EventAddCmd) Run(ctx *Context) error {
	date, err := utils.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	event := models.CalendarEvent{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Type:      models.EventType(c.Type),
		Date:      date,
		Time:      c.Time,
		Duration:  c.Duration,
		Color:     c.Color,
		Recurring: c.Recurring,
	}
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}

	if err := ctx.Store.Dispatch(state.AddCalendarEvent{Event: event}); err != nil {
		return err
	}

	fmt.Printf("Added event: %s at %s on %s\n", c.Title, c.Time, date)
	return nil
}

type EventListCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *EventListCmd) Run(ctx *Context) error {
	date, err := utils.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	printer.Title(date)
	printer.Events(selectors.EventsForDate(ctx.Store.State(), date))
	return nil
}

type EventDeleteCmd struct {
	ID string `arg:"" help:"Event ID."`
}

func (c *EventDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Dispatch(state.DeleteCalendarEvent{ID: c.ID}); err != nil {
		return err
	}
	fmt.Println("Deleted event.")
	return nil
}
