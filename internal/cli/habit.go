package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/printer"
	"github.com/ariseapp/arise/internal/state"
	"github.com/ariseapp/arise/internal/utils"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Done    HabitDoneCmd    `cmd:"" help:"Mark a habit completed for a day."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit."`
	Suggest HabitSuggestCmd `cmd:"" help:"Build an action plan for a habit."`
}

type HabitAddCmd struct {
	Title     string `arg:"" help:"Habit title."`
	Frequency string `short:"f" help:"Frequency (daily|weekly)." default:"daily" enum:"daily,weekly"`
	Category  string `short:"c" help:"Category name." default:"Personal"`
	Color     string `help:"Display color." default:"violet"`
	Note      string `help:"Longer description."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	for _, h := range ctx.Store.State().Habits {
		if h.Title == c.Title {
			return fmt.Errorf("habit with title %q already exists", c.Title)
		}
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		Title:          c.Title,
		Description:    c.Note,
		Frequency:      models.Frequency(c.Frequency),
		Category:       c.Category,
		Color:          c.Color,
		CompletedDates: []string{},
		CreatedAt:      time.Now().UTC(),
	}
	if err := habit.Validate(); err != nil {
		return fmt.Errorf("invalid habit: %w", err)
	}

	if err := ctx.Store.Dispatch(state.AddHabit{Habit: habit}); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", c.Title, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	printer.Habits(ctx.Store.State().Habits, utils.Today())
	return nil
}

type HabitDoneCmd struct {
	ID   string `arg:"" help:"Habit ID."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	habit, ok := ctx.Store.State().FindHabit(c.ID)
	if !ok {
		return fmt.Errorf("habit not found: %s", c.ID)
	}

	day, err := utils.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if habit.CompletedOn(day) {
		fmt.Printf("Already completed %q on %s.\n", habit.Title, day)
		return nil
	}

	if err := ctx.Store.Dispatch(state.CompleteHabit{ID: c.ID, Date: day}); err != nil {
		return err
	}

	updated, _ := ctx.Store.State().FindHabit(c.ID)
	fmt.Printf("Completed %q (+5 XP). Streak: %d\n", habit.Title, updated.Streak)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if _, ok := ctx.Store.State().FindHabit(c.ID); !ok {
		return fmt.Errorf("habit not found: %s", c.ID)
	}
	if err := ctx.Store.Dispatch(state.DeleteHabit{ID: c.ID}); err != nil {
		return err
	}
	fmt.Println("Deleted habit.")
	return nil
}

type HabitSuggestCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitSuggestCmd) Run(ctx *Context) error {
	habit, ok := ctx.Store.State().FindHabit(c.ID)
	if !ok {
		return fmt.Errorf("habit not found: %s", c.ID)
	}

	plan, remote := ctx.Planner.Suggest(context.Background(), habit)
	if !remote {
		if ctx.Planner.Endpoint == "" {
			fmt.Println("Note: no suggestion service configured, showing a local plan.")
		} else {
			fmt.Println("Note: suggestion service unavailable, showing a local plan.")
		}
	}

	printer.Title(fmt.Sprintf("Plan for %q (%d days)", plan.Habit, plan.DurationDays))
	for i, action := range plan.Actions {
		fmt.Printf("  %d. %s (%s, ~%dm)\n", i+1, action.Task, action.Frequency, action.EstimatedMinutes)
	}
	fmt.Printf("\nCue: %s\n", plan.Cue)
	fmt.Printf("Intention: %s\n", plan.ImplementationIntention)
	return nil
}
