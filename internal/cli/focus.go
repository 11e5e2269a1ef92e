package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/printer"
	"github.com/ariseapp/arise/internal/selectors"
	"github.com/ariseapp/arise/internal/state"
	"github.com/ariseapp/arise/internal/utils"
)

type FocusCmd struct {
	Start    FocusStartCmd    `cmd:"" help:"Start a focus session."`
	Complete FocusCompleteCmd `cmd:"" help:"Complete a focus session."`
	List     FocusListCmd     `cmd:"" help:"List focus sessions."`
}

type FocusStartCmd struct {
	Minutes int    `short:"m" help:"Planned duration in minutes." default:"25"`
	Mode    string `help:"Session mode (pomodoro|deep|custom)." default:"pomodoro"`
	Task    string `short:"t" help:"Task ID this session is for."`
}

func (c *FocusStartCmd) Run(ctx *Context) error {
	if c.Minutes <= 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	if c.Task != "" {
		if _, ok := ctx.Store.State().FindTask(c.Task); !ok {
			return fmt.Errorf("task not found: %s", c.Task)
		}
	}

	session := models.FocusSession{
		ID:        uuid.New().String(),
		Mode:      c.Mode,
		Duration:  c.Minutes * 60,
		TaskID:    c.Task,
		StartedAt: time.Now().UTC(),
	}

	if err := ctx.Store.Dispatch(state.AddFocusSession{Session: session}); err != nil {
		return err
	}

	fmt.Printf("Started %s session for %dm (ID: %s)\n", c.Mode, c.Minutes, session.ID)
	return nil
}

type FocusCompleteCmd struct {
	ID            string `arg:"" help:"Session ID."`
	Minutes       int    `short:"m" help:"Minutes actually focused (default: full planned duration)." default:"-1"`
	Interruptions int    `help:"Interruption count."`
	Quality       int    `short:"q" help:"Session quality (1-5)."`
}

func (c *FocusCompleteCmd) Run(ctx *Context) error {
	session, ok := ctx.Store.State().FindFocusSession(c.ID)
	if !ok {
		return fmt.Errorf("focus session not found: %s", c.ID)
	}
	if session.Completed {
		fmt.Println("Session is already completed.")
		return nil
	}

	completed := session.Duration
	if c.Minutes >= 0 {
		completed = c.Minutes * 60
		if completed > session.Duration {
			completed = session.Duration
		}
	}

	now := time.Now().UTC()
	session.CompletedDuration = completed
	session.Completed = true
	session.CompletedAt = &now
	session.Interruptions = c.Interruptions
	session.Quality = c.Quality

	if err := ctx.Store.Dispatch(state.UpdateFocusSession{Session: session}); err != nil {
		return err
	}

	minutes := completed / 60
	fmt.Printf("Focus session complete: %s (+%d XP)\n", utils.FormatMinutes(minutes), minutes*5)
	return nil
}

type FocusListCmd struct {
	Today bool `help:"Only sessions started today."`
}

func (c *FocusListCmd) Run(ctx *Context) error {
	s := ctx.Store.State()
	sessions := s.FocusSessions
	if c.Today {
		sessions = selectors.TodayFocusSessions(s, time.Now())
	}
	printer.FocusSessions(sessions)
	return nil
}
