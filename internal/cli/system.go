package cli

import (
	"fmt"
	"os"

	"github.com/ariseapp/arise/internal/state"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	// Opening the store already seeded the default tree; persisting it makes
	// the slot exist on disk.
	if err := ctx.Store.Dispatch(state.LoadState{State: ctx.Store.State()}); err != nil {
		return err
	}
	fmt.Println("Initialized arise storage.")
	return nil
}

type ExportCmd struct {
	Path string `arg:"" help:"Destination file."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	data, err := ctx.Store.Export()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported state to %s\n", c.Path)
	return nil
}

type ImportCmd struct {
	Path string `arg:"" help:"Previously exported file."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	if err := ctx.Store.Import(data); err != nil {
		return err
	}
	fmt.Println("Imported state.")
	return nil
}

type DebugCmd struct{}

func (c *DebugCmd) Run(ctx *Context) error {
	s := ctx.Store.State()
	fmt.Printf("tasks: %d\n", len(s.Tasks))
	fmt.Printf("journal entries: %d\n", len(s.JournalEntries))
	fmt.Printf("focus sessions: %d\n", len(s.FocusSessions))
	fmt.Printf("calendar events: %d\n", len(s.CalendarEvents))
	fmt.Printf("mood logs: %d\n", len(s.MoodLogs))
	fmt.Printf("habits: %d\n", len(s.Habits))
	fmt.Printf("categories: %d\n", len(s.Categories))
	fmt.Printf("ai messages: %d\n", len(s.AIMessages))
	fmt.Printf("xp: %d  level: %d\n", s.UserStats.XP, s.UserStats.Level)
	return nil
}
