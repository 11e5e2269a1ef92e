package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/printer"
	"github.com/ariseapp/arise/internal/state"
)

type JournalCmd struct {
	Add    JournalAddCmd    `cmd:"" help:"Write a journal entry."`
	List   JournalListCmd   `cmd:"" help:"List journal entries, newest first."`
	Delete JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
}

type JournalAddCmd struct {
	Title   string `arg:"" help:"Entry title."`
	Content string `arg:"" optional:"" help:"Entry body."`
	Mood    int    `short:"m" help:"Mood (1-5)." default:"3"`
	Tags    string `short:"t" help:"Comma-separated tags."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	var tags []string
	for _, tag := range strings.Split(c.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	entry := models.JournalEntry{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Content:   c.Content,
		Mood:      c.Mood,
		Tags:      tags,
		CreatedAt: time.Now().UTC(),
	}
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid journal entry: %w", err)
	}

	if err := ctx.Store.Dispatch(state.AddJournalEntry{Entry: entry}); err != nil {
		return err
	}

	fmt.Printf("Journal entry saved (+15 XP): %s\n", c.Title)
	return nil
}

type JournalListCmd struct {
	Limit int `short:"n" help:"Show at most this many entries." default:"10"`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	entries := ctx.Store.State().JournalEntries
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}
	printer.JournalEntries(entries)
	return nil
}

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry ID."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Dispatch(state.DeleteJournalEntry{ID: c.ID}); err != nil {
		return err
	}
	fmt.Println("Deleted journal entry.")
	return nil
}
