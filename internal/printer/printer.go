// Package printer renders lists and summaries for the CLI.
package printer

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/ariseapp/arise/internal/gamify"
	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/utils"
)

// Title prints a bold, underlined section heading.
func Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// None prints the faint placeholder for an empty collection.
func None() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Println(" none")
}

// Tasks renders a task table.
func Tasks(tasks []models.Task) {
	if len(tasks) == 0 {
		None()
		return
	}
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("", "TITLE", "PRIORITY", "DUE", "CATEGORY", "ID")
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		table.AddRow(mark, t.Title, string(t.Priority), t.DueDate, t.Category, t.ID)
	}
	fmt.Println(table)
}

// Habits renders a habit table with streaks.
func Habits(habits []models.Habit, today string) {
	if len(habits) == 0 {
		None()
		return
	}
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("", "TITLE", "FREQUENCY", "STREAK", "BEST", "ID")
	for _, h := range habits {
		mark := " "
		if h.CompletedOn(today) {
			mark = "x"
		}
		table.AddRow(mark, h.Title, string(h.Frequency), h.Streak, h.BestStreak, h.ID)
	}
	fmt.Println(table)
}

// JournalEntries renders recent journal entries, newest first.
func JournalEntries(entries []models.JournalEntry) {
	if len(entries) == 0 {
		None()
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	for _, e := range entries {
		_, _ = bold.Printf("%s", e.Title)
		_, _ = faint.Printf("  mood %d/5  %s  %s\n", e.Mood, e.CreatedAt.Format("2006-01-02"), e.ID)
		fmt.Println(e.Content)
		fmt.Println()
	}
}

// FocusSessions renders a focus session table.
func FocusSessions(sessions []models.FocusSession) {
	if len(sessions) == 0 {
		None()
		return
	}
	table := uitable.New()
	table.AddRow("", "MODE", "COMPLETED", "PLANNED", "STARTED", "ID")
	for _, fs := range sessions {
		mark := " "
		if fs.Completed {
			mark = "x"
		}
		table.AddRow(mark, fs.Mode, utils.FormatMinutes(fs.Minutes()), utils.FormatMinutes(fs.Duration/60), fs.StartedAt.Format("2006-01-02 15:04"), fs.ID)
	}
	fmt.Println(table)
}

// Events renders a day's calendar events.
func Events(events []models.CalendarEvent) {
	if len(events) == 0 {
		None()
		return
	}
	table := uitable.New()
	table.AddRow("TIME", "TITLE", "TYPE", "DURATION", "ID")
	for _, e := range events {
		table.AddRow(e.Time, e.Title, string(e.Type), e.Duration, e.ID)
	}
	fmt.Println(table)
}

// Achievements renders unlocked tiers and the progress toward locked ones.
func Achievements(unlocked []gamify.Definition, inProgress []gamify.Tracked) {
	Title("Unlocked")
	if len(unlocked) == 0 {
		None()
	}
	done := color.New(color.FgGreen)
	for _, a := range unlocked {
		_, _ = done.Printf("  %s", a.Title)
		fmt.Printf(" - %s\n", a.Description)
	}
	fmt.Println()
	Title("In progress")
	for _, tr := range inProgress {
		fmt.Printf("  %s - %s (%d/%d)\n", tr.Definition.Title, tr.Definition.Description, tr.Current, tr.Target)
	}
}
