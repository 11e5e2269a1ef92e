package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/selectors"
	"github.com/ariseapp/arise/internal/state"
	"github.com/ariseapp/arise/internal/utils"
)

type MoodCmd struct {
	Log  MoodLogCmd  `cmd:"" help:"Log today's mood."`
	Week MoodWeekCmd `cmd:"" help:"Show the recent mood trend."`
}

type MoodLogCmd struct {
	Mood    int    `arg:"" help:"Mood (1-5)."`
	Energy  int    `short:"e" help:"Energy (1-5)."`
	Note    string `short:"n" help:"Optional note."`
	Factors string `help:"Comma-separated contributing factors."`
	Date    string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *MoodLogCmd) Run(ctx *Context) error {
	day, err := utils.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	var factors []string
	for _, f := range strings.Split(c.Factors, ",") {
		if f = strings.TrimSpace(f); f != "" {
			factors = append(factors, f)
		}
	}

	log := models.MoodLog{
		ID:      uuid.New().String(),
		Mood:    c.Mood,
		Energy:  c.Energy,
		Date:    day,
		Note:    c.Note,
		Factors: factors,
	}
	if err := log.Validate(); err != nil {
		return fmt.Errorf("invalid mood log: %w", err)
	}

	if err := ctx.Store.Dispatch(state.LogMood{Log: log}); err != nil {
		return err
	}

	fmt.Printf("Mood logged for %s: %d/5\n", day, c.Mood)
	return nil
}

type MoodWeekCmd struct{}

func (c *MoodWeekCmd) Run(ctx *Context) error {
	s := ctx.Store.State()
	moods := selectors.WeekMoods(s)
	if len(moods) == 0 {
		fmt.Println("No mood logs yet.")
		return nil
	}
	for _, m := range moods {
		bar := strings.Repeat("#", m.Mood)
		fmt.Printf("%s  %-5s %d/5  %s\n", m.Date, bar, m.Mood, m.Note)
	}
	if avg, ok := selectors.AverageWeekMood(s); ok {
		fmt.Printf("\nAverage: %.1f/5\n", avg)
	}
	if m, ok := selectors.TodayMood(s, time.Now()); ok {
		fmt.Printf("Today: %d/5\n", m.Mood)
	}
	return nil
}
