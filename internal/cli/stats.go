package cli

import (
	"fmt"
	"time"

	"github.com/ariseapp/arise/internal/gamify"
	"github.com/ariseapp/arise/internal/printer"
	"github.com/ariseapp/arise/internal/selectors"
	"github.com/ariseapp/arise/internal/utils"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	s := ctx.Store.State()
	now := time.Now()
	stats := s.UserStats

	printer.Title(fmt.Sprintf("%s - Level %d (%d XP)", s.UserName, stats.Level, stats.XP))
	fmt.Printf("Productivity today: %d%%\n", selectors.Productivity(s, now))
	fmt.Printf("Tasks:   %d completed of %d (today: %d)\n", stats.CompletedTasks, stats.TotalTasks, len(selectors.TodayCompletedTasks(s, now)))
	fmt.Printf("Focus:   %s total (today: %s)\n", utils.FormatMinutes(stats.TotalFocusMinutes), utils.FormatMinutes(selectors.TodayFocusMinutes(s, now)))
	fmt.Printf("Habits:  %d tracked, %d completed today, best streak %d\n", len(s.Habits), selectors.TodayHabitsCompleted(s, now), selectors.BestStreak(s))
	fmt.Printf("Journal: %d entries\n", stats.TotalJournalEntries)
	if avg, ok := selectors.AverageWeekMood(s); ok {
		fmt.Printf("Mood:    %.1f/5 this week\n", avg)
	}
	return nil
}

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *Context) error {
	unlocked, inProgress := gamify.Evaluate(selectors.GamifyProgress(ctx.Store.State()))
	printer.Achievements(unlocked, inProgress)
	return nil
}
