// Package gamify holds the level/XP computation and the achievement catalog.
// Achievement status is recomputed from live entity counts on every call;
// nothing here is persisted, so it cannot drift out of sync with the data.
package gamify

import "github.com/ariseapp/arise/internal/constants"

// XP awarded per completed action.
const (
	XPTask         = constants.XPPerTask
	XPJournalEntry = constants.XPPerJournalEntry
	XPHabit        = constants.XPPerHabit
	XPFocusMinute  = constants.XPPerFocusMinute
)

// Level derives the user level from total XP. Level 1 starts at 0 XP and
// each level spans 100 XP; it is always recomputed from XP, never stored
// independently.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/constants.XPPerLevel + 1
}

// Metric identifies the entity count an achievement tier is measured against.
type Metric string

const (
	MetricCompletedTasks Metric = "completed_tasks"
	MetricFocusMinutes   Metric = "focus_minutes"
	MetricJournalEntries Metric = "journal_entries"
	MetricHabits         Metric = "habits"
	MetricBestStreak     Metric = "best_streak"
	MetricLevel          Metric = "level"
)

// Definition is one fixed achievement tier.
type Definition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Metric      Metric
	Target      int
}

// Catalog is the fixed set of achievement tiers, evaluated in order.
var Catalog = []Definition{
	{ID: "first-task", Title: "First Steps", Description: "Complete your first task", Icon: "check", Metric: MetricCompletedTasks, Target: 1},
	{ID: "task-10", Title: "Taskmaster", Description: "Complete 10 tasks", Icon: "list", Metric: MetricCompletedTasks, Target: 10},
	{ID: "task-50", Title: "Unstoppable", Description: "Complete 50 tasks", Icon: "rocket", Metric: MetricCompletedTasks, Target: 50},
	{ID: "task-100", Title: "Centurion", Description: "Complete 100 tasks", Icon: "trophy", Metric: MetricCompletedTasks, Target: 100},
	{ID: "focus-60", Title: "Deep Diver", Description: "Log 1 hour of focus time", Icon: "timer", Metric: MetricFocusMinutes, Target: 60},
	{ID: "focus-600", Title: "Flow State", Description: "Log 10 hours of focus time", Icon: "zap", Metric: MetricFocusMinutes, Target: 600},
	{ID: "focus-3000", Title: "Time Lord", Description: "Log 50 hours of focus time", Icon: "hourglass", Metric: MetricFocusMinutes, Target: 3000},
	{ID: "journal-1", Title: "Dear Diary", Description: "Write your first journal entry", Icon: "book", Metric: MetricJournalEntries, Target: 1},
	{ID: "journal-20", Title: "Chronicler", Description: "Write 20 journal entries", Icon: "pen", Metric: MetricJournalEntries, Target: 20},
	{ID: "habit-3", Title: "Creature of Habit", Description: "Track 3 habits", Icon: "repeat", Metric: MetricHabits, Target: 3},
	{ID: "streak-7", Title: "On Fire", Description: "Reach a 7-day habit streak", Icon: "flame", Metric: MetricBestStreak, Target: 7},
	{ID: "streak-30", Title: "Iron Will", Description: "Reach a 30-day habit streak", Icon: "medal", Metric: MetricBestStreak, Target: 30},
	{ID: "level-5", Title: "Rising Star", Description: "Reach level 5", Icon: "star", Metric: MetricLevel, Target: 5},
	{ID: "level-10", Title: "Ascended", Description: "Reach level 10", Icon: "crown", Metric: MetricLevel, Target: 10},
}

// Progress carries the live entity counts achievements are measured against.
type Progress struct {
	CompletedTasks int
	FocusMinutes   int
	JournalEntries int
	Habits         int
	BestStreak     int
	Level          int
}

func (p Progress) value(m Metric) int {
	switch m {
	case MetricCompletedTasks:
		return p.CompletedTasks
	case MetricFocusMinutes:
		return p.FocusMinutes
	case MetricJournalEntries:
		return p.JournalEntries
	case MetricHabits:
		return p.Habits
	case MetricBestStreak:
		return p.BestStreak
	case MetricLevel:
		return p.Level
	default:
		return 0
	}
}

// Tracked is an achievement tier that has not been reached yet, with its
// current count against the target.
type Tracked struct {
	Definition Definition
	Current    int
	Target     int
}

// Evaluate splits the catalog into unlocked tiers and in-progress tiers for
// the given counts.
func Evaluate(p Progress) (unlocked []Definition, inProgress []Tracked) {
	for _, def := range Catalog {
		current := p.value(def.Metric)
		if current >= def.Target {
			unlocked = append(unlocked, def)
		} else {
			inProgress = append(inProgress, Tracked{Definition: def, Current: current, Target: def.Target})
		}
	}
	return unlocked, inProgress
}
