// Package selectors derives filtered and aggregated views from the state
// tree. Every function is pure and stateless: it takes the current state and
// an explicit reference time, computes from scratch, and caches nothing.
package selectors

import (
	"math"
	"sort"
	"time"

	"github.com/ariseapp/arise/internal/constants"
	"github.com/ariseapp/arise/internal/gamify"
	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/state"
)

// Day formats a time as the application's day string.
func Day(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// PendingTasks returns tasks that are not completed.
func PendingTasks(s state.AppState) []models.Task {
	out := make([]models.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// CompletedTasks returns tasks that are completed.
func CompletedTasks(s state.AppState) []models.Task {
	out := make([]models.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// TodayTasks returns tasks due on the reference day.
func TodayTasks(s state.AppState, now time.Time) []models.Task {
	today := Day(now)
	out := make([]models.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.DueDate == today {
			out = append(out, t)
		}
	}
	return out
}

// TodayCompletedTasks returns tasks completed on the reference day.
func TodayCompletedTasks(s state.AppState, now time.Time) []models.Task {
	today := Day(now)
	out := make([]models.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.CompletedAt != nil && Day(*t.CompletedAt) == today {
			out = append(out, t)
		}
	}
	return out
}

// TodayFocusSessions returns sessions started on the reference day.
func TodayFocusSessions(s state.AppState, now time.Time) []models.FocusSession {
	today := Day(now)
	out := make([]models.FocusSession, 0, len(s.FocusSessions))
	for _, fs := range s.FocusSessions {
		if Day(fs.StartedAt) == today {
			out = append(out, fs)
		}
	}
	return out
}

// TodayFocusMinutes sums the whole minutes completed across today's sessions.
func TodayFocusMinutes(s state.AppState, now time.Time) int {
	total := 0
	for _, fs := range TodayFocusSessions(s, now) {
		total += fs.Minutes()
	}
	return total
}

// TodayHabitsCompleted counts habits completed on the reference day.
func TodayHabitsCompleted(s state.AppState, now time.Time) int {
	today := Day(now)
	count := 0
	for _, h := range s.Habits {
		if h.CompletedOn(today) {
			count++
		}
	}
	return count
}

// TodayMood returns the newest mood log dated the reference day.
func TodayMood(s state.AppState, now time.Time) (models.MoodLog, bool) {
	today := Day(now)
	for _, m := range s.MoodLogs {
		if m.Date == today {
			return m, true
		}
	}
	return models.MoodLog{}, false
}

// WeekMoods returns the 7 most recent mood logs, newest first.
func WeekMoods(s state.AppState) []models.MoodLog {
	n := len(s.MoodLogs)
	if n > 7 {
		n = 7
	}
	out := make([]models.MoodLog, n)
	copy(out, s.MoodLogs[:n])
	return out
}

// AverageWeekMood averages the recent mood logs; ok is false when there are
// none to average.
func AverageWeekMood(s state.AppState) (avg float64, ok bool) {
	moods := WeekMoods(s)
	if len(moods) == 0 {
		return 0, false
	}
	sum := 0
	for _, m := range moods {
		sum += m.Mood
	}
	return float64(sum) / float64(len(moods)), true
}

// EventsForDate returns the events on a day, ordered by time of day.
func EventsForDate(s state.AppState, date string) []models.CalendarEvent {
	out := make([]models.CalendarEvent, 0, len(s.CalendarEvents))
	for _, e := range s.CalendarEvents {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// Productivity blends today's completed tasks, focus minutes, and habit
// completions into a score bounded to [0,100].
func Productivity(s state.AppState, now time.Time) int {
	tasks := len(TodayCompletedTasks(s, now))
	minutes := TodayFocusMinutes(s, now)
	habits := TodayHabitsCompleted(s, now)
	score := int(math.Round(float64(tasks*10+minutes+habits*5) / 3))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// BestStreak returns the highest best-streak across all habits.
func BestStreak(s state.AppState) int {
	best := 0
	for _, h := range s.Habits {
		if h.BestStreak > best {
			best = h.BestStreak
		}
	}
	return best
}

// GamifyProgress builds the live counts achievement evaluation runs against.
func GamifyProgress(s state.AppState) gamify.Progress {
	return gamify.Progress{
		CompletedTasks: s.UserStats.CompletedTasks,
		FocusMinutes:   s.UserStats.TotalFocusMinutes,
		JournalEntries: s.UserStats.TotalJournalEntries,
		Habits:         len(s.Habits),
		BestStreak:     BestStreak(s),
		Level:          s.UserStats.Level,
	}
}
