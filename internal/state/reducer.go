package state

import (
	"time"

	"github.com/ariseapp/arise/internal/gamify"
	"github.com/ariseapp/arise/internal/models"
)

// Reduce applies an action to the state tree and returns the resulting tree.
// It is a pure function: the input state is never mutated, unknown actions
// and lookups that miss return the state unchanged, and it never errors.
// Actions are applied in dispatch order by the owning store; now supplies the
// timestamp for transitions that record one.
func Reduce(s AppState, action Action, now time.Time) AppState {
	switch a := action.(type) {
	case AddTask:
		s.Tasks = appendTasks(s.Tasks, a.Task)
		s.UserStats.TotalTasks++
		return s

	case UpdateTask:
		s.Tasks = replaceTask(s.Tasks, a.Task)
		return s

	case DeleteTask:
		s.Tasks = removeTask(s.Tasks, a.ID)
		return s

	case ToggleTask:
		idx := -1
		for i, t := range s.Tasks {
			if t.ID == a.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return s
		}
		tasks := make([]models.Task, len(s.Tasks))
		copy(tasks, s.Tasks)
		task := tasks[idx]
		task.Completed = !task.Completed
		if task.Completed {
			ts := now
			task.CompletedAt = &ts
			s.UserStats.CompletedTasks++
			s.UserStats.XP += gamify.XPTask
		} else {
			task.CompletedAt = nil
			s.UserStats.CompletedTasks--
			s.UserStats.XP -= gamify.XPTask
		}
		if s.UserStats.XP < 0 {
			s.UserStats.XP = 0
		}
		s.UserStats.Level = gamify.Level(s.UserStats.XP)
		tasks[idx] = task
		s.Tasks = tasks
		return s

	case AddJournalEntry:
		// Newest-first ordering.
		s.JournalEntries = prependJournal(s.JournalEntries, a.Entry)
		s.UserStats.TotalJournalEntries++
		s.UserStats.XP += gamify.XPJournalEntry
		s.UserStats.Level = gamify.Level(s.UserStats.XP)
		return s

	case UpdateJournalEntry:
		entries := make([]models.JournalEntry, len(s.JournalEntries))
		copy(entries, s.JournalEntries)
		for i, e := range entries {
			if e.ID == a.Entry.ID {
				entries[i] = a.Entry
				s.JournalEntries = entries
				return s
			}
		}
		return s

	case DeleteJournalEntry:
		entries := make([]models.JournalEntry, 0, len(s.JournalEntries))
		for _, e := range s.JournalEntries {
			if e.ID != a.ID {
				entries = append(entries, e)
			}
		}
		s.JournalEntries = entries
		return s

	case AddFocusSession:
		sessions := make([]models.FocusSession, 0, len(s.FocusSessions)+1)
		sessions = append(sessions, a.Session)
		sessions = append(sessions, s.FocusSessions...)
		s.FocusSessions = sessions
		return s

	case UpdateFocusSession:
		idx := -1
		for i, fs := range s.FocusSessions {
			if fs.ID == a.Session.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return s
		}
		prev := s.FocusSessions[idx]
		sessions := make([]models.FocusSession, len(s.FocusSessions))
		copy(sessions, s.FocusSessions)
		sessions[idx] = a.Session
		s.FocusSessions = sessions
		// Award minutes and XP once, on the not-completed -> completed
		// transition. Re-completing an already-completed session is a no-op
		// for stats.
		if a.Session.Completed && !prev.Completed {
			minutes := a.Session.CompletedDuration / 60
			s.UserStats.TotalFocusMinutes += minutes
			s.UserStats.XP += minutes * gamify.XPFocusMinute
			s.UserStats.Level = gamify.Level(s.UserStats.XP)
		}
		return s

	case AddCalendarEvent:
		events := make([]models.CalendarEvent, 0, len(s.CalendarEvents)+1)
		events = append(events, s.CalendarEvents...)
		events = append(events, a.Event)
		s.CalendarEvents = events
		return s

	case DeleteCalendarEvent:
		events := make([]models.CalendarEvent, 0, len(s.CalendarEvents))
		for _, e := range s.CalendarEvents {
			if e.ID != a.ID {
				events = append(events, e)
			}
		}
		s.CalendarEvents = events
		return s

	case LogMood:
		logs := make([]models.MoodLog, 0, len(s.MoodLogs)+1)
		logs = append(logs, a.Log)
		logs = append(logs, s.MoodLogs...)
		s.MoodLogs = logs
		return s

	case AddHabit:
		habits := make([]models.Habit, 0, len(s.Habits)+1)
		habits = append(habits, s.Habits...)
		habits = append(habits, a.Habit)
		s.Habits = habits
		return s

	case UpdateHabit:
		habits := make([]models.Habit, len(s.Habits))
		copy(habits, s.Habits)
		for i, h := range habits {
			if h.ID == a.Habit.ID {
				habits[i] = a.Habit
				s.Habits = habits
				return s
			}
		}
		return s

	case DeleteHabit:
		habits := make([]models.Habit, 0, len(s.Habits))
		for _, h := range s.Habits {
			if h.ID != a.ID {
				habits = append(habits, h)
			}
		}
		s.Habits = habits
		return s

	case CompleteHabit:
		idx := -1
		for i, h := range s.Habits {
			if h.ID == a.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return s
		}
		if s.Habits[idx].CompletedOn(a.Date) {
			return s
		}
		habits := make([]models.Habit, len(s.Habits))
		copy(habits, s.Habits)
		habit := habits[idx]
		dates := make([]string, 0, len(habit.CompletedDates)+1)
		dates = append(dates, habit.CompletedDates...)
		dates = append(dates, a.Date)
		habit.CompletedDates = dates
		// Streak counts completions, not calendar adjacency. Preserved from
		// the original behavior so imported streak values stay stable.
		habit.Streak++
		if habit.Streak > habit.BestStreak {
			habit.BestStreak = habit.Streak
		}
		habits[idx] = habit
		s.Habits = habits
		s.UserStats.XP += gamify.XPHabit
		s.UserStats.Level = gamify.Level(s.UserStats.XP)
		return s

	case AddCategory:
		cats := make([]models.Category, 0, len(s.Categories)+1)
		cats = append(cats, s.Categories...)
		cats = append(cats, a.Category)
		s.Categories = cats
		return s

	case DeleteCategory:
		cats := make([]models.Category, 0, len(s.Categories))
		for _, c := range s.Categories {
			if c.ID != a.ID {
				cats = append(cats, c)
			}
		}
		s.Categories = cats
		return s

	case AddAIMessage:
		msgs := make([]models.AIMessage, 0, len(s.AIMessages)+1)
		msgs = append(msgs, s.AIMessages...)
		msgs = append(msgs, a.Message)
		s.AIMessages = msgs
		return s

	case UpdateStats:
		stats := s.UserStats
		if a.TotalTasks != nil {
			stats.TotalTasks = *a.TotalTasks
		}
		if a.CompletedTasks != nil {
			stats.CompletedTasks = *a.CompletedTasks
		}
		if a.TotalFocusMinutes != nil {
			stats.TotalFocusMinutes = *a.TotalFocusMinutes
		}
		if a.TotalJournalEntries != nil {
			stats.TotalJournalEntries = *a.TotalJournalEntries
		}
		if a.CurrentTaskStreak != nil {
			stats.CurrentTaskStreak = *a.CurrentTaskStreak
		}
		if a.CurrentFocusStreak != nil {
			stats.CurrentFocusStreak = *a.CurrentFocusStreak
		}
		if a.CurrentJournalStreak != nil {
			stats.CurrentJournalStreak = *a.CurrentJournalStreak
		}
		if a.XP != nil {
			stats.XP = *a.XP
			if stats.XP < 0 {
				stats.XP = 0
			}
		}
		stats.Level = gamify.Level(stats.XP)
		s.UserStats = stats
		return s

	case AddXP:
		s.UserStats.XP += a.Amount
		if s.UserStats.XP < 0 {
			s.UserStats.XP = 0
		}
		s.UserStats.Level = gamify.Level(s.UserStats.XP)
		return s

	case UnlockAchievement:
		ach := a.Achievement
		if ach.UnlockedAt == nil {
			ts := now
			ach.UnlockedAt = &ts
		}
		achs := make([]models.Achievement, 0, len(s.Achievements)+1)
		achs = append(achs, s.Achievements...)
		achs = append(achs, ach)
		s.Achievements = achs
		return s

	case SetUserName:
		s.UserName = a.Name
		return s

	case UpdateProfile:
		profile := s.UserProfile
		if a.Name != "" {
			profile.Name = a.Name
		}
		if a.Goals != nil {
			profile.Goals = a.Goals
		}
		if a.Priorities != nil {
			profile.Priorities = a.Priorities
		}
		if a.OnboardingComplete != nil {
			profile.OnboardingComplete = *a.OnboardingComplete
		}
		s.UserProfile = profile
		return s

	case LoadState:
		return a.State

	default:
		return s
	}
}

func appendTasks(tasks []models.Task, t models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	out = append(out, t)
	return out
}

func replaceTask(tasks []models.Task, t models.Task) []models.Task {
	for i, cur := range tasks {
		if cur.ID == t.ID {
			out := make([]models.Task, len(tasks))
			copy(out, tasks)
			out[i] = t
			return out
		}
	}
	return tasks
}

func removeTask(tasks []models.Task, id string) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func prependJournal(entries []models.JournalEntry, e models.JournalEntry) []models.JournalEntry {
	out := make([]models.JournalEntry, 0, len(entries)+1)
	out = append(out, e)
	out = append(out, entries...)
	return out
}
