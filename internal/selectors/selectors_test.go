package selectors

import (
	"testing"
	"time"

	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/state"
)

var testNow = time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

func fixtureState() state.AppState {
	s := state.DefaultState()
	yesterday := testNow.AddDate(0, 0, -1)

	s.Tasks = []models.Task{
		{ID: "t1", Title: "Due today", DueDate: "2024-01-15", Priority: models.PriorityHigh},
		{ID: "t2", Title: "Done today", DueDate: "2024-01-15", Priority: models.PriorityLow, Completed: true, CompletedAt: &testNow},
		{ID: "t3", Title: "Done yesterday", DueDate: "2024-01-14", Priority: models.PriorityLow, Completed: true, CompletedAt: &yesterday},
	}
	s.FocusSessions = []models.FocusSession{
		{ID: "f1", StartedAt: testNow, CompletedDuration: 1500, Duration: 1500, Completed: true},
		{ID: "f2", StartedAt: yesterday, CompletedDuration: 3600, Duration: 3600, Completed: true},
	}
	s.Habits = []models.Habit{
		{ID: "h1", Title: "Meditate", CompletedDates: []string{"2024-01-15"}, Streak: 2, BestStreak: 4},
		{ID: "h2", Title: "Run", CompletedDates: []string{"2024-01-14"}, Streak: 1, BestStreak: 9},
	}
	return s
}

func TestPendingAndCompletedPartition(t *testing.T) {
	s := fixtureState()
	pending := PendingTasks(s)
	completed := CompletedTasks(s)
	if len(pending) != 1 || pending[0].ID != "t1" {
		t.Errorf("expected pending [t1], got %v", pending)
	}
	if len(completed) != 2 {
		t.Errorf("expected 2 completed, got %d", len(completed))
	}
	if len(pending)+len(completed) != len(s.Tasks) {
		t.Errorf("partition does not cover all tasks")
	}
}

func TestTodaySelectors(t *testing.T) {
	s := fixtureState()

	if got := TodayTasks(s, testNow); len(got) != 2 {
		t.Errorf("expected 2 tasks due today, got %d", len(got))
	}
	if got := TodayCompletedTasks(s, testNow); len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("expected [t2] completed today, got %v", got)
	}
	if got := TodayFocusMinutes(s, testNow); got != 25 {
		t.Errorf("expected 25 focus minutes today, got %d", got)
	}
	if got := TodayHabitsCompleted(s, testNow); got != 1 {
		t.Errorf("expected 1 habit completed today, got %d", got)
	}
}

func TestProductivityFormula(t *testing.T) {
	s := fixtureState()
	// (1 task * 10 + 25 minutes + 1 habit * 5) / 3 = 40/3 -> 13
	if got := Productivity(s, testNow); got != 13 {
		t.Errorf("expected productivity 13, got %d", got)
	}
}

func TestProductivityBounds(t *testing.T) {
	empty := state.DefaultState()
	if got := Productivity(empty, testNow); got != 0 {
		t.Errorf("expected 0 for empty state, got %d", got)
	}

	s := state.DefaultState()
	for i := 0; i < 50; i++ {
		ts := testNow
		s.Tasks = append(s.Tasks, models.Task{
			ID: string(rune('a' + i)), Completed: true, CompletedAt: &ts,
		})
	}
	if got := Productivity(s, testNow); got != 100 {
		t.Errorf("expected productivity capped at 100, got %d", got)
	}
}

func TestWeekMoods(t *testing.T) {
	s := state.DefaultState()
	for i := 0; i < 10; i++ {
		s.MoodLogs = append(s.MoodLogs, models.MoodLog{
			ID: string(rune('a' + i)), Mood: i%5 + 1, Date: "2024-01-15",
		})
	}

	moods := WeekMoods(s)
	if len(moods) != 7 {
		t.Fatalf("expected 7 moods, got %d", len(moods))
	}
	if moods[0].ID != s.MoodLogs[0].ID {
		t.Errorf("expected newest-first ordering preserved")
	}
}

func TestAverageWeekMood(t *testing.T) {
	s := state.DefaultState()
	if _, ok := AverageWeekMood(s); ok {
		t.Errorf("expected no average for empty logs")
	}

	s.MoodLogs = []models.MoodLog{
		{ID: "m1", Mood: 2, Date: "2024-01-15"},
		{ID: "m2", Mood: 4, Date: "2024-01-14"},
	}
	avg, ok := AverageWeekMood(s)
	if !ok || avg != 3.0 {
		t.Errorf("expected average 3.0, got %v (ok=%v)", avg, ok)
	}
}

func TestTodayMood(t *testing.T) {
	s := state.DefaultState()
	s.MoodLogs = []models.MoodLog{
		{ID: "m2", Mood: 5, Date: "2024-01-15"},
		{ID: "m1", Mood: 2, Date: "2024-01-15"},
		{ID: "m0", Mood: 1, Date: "2024-01-14"},
	}

	got, ok := TodayMood(s, testNow)
	if !ok || got.ID != "m2" {
		t.Errorf("expected newest log for today (m2), got %v (ok=%v)", got.ID, ok)
	}
}

func TestEventsForDateOrdering(t *testing.T) {
	s := state.DefaultState()
	s.CalendarEvents = []models.CalendarEvent{
		{ID: "e1", Title: "Lunch", Date: "2024-01-15", Time: "12:00", Type: models.EventBreak},
		{ID: "e2", Title: "Standup", Date: "2024-01-15", Time: "09:30", Type: models.EventMeeting},
		{ID: "e3", Title: "Other day", Date: "2024-01-16", Time: "08:00", Type: models.EventRoutine},
	}

	events := EventsForDate(s, "2024-01-15")
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != "e2" || events[1].ID != "e1" {
		t.Errorf("expected time ordering [e2 e1], got [%s %s]", events[0].ID, events[1].ID)
	}
}

func TestBestStreak(t *testing.T) {
	s := fixtureState()
	if got := BestStreak(s); got != 9 {
		t.Errorf("expected best streak 9, got %d", got)
	}
	if got := BestStreak(state.DefaultState()); got != 0 {
		t.Errorf("expected 0 for no habits, got %d", got)
	}
}
