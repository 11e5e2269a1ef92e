package state

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ariseapp/arise/internal/models"
)

var testNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

type bogusAction struct{}

func (bogusAction) actionType() string { return "BOGUS" }

func newTask(id, title string) models.Task {
	return models.Task{
		ID:        id,
		Title:     title,
		Priority:  models.PriorityMedium,
		DueDate:   "2024-01-15",
		Category:  "Work",
		Subtasks:  []models.Subtask{},
		CreatedAt: testNow,
	}
}

func TestReduceUnknownActionIdentity(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, AddTask{Task: newTask("t1", "Write report")}, testNow)

	before, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("failed to serialize state: %v", err)
	}
	after, err := json.Marshal(Reduce(s, bogusAction{}, testNow))
	if err != nil {
		t.Fatalf("failed to serialize state: %v", err)
	}
	if string(before) != string(after) {
		t.Errorf("unknown action changed state")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, AddTask{Task: newTask("t1", "Original")}, testNow)

	before, _ := json.Marshal(s)
	_ = Reduce(s, ToggleTask{ID: "t1"}, testNow)
	_ = Reduce(s, UpdateTask{Task: newTask("t1", "Changed")}, testNow)
	_ = Reduce(s, DeleteTask{ID: "t1"}, testNow)
	after, _ := json.Marshal(s)

	if string(before) != string(after) {
		t.Errorf("Reduce mutated its input state")
	}
}

func TestAddTaskScenario(t *testing.T) {
	s := DefaultState()
	task := models.Task{
		ID:        "t1",
		Title:     "Write report",
		Priority:  models.PriorityHigh,
		DueDate:   "2024-01-15",
		CreatedAt: testNow,
	}
	s = Reduce(s, AddTask{Task: task}, testNow)

	if s.UserStats.TotalTasks != 1 {
		t.Errorf("expected totalTasks 1, got %d", s.UserStats.TotalTasks)
	}

	s = Reduce(s, ToggleTask{ID: "t1"}, testNow)

	if s.UserStats.CompletedTasks != 1 {
		t.Errorf("expected completedTasks 1, got %d", s.UserStats.CompletedTasks)
	}
	if s.UserStats.XP != 10 {
		t.Errorf("expected 10 XP, got %d", s.UserStats.XP)
	}
	if s.UserStats.Level != 1 {
		t.Errorf("expected level 1, got %d", s.UserStats.Level)
	}
	got, _ := s.FindTask("t1")
	if !got.Completed {
		t.Errorf("expected task completed")
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(testNow) {
		t.Errorf("expected completedAt %v, got %v", testNow, got.CompletedAt)
	}
}

func TestToggleTaskSelfInverse(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, AddTask{Task: newTask("t1", "Task")}, testNow)
	s = Reduce(s, AddXP{Amount: 50}, testNow)

	s = Reduce(s, ToggleTask{ID: "t1"}, testNow)
	s = Reduce(s, ToggleTask{ID: "t1"}, testNow)

	if s.UserStats.XP != 50 {
		t.Errorf("expected XP restored to 50, got %d", s.UserStats.XP)
	}
	if s.UserStats.CompletedTasks != 0 {
		t.Errorf("expected completedTasks restored to 0, got %d", s.UserStats.CompletedTasks)
	}
	got, _ := s.FindTask("t1")
	if got.Completed {
		t.Errorf("expected task not completed after double toggle")
	}
	if got.CompletedAt != nil {
		t.Errorf("expected completedAt cleared, got %v", got.CompletedAt)
	}
}

func TestToggleTaskXPFloor(t *testing.T) {
	// Complete with 0 XP banked elsewhere, spend it, then un-complete: XP
	// clamps at 0 instead of going negative.
	s := DefaultState()
	s = Reduce(s, AddTask{Task: newTask("t1", "Task")}, testNow)
	s = Reduce(s, ToggleTask{ID: "t1"}, testNow)

	// Drain xp below the refund amount.
	zero := 0
	s = Reduce(s, UpdateStats{XP: &zero}, testNow)

	s = Reduce(s, ToggleTask{ID: "t1"}, testNow)
	if s.UserStats.XP != 0 {
		t.Errorf("expected XP clamped at 0, got %d", s.UserStats.XP)
	}
}

func TestToggleTaskMissingIDNoop(t *testing.T) {
	s := DefaultState()
	before, _ := json.Marshal(s)
	after, _ := json.Marshal(Reduce(s, ToggleTask{ID: "nope"}, testNow))
	if string(before) != string(after) {
		t.Errorf("toggling a missing task changed state")
	}
}

func TestUpdateDeleteMissingIDNoop(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, AddTask{Task: newTask("t1", "Keep")}, testNow)
	before, _ := json.Marshal(s)

	s2 := Reduce(s, UpdateTask{Task: newTask("nope", "Ghost")}, testNow)
	s2 = Reduce(s2, DeleteTask{ID: "nope"}, testNow)
	s2 = Reduce(s2, UpdateHabit{Habit: models.Habit{ID: "nope"}}, testNow)
	s2 = Reduce(s2, CompleteHabit{ID: "nope", Date: "2024-01-15"}, testNow)
	s2 = Reduce(s2, UpdateFocusSession{Session: models.FocusSession{ID: "nope"}}, testNow)

	after, _ := json.Marshal(s2)
	if string(before) != string(after) {
		t.Errorf("actions on missing ids changed state")
	}
}

func TestAddJournalEntryPrependsAndAwards(t *testing.T) {
	s := DefaultState()
	first := models.JournalEntry{ID: "j1", Title: "First", Mood: 3, CreatedAt: testNow}
	second := models.JournalEntry{ID: "j2", Title: "Second", Mood: 4, CreatedAt: testNow}

	s = Reduce(s, AddJournalEntry{Entry: first}, testNow)
	s = Reduce(s, AddJournalEntry{Entry: second}, testNow)

	if len(s.JournalEntries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(s.JournalEntries))
	}
	if s.JournalEntries[0].ID != "j2" {
		t.Errorf("expected newest entry first, got %s", s.JournalEntries[0].ID)
	}
	if s.UserStats.TotalJournalEntries != 2 {
		t.Errorf("expected totalJournalEntries 2, got %d", s.UserStats.TotalJournalEntries)
	}
	if s.UserStats.XP != 30 {
		t.Errorf("expected 30 XP, got %d", s.UserStats.XP)
	}
}

func TestFocusSessionCompletionScenario(t *testing.T) {
	s := DefaultState()
	session := models.FocusSession{ID: "f1", Mode: "pomodoro", Duration: 1500, StartedAt: testNow}
	s = Reduce(s, AddFocusSession{Session: session}, testNow)

	if s.UserStats.TotalFocusMinutes != 0 || s.UserStats.XP != 0 {
		t.Fatalf("adding a session must not award anything")
	}

	done := session
	done.CompletedDuration = 1500
	done.Completed = true
	ts := testNow
	done.CompletedAt = &ts
	s = Reduce(s, UpdateFocusSession{Session: done}, testNow)

	if s.UserStats.TotalFocusMinutes != 25 {
		t.Errorf("expected 25 focus minutes, got %d", s.UserStats.TotalFocusMinutes)
	}
	if s.UserStats.XP != 125 {
		t.Errorf("expected 125 XP, got %d", s.UserStats.XP)
	}
	if s.UserStats.Level != 2 {
		t.Errorf("expected level 2 at 125 XP, got %d", s.UserStats.Level)
	}
}

func TestFocusSessionRecompletionAwardsOnce(t *testing.T) {
	s := DefaultState()
	session := models.FocusSession{ID: "f1", Mode: "deep", Duration: 3600, StartedAt: testNow}
	s = Reduce(s, AddFocusSession{Session: session}, testNow)

	done := session
	done.CompletedDuration = 3600
	done.Completed = true
	ts := testNow
	done.CompletedAt = &ts

	s = Reduce(s, UpdateFocusSession{Session: done}, testNow)
	s = Reduce(s, UpdateFocusSession{Session: done}, testNow)

	if s.UserStats.TotalFocusMinutes != 60 {
		t.Errorf("expected minutes awarded once (60), got %d", s.UserStats.TotalFocusMinutes)
	}
	if s.UserStats.XP != 300 {
		t.Errorf("expected XP awarded once (300), got %d", s.UserStats.XP)
	}
}

func TestCompleteHabitDedupByDate(t *testing.T) {
	s := DefaultState()
	habit := models.Habit{
		ID:             "h1",
		Title:          "Meditate",
		Frequency:      models.FrequencyDaily,
		CompletedDates: []string{},
		CreatedAt:      testNow,
	}
	s = Reduce(s, AddHabit{Habit: habit}, testNow)

	s = Reduce(s, CompleteHabit{ID: "h1", Date: "2024-03-01"}, testNow)
	s = Reduce(s, CompleteHabit{ID: "h1", Date: "2024-03-01"}, testNow)

	got, _ := s.FindHabit("h1")
	if got.Streak != 1 {
		t.Errorf("expected streak 1 after duplicate completion, got %d", got.Streak)
	}
	if len(got.CompletedDates) != 1 {
		t.Errorf("expected 1 completed date, got %d", len(got.CompletedDates))
	}
	if s.UserStats.XP != 5 {
		t.Errorf("expected 5 XP awarded once, got %d", s.UserStats.XP)
	}
}

func TestCompleteHabitStreakAndBestStreak(t *testing.T) {
	s := DefaultState()
	habit := models.Habit{
		ID:             "h1",
		Title:          "Run",
		Frequency:      models.FrequencyDaily,
		CompletedDates: []string{},
		CreatedAt:      testNow,
	}
	s = Reduce(s, AddHabit{Habit: habit}, testNow)

	// Non-adjacent dates still count: the streak tracks completions.
	for _, date := range []string{"2024-03-01", "2024-03-05", "2024-03-09"} {
		s = Reduce(s, CompleteHabit{ID: "h1", Date: date}, testNow)
	}

	got, _ := s.FindHabit("h1")
	if got.Streak != 3 {
		t.Errorf("expected streak 3, got %d", got.Streak)
	}
	if got.BestStreak != 3 {
		t.Errorf("expected bestStreak 3, got %d", got.BestStreak)
	}
	if got.BestStreak < got.Streak {
		t.Errorf("bestStreak %d below streak %d", got.BestStreak, got.Streak)
	}
}

func TestAddXPFloorAndLevel(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, AddXP{Amount: 250}, testNow)
	if s.UserStats.Level != 3 {
		t.Errorf("expected level 3 at 250 XP, got %d", s.UserStats.Level)
	}

	s = Reduce(s, AddXP{Amount: -1000}, testNow)
	if s.UserStats.XP != 0 {
		t.Errorf("expected XP clamped at 0, got %d", s.UserStats.XP)
	}
	if s.UserStats.Level != 1 {
		t.Errorf("expected level 1 at 0 XP, got %d", s.UserStats.Level)
	}
}

func TestUpdateStatsMergesAndRederivesLevel(t *testing.T) {
	s := DefaultState()
	xp := 350
	tasks := 7
	s = Reduce(s, UpdateStats{XP: &xp, TotalTasks: &tasks}, testNow)

	if s.UserStats.XP != 350 || s.UserStats.TotalTasks != 7 {
		t.Errorf("expected merged stats, got %+v", s.UserStats)
	}
	if s.UserStats.Level != 4 {
		t.Errorf("expected level re-derived to 4, got %d", s.UserStats.Level)
	}
	if s.UserStats.CompletedTasks != 0 {
		t.Errorf("unset fields must stay untouched, got %d", s.UserStats.CompletedTasks)
	}
}

func TestUpdateProfileMerge(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, UpdateProfile{Name: "River", Goals: []string{"exercise daily"}}, testNow)
	s = Reduce(s, UpdateProfile{Priorities: []string{"health"}}, testNow)

	if s.UserProfile.Name != "River" {
		t.Errorf("expected name kept, got %q", s.UserProfile.Name)
	}
	if len(s.UserProfile.Goals) != 1 || s.UserProfile.Goals[0] != "exercise daily" {
		t.Errorf("expected goals kept, got %v", s.UserProfile.Goals)
	}
	if len(s.UserProfile.Priorities) != 1 {
		t.Errorf("expected priorities set, got %v", s.UserProfile.Priorities)
	}
}

func TestUnlockAchievementResolvesTimestamp(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, UnlockAchievement{Achievement: models.Achievement{ID: "legacy", Title: "Legacy"}}, testNow)

	if len(s.Achievements) != 1 {
		t.Fatalf("expected 1 achievement, got %d", len(s.Achievements))
	}
	if s.Achievements[0].UnlockedAt == nil || !s.Achievements[0].UnlockedAt.Equal(testNow) {
		t.Errorf("expected unlockedAt resolved to %v, got %v", testNow, s.Achievements[0].UnlockedAt)
	}
}

func TestLoadStateReplacesTree(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, AddTask{Task: newTask("t1", "Old")}, testNow)

	replacement := DefaultState()
	replacement.UserName = "Replaced"
	s = Reduce(s, LoadState{State: replacement}, testNow)

	if len(s.Tasks) != 0 {
		t.Errorf("expected tasks replaced, got %d", len(s.Tasks))
	}
	if s.UserName != "Replaced" {
		t.Errorf("expected userName replaced, got %q", s.UserName)
	}
}

func TestLogMoodPrepends(t *testing.T) {
	s := DefaultState()
	s = Reduce(s, LogMood{Log: models.MoodLog{ID: "m1", Mood: 3, Date: "2024-01-14"}}, testNow)
	s = Reduce(s, LogMood{Log: models.MoodLog{ID: "m2", Mood: 5, Date: "2024-01-15"}}, testNow)

	if s.MoodLogs[0].ID != "m2" {
		t.Errorf("expected newest mood first, got %s", s.MoodLogs[0].ID)
	}
}
