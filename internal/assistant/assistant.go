// Package assistant implements the rule-based chat responder. It matches
// lower-cased input against fixed command patterns, reads the derived
// selectors for analysis replies, and dispatches ordinary actions for
// mutating commands. There is no language model and no network; replies are
// deterministic templates.
package assistant

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ariseapp/arise/internal/constants"
	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/selectors"
	"github.com/ariseapp/arise/internal/state"
	"github.com/ariseapp/arise/internal/store"
	"github.com/ariseapp/arise/internal/utils"
)

type Responder struct {
	store *store.Store
}

func New(s *store.Store) *Responder {
	return &Responder{store: s}
}

var (
	// Requires the text after "goal(s)" to start with a word character, so a
	// bare question like "what are my goals?" never reads as a set command.
	goalPattern  = regexp.MustCompile(`(?i)goals?\b\s*(?:is|are|:)?\s*(?:to\s+)?(\w.+)`)
	habitPattern = regexp.MustCompile(`(?i)add habit\s*:?\s*`)
	taskPattern  = regexp.MustCompile(`(?i)(?:add|create)\s*task\s*:?\s*`)
)

var quotes = []string{
	"Small daily improvements lead to staggering long-term results.",
	"The secret of getting ahead is getting started.",
	"You don't have to be great to start, but you have to start to be great.",
	"Success is the sum of small efforts repeated day in and day out.",
}

// Respond processes one user message: the exchange is recorded in the state
// tree and the assistant's reply returned. Mutating commands go through the
// ordinary dispatch path, so stats and persistence behave exactly as if the
// user had used the CLI directly.
func (r *Responder) Respond(input string) (string, error) {
	now := r.store.Now()
	if err := r.record(models.RoleUser, input, now); err != nil {
		return "", err
	}
	reply, err := r.reply(input, now)
	if err != nil {
		return "", err
	}
	if err := r.record(models.RoleAssistant, reply, now); err != nil {
		return "", err
	}
	return reply, nil
}

func (r *Responder) record(role models.Role, content string, now time.Time) error {
	return r.store.Dispatch(state.AddAIMessage{Message: models.AIMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		CreatedAt: now,
	}})
}

func (r *Responder) reply(input string, now time.Time) (string, error) {
	lower := strings.ToLower(input)
	s := r.store.State()

	switch {
	case strings.Contains(lower, "add habit"):
		title := strings.TrimSpace(habitPattern.ReplaceAllString(input, ""))
		if title == "" {
			return "Please specify the habit name. For example: 'add habit Morning stretching'", nil
		}
		habit := models.Habit{
			ID:             uuid.New().String(),
			Title:          title,
			Frequency:      models.FrequencyDaily,
			Category:       "Personal",
			Color:          "violet",
			CompletedDates: []string{},
			CreatedAt:      now,
		}
		if err := r.store.Dispatch(state.AddHabit{Habit: habit}); err != nil {
			return "", err
		}
		return fmt.Sprintf("Done! I've added %q to your habits. Consistency is key - small daily actions lead to big changes.", title), nil

	case strings.Contains(lower, "add task") || strings.Contains(lower, "create task"):
		title := strings.TrimSpace(taskPattern.ReplaceAllString(input, ""))
		if title == "" {
			return "Please specify what task you'd like to add. For example: 'add task Complete project report'", nil
		}
		task := models.Task{
			ID:        uuid.New().String(),
			Title:     title,
			Priority:  models.PriorityMedium,
			Category:  "Work",
			DueDate:   now.Format(constants.DateFormat),
			Subtasks:  []models.Subtask{},
			CreatedAt: now,
		}
		if err := r.store.Dispatch(state.AddTask{Task: task}); err != nil {
			return "", err
		}
		return fmt.Sprintf("Task %q has been added! I've set it for today with medium priority.", title), nil

	case strings.Contains(lower, "goal") || strings.Contains(lower, "priorit"):
		if m := goalPattern.FindStringSubmatch(input); m != nil {
			goals := splitList(m[1])
			if len(goals) > 0 {
				merged := append(append([]string{}, s.UserProfile.Goals...), goals...)
				if err := r.store.Dispatch(state.UpdateProfile{Goals: merged}); err != nil {
					return "", err
				}
				return fmt.Sprintf("I've noted your goals: %s. I'll help you track progress and suggest tasks aligned with these priorities.", strings.Join(goals, ", ")), nil
			}
		}
		if strings.Contains(lower, "set") || strings.Contains(lower, "add") {
			return "I'd love to help you set goals! Tell me what you want to achieve, e.g. 'My goals are to exercise daily and learn a new skill.'", nil
		}
		if len(s.UserProfile.Goals) > 0 {
			return fmt.Sprintf("Your current goals are: %s. You've completed %d tasks and your productivity score today is %d%%.",
				strings.Join(s.UserProfile.Goals, ", "), s.UserStats.CompletedTasks, selectors.Productivity(s, now)), nil
		}
		return "You haven't set any goals yet. What would you like to achieve?", nil

	case strings.Contains(lower, "analyz") || strings.Contains(lower, "analysis") ||
		strings.Contains(lower, "how am i doing") || strings.Contains(lower, "performance") ||
		strings.Contains(lower, "stats") || strings.Contains(lower, "progress"):
		return r.analysis(s, now), nil

	case strings.Contains(lower, "motivat") || strings.Contains(lower, "inspire") || strings.Contains(lower, "encourage"):
		quote := quotes[s.UserStats.XP/constants.XPPerTask%len(quotes)]
		return fmt.Sprintf("%s\n\nYou're at Level %d with %d XP. Every action counts!", quote, s.UserStats.Level, s.UserStats.XP), nil

	case strings.Contains(lower, "help") || strings.Contains(lower, "what can you do"):
		return "I can help with:\n" +
			"- Goals: \"Set my goals to...\" or \"What are my priorities?\"\n" +
			"- Tasks: \"add task [name]\"\n" +
			"- Habits: \"add habit [name]\"\n" +
			"- Analysis: \"How am I doing?\"\n" +
			"- Motivation: \"Motivate me\"", nil

	default:
		return fmt.Sprintf("I understand you're asking about %q. I can help with goals, tasks, habits, and productivity analysis. Try \"help\" for the full list.", input), nil
	}
}

func (r *Responder) analysis(s state.AppState, now time.Time) string {
	productivity := selectors.Productivity(s, now)
	pending := len(selectors.PendingTasks(s))
	var verdict string
	switch {
	case productivity >= 70:
		verdict = "You're doing great! Keep up the momentum!"
	case productivity >= 40:
		verdict = "Good progress! Try adding a focus session to boost your score."
	default:
		verdict = "Let's get started! Complete some tasks or start a focus session to build momentum."
	}
	return fmt.Sprintf("Your Analysis\n\nProductivity: %d%%\nLevel: %d (%d XP)\nTasks: %d completed, %d pending\nFocus: %s total\nHabits: %d active\nJournal: %d entries\n\n%s",
		productivity, s.UserStats.Level, s.UserStats.XP,
		s.UserStats.CompletedTasks, pending,
		utils.FormatMinutes(s.UserStats.TotalFocusMinutes),
		len(s.Habits), s.UserStats.TotalJournalEntries, verdict)
}

func splitList(raw string) []string {
	parts := regexp.MustCompile(`,|\band\b`).Split(raw, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
