// Package suggest turns a habit into a structured action plan. When an
// endpoint is configured it asks the remote text-generation service once,
// best effort with no retry; on any network or parse failure it falls back
// to a deterministic local plan. Callers surface the fallback only as an
// informational notice, never as a hard failure.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ariseapp/arise/internal/logger"
	"github.com/ariseapp/arise/internal/models"
)

// PlanAction is one concrete task template inside a plan.
type PlanAction struct {
	Task             string `json:"task"`
	Frequency        string `json:"frequency"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// Plan is the structured suggestion for building a habit.
type Plan struct {
	Habit                   string       `json:"habit"`
	Actions                 []PlanAction `json:"actions"`
	Cue                     string       `json:"cue"`
	ImplementationIntention string       `json:"implementation_intention"`
	DurationDays            int          `json:"duration_days"`
}

type Planner struct {
	// Endpoint of the remote suggestion service; empty disables remote calls.
	Endpoint string

	// APIKey authorizes the remote call; typically loaded from the OS keyring.
	APIKey string

	Client *http.Client
}

func NewPlanner(endpoint, apiKey string) *Planner {
	return &Planner{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Suggest returns a plan for the habit. remote reports whether the plan came
// from the service; false means the deterministic local fallback was used.
func (p *Planner) Suggest(ctx context.Context, habit models.Habit) (plan Plan, remote bool) {
	if p.Endpoint == "" {
		return LocalPlan(habit), false
	}
	plan, err := p.fetch(ctx, habit)
	if err != nil {
		logger.Warn("Suggestion service unavailable, using local plan", "habit", habit.Title, "error", err)
		return LocalPlan(habit), false
	}
	return plan, true
}

func (p *Planner) fetch(ctx context.Context, habit models.Habit) (Plan, error) {
	body, err := json.Marshal(map[string]string{
		"habit":     habit.Title,
		"frequency": string(habit.Frequency),
		"category":  habit.Category,
	})
	if err != nil {
		return Plan{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Plan{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.APIKey)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Plan{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Plan{}, fmt.Errorf("suggestion service returned %s", resp.Status)
	}

	var plan Plan
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		return Plan{}, fmt.Errorf("failed to parse suggestion response: %w", err)
	}
	if plan.Habit == "" || len(plan.Actions) == 0 {
		return Plan{}, fmt.Errorf("suggestion response missing habit or actions")
	}
	return plan, nil
}

// LocalPlan builds the fixed heuristic plan used when the service cannot be
// reached. It is fully determined by the habit's title and frequency.
func LocalPlan(habit models.Habit) Plan {
	freq := string(habit.Frequency)
	if freq == "" {
		freq = string(models.FrequencyDaily)
	}
	title := strings.TrimSpace(habit.Title)
	return Plan{
		Habit: title,
		Actions: []PlanAction{
			{Task: fmt.Sprintf("Prepare everything needed for %q the night before", title), Frequency: freq, EstimatedMinutes: 5},
			{Task: fmt.Sprintf("Do a 10-minute version of %q", title), Frequency: freq, EstimatedMinutes: 10},
			{Task: fmt.Sprintf("Record how %q went in your journal", title), Frequency: "weekly", EstimatedMinutes: 5},
		},
		Cue:                     "Attach it to an existing routine, right after something you already do every day",
		ImplementationIntention: fmt.Sprintf("When I finish my morning routine, I will %s", strings.ToLower(title)),
		DurationDays:            21,
	}
}
