package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/printer"
	"github.com/ariseapp/arise/internal/selectors"
	"github.com/ariseapp/arise/internal/state"
	"github.com/ariseapp/arise/internal/utils"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Toggle TaskToggleCmd `cmd:"" help:"Toggle a task's completion."`
	Edit   TaskEditCmd   `cmd:"" help:"Edit an existing task."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Priority string `short:"p" help:"Priority (high|medium|low)." default:"medium" enum:"high,medium,low"`
	Due      string `short:"d" help:"Due date (YYYY-MM-DD, default: today)."`
	Category string `short:"c" help:"Category name." default:"Personal"`
	Estimate int    `short:"e" help:"Estimated minutes."`
	Note     string `help:"Longer description."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	due, err := utils.ResolveDate(c.Due)
	if err != nil {
		return err
	}

	task := models.Task{
		ID:               uuid.New().String(),
		Title:            c.Title,
		Description:      c.Note,
		Priority:         models.Priority(c.Priority),
		DueDate:          due,
		Category:         c.Category,
		Subtasks:         []models.Subtask{},
		CreatedAt:        time.Now().UTC(),
		EstimatedMinutes: c.Estimate,
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := ctx.Store.Dispatch(state.AddTask{Task: task}); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", c.Title, task.ID)
	return nil
}

type TaskListCmd struct {
	Pending   bool `help:"Only tasks not yet completed."`
	Completed bool `help:"Only completed tasks."`
	Today     bool `help:"Only tasks due today."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	s := ctx.Store.State()
	tasks := s.Tasks
	switch {
	case c.Pending:
		tasks = selectors.PendingTasks(s)
	case c.Completed:
		tasks = selectors.CompletedTasks(s)
	case c.Today:
		tasks = selectors.TodayTasks(s, time.Now())
	}
	printer.Tasks(tasks)
	return nil
}

type TaskToggleCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	task, ok := ctx.Store.State().FindTask(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	if err := ctx.Store.Dispatch(state.ToggleTask{ID: c.ID}); err != nil {
		return err
	}

	if !task.Completed {
		fmt.Printf("Completed: %s (+10 XP)\n", task.Title)
	} else {
		fmt.Printf("Reopened: %s\n", task.Title)
	}
	return nil
}

type TaskEditCmd struct {
	ID       string `arg:"" help:"Task ID."`
	Title    string `help:"New title."`
	Priority string `short:"p" help:"New priority (high|medium|low)." enum:",high,medium,low" default:""`
	Due      string `short:"d" help:"New due date (YYYY-MM-DD)."`
	Category string `short:"c" help:"New category."`
	Estimate int    `short:"e" help:"New estimated minutes." default:"-1"`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	task, ok := ctx.Store.State().FindTask(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	if c.Title != "" {
		task.Title = c.Title
	}
	if c.Priority != "" {
		task.Priority = models.Priority(c.Priority)
	}
	if c.Due != "" {
		due, err := utils.ResolveDate(c.Due)
		if err != nil {
			return err
		}
		task.DueDate = due
	}
	if c.Category != "" {
		task.Category = c.Category
	}
	if c.Estimate >= 0 {
		task.EstimatedMinutes = c.Estimate
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := ctx.Store.Dispatch(state.UpdateTask{Task: task}); err != nil {
		return err
	}

	fmt.Printf("Updated task: %s\n", task.Title)
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if _, ok := ctx.Store.State().FindTask(c.ID); !ok {
		return fmt.Errorf("task not found: %s", c.ID)
	}
	if err := ctx.Store.Dispatch(state.DeleteTask{ID: c.ID}); err != nil {
		return err
	}
	fmt.Println("Deleted task.")
	return nil
}
