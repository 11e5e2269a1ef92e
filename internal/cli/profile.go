package cli

import (
	"fmt"
	"strings"

	"github.com/ariseapp/arise/internal/keyring"
	"github.com/ariseapp/arise/internal/state"
)

type ProfileCmd struct {
	Show      ProfileShowCmd      `cmd:"" help:"Show the user profile." default:"1"`
	SetName   ProfileSetNameCmd   `cmd:"" name:"set-name" help:"Set the display name."`
	AddGoal   ProfileAddGoalCmd   `cmd:"" name:"add-goal" help:"Add a goal."`
	SetKey    ProfileSetKeyCmd    `cmd:"" name:"set-key" help:"Store the suggestion-service API key in the OS keyring."`
	DeleteKey ProfileDeleteKeyCmd `cmd:"" name:"delete-key" help:"Remove the stored API key."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	s := ctx.Store.State()
	fmt.Printf("Name: %s\n", s.UserName)
	if len(s.UserProfile.Goals) > 0 {
		fmt.Printf("Goals: %s\n", strings.Join(s.UserProfile.Goals, ", "))
	}
	if len(s.UserProfile.Priorities) > 0 {
		fmt.Printf("Priorities: %s\n", strings.Join(s.UserProfile.Priorities, ", "))
	}
	fmt.Printf("Onboarding complete: %v\n", s.UserProfile.OnboardingComplete)
	return nil
}

type ProfileSetNameCmd struct {
	Name string `arg:"" help:"Display name."`
}

func (c *ProfileSetNameCmd) Run(ctx *Context) error {
	if err := ctx.Store.Dispatch(state.SetUserName{Name: c.Name}); err != nil {
		return err
	}
	if err := ctx.Store.Dispatch(state.UpdateProfile{Name: c.Name}); err != nil {
		return err
	}
	fmt.Printf("Hello, %s!\n", c.Name)
	return nil
}

type ProfileAddGoalCmd struct {
	Goal string `arg:"" help:"Goal text."`
}

func (c *ProfileAddGoalCmd) Run(ctx *Context) error {
	goals := append(append([]string{}, ctx.Store.State().UserProfile.Goals...), c.Goal)
	if err := ctx.Store.Dispatch(state.UpdateProfile{Goals: goals}); err != nil {
		return err
	}
	fmt.Printf("Goal added: %s\n", c.Goal)
	return nil
}

type ProfileSetKeyCmd struct {
	Key string `arg:"" help:"API key."`
}

func (c *ProfileSetKeyCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("API key stored in OS keyring.")
	return nil
}

type ProfileDeleteKeyCmd struct{}

func (c *ProfileDeleteKeyCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("API key removed.")
	return nil
}
