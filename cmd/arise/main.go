package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ariseapp/arise/internal/cli"
	"github.com/ariseapp/arise/internal/constants"
	"github.com/ariseapp/arise/internal/errors"
	"github.com/ariseapp/arise/internal/keyring"
	"github.com/ariseapp/arise/internal/logger"
	"github.com/ariseapp/arise/internal/storage"
	"github.com/ariseapp/arise/internal/store"
	"github.com/ariseapp/arise/internal/suggest"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config directory." type:"string" default:"~/.config/arise"`
	Store   string `help:"Snapshot backend (diskv|sqlite)." default:"diskv" enum:"diskv,sqlite"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Endpoint string `help:"Habit suggestion service endpoint." env:"ARISE_SUGGEST_ENDPOINT"`

	Init         cli.InitCmd         `cmd:"" help:"Initialize arise storage."`
	Task         cli.TaskCmd         `cmd:"" help:"Manage tasks."`
	Habit        cli.HabitCmd        `cmd:"" help:"Manage habits and streaks."`
	Journal      cli.JournalCmd      `cmd:"" help:"Manage journal entries."`
	Focus        cli.FocusCmd        `cmd:"" help:"Track focus sessions."`
	Mood         cli.MoodCmd         `cmd:"" help:"Log and review moods."`
	Event        cli.EventCmd        `cmd:"" help:"Manage calendar events."`
	Category     cli.CategoryCmd     `cmd:"" help:"Manage categories."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show progress and productivity." default:"1"`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show achievement status."`
	Profile      cli.ProfileCmd      `cmd:"" help:"Manage the user profile."`
	Chat         cli.ChatCmd         `cmd:"" help:"Talk to the assistant."`
	Export       cli.ExportCmd       `cmd:"" help:"Export the full state tree to a file."`
	Import       cli.ImportCmd       `cmd:"" help:"Import a previously exported state tree."`
	Debugstate   cli.DebugCmd        `cmd:"" name:"debug-state" hidden:"" help:"Dump collection counts."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal life operating system: tasks, habits, journaling, focus, and progress tracking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}

	var provider storage.Provider
	if CLI.Store == "sqlite" {
		provider = storage.NewSQLiteStore(filepath.Join(configDir, constants.AppName+".db"))
	} else {
		provider = storage.NewDiskvStore(configDir)
	}
	if err := provider.Init(); err != nil {
		errors.Fatal(err)
	}
	defer provider.Close()

	apiKey, err := keyring.GetAPIKey()
	if err != nil && err != keyring.ErrNotFound {
		logger.Debug("Keyring unavailable", "error", err)
	}

	appCtx := &cli.Context{
		Store:   store.Open(provider),
		Planner: suggest.NewPlanner(CLI.Endpoint, apiKey),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
