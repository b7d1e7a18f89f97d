package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nlebedev/corner/internal/cli"
	"github.com/nlebedev/corner/internal/coach"
	"github.com/nlebedev/corner/internal/config"
	"github.com/nlebedev/corner/internal/llm"
	"github.com/nlebedev/corner/internal/media"
	"github.com/nlebedev/corner/internal/plan"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CORNER_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Wire the model client (nil when no provider is configured; every
	// surface degrades to its deterministic fallback).
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.New(llmCfg, observer)

	app := &cli.App{
		Planner:   plan.NewPlanner(client, log),
		Messages:  coach.NewMessageGenerator(client),
		Assistant: coach.NewAssistant(client),
		Visuals:   media.NewLibrary(cfg.Media.Dir),
		Config:    cfg,
		Log:       log,
	}
	if synth := llm.Speech(client); synth != nil {
		app.Voice = coach.NewVoice(synth)
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
