package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/exedev/humanize/internal/bus"
	"github.com/exedev/humanize/internal/chat"
	"github.com/exedev/humanize/internal/config"
	"github.com/exedev/humanize/internal/llm"
	"github.com/exedev/humanize/internal/tui"
)

const version = "0.1.0"

func newApp(logger *log.Logger) *cli.Command {
	return &cli.Command{
		Name:    "humanize",
		Usage:   "polish articles with grammar fixes and human-like flow",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "humanize.json",
				Usage: "path to config file",
			},
			&cli.StringFlag{
				Name:  "provider",
				Usage: "LLM provider: groq, anthropic",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "model identifier",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log turn events to stderr after the session ends",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("humanize v%s\n", version)
					return nil
				},
			},
			{
				Name:  "models",
				Usage: "list the selectable model identifiers",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := resolveConfig(cmd)
					if err != nil {
						return err
					}
					for _, id := range config.Models(cfg.Provider) {
						marker := " "
						if id == cfg.Model {
							marker = "*"
						}
						fmt.Printf("%s %s\n", marker, id)
					}
					return nil
				},
			},
			{
				Name:  "config",
				Usage: "show the resolved configuration",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := resolveConfig(cmd)
					if err != nil {
						return err
					}
					fmt.Printf("Configuration (%s):\n", cmd.String("config"))
					fmt.Printf("  Provider:     %s\n", cfg.Provider)
					fmt.Printf("  Model:        %s\n", cfg.Model)
					fmt.Printf("  Temperature:  %.1f\n", cfg.Temperature)
					fmt.Printf("  Max Tokens:   %d\n", cfg.MaxTokens)
					fmt.Printf("  API Key:      %s\n", maskKey(cfg.APIKey))
					return nil
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSession(cmd, logger)
		},
	}
}

// resolveConfig loads the config file, applies .env and flag overrides, and
// returns it unvalidated. Callers that need the credential call Validate.
func resolveConfig(cmd *cli.Command) (*config.Config, error) {
	// Best effort: absence of a .env file is the normal case.
	_ = godotenv.Load()

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if p := cmd.String("provider"); p != "" {
		cfg.Provider = p
		cfg.Model = config.DefaultModelFor(p)
		// Re-resolve the credential for the overridden provider.
		if key := os.Getenv(config.EnvKey(p)); key != "" {
			cfg.APIKey = key
		}
	}
	if m := cmd.String("model"); m != "" {
		cfg.Model = m
	}
	return cfg, nil
}

func runSession(cmd *cli.Command, logger *log.Logger) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		pterm.Error.Printfln("%v", err)
		return cli.Exit("", 1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("humanize is interactive and needs a terminal")
	}

	client, err := llm.NewFromConfig(llm.ProviderConfig{
		Provider:    cfg.Provider,
		Model:       cfg.Model,
		APIKey:      cfg.APIKey,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return err
	}

	events := bus.New(0)
	ctrl := chat.NewController(client, events)

	if err := tui.Run(ctrl, cfg); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if cmd.Bool("verbose") {
		replayEvents(events, logger)
	}
	return nil
}

// replayEvents writes the session's turn lifecycle to stderr once the TUI
// has released the terminal.
func replayEvents(events *bus.MessageBus, logger *log.Logger) {
	for _, msg := range events.History(0) {
		payload, _ := msg.Payload.(string)
		logger.Printf("%s %s %s",
			msg.Time.Format("15:04:05"), msg.Type, preview(payload, 80))
	}
}

func preview(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
