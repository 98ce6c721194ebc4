package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/gebo/internal"
	pkgconfig "github.com/starford/gebo/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()

	// The config file is optional unless explicitly requested.
	configPath := cmd.String("config")
	loaded, err := pkgconfig.LoadIfPresent(configPath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if cmd.IsSet("config") && !loaded {
		return fmt.Errorf("config file not found: %s", configPath)
	}

	// Command-line arguments override file values.
	if cmd.Args().Len() > 0 {
		cfg.Vault.Path = cmd.Args().First()
	}
	if cmd.IsSet("mode") {
		cfg.Run.Mode = cmd.String("mode")
	}
	if cmd.IsSet("text-refs") {
		cfg.Run.TextRefs = cmd.Bool("text-refs")
	}
	if cmd.IsSet("dry-run") {
		cfg.Run.DryRun = cmd.Bool("dry-run")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:      "gebo",
		Usage:     "Generate backlink sections for the Markdown documents of a vault",
		ArgsUsage: "<vault-path>",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "Update policy for existing backlink sections: append or replace",
				Value:   "append",
			},
			&cli.BoolFlag{
				Name:  "text-refs",
				Usage: "Also count bare textual mentions of document titles as references",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report documents that would be updated without writing",
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
