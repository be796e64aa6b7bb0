package main

import (
	"context"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"

	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/cmd"
	"github.com/weftlabs/weft/pkg/log"
	"github.com/weftlabs/weft/pkg/otelhelper"
)

const defaultPort = 9094

func main() {
	logger := log.WithModule("api")

	command := &cli.Command{
		Name:                  "weft-api",
		Usage:                 "Generate and manage automation workflows from conversations",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:     "database-url",
				Usage:    "Database connection URL (postgres:// or a file path)",
				Required: true,
				Sources:  cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "openai-api-key",
				Usage:   "OpenAI API key",
				Sources: cli.EnvVars("OPENAI_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "openai-base-url",
				Usage:   "OpenAI-compatible API base URL",
				Sources: cli.EnvVars("OPENAI_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "openai-model",
				Usage:   "Model for the OpenAI backend",
				Sources: cli.EnvVars("OPENAI_MODEL"),
			},
			&cli.StringFlag{
				Name:    "anthropic-api-key",
				Usage:   "Anthropic API key",
				Sources: cli.EnvVars("ANTHROPIC_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "anthropic-base-url",
				Usage:   "Anthropic API base URL",
				Sources: cli.EnvVars("ANTHROPIC_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "anthropic-model",
				Usage:   "Model for the Anthropic backend",
				Sources: cli.EnvVars("ANTHROPIC_MODEL"),
			},
			&cli.DurationFlag{
				Name:    "provider-timeout",
				Usage:   "HTTP timeout for generation backends",
				Value:   60 * time.Second,
				Sources: cli.EnvVars("PROVIDER_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    "catalog-url",
				Usage:   "Base URL of the node catalog service (optional)",
				Sources: cli.EnvVars("CATALOG_URL"),
			},
			&cli.DurationFlag{
				Name:    "catalog-ttl",
				Usage:   "How long a catalog snapshot is served before refresh",
				Value:   catalog.DefaultTTL,
				Sources: cli.EnvVars("CATALOG_TTL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing Weft API")

			persistence := cmd.NewPersistence(ctx, logger, command.String("database-url"))

			defer func() {
				if err := persistence.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			registry := cmd.NewProviderRegistry(ctx, logger, cmd.ProviderConfig{
				OpenAIAPIKey:     command.String("openai-api-key"),
				OpenAIBaseURL:    command.String("openai-base-url"),
				OpenAIModel:      command.String("openai-model"),
				AnthropicAPIKey:  command.String("anthropic-api-key"),
				AnthropicBaseURL: command.String("anthropic-base-url"),
				AnthropicModel:   command.String("anthropic-model"),
				Timeout:          command.Duration("provider-timeout"),
			})

			var source catalog.Source
			if catalogURL := command.String("catalog-url"); catalogURL != "" {
				source = catalog.NewHTTPSource(catalogURL, nil)
			}

			cat := catalog.New(logger, source, command.Duration("catalog-ttl"))

			tracer, err := otelhelper.NewTracer(ctx, "weft-api")
			if err != nil {
				logger.WarnContext(ctx, "Tracing disabled", "error", err)
			}

			api := NewAPI(logger, persistence, registry, cat, tracer)

			if err := api.Start(ctx, command.Int("port")); err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)

				return err
			}

			return nil
		},
	}

	if err := command.Run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}
