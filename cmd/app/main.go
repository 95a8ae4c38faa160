package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/atvirokodosprendimai/showsapi/internal/adapters/httpapi"
	"github.com/atvirokodosprendimai/showsapi/internal/app"
	"github.com/atvirokodosprendimai/showsapi/internal/logger"
)

func main() {
	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "showsapi",
		Usage: "REST API for Netflix shows backed by SQLite",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   ":8080",
				Sources: cli.EnvVars("SHOWSAPI_ADDR"),
				Usage:   "HTTP listen address",
			},
			&cli.StringFlag{
				Name:    "db-path",
				Value:   "./showsapi.sqlite",
				Sources: cli.EnvVars("SHOWSAPI_DB_PATH"),
				Usage:   "SQLite file path",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("SHOWSAPI_LOG_LEVEL"),
				Usage:   "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   string(logger.FormatJSON),
				Sources: cli.EnvVars("SHOWSAPI_LOG_FORMAT"),
				Usage:   "json or text",
			},
			&cli.StringFlag{
				Name:    "api-key",
				Sources: cli.EnvVars("SHOWSAPI_API_KEY"),
				Usage:   "Require this API key on /api/v1 routes",
			},
			&cli.StringFlag{
				Name:    "api-key-name",
				Value:   "default",
				Sources: cli.EnvVars("SHOWSAPI_API_KEY_NAME"),
				Usage:   "Actor name recorded in the audit trail for the API key",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			level, err := logger.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			format, err := logger.ParseFormat(c.String("log-format"))
			if err != nil {
				return err
			}
			log := logger.New(
				logger.WithLevel(level),
				logger.WithFormat(format),
				logger.WithOutput(os.Stderr),
				logger.WithAttr(slog.String("service", "showsapi")),
				logger.WithContextExtractors(httpapi.RequestIDLogAttr),
			)
			slog.SetDefault(log)

			cfg := app.Config{
				Addr:       c.String("addr"),
				DBPath:     c.String("db-path"),
				APIKey:     c.String("api-key"),
				APIKeyName: c.String("api-key-name"),
				Logger:     log,
			}

			server, closer, err := app.NewServer(ctx, cfg)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			defer func() {
				if closeErr := closer.Close(); closeErr != nil {
					log.Error("close resources", "error", closeErr)
				}
			}()

			errCh := make(chan error, 1)
			go func() {
				log.Info("listening", "addr", cfg.Addr)
				errCh <- server.ListenAndServe()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			select {
			case <-ctx.Done():
			case sig := <-sigCh:
				log.Info("received signal", "signal", sig.String())
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("showsapi exited", "error", err)
		os.Exit(1)
	}
}
