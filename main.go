package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-history/internal"
	"github.com/rocketscienceinc/tictactoe-history/internal/config"
)

// main - is the entry point of the application. It parses the command line and runs the chosen front end.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over HTTP and WebSocket",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf := initConfig(configPath)
			logger := initLogger(conf, os.Stdout)

			if err := app.RunApp(logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	var logFile string

	play := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf := initConfig(configPath)

			// the terminal belongs to the game, logs go to a file or nowhere
			var out io.Writer = io.Discard
			if logFile != "" {
				file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer file.Close()

				out = file
			}

			return app.RunTUI(initLogger(conf, out), conf)
		},
	}
	play.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")

	root := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Tic-tac-toe with move history and time travel",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yml", "path to the config file")
	root.AddCommand(serve, play)

	return root
}

// initialize config. A missing file falls back to environment variables and defaults.
func initConfig(path string) *config.Config {
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, path)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		conf, err := config.LoadEnv()
		if err != nil {
			panic(err)
		}

		return conf
	}

	return config.MustLoad(path)
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
