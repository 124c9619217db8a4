package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomz197/airhockey/internal/config"
	"github.com/tomz197/airhockey/internal/loop"
)

var (
	configFile string
	logFile    string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "airhockey",
		Short:        "two-player air hockey in the terminal",
		SilenceUsage: true,
		RunE:         runGame,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml), defaults to $"+config.EnvConfigPath)
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (the terminal is busy drawing)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(ctx, reader, os.Stdout, cfg, loop.Options{Logger: logger}); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

func loadConfig() (config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.FromEnv()
}

// newLogger logs to the file named by --log-file, or nowhere.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "game",
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
