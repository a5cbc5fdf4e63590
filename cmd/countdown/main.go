package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/countdown/internal/cli"
	"github.com/alexanderramin/countdown/internal/config"
	"github.com/alexanderramin/countdown/internal/countdown"
	"github.com/alexanderramin/countdown/internal/db"
	"github.com/alexanderramin/countdown/internal/repository"
	"github.com/alexanderramin/countdown/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	app := &cli.App{
		Config: cfg,
		Clock:  countdown.SystemClock{},
		Open:   openServices,
	}

	// Detect interactive terminal for the full-screen view and the prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	err = rootCmd.ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// openServices wires the database, repositories and services for cfg.
// With history off, cycles go to an in-memory database that is discarded
// on exit.
func openServices(cfg config.Config) (*cli.Services, error) {
	dbPath := db.MemoryPath
	if cfg.History {
		dbPath = cfg.DBPath
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	var observers []service.UseCaseObserver
	var logFile io.Closer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
		observers = append(observers, service.NewLogUseCaseObserver(f))
	}

	clock := countdown.SystemClock{}
	cycleRepo := repository.NewSQLiteCycleRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	return &cli.Services{
		NewTimer: func(target countdown.TargetMinute, note string) service.TimerService {
			return service.NewTimerService(target, note, clock, cycleRepo, uow, observers...)
		},
		History: service.NewHistoryService(cycleRepo, clock, observers...),
		Close: func() error {
			err := database.Close()
			if logFile != nil {
				if lerr := logFile.Close(); err == nil {
					err = lerr
				}
			}
			return err
		},
	}, nil
}
