package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/rumbo/internal/cli"
	"github.com/alexanderramin/rumbo/internal/db"
	"github.com/alexanderramin/rumbo/internal/repository"
	"github.com/alexanderramin/rumbo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.rumbo/rumbo.db
	dbPath := os.Getenv("RUMBO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".rumbo", "rumbo.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	objectiveRepo := repository.NewSQLiteObjectiveRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	bookRepo := repository.NewSQLiteBookRepo(database)
	noteRepo := repository.NewSQLiteNoteRepo(database)
	reviewRepo := repository.NewSQLiteReviewRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Service telemetry goes to stderr when RUMBO_LOG is set.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("RUMBO_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Objectives: service.NewObjectiveService(objectiveRepo, uow),
		Sessions:   service.NewSessionService(sessionRepo, observer),
		Projects:   service.NewProjectService(projectRepo, uow),
		Books:      service.NewBookService(bookRepo, uow),
		Notes:      service.NewNoteService(noteRepo, uow, observer),
		Reviews:    service.NewReviewService(reviewRepo, uow),
		Calendar:   service.NewCalendarService(noteRepo, sessionRepo),
		Status:     service.NewStatusService(objectiveRepo, sessionRepo, bookRepo, noteRepo, reviewRepo),
		Settings:   service.NewSettingsService(settingsRepo),

		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
