package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"quizdesk/internal/config"
	"quizdesk/internal/logger"
	"quizdesk/internal/repository"
	"quizdesk/internal/service"
	"quizdesk/internal/ui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	library := service.NewQuizLibrary(repository.NewQuizFileAdapter(), cfg.Data.Directory)
	library.LoadAll()

	appLogger.Info("Starting quiz application",
		zap.String("data_dir", cfg.Data.Directory),
		zap.Int("quizzes", library.Count()),
	)

	program := tea.NewProgram(ui.New(library, cfg.UI.NoColor), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		appLogger.Error("Application terminated with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
