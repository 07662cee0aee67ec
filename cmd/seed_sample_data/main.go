package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"quizdesk/internal/config"
	"quizdesk/internal/domain"
	"quizdesk/internal/logger"
	"quizdesk/internal/repository"
	"quizdesk/internal/service"
)

func main() {
	force := flag.Bool("force", false, "overwrite an existing quiz library")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	libraryPath := filepath.Join(cfg.Data.Directory, repository.LibraryFileName)
	if _, err := os.Stat(libraryPath); err == nil && !*force {
		log.Fatal("Quiz library already exists, pass -force to overwrite", zap.String("path", libraryPath))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal("Failed to check quiz library", zap.String("path", libraryPath), zap.Error(err))
	}

	log.Info("Seeding sample quizzes", zap.String("directory", cfg.Data.Directory))

	library := service.NewQuizLibrary(repository.NewQuizFileAdapter(), cfg.Data.Directory)
	for _, quiz := range sampleQuizzes() {
		library.AddQuiz(quiz)
	}
	if err := library.SaveAll(); err != nil {
		log.Fatal("Failed to save sample quizzes", zap.Error(err))
	}
	log.Info("Sample quizzes saved", zap.Int("quizzes", library.Count()), zap.String("path", libraryPath))
}

// sampleQuizzes builds the starter library written by this command.
func sampleQuizzes() []*domain.Quiz {
	geography := domain.NewQuiz("Geography Basics", "Capital cities around the world")
	geography.AddQuestion(domain.NewQuestion(
		"What is the capital of France?",
		[]string{"Paris", "London", "Rome", "Berlin"},
		0,
	))
	geography.AddQuestion(domain.NewQuestion(
		"What is the capital of Japan?",
		[]string{"Seoul", "Beijing", "Tokyo", "Bangkok"},
		2,
	))
	geography.AddQuestion(domain.NewQuestion(
		"What is the capital of Australia?",
		[]string{"Sydney", "Melbourne", "Perth", "Canberra"},
		3,
	))

	science := domain.NewQuiz("General Science", "A quick check of everyday science facts")
	science.AddQuestion(domain.NewQuestion(
		"What planet is known as the Red Planet?",
		[]string{"Venus", "Mars", "Jupiter", "Saturn"},
		1,
	))
	science.AddQuestion(domain.NewQuestion(
		"What gas do plants absorb from the atmosphere?",
		[]string{"Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"},
		2,
	))

	return []*domain.Quiz{geography, science}
}
