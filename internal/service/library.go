package service

import (
	"quizdesk/internal/domain"
	"quizdesk/internal/logger"
	"quizdesk/internal/util"

	"go.uber.org/zap"
)

// QuizLibrary orchestrates the in-memory quiz collection and its
// persistence. It is the single aggregate root the presentation layer talks
// to; exactly one instance exists per process, constructed in main and
// passed down explicitly.
type QuizLibrary struct {
	manager *domain.QuizManager
	repo    domain.QuizRepository
	dataDir string
}

// NewQuizLibrary creates a new QuizLibrary storing its data under dataDir.
func NewQuizLibrary(repo domain.QuizRepository, dataDir string) *QuizLibrary {
	return &QuizLibrary{
		manager: domain.NewQuizManager(),
		repo:    repo,
		dataDir: dataDir,
	}
}

// DataDir returns the directory holding the aggregate quiz file.
func (l *QuizLibrary) DataDir() string {
	return l.dataDir
}

// Quizzes returns the current collection in display order.
func (l *QuizLibrary) Quizzes() []*domain.Quiz {
	return l.manager.Quizzes()
}

// Count returns the number of quizzes in the collection.
func (l *QuizLibrary) Count() int {
	return l.manager.Count()
}

// AddQuiz appends a quiz to the collection.
func (l *QuizLibrary) AddQuiz(quiz *domain.Quiz) {
	l.manager.AddQuiz(quiz)
}

// GetQuiz returns the quiz at index, or nil when out of range.
func (l *QuizLibrary) GetQuiz(index int) *domain.Quiz {
	return l.manager.GetQuiz(index)
}

// RemoveQuiz removes the quiz at index. An out-of-range index is a no-op.
func (l *QuizLibrary) RemoveQuiz(index int) {
	l.manager.RemoveQuiz(index)
}

// LoadAll replaces the collection with whatever the repository can read.
// It never fails: missing or corrupt data has already degraded to an empty
// collection, with a warning logged, inside the repository.
func (l *QuizLibrary) LoadAll() {
	quizzes, err := l.repo.LoadLibrary(l.dataDir)
	if err != nil {
		logger.Get().Warn("unexpected error loading quiz library, starting empty",
			zap.String("dir", l.dataDir), zap.Error(err))
		quizzes = nil
	}
	l.manager.ReplaceAll(quizzes)
	logger.Get().Info("quiz library loaded",
		zap.Int("quizzes", l.manager.Count()), zap.String("dir", l.dataDir))
}

// SaveAll persists the whole collection to the aggregate file, creating the
// data directory when needed.
func (l *QuizLibrary) SaveAll() error {
	if err := l.repo.SaveLibrary(l.manager.Quizzes(), l.dataDir); err != nil {
		logger.Get().Error("failed to save quiz library",
			zap.String("dir", l.dataDir), zap.Error(err))
		return err
	}
	logger.Get().Info("quiz library saved",
		zap.Int("quizzes", l.manager.Count()), zap.String("dir", l.dataDir))
	return nil
}

// Import loads a standalone quiz file and appends it to the collection. On
// failure the collection is untouched and the error is returned for the
// caller to present.
func (l *QuizLibrary) Import(path string) (*domain.Quiz, error) {
	quiz, err := l.repo.LoadQuiz(path)
	if err != nil {
		logger.Get().Warn("quiz import failed",
			zap.String("path", path), zap.Error(err))
		return nil, err
	}
	l.manager.AddQuiz(quiz)
	logger.Get().Info("quiz imported",
		zap.String("path", path), zap.String("title", quiz.Title))
	return quiz, nil
}

// Export writes the quiz at index to path as a standalone file.
func (l *QuizLibrary) Export(index int, path string) error {
	quiz := l.manager.GetQuiz(index)
	if quiz == nil {
		return domain.NewQuizNotFoundError(index)
	}
	if err := l.repo.SaveQuiz(quiz, path); err != nil {
		logger.Get().Error("quiz export failed",
			zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Get().Info("quiz exported",
		zap.String("path", path), zap.String("title", quiz.Title))
	return nil
}

// StartAttempt begins a quiz-taking session on the quiz at index. The quiz
// must exist and hold at least one question.
func (l *QuizLibrary) StartAttempt(index int) (*domain.Attempt, error) {
	quiz := l.manager.GetQuiz(index)
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(index)
	}
	return domain.NewAttempt(util.NewULID(), quiz)
}
