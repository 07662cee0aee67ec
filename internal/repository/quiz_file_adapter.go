package repository

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"quizdesk/internal/domain"
	"quizdesk/internal/logger"

	"go.uber.org/zap"
)

// LibraryFileName is the aggregate file holding every quiz in a data
// directory.
const LibraryFileName = "quizzes.json"

// QuizFileAdapter implements domain.QuizRepository on plain JSON files
type QuizFileAdapter struct{}

// NewQuizFileAdapter creates a new instance of QuizFileAdapter
func NewQuizFileAdapter() domain.QuizRepository {
	return &QuizFileAdapter{}
}

// SaveQuiz implements domain.QuizRepository
func (a *QuizFileAdapter) SaveQuiz(quiz *domain.Quiz, path string) error {
	return writeJSONFile(path, toQuizRecord(quiz))
}

// LoadQuiz implements domain.QuizRepository
func (a *QuizFileAdapter) LoadQuiz(path string) (*domain.Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileAccessError("error loading quiz file", err)
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, domain.NewInvalidFormatError("invalid JSON format", err)
	}
	record, ok := decoded.(map[string]any)
	if !ok {
		return nil, domain.NewInvalidFormatError("invalid quiz file format: expected JSON object", nil)
	}
	return quizFromRecord(record), nil
}

// SaveLibrary implements domain.QuizRepository
func (a *QuizFileAdapter) SaveLibrary(quizzes []*domain.Quiz, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.NewFileAccessError("failed to create quiz directory", err)
	}
	return writeJSONFile(filepath.Join(dir, LibraryFileName), toLibraryRecord(quizzes))
}

// LoadLibrary implements domain.QuizRepository. Every data problem resolves
// to an empty collection: a missing file is the first-run case, anything
// else is logged first.
func (a *QuizFileAdapter) LoadLibrary(dir string) ([]*domain.Quiz, error) {
	path := filepath.Join(dir, LibraryFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		logger.Get().Warn("failed to read quiz library, starting empty",
			zap.String("path", path), zap.Error(err))
		return nil, nil
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		logger.Get().Warn("invalid JSON in quiz library, starting empty",
			zap.String("path", path), zap.Error(err))
		return nil, nil
	}
	record, ok := decoded.(map[string]any)
	if !ok {
		logger.Get().Warn("quiz library is not a JSON object, starting empty",
			zap.String("path", path))
		return nil, nil
	}

	raw, ok := record["quizzes"]
	if !ok {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		logger.Get().Warn("quiz library has a non-array quizzes field, starting empty",
			zap.String("path", path))
		return nil, nil
	}

	quizzes := make([]*domain.Quiz, 0, len(list))
	for i, elem := range list {
		rec, isObject := elem.(map[string]any)
		if !isObject {
			logger.Get().Warn("skipping malformed quiz record",
				zap.String("path", path), zap.Int("index", i))
			continue
		}
		quizzes = append(quizzes, quizFromRecord(rec))
	}
	return quizzes, nil
}

// writeJSONFile writes v as indented UTF-8 JSON, fully overwriting path.
// HTML escaping is off so non-ASCII and markup characters stay literal.
func writeJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return domain.NewFileAccessError("failed to write quiz file", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return domain.NewFileAccessError("failed to encode quiz data", err)
	}
	return f.Close()
}
