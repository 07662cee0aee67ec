package repository

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizdesk/internal/domain"
)

func sampleQuiz() *domain.Quiz {
	quiz := domain.NewQuiz("Geography", "Capitals of the world")
	quiz.AddQuestion(domain.NewQuestion(
		"What is the capital of France?",
		[]string{"Paris", "London", "Rome", "Berlin"},
		0,
	))
	quiz.AddQuestion(domain.NewQuestion(
		"What is the capital of Italy?",
		[]string{"Madrid", "Rome", "Athens", "Lisbon"},
		1,
	))
	return quiz
}

func TestSaveQuizLoadQuizRoundTrip(t *testing.T) {
	adapter := NewQuizFileAdapter()
	path := filepath.Join(t.TempDir(), "geography.json")

	require.NoError(t, adapter.SaveQuiz(sampleQuiz(), path))

	loaded, err := adapter.LoadQuiz(path)
	require.NoError(t, err)
	assert.Equal(t, "Geography", loaded.Title)
	assert.Equal(t, "Capitals of the world", loaded.Description)
	require.Equal(t, 2, loaded.QuestionCount())
	assert.Equal(t, "What is the capital of France?", loaded.Questions[0].QuestionText)
	assert.Equal(t, []string{"Paris", "London", "Rome", "Berlin"}, loaded.Questions[0].Options)
	assert.Equal(t, 0, loaded.Questions[0].CorrectIndex)
	assert.Equal(t, 1, loaded.Questions[1].CorrectIndex)
}

func TestSaveQuiz_OverwritesExistingFile(t *testing.T) {
	adapter := NewQuizFileAdapter()
	path := filepath.Join(t.TempDir(), "quiz.json")

	require.NoError(t, adapter.SaveQuiz(sampleQuiz(), path))
	require.NoError(t, adapter.SaveQuiz(domain.NewQuiz("Replaced", ""), path))

	loaded, err := adapter.LoadQuiz(path)
	require.NoError(t, err)
	assert.Equal(t, "Replaced", loaded.Title)
	assert.Equal(t, 0, loaded.QuestionCount())
}

func TestSaveQuiz_WritesNonASCIILiterally(t *testing.T) {
	adapter := NewQuizFileAdapter()
	path := filepath.Join(t.TempDir(), "quiz.json")

	quiz := domain.NewQuiz("日本の地理", "Préparation à l'examen")
	require.NoError(t, adapter.SaveQuiz(quiz, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "日本の地理")
	assert.Contains(t, string(data), "Préparation")
	assert.NotContains(t, string(data), `\u`)
}

func TestSaveQuiz_EmptyQuestionsEncodeAsArray(t *testing.T) {
	adapter := NewQuizFileAdapter()
	path := filepath.Join(t.TempDir(), "quiz.json")

	require.NoError(t, adapter.SaveQuiz(domain.NewQuiz("Empty", ""), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"questions": []`)
	assert.NotContains(t, string(data), "null")
}

func TestSaveQuiz_IndentsWithTwoSpaces(t *testing.T) {
	adapter := NewQuizFileAdapter()
	path := filepath.Join(t.TempDir(), "quiz.json")

	require.NoError(t, adapter.SaveQuiz(sampleQuiz(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"title\""), "file should be indented with two spaces")
}

func TestLoadQuiz_MissingFile(t *testing.T) {
	adapter := NewQuizFileAdapter()

	_, err := adapter.LoadQuiz(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrFileAccess, domainErr.Code)
}

func TestLoadQuiz_InvalidJSON(t *testing.T) {
	adapter := NewQuizFileAdapter()
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := adapter.LoadQuiz(path)
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrInvalidFormat, domainErr.Code)
}

func TestLoadQuiz_TopLevelMustBeObject(t *testing.T) {
	adapter := NewQuizFileAdapter()
	tests := []struct {
		name    string
		content string
	}{
		{"array", `[1, 2, 3]`},
		{"string", `"quiz"`},
		{"number", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "top.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := adapter.LoadQuiz(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "expected JSON object")
		})
	}
}

func TestLoadQuiz_NormalizesRecords(t *testing.T) {
	adapter := NewQuizFileAdapter()
	path := filepath.Join(t.TempDir(), "quiz.json")
	content := `{
  "title": "Partial",
  "questions": [
    {"question_text": "short", "options": ["a", "b"], "correct_index": 7},
    "not an object",
    {"question_text": "kept", "options": ["a", "b", "c", "d"], "correct_index": 3}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := adapter.LoadQuiz(path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.QuestionCount())
	assert.Equal(t, []string{"a", "b", "", ""}, loaded.Questions[0].Options)
	assert.Equal(t, 0, loaded.Questions[0].CorrectIndex)
	assert.Equal(t, 3, loaded.Questions[1].CorrectIndex)
}

func TestSaveLibraryLoadLibraryRoundTrip(t *testing.T) {
	adapter := NewQuizFileAdapter()
	dir := filepath.Join(t.TempDir(), "nested", "quizzes")

	saved := []*domain.Quiz{sampleQuiz(), domain.NewQuiz("Second", "")}
	require.NoError(t, adapter.SaveLibrary(saved, dir))

	// the directory is created on demand
	_, err := os.Stat(filepath.Join(dir, LibraryFileName))
	require.NoError(t, err)

	loaded, err := adapter.LoadLibrary(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Geography", loaded[0].Title)
	assert.Equal(t, 2, loaded[0].QuestionCount())
	assert.Equal(t, "Second", loaded[1].Title)
}

func TestLoadLibrary_MissingFileMeansEmpty(t *testing.T) {
	adapter := NewQuizFileAdapter()

	loaded, err := adapter.LoadLibrary(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadLibrary_InvalidJSONMeansEmpty(t *testing.T) {
	adapter := NewQuizFileAdapter()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LibraryFileName), []byte("{broken"), 0o644))

	loaded, err := adapter.LoadLibrary(dir)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadLibrary_NonObjectTopLevelMeansEmpty(t *testing.T) {
	adapter := NewQuizFileAdapter()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LibraryFileName), []byte(`[1, 2]`), 0o644))

	loaded, err := adapter.LoadLibrary(dir)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadLibrary_SkipsMalformedQuizEntries(t *testing.T) {
	adapter := NewQuizFileAdapter()
	dir := t.TempDir()
	content := `{
  "quizzes": [
    {"title": "Kept", "description": "", "questions": []},
    17,
    "nope",
    {"title": "Also Kept", "description": "", "questions": []}
  ]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, LibraryFileName), []byte(content), 0o644))

	loaded, err := adapter.LoadLibrary(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Kept", loaded[0].Title)
	assert.Equal(t, "Also Kept", loaded[1].Title)
}
