package repository

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"quizdesk/internal/config"
	"quizdesk/internal/domain"
	"quizdesk/internal/logger"
)

// TestMain initializes the logger so record normalization can log warnings.
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func TestQuestionFromRecord(t *testing.T) {
	tests := []struct {
		name        string
		record      map[string]any
		wantText    string
		wantOptions []string
		wantCorrect int
	}{
		{
			name: "complete record",
			record: map[string]any{
				"question_text": "What is the capital of France?",
				"options":       []any{"Paris", "London", "Rome", "Berlin"},
				"correct_index": float64(0),
			},
			wantText:    "What is the capital of France?",
			wantOptions: []string{"Paris", "London", "Rome", "Berlin"},
			wantCorrect: 0,
		},
		{
			name:        "missing keys fall back to defaults",
			record:      map[string]any{},
			wantText:    "",
			wantOptions: []string{"", "", "", ""},
			wantCorrect: 0,
		},
		{
			name: "short options are padded",
			record: map[string]any{
				"question_text": "q",
				"options":       []any{"a", "b"},
				"correct_index": float64(1),
			},
			wantText:    "q",
			wantOptions: []string{"a", "b", "", ""},
			wantCorrect: 1,
		},
		{
			name: "long options are truncated",
			record: map[string]any{
				"options": []any{"a", "b", "c", "d", "e", "f"},
			},
			wantOptions: []string{"a", "b", "c", "d"},
			wantCorrect: 0,
		},
		{
			name: "options not a list yields four empties",
			record: map[string]any{
				"question_text": "q",
				"options":       "not a list",
			},
			wantText:    "q",
			wantOptions: []string{"", "", "", ""},
			wantCorrect: 0,
		},
		{
			name: "negative correct index resets to zero",
			record: map[string]any{
				"options":       []any{"a", "b", "c", "d"},
				"correct_index": float64(-1),
			},
			wantOptions: []string{"a", "b", "c", "d"},
			wantCorrect: 0,
		},
		{
			name: "too large correct index resets to zero",
			record: map[string]any{
				"options":       []any{"a", "b", "c", "d"},
				"correct_index": float64(4),
			},
			wantOptions: []string{"a", "b", "c", "d"},
			wantCorrect: 0,
		},
		{
			name: "fractional correct index truncates",
			record: map[string]any{
				"options":       []any{"a", "b", "c", "d"},
				"correct_index": float64(2.9),
			},
			wantOptions: []string{"a", "b", "c", "d"},
			wantCorrect: 2,
		},
		{
			name: "non-numeric correct index resets to zero",
			record: map[string]any{
				"options":       []any{"a", "b", "c", "d"},
				"correct_index": "two",
			},
			wantOptions: []string{"a", "b", "c", "d"},
			wantCorrect: 0,
		},
		{
			name: "scalar option values are stringified",
			record: map[string]any{
				"options": []any{float64(3), true, "c", nil},
			},
			wantOptions: []string{"3", "true", "c", ""},
			wantCorrect: 0,
		},
		{
			name: "numeric question text is stringified",
			record: map[string]any{
				"question_text": float64(42),
			},
			wantText:    "42",
			wantOptions: []string{"", "", "", ""},
			wantCorrect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := questionFromRecord(tt.record)
			assert.Equal(t, tt.wantText, q.QuestionText)
			assert.Equal(t, tt.wantOptions, q.Options)
			assert.Equal(t, tt.wantCorrect, q.CorrectIndex)
		})
	}
}

func TestQuizFromRecord(t *testing.T) {
	t.Run("complete record", func(t *testing.T) {
		quiz := quizFromRecord(map[string]any{
			"title":       "Geography",
			"description": "Capitals",
			"questions": []any{
				map[string]any{
					"question_text": "q1",
					"options":       []any{"a", "b", "c", "d"},
					"correct_index": float64(2),
				},
			},
		})
		assert.Equal(t, "Geography", quiz.Title)
		assert.Equal(t, "Capitals", quiz.Description)
		assert.Equal(t, 1, quiz.QuestionCount())
		assert.Equal(t, 2, quiz.Questions[0].CorrectIndex)
	})

	t.Run("missing title falls back to default", func(t *testing.T) {
		quiz := quizFromRecord(map[string]any{})
		assert.Equal(t, domain.DefaultQuizTitle, quiz.Title)
		assert.Equal(t, "", quiz.Description)
		assert.Equal(t, 0, quiz.QuestionCount())
	})

	t.Run("non-coercible title falls back to default", func(t *testing.T) {
		quiz := quizFromRecord(map[string]any{"title": []any{"not", "a", "string"}})
		assert.Equal(t, domain.DefaultQuizTitle, quiz.Title)
	})

	t.Run("numeric title is stringified", func(t *testing.T) {
		quiz := quizFromRecord(map[string]any{"title": float64(7)})
		assert.Equal(t, "7", quiz.Title)
	})

	t.Run("non-array questions are ignored", func(t *testing.T) {
		quiz := quizFromRecord(map[string]any{
			"title":     "Broken",
			"questions": "not a list",
		})
		assert.Equal(t, "Broken", quiz.Title)
		assert.Equal(t, 0, quiz.QuestionCount())
	})

	t.Run("malformed question entries are skipped", func(t *testing.T) {
		quiz := quizFromRecord(map[string]any{
			"title": "Partial",
			"questions": []any{
				map[string]any{"question_text": "kept"},
				"not an object",
				float64(3),
				map[string]any{"question_text": "also kept"},
			},
		})
		assert.Equal(t, 2, quiz.QuestionCount())
		assert.Equal(t, "kept", quiz.Questions[0].QuestionText)
		assert.Equal(t, "also kept", quiz.Questions[1].QuestionText)
	})
}

func TestToQuizRecord(t *testing.T) {
	quiz := domain.NewQuiz("Geography", "Capitals")
	quiz.AddQuestion(domain.NewQuestion("q1", []string{"a", "b", "c", "d"}, 1))

	record := toQuizRecord(quiz)
	assert.Equal(t, "Geography", record.Title)
	assert.Equal(t, "Capitals", record.Description)
	assert.Len(t, record.Questions, 1)
	assert.Equal(t, []string{"a", "b", "c", "d"}, record.Questions[0].Options)
	assert.Equal(t, 1, record.Questions[0].CorrectIndex)
}

func TestToLibraryRecord_EmptyIsNotNil(t *testing.T) {
	record := toLibraryRecord(nil)
	assert.NotNil(t, record.Quizzes)
	assert.Len(t, record.Quizzes, 0)
}
