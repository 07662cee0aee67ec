package ui

import (
	"strings"
	"testing"

	"quizdesk/internal/domain"
)

func TestQuizListLabel(t *testing.T) {
	if got := QuizListLabel("Geography", 3); got != "Geography (3 questions)" {
		t.Errorf("QuizListLabel = %q", got)
	}
	if got := QuizListLabel("Solo", 1); got != "Solo (1 questions)" {
		t.Errorf("QuizListLabel = %q", got)
	}
}

func TestQuestionListLabel(t *testing.T) {
	if got := QuestionListLabel(0, "short"); got != "Q1: short" {
		t.Errorf("QuestionListLabel = %q", got)
	}

	long := strings.Repeat("x", 60)
	got := QuestionListLabel(4, long)
	want := "Q5: " + strings.Repeat("x", 50) + "..."
	if got != want {
		t.Errorf("QuestionListLabel = %q, want %q", got, want)
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"under limit", "abc", 5, "abc"},
		{"at limit", "abcde", 5, "abcde"},
		{"over limit", "abcdef", 5, "abcde..."},
		{"multibyte runes", "日本語の問題です", 4, "日本語の..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateText(tt.text, tt.limit); got != tt.want {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
			}
		})
	}
}

func TestOptionLetterAndLine(t *testing.T) {
	letters := []string{"A", "B", "C", "D"}
	for i, want := range letters {
		if got := OptionLetter(i); got != want {
			t.Errorf("OptionLetter(%d) = %q, want %q", i, got, want)
		}
	}
	if got := OptionLine(1, "London"); got != "B) London" {
		t.Errorf("OptionLine = %q", got)
	}
}

func TestPreviewLines(t *testing.T) {
	if got := PreviewOptionLine("Paris", true); got != "✓ Paris" {
		t.Errorf("PreviewOptionLine(correct) = %q", got)
	}
	if got := PreviewOptionLine("London", false); got != "○ London" {
		t.Errorf("PreviewOptionLine(incorrect) = %q", got)
	}
	if got := PreviewCorrectLine(2); got != "Correct answer: Option 3" {
		t.Errorf("PreviewCorrectLine = %q", got)
	}
}

func TestProgressLine(t *testing.T) {
	if got := ProgressLine(0, 5); got != "Question 1 of 5" {
		t.Errorf("ProgressLine = %q", got)
	}
}

func TestScoreLine(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{1, 1, "Score: 1/1 (100.0%)"},
		{0, 1, "Score: 0/1 (0.0%)"},
		{2, 3, "Score: 2/3 (66.7%)"},
		{0, 0, "Score: 0/0 (0.0%)"},
	}
	for _, tt := range tests {
		if got := ScoreLine(tt.score, tt.total); got != tt.want {
			t.Errorf("ScoreLine(%d, %d) = %q, want %q", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestAnswerLines(t *testing.T) {
	answered := domain.QuestionResult{
		Options:      []string{"Paris", "London", "Rome", "Berlin"},
		Selected:     1,
		CorrectIndex: 0,
		Answered:     true,
	}
	if got := AnswerLine(answered); got != "Your answer: B) London" {
		t.Errorf("AnswerLine = %q", got)
	}
	if got := CorrectAnswerLine(answered); got != "Correct answer: A) Paris" {
		t.Errorf("CorrectAnswerLine = %q", got)
	}

	unanswered := domain.QuestionResult{
		Options:      []string{"Paris", "London", "Rome", "Berlin"},
		Selected:     domain.UnansweredIndex,
		CorrectIndex: 0,
	}
	if got := AnswerLine(unanswered); got != "Your answer: (No answer)" {
		t.Errorf("AnswerLine(unanswered) = %q", got)
	}
}
