package ui

import (
	"fmt"

	"quizdesk/internal/domain"
)

// questionTextLimit is the rune cap for question list entries.
const questionTextLimit = 50

// QuizListLabel renders a quiz list entry as the title with its question count.
func QuizListLabel(title string, questionCount int) string {
	return fmt.Sprintf("%s (%d questions)", title, questionCount)
}

// QuestionListLabel renders a numbered question list entry, truncating long text.
func QuestionListLabel(index int, text string) string {
	return fmt.Sprintf("Q%d: %s", index+1, TruncateText(text, questionTextLimit))
}

// TruncateText shortens text to limit runes, appending "..." when it was cut.
func TruncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// OptionLetter returns the answer label for an option index (A through D).
func OptionLetter(index int) string {
	return string(rune('A' + index))
}

// OptionLine renders a lettered option ("A) text").
func OptionLine(index int, text string) string {
	return fmt.Sprintf("%s) %s", OptionLetter(index), text)
}

// PreviewOptionLine marks the correct option with a check and the others
// with a ring.
func PreviewOptionLine(text string, correct bool) string {
	if correct {
		return "✓ " + text
	}
	return "○ " + text
}

// PreviewCorrectLine names the correct option with its one-based position.
func PreviewCorrectLine(correctIndex int) string {
	return fmt.Sprintf("Correct answer: Option %d", correctIndex+1)
}

// ProgressLine renders the take-screen position indicator.
func ProgressLine(current, total int) string {
	return fmt.Sprintf("Question %d of %d", current+1, total)
}

// ScoreLine renders a submitted score with its percentage.
func ScoreLine(score, total int) string {
	percent := 0.0
	if total > 0 {
		percent = float64(score) / float64(total) * 100
	}
	return fmt.Sprintf("Score: %d/%d (%.1f%%)", score, total, percent)
}

// AnswerLine renders the user's answer for a graded question.
func AnswerLine(qr domain.QuestionResult) string {
	if !qr.Answered {
		return "Your answer: (No answer)"
	}
	return fmt.Sprintf("Your answer: %s", OptionLine(qr.Selected, qr.Options[qr.Selected]))
}

// CorrectAnswerLine renders the correct answer for a graded question.
func CorrectAnswerLine(qr domain.QuestionResult) string {
	return fmt.Sprintf("Correct answer: %s", OptionLine(qr.CorrectIndex, qr.Options[qr.CorrectIndex]))
}
