package domain

import "time"

// QuestionResult is the graded outcome of a single question in an attempt.
// Selected is UnansweredIndex when the question was never answered.
type QuestionResult struct {
	Index        int
	QuestionText string
	Options      []string
	Selected     int
	CorrectIndex int
	Answered     bool
	Correct      bool
}

// Result summarizes a submitted attempt.
type Result struct {
	AttemptID   string
	QuizTitle   string
	Score       int
	Total       int
	Percent     float64
	SubmittedAt time.Time
	Questions   []QuestionResult
}
