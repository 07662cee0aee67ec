package domain

import (
	"time"
)

// UnansweredIndex marks a question with no recorded answer in an attempt.
const UnansweredIndex = -1

// Attempt is the transient state of one quiz-taking session. Answers live
// only here; nothing is written back to the quiz, and an abandoned attempt
// is simply discarded.
type Attempt struct {
	ID        string
	Quiz      *Quiz
	StartedAt time.Time

	answers []int
	current int
}

// NewAttempt starts an attempt on the given quiz. Grading divides by the
// question count, so a quiz must hold at least one question before an
// attempt can start.
func NewAttempt(id string, quiz *Quiz) (*Attempt, error) {
	if quiz == nil || len(quiz.Questions) == 0 {
		return nil, NewEmptyQuizError()
	}
	answers := make([]int, len(quiz.Questions))
	for i := range answers {
		answers[i] = UnansweredIndex
	}
	return &Attempt{
		ID:        id,
		Quiz:      quiz,
		StartedAt: time.Now().UTC(),
		answers:   answers,
	}, nil
}

// Total returns the number of questions in the attempt.
func (a *Attempt) Total() int {
	return len(a.answers)
}

// CurrentIndex returns the zero-based position of the navigation cursor.
func (a *Attempt) CurrentIndex() int {
	return a.current
}

// Current returns the question under the cursor.
func (a *Attempt) Current() *Question {
	return a.Quiz.Questions[a.current]
}

// Select records an answer for the question under the cursor. Selections
// outside the option range are ignored.
func (a *Attempt) Select(optionIndex int) {
	if optionIndex < 0 || optionIndex >= NumOptions {
		return
	}
	a.answers[a.current] = optionIndex
}

// Answer returns the recorded answer for question index, or UnansweredIndex.
func (a *Attempt) Answer(index int) int {
	if index < 0 || index >= len(a.answers) {
		return UnansweredIndex
	}
	return a.answers[index]
}

// Next advances the cursor by one question and reports whether it moved.
// The cursor stays put on the last question.
func (a *Attempt) Next() bool {
	if a.current >= len(a.answers)-1 {
		return false
	}
	a.current++
	return true
}

// Prev moves the cursor back by one question and reports whether it moved.
func (a *Attempt) Prev() bool {
	if a.current <= 0 {
		return false
	}
	a.current--
	return true
}

// AtLast reports whether the cursor sits on the final question.
func (a *Attempt) AtLast() bool {
	return a.current == len(a.answers)-1
}

// Submit grades every question against the recorded answers and returns the
// result. Unanswered questions count as incorrect.
func (a *Attempt) Submit() *Result {
	result := &Result{
		AttemptID:   a.ID,
		QuizTitle:   a.Quiz.Title,
		Total:       len(a.answers),
		SubmittedAt: time.Now().UTC(),
		Questions:   make([]QuestionResult, 0, len(a.answers)),
	}
	for i, question := range a.Quiz.Questions {
		selected := a.answers[i]
		qr := QuestionResult{
			Index:        i,
			QuestionText: question.QuestionText,
			Options:      append([]string(nil), question.Options...),
			Selected:     selected,
			CorrectIndex: question.CorrectIndex,
			Answered:     selected != UnansweredIndex,
			Correct:      question.IsCorrect(selected),
		}
		if qr.Correct {
			result.Score++
		}
		result.Questions = append(result.Questions, qr)
	}
	result.Percent = float64(result.Score) / float64(result.Total) * 100
	return result
}
