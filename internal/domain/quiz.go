package domain

// DefaultQuizTitle is assigned to quizzes whose stored record carries no title.
const DefaultQuizTitle = "Untitled Quiz"

// Quiz represents an ordered collection of questions with title metadata.
// Question order is insertion order and doubles as display and navigation
// order; only AddQuestion and RemoveQuestion change it.
type Quiz struct {
	Title       string
	Description string
	Questions   []*Question
}

// NewQuiz creates a new Quiz instance
func NewQuiz(title, description string) *Quiz {
	return &Quiz{
		Title:       title,
		Description: description,
	}
}

// AddQuestion appends a question to the end of the quiz
func (q *Quiz) AddQuestion(question *Question) {
	q.Questions = append(q.Questions, question)
}

// RemoveQuestion removes the question at index. An out-of-range index is a
// silent no-op.
func (q *Quiz) RemoveQuestion(index int) {
	if index < 0 || index >= len(q.Questions) {
		return
	}
	q.Questions = append(q.Questions[:index], q.Questions[index+1:]...)
}

// SetQuestion replaces the question at index in place. An out-of-range index
// is a silent no-op.
func (q *Quiz) SetQuestion(index int, question *Question) {
	if index < 0 || index >= len(q.Questions) {
		return
	}
	q.Questions[index] = question
}

// QuestionAt returns the question at index, or nil when out of range.
func (q *Quiz) QuestionAt(index int) *Question {
	if index < 0 || index >= len(q.Questions) {
		return nil
	}
	return q.Questions[index]
}

// QuestionCount returns the number of questions in the quiz.
func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}
