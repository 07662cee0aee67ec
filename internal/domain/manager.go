package domain

// QuizManager owns the in-memory, ordered collection of quizzes. A quiz's
// position in the collection is its identity; there are no stable IDs and no
// cross-references between quizzes. One manager exists per process and is
// constructed explicitly, never held as package state.
type QuizManager struct {
	quizzes []*Quiz
}

// NewQuizManager creates an empty QuizManager instance
func NewQuizManager() *QuizManager {
	return &QuizManager{}
}

// AddQuiz appends a quiz to the collection
func (m *QuizManager) AddQuiz(quiz *Quiz) {
	m.quizzes = append(m.quizzes, quiz)
}

// RemoveQuiz removes the quiz at index. An out-of-range index is a silent
// no-op.
func (m *QuizManager) RemoveQuiz(index int) {
	if index < 0 || index >= len(m.quizzes) {
		return
	}
	m.quizzes = append(m.quizzes[:index], m.quizzes[index+1:]...)
}

// GetQuiz returns the quiz at index, or nil when out of range.
func (m *QuizManager) GetQuiz(index int) *Quiz {
	if index < 0 || index >= len(m.quizzes) {
		return nil
	}
	return m.quizzes[index]
}

// Quizzes returns the managed collection in order.
func (m *QuizManager) Quizzes() []*Quiz {
	return m.quizzes
}

// Count returns the number of quizzes held.
func (m *QuizManager) Count() int {
	return len(m.quizzes)
}

// ReplaceAll swaps in a whole new collection, discarding the old one. Bulk
// load uses this so a reload never merges with stale state.
func (m *QuizManager) ReplaceAll(quizzes []*Quiz) {
	m.quizzes = quizzes
}
