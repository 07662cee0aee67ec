package domain

// QuizRepository defines the interface for quiz persistence
type QuizRepository interface {
	// SaveQuiz writes a single quiz to path as a standalone file, fully
	// overwriting any existing content
	SaveQuiz(quiz *Quiz, path string) error

	// LoadQuiz reads a standalone quiz file, failing with a descriptive
	// error when the file cannot be read or is not a JSON object
	LoadQuiz(path string) (*Quiz, error)

	// SaveLibrary writes every quiz to the aggregate file under dir,
	// creating dir first when it does not exist
	SaveLibrary(quizzes []*Quiz, dir string) error

	// LoadLibrary reads the aggregate file under dir. A missing file means
	// first run and yields an empty collection; unreadable or malformed
	// content is logged and likewise yields an empty collection. It never
	// returns an error for data problems.
	LoadLibrary(dir string) ([]*Quiz, error)
}
