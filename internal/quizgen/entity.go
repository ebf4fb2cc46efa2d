package quizgen

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var AllDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

type GenerateRequest struct {
	Topic        string     `json:"topic"`
	NumQuestions int        `json:"numQuestions"`
	Difficulty   Difficulty `json:"difficulty"`
}

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FromFlashcardsRequest struct {
	Topic      string      `json:"topic"`
	Flashcards []Flashcard `json:"flashcards"`
}

type NoteSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type FromNotesRequest struct {
	Topic string        `json:"topic"`
	Notes []NoteSection `json:"notes"`
}
