package quizsession

import (
	"errors"
	"math"
)

// NoAnswer é o marcador literal usado no resultado quando a questão
// ficou sem resposta.
const NoAnswer = "No answer"

const unanswered = -1

var (
	ErrNoQuestions      = errors.New("quiz definition has no questions")
	ErrNoOptions        = errors.New("question has no options")
	ErrAnswerRequired   = errors.New("an answer is required before proceeding")
	ErrOptionOutOfRange = errors.New("selected option is out of range")
	ErrCompleted        = errors.New("quiz attempt already completed")
)

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correctOption"`
}

type Definition struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

type AnswerDetail struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Index         int    `json:"index"`
}

type Result struct {
	Percentage       int            `json:"percentage"`
	CorrectCount     int            `json:"correctCount"`
	TotalCount       int            `json:"totalCount"`
	CorrectAnswers   []AnswerDetail `json:"correctAnswers"`
	IncorrectAnswers []AnswerDetail `json:"incorrectAnswers"`
}

// Session conduz uma única tentativa de quiz: sequenciamento das questões,
// captura de respostas e cálculo do resultado ao final. Não faz I/O e não é
// segura para uso concorrente; cada tentativa tem um único dono.
type Session struct {
	def       Definition
	current   int
	answers   []int
	completed bool
	result    *Result
}

// ValidateDefinition rejeita definições malformadas antes de iniciar uma
// tentativa. A correspondência de CorrectOption por valor não é validada
// aqui: uma questão sem opção correta correspondente nunca pontua.
func ValidateDefinition(def Definition) error {
	if len(def.Questions) == 0 {
		return ErrNoQuestions
	}
	for _, q := range def.Questions {
		if len(q.Options) == 0 {
			return ErrNoOptions
		}
	}
	return nil
}

func New(def Definition) (*Session, error) {
	if err := ValidateDefinition(def); err != nil {
		return nil, err
	}

	s := &Session{def: def}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.current = 0
	s.answers = make([]int, len(s.def.Questions))
	for i := range s.answers {
		s.answers[i] = unanswered
	}
	s.completed = false
	s.result = nil
}

// SelectAnswer registra a opção escolhida para a questão atual,
// sobrescrevendo qualquer resposta anterior. Não avança a questão.
func (s *Session) SelectAnswer(optionIndex int) error {
	if s.completed {
		return ErrCompleted
	}
	if optionIndex < 0 || optionIndex >= len(s.def.Questions[s.current].Options) {
		return ErrOptionOutOfRange
	}
	s.answers[s.current] = optionIndex
	return nil
}

// Next avança para a próxima questão. Na última questão, calcula o
// resultado e marca a tentativa como concluída. Exige que a questão atual
// esteja respondida; caso contrário nenhum estado é alterado.
func (s *Session) Next() error {
	if s.completed {
		return ErrCompleted
	}
	if s.answers[s.current] == unanswered {
		return ErrAnswerRequired
	}

	if s.current < len(s.def.Questions)-1 {
		s.current++
		return nil
	}

	s.result = s.score()
	s.completed = true
	return nil
}

// Previous volta uma questão sem descartar a resposta registrada.
// No índice zero, ou após a conclusão, é um no-op.
func (s *Session) Previous() {
	if s.completed {
		return
	}
	if s.current > 0 {
		s.current--
	}
}

// Retake reinicia a tentativa sobre a mesma definição, equivalente a um
// novo New com a definição original.
func (s *Session) Retake() {
	s.reset()
}

func (s *Session) score() *Result {
	return scoreIndices(s.def, s.answers)
}

// ScoreAnswers calcula o resultado de uma tentativa a partir das respostas
// em valor, como vêm de um formulário externo. Respostas vazias ou que não
// correspondem a nenhuma opção contam como não respondidas.
func ScoreAnswers(def Definition, answers []string) (*Result, error) {
	if err := ValidateDefinition(def); err != nil {
		return nil, err
	}

	indices := make([]int, len(def.Questions))
	for i := range indices {
		indices[i] = unanswered
		if i < len(answers) && answers[i] != "" {
			indices[i] = indexOf(def.Questions[i].Options, answers[i])
		}
	}
	return scoreIndices(def, indices), nil
}

func scoreIndices(def Definition, answers []int) *Result {
	total := len(def.Questions)
	correct := make([]AnswerDetail, 0, total)
	incorrect := make([]AnswerDetail, 0, total)

	for i, q := range def.Questions {
		correctIndex := indexOf(q.Options, q.CorrectOption)
		answer := answers[i]

		if answer != unanswered && answer == correctIndex {
			correct = append(correct, AnswerDetail{
				Question:      q.Question,
				UserAnswer:    q.Options[answer],
				CorrectAnswer: q.CorrectOption,
				Index:         i,
			})
			continue
		}

		userAnswer := NoAnswer
		if answer != unanswered {
			userAnswer = q.Options[answer]
		}
		incorrect = append(incorrect, AnswerDetail{
			Question:      q.Question,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectOption,
			Index:         i,
		})
	}

	percentage := int(math.Round(float64(len(correct)) / float64(total) * 100))

	return &Result{
		Percentage:       percentage,
		CorrectCount:     len(correct),
		TotalCount:       total,
		CorrectAnswers:   correct,
		IncorrectAnswers: incorrect,
	}
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return unanswered
}

func (s *Session) Definition() Definition { return s.def }

func (s *Session) Len() int { return len(s.def.Questions) }

func (s *Session) CurrentIndex() int { return s.current }

func (s *Session) CurrentQuestion() Question { return s.def.Questions[s.current] }

// Answer devolve o índice da opção escolhida para a questão i, ou -1 se a
// questão ainda não foi respondida.
func (s *Session) Answer(i int) int {
	if i < 0 || i >= len(s.answers) {
		return unanswered
	}
	return s.answers[i]
}

func (s *Session) Completed() bool { return s.completed }

// Result devolve o resumo da tentativa concluída, ou nil enquanto a
// tentativa estiver em andamento.
func (s *Session) Result() *Result { return s.result }
