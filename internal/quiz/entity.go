package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizAttemptRecord é o resumo persistido de uma tentativa concluída.
// Breakdown guarda o resultado completo (percentual, corretas/incorretas)
// no formato JSON produzido pelo motor de sessão.
type QuizAttemptRecord struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string         `gorm:"type:text;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	TotalQuestions int            `gorm:"not null" json:"total_questions"`
	CorrectCount   int            `gorm:"not null" json:"correct_count"`
	Percentage     int            `gorm:"not null" json:"percentage"`
	Breakdown      datatypes.JSON `gorm:"type:jsonb;not null" json:"breakdown"`
	CompletedAt    time.Time      `gorm:"autoCreateTime" json:"completed_at"`
}

func (QuizAttemptRecord) TableName() string {
	return "quiz_attempts"
}
