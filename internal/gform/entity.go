package gform

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GFormRecord espelha um quiz exportado como Google Form. Definition guarda
// a definição completa do quiz para corrigir respostas depois.
type GFormRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	FormID       string         `gorm:"type:text;not null;uniqueIndex" json:"form_id"`
	Title        string         `gorm:"type:text;not null" json:"title"`
	ResponderURL string         `gorm:"type:text" json:"responder_url"`
	Definition   datatypes.JSON `gorm:"type:jsonb;not null" json:"definition"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

type QuizPdf struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
