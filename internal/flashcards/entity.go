package flashcards

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FlashcardSet struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject   string         `gorm:"type:text;not null" json:"subject"`
	Topic     string         `gorm:"type:text;not null" json:"topic"`
	Cards     datatypes.JSON `gorm:"type:jsonb;not null" json:"cards"`
	PdfURL    string         `gorm:"type:text" json:"pdf_url,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
