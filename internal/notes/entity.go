package notes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NoteSet struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Topic     string         `gorm:"type:text;not null" json:"topic"`
	Sections  datatypes.JSON `gorm:"type:jsonb;not null" json:"sections"`
	PdfURL    string         `gorm:"type:text" json:"pdf_url,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// Section é um bloco da nota gerada. Code e Language só aparecem em notas
// de tópicos de programação.
type Section struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Code     string `json:"code,omitempty"`
	Language string `json:"language,omitempty"`
}
