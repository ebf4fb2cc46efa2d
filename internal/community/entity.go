package community

import (
	"time"

	"github.com/google/uuid"
)

// Community é identificada publicamente pelo Code curto compartilhável; o
// UUID fica interno ao banco.
type Community struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code      string    `gorm:"type:varchar(16);not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type CommunityMember struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CommunityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_unique" json:"community_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_unique" json:"user_id"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

type SharedNote struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CommunityID  uuid.UUID `gorm:"type:uuid;not null;index" json:"community_id"`
	NoteSetID    uuid.UUID `gorm:"type:uuid;not null" json:"note_set_id"`
	Topic        string    `gorm:"type:text;not null" json:"topic"`
	PdfURL       string    `gorm:"type:text" json:"pdf_url,omitempty"`
	SharedBy     uuid.UUID `gorm:"type:uuid;not null" json:"shared_by"`
	SharedByName string    `gorm:"type:text" json:"shared_by_name"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
