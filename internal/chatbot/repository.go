package chatbot

import (
	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(msg *ChatMessage) error
	ListByUser(userID string, limit int) ([]*ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(msg *ChatMessage) error {
	return r.db.Create(msg).Error
}

func (r *chatRepository) ListByUser(userID string, limit int) ([]*ChatMessage, error) {
	var msgs []*ChatMessage
	q := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC")
	if limit > 0 {
		// As mensagens mais recentes interessam; reordenamos depois.
		q = r.db.
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Limit(limit)
	}
	if err := q.Find(&msgs).Error; err != nil {
		return nil, err
	}
	if limit > 0 {
		for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
			msgs[i], msgs[j] = msgs[j], msgs[i]
		}
	}
	return msgs, nil
}
