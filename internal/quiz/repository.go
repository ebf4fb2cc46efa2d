package quiz

import (
	"gorm.io/gorm"
)

type QuizAttemptRepository interface {
	Create(rec *QuizAttemptRecord) error
	ListByUser(userID string) ([]*QuizAttemptRecord, error)
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) Create(rec *QuizAttemptRecord) error {
	return r.db.Create(rec).Error
}

func (r *quizAttemptRepository) ListByUser(userID string) ([]*QuizAttemptRecord, error) {
	var records []*QuizAttemptRecord
	if err := r.db.
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
