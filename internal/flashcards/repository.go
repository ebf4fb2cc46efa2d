package flashcards

import (
	"errors"

	"gorm.io/gorm"
)

type FlashcardRepository interface {
	Create(set *FlashcardSet) error
	GetByID(id string) (*FlashcardSet, error)
	ListByUser(userID string) ([]*FlashcardSet, error)
	UpdatePdfURL(id string, url string) error
}

type flashcardRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) Create(set *FlashcardSet) error {
	return r.db.Create(set).Error
}

func (r *flashcardRepository) GetByID(id string) (*FlashcardSet, error) {
	var set FlashcardSet
	if err := r.db.First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

func (r *flashcardRepository) ListByUser(userID string) ([]*FlashcardSet, error) {
	var sets []*FlashcardSet
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *flashcardRepository) UpdatePdfURL(id string, url string) error {
	return r.db.Model(&FlashcardSet{}).
		Where("id = ?", id).
		Update("pdf_url", url).Error
}
