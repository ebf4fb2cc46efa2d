package notes

import (
	"errors"

	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(set *NoteSet) error
	GetByID(id string) (*NoteSet, error)
	ListByUser(userID string) ([]*NoteSet, error)
	UpdatePdfURL(id string, url string) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(set *NoteSet) error {
	return r.db.Create(set).Error
}

func (r *noteRepository) GetByID(id string) (*NoteSet, error) {
	var set NoteSet
	if err := r.db.First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

func (r *noteRepository) ListByUser(userID string) ([]*NoteSet, error) {
	var sets []*NoteSet
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *noteRepository) UpdatePdfURL(id string, url string) error {
	return r.db.Model(&NoteSet{}).
		Where("id = ?", id).
		Update("pdf_url", url).Error
}
