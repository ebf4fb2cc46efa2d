package gform

import (
	"errors"

	"gorm.io/gorm"
)

type GFormRepository interface {
	Create(rec *GFormRecord) error
	GetByFormID(formID string) (*GFormRecord, error)
	ListByUser(userID string) ([]*GFormRecord, error)
	CreatePdf(pdf *QuizPdf) error
	ListPdfsByUser(userID string) ([]*QuizPdf, error)
}

type gformRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) GFormRepository {
	return &gformRepository{db: db}
}

func (r *gformRepository) Create(rec *GFormRecord) error {
	return r.db.Create(rec).Error
}

func (r *gformRepository) GetByFormID(formID string) (*GFormRecord, error) {
	var rec GFormRecord
	if err := r.db.First(&rec, "form_id = ?", formID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *gformRepository) ListByUser(userID string) ([]*GFormRecord, error) {
	var recs []*GFormRecord
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *gformRepository) CreatePdf(pdf *QuizPdf) error {
	return r.db.Create(pdf).Error
}

func (r *gformRepository) ListPdfsByUser(userID string) ([]*QuizPdf, error) {
	var pdfs []*QuizPdf
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pdfs).Error; err != nil {
		return nil, err
	}
	return pdfs, nil
}
