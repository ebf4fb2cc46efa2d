package community

import (
	"errors"

	"gorm.io/gorm"
)

type CommunityRepository interface {
	Create(c *Community) error
	GetByCode(code string) (*Community, error)
	AddMember(m *CommunityMember) error
	IsMember(communityID, userID string) (bool, error)
	CountMembers(communityID string) (int64, error)
	ListByMember(userID string) ([]*Community, error)
	CreateSharedNote(n *SharedNote) error
	ListSharedNotes(communityID string) ([]*SharedNote, error)
}

type communityRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(c *Community) error {
	return r.db.Create(c).Error
}

func (r *communityRepository) GetByCode(code string) (*Community, error) {
	var c Community
	if err := r.db.First(&c, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *communityRepository) AddMember(m *CommunityMember) error {
	return r.db.Create(m).Error
}

func (r *communityRepository) IsMember(communityID, userID string) (bool, error) {
	var count int64
	if err := r.db.Model(&CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *communityRepository) CountMembers(communityID string) (int64, error) {
	var count int64
	if err := r.db.Model(&CommunityMember{}).
		Where("community_id = ?", communityID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *communityRepository) ListByMember(userID string) ([]*Community, error) {
	var communities []*Community
	if err := r.db.
		Joins("JOIN community_members ON community_members.community_id = communities.id").
		Where("community_members.user_id = ?", userID).
		Order("communities.created_at DESC").
		Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}

func (r *communityRepository) CreateSharedNote(n *SharedNote) error {
	return r.db.Create(n).Error
}

func (r *communityRepository) ListSharedNotes(communityID string) ([]*SharedNote, error) {
	var notes []*SharedNote
	if err := r.db.
		Where("community_id = ?", communityID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
