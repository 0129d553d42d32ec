package repositories

import (
	"gorm.io/gorm"

	"github.com/MrAmlya/unheard-echoes/models"
)

type WritingRepository interface {
	Create(writing *models.Writing) error
	GetByID(id string) (*models.Writing, error)
	UpdateContent(writing *models.Writing) error
	UpdateReview(writing *models.Writing) error
	Delete(id string) error
	ListByStatus(status models.WritingStatus) ([]models.Writing, error)
	ListByUser(userID string) ([]models.Writing, error)
	ListReviewed() ([]models.Writing, error)
	AddLikes(id string, delta int) error
}

type writingRepository struct {
	db *gorm.DB
}

func NewWritingRepository(db *gorm.DB) WritingRepository {
	return &writingRepository{db: db}
}

func (r *writingRepository) Create(writing *models.Writing) error {
	return r.db.Create(writing).Error
}

func (r *writingRepository) GetByID(id string) (*models.Writing, error) {
	var writing models.Writing
	err := r.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.date asc")
	}).Where("id = ?", id).First(&writing).Error
	return &writing, err
}

// UpdateContent persists only the owner-editable fields. A whole-record
// save would write back a stale likes value and lose a like that landed
// between the read and the write.
func (r *writingRepository) UpdateContent(writing *models.Writing) error {
	return r.db.Model(&models.Writing{}).
		Where("id = ?", writing.ID).
		Updates(map[string]interface{}{
			"title":    writing.Title,
			"content":  writing.Content,
			"category": writing.Category,
			"author":   writing.Author,
		}).Error
}

// UpdateReview persists only the moderation fields, for the same reason.
func (r *writingRepository) UpdateReview(writing *models.Writing) error {
	return r.db.Model(&models.Writing{}).
		Where("id = ?", writing.ID).
		Updates(map[string]interface{}{
			"status":      writing.Status,
			"reviewed_at": writing.ReviewedAt,
			"reviewed_by": writing.ReviewedBy,
		}).Error
}

func (r *writingRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Writing{}).Error
}

func (r *writingRepository) ListByStatus(status models.WritingStatus) ([]models.Writing, error) {
	var writings []models.Writing
	err := r.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.date asc")
	}).Where("status = ?", status).
		Order("date desc").
		Find(&writings).Error
	return writings, err
}

func (r *writingRepository) ListByUser(userID string) ([]models.Writing, error) {
	var writings []models.Writing
	err := r.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.date asc")
	}).Where("user_id = ?", userID).
		Order("date desc").
		Find(&writings).Error
	return writings, err
}

func (r *writingRepository) ListReviewed() ([]models.Writing, error) {
	var writings []models.Writing
	err := r.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.date asc")
	}).Where("status IN ?", []models.WritingStatus{models.StatusApproved, models.StatusRejected}).
		Order("reviewed_at desc").
		Find(&writings).Error
	return writings, err
}

// AddLikes adjusts the like counter with a single atomic SQL expression
// so two racing requests on the same writing never lose an update.
func (r *writingRepository) AddLikes(id string, delta int) error {
	return r.db.Model(&models.Writing{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("GREATEST(likes + ?, 0)", delta)).Error
}
