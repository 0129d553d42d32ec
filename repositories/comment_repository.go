package repositories

import (
	"gorm.io/gorm"

	"github.com/MrAmlya/unheard-echoes/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	Get(writingID, commentID string) (*models.Comment, error)
	Delete(writingID, commentID string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) Get(writingID, commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("writing_id = ? AND id = ?", writingID, commentID).First(&comment).Error
	return &comment, err
}

func (r *commentRepository) Delete(writingID, commentID string) error {
	return r.db.Where("writing_id = ? AND id = ?", writingID, commentID).Delete(&models.Comment{}).Error
}
