package repositories

import (
	"gorm.io/gorm"

	"github.com/MrAmlya/unheard-echoes/models"
)

type LikeRepository interface {
	Get(userID, writingID string) (*models.Like, error)
	Create(like *models.Like) error
	Delete(userID, writingID string) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Get(userID, writingID string) (*models.Like, error) {
	var like models.Like
	err := r.db.Where("user_id = ? AND writing_id = ?", userID, writingID).First(&like).Error
	return &like, err
}

func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) Delete(userID, writingID string) error {
	return r.db.Where("user_id = ? AND writing_id = ?", userID, writingID).Delete(&models.Like{}).Error
}
