package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CommentNameMaxLen = 50
	CommentTextMaxLen = 500
)

// Comment is anonymous-capable: Name is whatever the caller typed, there
// is no owning user. Comments are append-only and immutable except for
// admin deletion.
type Comment struct {
	ID        string    `json:"id" gorm:"primarykey;size:36"`
	WritingID string    `json:"writingId" gorm:"size:36;not null;index"`
	Writing   *Writing  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name      string    `json:"name" gorm:"size:50;not null"`
	Text      string    `json:"text" gorm:"size:500;not null"`
	Date      time.Time `json:"date" gorm:"autoCreateTime"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
