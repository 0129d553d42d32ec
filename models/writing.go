package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WritingStatus string

const (
	StatusPending  WritingStatus = "pending"
	StatusApproved WritingStatus = "approved"
	StatusRejected WritingStatus = "rejected"
)

type WritingCategory string

const (
	CategoryShayari WritingCategory = "shayari"
	CategoryWriting WritingCategory = "writing"
	CategoryFeeling WritingCategory = "feeling"
)

// ValidCategory reports whether c is one of the three known categories.
func ValidCategory(c WritingCategory) bool {
	switch c {
	case CategoryShayari, CategoryWriting, CategoryFeeling:
		return true
	}
	return false
}

type Writing struct {
	ID       string          `json:"id" gorm:"primarykey;size:36"`
	Title    string          `json:"title,omitempty"`
	Content  string          `json:"content" gorm:"type:text;not null"`
	Category WritingCategory `json:"category" gorm:"size:20;not null"`
	// Author is a free-text byline, distinct from the owning user.
	Author string    `json:"author,omitempty"`
	Date   time.Time `json:"date" gorm:"autoCreateTime"`
	UserID string    `json:"userId" gorm:"size:36;not null;index"`
	User   *User     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	Status     WritingStatus `json:"status" gorm:"size:20;default:'pending';not null;index"`
	ReviewedAt *time.Time    `json:"reviewedAt,omitempty"`
	ReviewedBy *string       `json:"reviewedBy,omitempty" gorm:"size:36"`

	Likes    int       `json:"likes" gorm:"default:0;not null"`
	Comments []Comment `json:"comments" gorm:"foreignKey:WritingID"`

	UpdatedAt time.Time `json:"-"`
}

func (w *Writing) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
