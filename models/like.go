package models

import (
	"time"
)

// Like records one like per (user, writing) pair for authenticated
// callers. Anonymous likes have no row here; they only bump the
// Writing.Likes counter.
type Like struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    string    `json:"user_id" gorm:"size:36;not null;uniqueIndex:idx_user_writing"`
	WritingID string    `json:"writing_id" gorm:"size:36;not null;uniqueIndex:idx_user_writing"`
	Writing   *Writing  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"created_at"`
}
