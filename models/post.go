package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID       uint      `gorm:"primary_key" json:"id"`
	Title    string    `gorm:"size:100;not null" json:"title"`
	PostedOn time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"postedOn"`
	Image    string    `gorm:"size:20" json:"image,omitempty"`
	Content  string    `gorm:"type:text;not null" json:"content"`
	AuthorID uuid.UUID `gorm:"type:uuid;index;not null" json:"authorId"`

	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}
