package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialMedia holds a user's public profile and contact links. All fields
// except the avatar are optional.
type SocialMedia struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Avatar      string    `gorm:"size:20;not null;default:'default.jpg'" json:"avatar"`
	FirstName   string    `gorm:"size:50" json:"firstName,omitempty"`
	LastName    string    `gorm:"size:50" json:"lastName,omitempty"`
	PhoneNumber string    `gorm:"size:50" json:"phoneNumber,omitempty"`
	Viber       string    `gorm:"size:50" json:"viber,omitempty"`
	WhatsApp    string    `gorm:"size:50" json:"whatsapp,omitempty"`
	Instagram   string    `gorm:"size:255" json:"instagram,omitempty"`
	Telegram    string    `gorm:"size:255" json:"telegram,omitempty"`
	YouTube     string    `gorm:"size:255" json:"youtube,omitempty"`
	Website     string    `gorm:"size:255" json:"website,omitempty"`
	VK          string    `gorm:"size:255" json:"vk,omitempty"`
	About       string    `gorm:"size:255" json:"about,omitempty"`
}

func (s *SocialMedia) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
