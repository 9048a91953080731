package models

import (
	"time"

	"nailstudio-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"size:20;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	RegisteredOn time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"registeredOn"`
	Admin        bool      `gorm:"not null;default:false" json:"admin"`

	Entries []Entry      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Posts   []Post       `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Socials *SocialMedia `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	gorm.Model `json:"-"`
}

// Hash the password and assign an ID before the first insert.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.RegisteredOn.IsZero() {
		u.RegisteredOn = time.Now()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
