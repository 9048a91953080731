package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry is a booked appointment: one user, one date, one start time and the
// set of services performed during it.
type Entry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	Date      time.Time `gorm:"type:date;index;not null" json:"date"`
	Time      string    `gorm:"type:time;not null" json:"time"`
	CreatedOn time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdOn"`

	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Services []Service `gorm:"many2many:entry_services;" json:"services"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedOn.IsZero() {
		e.CreatedOn = time.Now()
	}
	return
}

// TotalDuration is the summed duration of the entry's services in hours,
// zero when no services are selected.
func (e *Entry) TotalDuration() float64 {
	var total float64
	for _, service := range e.Services {
		total += service.Duration
	}
	return total
}
