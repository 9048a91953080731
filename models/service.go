package models

type Service struct {
	ID   uint   `gorm:"primary_key" json:"id"`
	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"`
	// Duration is expressed in hours, quantized to one decimal place.
	Duration float64 `gorm:"type:decimal(3,1);not null" json:"duration"`

	Entries []Entry `gorm:"many2many:entry_services;" json:"-"`
}
