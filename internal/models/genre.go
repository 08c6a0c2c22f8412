package models

import "time"

// Genre is the gender category referenced by customers and barbers.
type Genre struct {
	ID   uint   `gorm:"column:id_genre;primaryKey;autoIncrement"`
	Name string `gorm:"size:50;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g Genre) Key() uint { return g.ID }
