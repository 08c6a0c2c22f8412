package models

import "time"

type Specialty struct {
	ID              uint   `gorm:"column:id_specialty;primaryKey;autoIncrement"`
	Name            string `gorm:"size:100;not null"`
	YearsExperience *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Specialty) Key() uint { return s.ID }
