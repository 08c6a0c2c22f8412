package models

import "time"

type Department struct {
	ID   uint   `gorm:"column:id_department;primaryKey;autoIncrement"`
	Name string `gorm:"size:100;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d Department) Key() uint { return d.ID }
