package models

import "time"

type Role struct {
	ID   uint   `gorm:"column:id_role;primaryKey;autoIncrement"`
	Name string `gorm:"size:100;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Role) Key() uint { return r.ID }
