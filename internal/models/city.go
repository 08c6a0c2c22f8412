package models

import "time"

type City struct {
	ID           uint        `gorm:"column:id_city;primaryKey;autoIncrement"`
	Name         string      `gorm:"size:100;not null"`
	DepartmentID uint        `gorm:"column:id_department;not null;index"`
	Department   *Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c City) Key() uint { return c.ID }
