package models

import "time"

type Location struct {
	ID           uint      `gorm:"column:id_location;primaryKey;autoIncrement"`
	BarbershopID uint      `gorm:"column:id_barbershop;not null;index"`
	DepartmentID uint      `gorm:"column:id_department;not null"`
	CityID       uint      `gorm:"column:id_city;not null"`
	Address      string    `gorm:"size:255;not null"`
	OpeningHour  ClockTime `gorm:"type:time;not null"`
	ClosingHour  ClockTime `gorm:"type:time;not null"`

	Barbershop *Barbershop `gorm:"foreignKey:BarbershopID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	City       *City       `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l Location) Key() uint { return l.ID }
