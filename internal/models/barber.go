package models

import "time"

type Barber struct {
	ID           uint    `gorm:"column:id_barber;primaryKey;autoIncrement"`
	UserID       uint    `gorm:"column:id_user;not null;index"`
	GenreID      uint    `gorm:"column:id_genre;not null"`
	SpecialtyID  *uint   `gorm:"column:id_specialty"`
	DepartmentID uint    `gorm:"column:id_department;not null"`
	CityID       uint    `gorm:"column:id_city;not null;index"`
	ScheduleID   *uint   `gorm:"column:id_barber_schedule"`
	Phone        *string `gorm:"size:255"`
	Address      *string `gorm:"column:direction;size:255"`
	// Points has no accrual rule; it is stored as given.
	Points int `gorm:"not null;default:0"`

	User       *User           `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Genre      *Genre          `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Specialty  *Specialty      `gorm:"foreignKey:SpecialtyID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Department *Department     `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	City       *City           `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Schedule   *BarberSchedule `gorm:"foreignKey:ScheduleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Barber) Key() uint { return b.ID }
