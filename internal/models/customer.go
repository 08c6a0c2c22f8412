package models

import "time"

// Customer extends a user with contact and location data.
type Customer struct {
	ID           uint    `gorm:"column:id_customer;primaryKey;autoIncrement"`
	UserID       uint    `gorm:"column:id_user;not null;index"`
	GenreID      uint    `gorm:"column:id_genre;not null"`
	Phone        *string `gorm:"size:255"`
	Address      *string `gorm:"column:direction;size:255"`
	DepartmentID uint    `gorm:"column:id_department;not null"`
	CityID       uint    `gorm:"column:id_city;not null"`

	User       *User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Genre      *Genre      `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	City       *City       `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Customer) Key() uint { return c.ID }
