package models

import "time"

type Barbershop struct {
	ID      uint    `gorm:"column:id_barbershop;primaryKey;autoIncrement"`
	StaffID uint    `gorm:"column:id_staff;not null;index"`
	Phone   *string `gorm:"size:50"`
	Staff   *Staff  `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Barbershop) Key() uint { return b.ID }
