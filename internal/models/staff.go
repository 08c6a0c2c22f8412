package models

import "time"

// Staff is one barber's membership row; barbershops point at it.
type Staff struct {
	ID       uint    `gorm:"column:id_staff;primaryKey;autoIncrement"`
	BarberID uint    `gorm:"column:id_barber;not null;index"`
	Barber   *Barber `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Staff) TableName() string { return "staff" }

func (s Staff) Key() uint { return s.ID }
