package models

import (
	"time"

	"github.com/BruksfildServices01/barberian-api/internal/domain/appointment"
)

// Appointment books a customer with a barber. Overlaps are not checked.
type Appointment struct {
	ID              uint               `gorm:"column:id_appointment;primaryKey;autoIncrement"`
	CustomerID      uint               `gorm:"column:id_customer;not null;index"`
	BarberID        uint               `gorm:"column:id_barber;not null;index"`
	AppointmentDate Date               `gorm:"type:date;not null"`
	StartTime       ClockTime          `gorm:"type:time;not null"`
	EndTime         ClockTime          `gorm:"type:time;not null"`
	Status          appointment.Status `gorm:"size:20;not null;default:'pending';check:chk_appointments_status,status IN ('pending','confirmed','cancelled','done')"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Barber   *Barber   `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Appointment) Key() uint { return a.ID }
