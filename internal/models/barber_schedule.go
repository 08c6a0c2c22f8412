package models

import (
	"time"

	"github.com/BruksfildServices01/barberian-api/internal/domain/schedule"
)

type BarberSchedule struct {
	ID        uint               `gorm:"column:id_schedule;primaryKey;autoIncrement"`
	DayOfWeek schedule.DayOfWeek `gorm:"size:10;not null;check:chk_barber_schedules_day,day_of_week IN ('monday','tuesday','wednesday','thursday','friday','saturday','sunday')"`
	StartTime ClockTime          `gorm:"type:time;not null"`
	EndTime   ClockTime          `gorm:"type:time;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s BarberSchedule) Key() uint { return s.ID }
