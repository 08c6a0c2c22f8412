package converter

import (
	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

func AppointmentToResponse(m *models.Appointment) *dto.AppointmentDTO {
	if m == nil {
		return nil
	}
	return &dto.AppointmentDTO{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		BarberID:        m.BarberID,
		AppointmentDate: string(m.AppointmentDate),
		StartTime:       string(m.StartTime),
		EndTime:         string(m.EndTime),
		Status:          string(m.Status),
	}
}

func StatsToResponse(s repository.Stats) dto.StatsDTO {
	return dto.StatsDTO{
		Users:           s.Users,
		Customers:       s.Customers,
		Barbers:         s.Barbers,
		Staff:           s.Staff,
		Appointments:    s.Appointments,
		Barbershops:     s.Barbershops,
		Specialties:     s.Specialties,
		Departments:     s.Departments,
		Cities:          s.Cities,
		Roles:           s.Roles,
		Genres:          s.Genres,
		Locations:       s.Locations,
		BarberSchedules: s.BarberSchedules,
		AuthProviders:   s.AuthProviders,
	}
}
