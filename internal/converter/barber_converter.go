package converter

import (
	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

func BarberScheduleToResponse(m *models.BarberSchedule) *dto.BarberScheduleDTO {
	if m == nil {
		return nil
	}
	return &dto.BarberScheduleDTO{
		ID:        m.ID,
		DayOfWeek: string(m.DayOfWeek),
		StartTime: string(m.StartTime),
		EndTime:   string(m.EndTime),
	}
}

func BarberToResponse(m *models.Barber) *dto.BarberDTO {
	if m == nil {
		return nil
	}
	return &dto.BarberDTO{
		ID:           m.ID,
		UserID:       m.UserID,
		GenreID:      m.GenreID,
		SpecialtyID:  m.SpecialtyID,
		DepartmentID: m.DepartmentID,
		CityID:       m.CityID,
		ScheduleID:   m.ScheduleID,
		Phone:        m.Phone,
		Address:      m.Address,
		Points:       m.Points,
	}
}

func StaffToResponse(m *models.Staff) *dto.StaffDTO {
	if m == nil {
		return nil
	}
	return &dto.StaffDTO{ID: m.ID, BarberID: m.BarberID}
}

func BarbershopToResponse(m *models.Barbershop) *dto.BarbershopDTO {
	if m == nil {
		return nil
	}
	return &dto.BarbershopDTO{ID: m.ID, StaffID: m.StaffID, Phone: m.Phone}
}

func LocationToResponse(m *models.Location) *dto.LocationDTO {
	if m == nil {
		return nil
	}
	return &dto.LocationDTO{
		ID:           m.ID,
		BarbershopID: m.BarbershopID,
		DepartmentID: m.DepartmentID,
		CityID:       m.CityID,
		Address:      m.Address,
		OpeningHour:  string(m.OpeningHour),
		ClosingHour:  string(m.ClosingHour),
	}
}
