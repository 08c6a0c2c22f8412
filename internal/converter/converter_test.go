package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barberian-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

func TestUserToResponseHidesPassword(t *testing.T) {
	role := uint(2)
	got := UserToResponse(&models.User{ID: 7, FullName: "Ana", Email: "ana@x.io", PasswordHash: "secret", RoleID: &role})

	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, &role, got.RoleID)
	assert.Nil(t, got.Role)
}

func TestNilModelsConvertToNil(t *testing.T) {
	assert.Nil(t, RoleToResponse(nil))
	assert.Nil(t, CityToResponse(nil))
	assert.Nil(t, BarberToResponse(nil))
	assert.Nil(t, AppointmentToResponse(nil))
}

func TestAppointmentToResponse(t *testing.T) {
	got := AppointmentToResponse(&models.Appointment{
		ID:              3,
		CustomerID:      1,
		BarberID:        2,
		AppointmentDate: "2024-06-01",
		StartTime:       "10:00:00",
		EndTime:         "10:30:00",
		Status:          appointment.StatusDone,
	})

	assert.Equal(t, "2024-06-01", got.AppointmentDate)
	assert.Equal(t, "done", got.Status)
	assert.Nil(t, got.Customer)
}

func TestPickAndKeys(t *testing.T) {
	rows := map[uint]models.Genre{1: {ID: 1, Name: "male"}}

	assert.Equal(t, "male", Pick(rows, 1).Name)
	assert.Nil(t, Pick(rows, 2))
	assert.Nil(t, PickOptional(rows, nil))

	cities := []models.City{{DepartmentID: 4}, {DepartmentID: 4}, {DepartmentID: 1}}
	assert.Equal(t, []uint{4, 1}, Keys(cities, func(c models.City) uint { return c.DepartmentID }))

	one := uint(9)
	barbers := []models.Barber{{SpecialtyID: nil}, {SpecialtyID: &one}}
	assert.Equal(t, []uint{9}, OptionalKeys(barbers, func(b models.Barber) *uint { return b.SpecialtyID }))
}
