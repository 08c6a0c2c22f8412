package handlers

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberian-api/internal/converter"
	"github.com/BruksfildServices01/barberian-api/internal/dto"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

// embedder attaches related records one level deep. Each relation costs one
// WHERE key IN (...) query per batch, never one per row.
type embedder struct {
	repos *repository.Repositories
}

func (e embedder) cities(ctx context.Context, db *gorm.DB, rows []models.City) ([]dto.CityDTO, error) {
	deps, err := e.repos.Departments.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.City) uint { return r.DepartmentID }))
	if err != nil {
		return nil, err
	}

	out := convertAll(rows, converter.CityToResponse)
	for i, r := range rows {
		out[i].Department = converter.DepartmentToResponse(converter.Pick(deps, r.DepartmentID))
	}
	return out, nil
}

func (e embedder) users(ctx context.Context, db *gorm.DB, rows []models.User) ([]dto.UserDTO, error) {
	roles, err := e.repos.Roles.FindByIDs(ctx, db,
		converter.OptionalKeys(rows, func(r models.User) *uint { return r.RoleID }))
	if err != nil {
		return nil, err
	}

	out := convertAll(rows, converter.UserToResponse)
	for i, r := range rows {
		out[i].Role = converter.RoleToResponse(converter.PickOptional(roles, r.RoleID))
	}
	return out, nil
}

func (e embedder) customers(ctx context.Context, db *gorm.DB, rows []models.Customer) ([]dto.CustomerDTO, error) {
	users, err := e.repos.Users.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Customer) uint { return r.UserID }))
	if err != nil {
		return nil, err
	}
	genres, err := e.repos.Genres.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Customer) uint { return r.GenreID }))
	if err != nil {
		return nil, err
	}
	deps, err := e.repos.Departments.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Customer) uint { return r.DepartmentID }))
	if err != nil {
		return nil, err
	}
	cities, err := e.repos.Cities.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Customer) uint { return r.CityID }))
	if err != nil {
		return nil, err
	}

	out := convertAll(rows, converter.CustomerToResponse)
	for i, r := range rows {
		out[i].User = converter.UserToResponse(converter.Pick(users, r.UserID))
		out[i].Genre = converter.GenreToResponse(converter.Pick(genres, r.GenreID))
		out[i].Department = converter.DepartmentToResponse(converter.Pick(deps, r.DepartmentID))
		out[i].City = converter.CityToResponse(converter.Pick(cities, r.CityID))
	}
	return out, nil
}

func (e embedder) barbers(ctx context.Context, db *gorm.DB, rows []models.Barber) ([]dto.BarberDTO, error) {
	users, err := e.repos.Users.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Barber) uint { return r.UserID }))
	if err != nil {
		return nil, err
	}
	genres, err := e.repos.Genres.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Barber) uint { return r.GenreID }))
	if err != nil {
		return nil, err
	}
	specialties, err := e.repos.Specialties.FindByIDs(ctx, db,
		converter.OptionalKeys(rows, func(r models.Barber) *uint { return r.SpecialtyID }))
	if err != nil {
		return nil, err
	}
	deps, err := e.repos.Departments.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Barber) uint { return r.DepartmentID }))
	if err != nil {
		return nil, err
	}
	cities, err := e.repos.Cities.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Barber) uint { return r.CityID }))
	if err != nil {
		return nil, err
	}
	schedules, err := e.repos.BarberSchedules.FindByIDs(ctx, db,
		converter.OptionalKeys(rows, func(r models.Barber) *uint { return r.ScheduleID }))
	if err != nil {
		return nil, err
	}

	out := convertAll(rows, converter.BarberToResponse)
	for i, r := range rows {
		out[i].User = converter.UserToResponse(converter.Pick(users, r.UserID))
		out[i].Genre = converter.GenreToResponse(converter.Pick(genres, r.GenreID))
		out[i].Specialty = converter.SpecialtyToResponse(converter.PickOptional(specialties, r.SpecialtyID))
		out[i].Department = converter.DepartmentToResponse(converter.Pick(deps, r.DepartmentID))
		out[i].City = converter.CityToResponse(converter.Pick(cities, r.CityID))
		out[i].Schedule = converter.BarberScheduleToResponse(converter.PickOptional(schedules, r.ScheduleID))
	}
	return out, nil
}

func (e embedder) staff(ctx context.Context, db *gorm.DB, rows []models.Staff) ([]dto.StaffDTO, error) {
	barbers, err := e.repos.Barbers.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Staff) uint { return r.BarberID }))
	if err != nil {
		return nil, err
	}

	out := convertAll(rows, converter.StaffToResponse)
	for i, r := range rows {
		out[i].Barber = converter.BarberToResponse(converter.Pick(barbers, r.BarberID))
	}
	return out, nil
}

func (e embedder) locations(ctx context.Context, db *gorm.DB, rows []models.Location) ([]dto.LocationDTO, error) {
	shops, err := e.repos.Barbershops.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Location) uint { return r.BarbershopID }))
	if err != nil {
		return nil, err
	}
	deps, err := e.repos.Departments.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Location) uint { return r.DepartmentID }))
	if err != nil {
		return nil, err
	}
	cities, err := e.repos.Cities.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Location) uint { return r.CityID }))
	if err != nil {
		return nil, err
	}

	out := convertAll(rows, converter.LocationToResponse)
	for i, r := range rows {
		out[i].Barbershop = converter.BarbershopToResponse(converter.Pick(shops, r.BarbershopID))
		out[i].Department = converter.DepartmentToResponse(converter.Pick(deps, r.DepartmentID))
		out[i].City = converter.CityToResponse(converter.Pick(cities, r.CityID))
	}
	return out, nil
}

func (e embedder) appointments(ctx context.Context, db *gorm.DB, rows []models.Appointment) ([]dto.AppointmentDTO, error) {
	customers, err := e.repos.Customers.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Appointment) uint { return r.CustomerID }))
	if err != nil {
		return nil, err
	}
	barbers, err := e.repos.Barbers.FindByIDs(ctx, db,
		converter.Keys(rows, func(r models.Appointment) uint { return r.BarberID }))
	if err != nil {
		return nil, err
	}

	out := convertAll(rows, converter.AppointmentToResponse)
	for i, r := range rows {
		out[i].Customer = converter.CustomerToResponse(converter.Pick(customers, r.CustomerID))
		out[i].Barber = converter.BarberToResponse(converter.Pick(barbers, r.BarberID))
	}
	return out, nil
}

// one runs a batch loader for a single record.
func one[M any, D any](
	ctx context.Context,
	db *gorm.DB,
	rec *M,
	load func(context.Context, *gorm.DB, []M) ([]D, error),
) (*D, error) {
	out, err := load(ctx, db, []M{*rec})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}
