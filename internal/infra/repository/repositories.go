package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberian-api/internal/models"
)

// Repositories bundles one repository per table. All of them are stateless;
// the *gorm.DB handed to each call carries the request scope.
type Repositories struct {
	AuthProviders   AuthProviderRepository
	Roles           RoleRepository
	Genres          GenreRepository
	Departments     DepartmentRepository
	Cities          CityRepository
	Users           UserRepository
	Customers       CustomerRepository
	Specialties     SpecialtyRepository
	BarberSchedules BarberScheduleRepository
	Barbers         BarberRepository
	Staff           StaffRepository
	Barbershops     BarbershopRepository
	Locations       LocationRepository
	Appointments    AppointmentRepository
}

func New() *Repositories {
	return &Repositories{}
}

// --------------------------------------------------
// Plain tables
// --------------------------------------------------

type AuthProviderRepository struct{ crud[models.AuthProvider] }

type RoleRepository struct{ crud[models.Role] }

type GenreRepository struct{ crud[models.Genre] }

type DepartmentRepository struct{ crud[models.Department] }

type SpecialtyRepository struct{ crud[models.Specialty] }

type BarberScheduleRepository struct{ crud[models.BarberSchedule] }

type CustomerRepository struct{ crud[models.Customer] }

type BarbershopRepository struct{ crud[models.Barbershop] }

type LocationRepository struct{ crud[models.Location] }

type UserRepository struct{ crud[models.User] }

// --------------------------------------------------
// City
// --------------------------------------------------

type CityRepository struct{ crud[models.City] }

func (r CityRepository) ListByDepartment(
	ctx context.Context,
	db *gorm.DB,
	departmentID uint,
) ([]models.City, error) {
	return r.listWhere(ctx, db, "id_department", departmentID)
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

type BarberRepository struct{ crud[models.Barber] }

func (r BarberRepository) ListByCity(
	ctx context.Context,
	db *gorm.DB,
	cityID uint,
) ([]models.Barber, error) {
	return r.listWhere(ctx, db, "id_city", cityID)
}

// --------------------------------------------------
// Stats
// --------------------------------------------------

// Stats holds one row count per table.
type Stats struct {
	AuthProviders   int64
	Roles           int64
	Genres          int64
	Departments     int64
	Cities          int64
	Users           int64
	Customers       int64
	Specialties     int64
	BarberSchedules int64
	Barbers         int64
	Staff           int64
	Barbershops     int64
	Locations       int64
	Appointments    int64
}

// Stats runs one count query per table.
func (r *Repositories) Stats(ctx context.Context, db *gorm.DB) (Stats, error) {
	var s Stats
	counters := []struct {
		dst   *int64
		count func(context.Context, *gorm.DB) (int64, error)
	}{
		{&s.AuthProviders, r.AuthProviders.Count},
		{&s.Roles, r.Roles.Count},
		{&s.Genres, r.Genres.Count},
		{&s.Departments, r.Departments.Count},
		{&s.Cities, r.Cities.Count},
		{&s.Users, r.Users.Count},
		{&s.Customers, r.Customers.Count},
		{&s.Specialties, r.Specialties.Count},
		{&s.BarberSchedules, r.BarberSchedules.Count},
		{&s.Barbers, r.Barbers.Count},
		{&s.Staff, r.Staff.Count},
		{&s.Barbershops, r.Barbershops.Count},
		{&s.Locations, r.Locations.Count},
		{&s.Appointments, r.Appointments.Count},
	}

	for _, c := range counters {
		n, err := c.count(ctx, db)
		if err != nil {
			return Stats{}, err
		}
		*c.dst = n
	}
	return s, nil
}
