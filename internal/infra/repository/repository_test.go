package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barberian-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/models"
	"github.com/BruksfildServices01/barberian-api/internal/testutil"
)

type fixture struct {
	db    *gorm.DB
	repos *repository.Repositories
	ctx   context.Context
}

func newFixture(t *testing.T) fixture {
	return fixture{db: testutil.DB(t), repos: repository.New(), ctx: context.Background()}
}

// seedBarber creates the chain department -> city -> user -> genre -> barber.
func (f fixture) seedBarber(t *testing.T, email string) (models.City, models.Barber) {
	t.Helper()

	dep := models.Department{Name: "Antioquia"}
	require.NoError(t, f.repos.Departments.Create(f.ctx, f.db, &dep))
	city := models.City{Name: "Medellin", DepartmentID: dep.ID}
	require.NoError(t, f.repos.Cities.Create(f.ctx, f.db, &city))
	genre := models.Genre{Name: "male"}
	require.NoError(t, f.repos.Genres.Create(f.ctx, f.db, &genre))
	user := models.User{FullName: "Ana", Email: email}
	require.NoError(t, f.repos.Users.Create(f.ctx, f.db, &user))

	barber := models.Barber{
		UserID:       user.ID,
		GenreID:      genre.ID,
		DepartmentID: dep.ID,
		CityID:       city.ID,
	}
	require.NoError(t, f.repos.Barbers.Create(f.ctx, f.db, &barber))
	return city, barber
}

func TestCreateAndFindByID(t *testing.T) {
	f := newFixture(t)

	role := models.Role{Name: "Barber"}
	require.NoError(t, f.repos.Roles.Create(f.ctx, f.db, &role))
	assert.Equal(t, uint(1), role.ID)

	got, err := f.repos.Roles.FindByID(f.ctx, f.db, role.ID)
	require.NoError(t, err)
	assert.Equal(t, "Barber", got.Name)

	_, err = f.repos.Roles.FindByID(f.ctx, f.db, 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListPaging(t *testing.T) {
	f := newFixture(t)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, f.repos.Genres.Create(f.ctx, f.db, &models.Genre{Name: name}))
	}

	all, err := f.repos.Genres.List(f.ctx, f.db, repository.Page{Limit: repository.DefaultLimit})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "c", all[2].Name)

	window, err := f.repos.Genres.List(f.ctx, f.db, repository.Page{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, "b", window[0].Name)

	none, err := f.repos.Genres.List(f.ctx, f.db, repository.Page{Limit: 0})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	past, err := f.repos.Genres.List(f.ctx, f.db, repository.Page{Skip: 10, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestFindByIDs(t *testing.T) {
	f := newFixture(t)

	for _, name := range []string{"x", "y"} {
		require.NoError(t, f.repos.Departments.Create(f.ctx, f.db, &models.Department{Name: name}))
	}

	got, err := f.repos.Departments.FindByIDs(f.ctx, f.db, []uint{1, 2, 42})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "y", got[2].Name)

	empty, err := f.repos.Departments.FindByIDs(f.ctx, f.db, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUniqueEmail(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.repos.Users.Create(f.ctx, f.db, &models.User{FullName: "A", Email: "a@x.io"}))
	err := f.repos.Users.Create(f.ctx, f.db, &models.User{FullName: "B", Email: "a@x.io"})

	var ce *repository.ConstraintError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, repository.ConstraintUnique, ce.Kind)
}

func TestForeignKeyViolation(t *testing.T) {
	f := newFixture(t)

	err := f.repos.Cities.Create(f.ctx, f.db, &models.City{Name: "Nowhere", DepartmentID: 99})

	var ce *repository.ConstraintError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, repository.ConstraintForeignKey, ce.Kind)
}

func TestCheckConstraint(t *testing.T) {
	f := newFixture(t)

	err := f.repos.AuthProviders.Create(f.ctx, f.db, &models.AuthProvider{Provider: "github"})

	var ce *repository.ConstraintError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, repository.ConstraintCheck, ce.Kind)
}

func TestFilteredLists(t *testing.T) {
	f := newFixture(t)
	city, barber := f.seedBarber(t, "b@x.io")

	cities, err := f.repos.Cities.ListByDepartment(f.ctx, f.db, city.DepartmentID)
	require.NoError(t, err)
	assert.Len(t, cities, 1)

	cities, err = f.repos.Cities.ListByDepartment(f.ctx, f.db, 99)
	require.NoError(t, err)
	assert.NotNil(t, cities)
	assert.Empty(t, cities)

	barbers, err := f.repos.Barbers.ListByCity(f.ctx, f.db, city.ID)
	require.NoError(t, err)
	require.Len(t, barbers, 1)
	assert.Equal(t, barber.ID, barbers[0].ID)
	assert.Equal(t, 0, barbers[0].Points)
}

func TestAppointmentStatus(t *testing.T) {
	f := newFixture(t)
	city, barber := f.seedBarber(t, "c@x.io")

	user := models.User{FullName: "Client", Email: "client@x.io"}
	require.NoError(t, f.repos.Users.Create(f.ctx, f.db, &user))
	customer := models.Customer{
		UserID:       user.ID,
		GenreID:      barber.GenreID,
		DepartmentID: city.DepartmentID,
		CityID:       city.ID,
	}
	require.NoError(t, f.repos.Customers.Create(f.ctx, f.db, &customer))

	appt := models.Appointment{
		CustomerID:      customer.ID,
		BarberID:        barber.ID,
		AppointmentDate: "2024-06-01",
		StartTime:       "10:00:00",
		EndTime:         "10:30:00",
		Status:          domain.InitialStatus(),
	}
	require.NoError(t, f.repos.Appointments.Create(f.ctx, f.db, &appt))

	require.NoError(t, f.repos.Appointments.UpdateStatus(f.ctx, f.db, appt.ID, domain.StatusConfirmed))

	got, err := f.repos.Appointments.FindByID(f.ctx, f.db, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.Equal(t, models.Date("2024-06-01"), got.AppointmentDate)
	assert.Equal(t, models.ClockTime("10:30:00"), got.EndTime)

	err = f.repos.Appointments.UpdateStatus(f.ctx, f.db, 9999, domain.StatusDone)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	byCustomer, err := f.repos.Appointments.ListByCustomer(f.ctx, f.db, customer.ID)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)

	byBarber, err := f.repos.Appointments.ListByBarber(f.ctx, f.db, barber.ID+1)
	require.NoError(t, err)
	assert.Empty(t, byBarber)
}

func TestStaffDelete(t *testing.T) {
	f := newFixture(t)
	_, barber := f.seedBarber(t, "d@x.io")

	staff := models.Staff{BarberID: barber.ID}
	require.NoError(t, f.repos.Staff.Create(f.ctx, f.db, &staff))

	found, err := f.repos.Staff.FindByBarber(f.ctx, f.db, barber.ID)
	require.NoError(t, err)
	assert.Equal(t, staff.ID, found.ID)

	shop := models.Barbershop{StaffID: staff.ID}
	require.NoError(t, f.repos.Barbershops.Create(f.ctx, f.db, &shop))

	var ce *repository.ConstraintError
	err = f.repos.Staff.Delete(f.ctx, f.db, staff.ID)
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, repository.ConstraintForeignKey, ce.Kind)

	other := models.Staff{BarberID: barber.ID}
	require.NoError(t, f.repos.Staff.Create(f.ctx, f.db, &other))
	require.NoError(t, f.repos.Staff.Delete(f.ctx, f.db, other.ID))
	assert.ErrorIs(t, f.repos.Staff.Delete(f.ctx, f.db, other.ID), repository.ErrNotFound)

	_, err = f.repos.Staff.FindByBarber(f.ctx, f.db, 4242)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	f.seedBarber(t, "e@x.io")

	stats, err := f.repos.Stats(f.ctx, f.db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(1), stats.Barbers)
	assert.Equal(t, int64(1), stats.Cities)
	assert.Equal(t, int64(0), stats.Appointments)
}
