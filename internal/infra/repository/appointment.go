package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barberian-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

type AppointmentRepository struct{ crud[models.Appointment] }

func (r AppointmentRepository) ListByCustomer(
	ctx context.Context,
	db *gorm.DB,
	customerID uint,
) ([]models.Appointment, error) {
	return r.listWhere(ctx, db, "id_customer", customerID)
}

func (r AppointmentRepository) ListByBarber(
	ctx context.Context,
	db *gorm.DB,
	barberID uint,
) ([]models.Appointment, error) {
	return r.listWhere(ctx, db, "id_barber", barberID)
}

// UpdateStatus overwrites the status column only. Any transition between
// known statuses is allowed.
func (AppointmentRepository) UpdateStatus(
	ctx context.Context,
	db *gorm.DB,
	id uint,
	status domain.Status,
) error {

	res := db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id_appointment = ?", id).
		Update("status", status)
	if res.Error != nil {
		return classify(db, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
