package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barberian-api/internal/models"
)

type StaffRepository struct{ crud[models.Staff] }

// FindByBarber returns the oldest staff row of a barber.
func (StaffRepository) FindByBarber(
	ctx context.Context,
	db *gorm.DB,
	barberID uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := db.WithContext(ctx).
		Where("id_barber = ?", barberID).
		Order("id_staff").
		First(&staff).Error; err != nil {
		return nil, classify(db, err)
	}
	return &staff, nil
}

// Delete removes a staff row. Barbershops still pointing at it make the
// store refuse with a foreign key ConstraintError.
func (StaffRepository) Delete(
	ctx context.Context,
	db *gorm.DB,
	id uint,
) error {

	res := db.WithContext(ctx).Delete(&models.Staff{}, id)
	if res.Error != nil {
		return classify(db, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
