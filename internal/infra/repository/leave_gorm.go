package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/sharpcuts/barber-booking/internal/domain/leave"
	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/models"
)

type LeaveGormRepository struct {
	db *gorm.DB
}

func NewLeaveGormRepository(db *gorm.DB) *LeaveGormRepository {
	return &LeaveGormRepository{db: db}
}

func (r *LeaveGormRepository) ListForDate(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Leave, error) {

	var leaves []models.Leave
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *LeaveGormRepository) List(
	ctx context.Context,
	barberID uint,
) ([]models.Leave, error) {

	var leaves []models.Leave
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("date ASC, start_time ASC").
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *LeaveGormRepository) Create(
	ctx context.Context,
	l *models.Leave,
) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeaveGormRepository) Delete(
	ctx context.Context,
	barberID uint,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", id, barberID).
		Delete(&models.Leave{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("leave_not_found", "Leave not found")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*LeaveGormRepository)(nil)
