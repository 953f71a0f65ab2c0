package leave

import (
	"context"

	"github.com/sharpcuts/barber-booking/internal/models"
)

type Repository interface {
	ListForDate(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Leave, error)

	List(
		ctx context.Context,
		barberID uint,
	) ([]models.Leave, error)

	Create(
		ctx context.Context,
		l *models.Leave,
	) error

	// Delete removes the barber's leave by id. Missing or
	// foreign-owned ids report not-found, never silent success.
	Delete(
		ctx context.Context,
		barberID uint,
		id uint,
	) error
}
