package leave

import (
	"context"

	domain "github.com/sharpcuts/barber-booking/internal/domain/leave"
	"github.com/sharpcuts/barber-booking/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, barberID uint) ([]models.Leave, error) {
	return uc.repo.List(ctx, barberID)
}
