package interfaces

import (
	"context"

	"crm_pipeline/internal/domain/entities"
)

// ISaleRepository abstracts sale persistence. Same uniqueness and
// stage-history contract as IOfferRepository.

type ISaleRepository interface {
	Create(ctx context.Context, sale entities.Sale) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	MaxNo(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id string, status entities.SaleStatus, entry *entities.StageEntry) (entities.Sale, error)
	Update(ctx context.Context, sale entities.Sale, entry *entities.StageEntry) (entities.Sale, error)
	UpdateTotals(ctx context.Context, id string, totals entities.Totals) error
	Delete(ctx context.Context, id string) error
}
