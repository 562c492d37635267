package interfaces

import (
	"context"

	"crm_pipeline/internal/domain/entities"
)

// IOfferRepository abstracts offer persistence.
//
// Contract notes:
//   - Create must enforce global uniqueness of No and return
//     entities.ErrDuplicateNo on collision; the usecase owns the
//     resync-and-retry loop.
//   - Status-writing methods take an optional stage-history entry that must
//     be appended in the same store update as the status write, so two
//     back-to-back status changes can never skip an entry.
//   - Get methods return a zero-value Offer (ID == "") when nothing matches.

type IOfferRepository interface {
	Create(ctx context.Context, offer entities.Offer) (entities.Offer, error)
	GetByID(ctx context.Context, id string) (entities.Offer, error)
	GetLatestByLeadID(ctx context.Context, leadID string) (entities.Offer, error)
	MaxNo(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id string, status entities.OfferStatus, entry *entities.StageEntry) (entities.Offer, error)
	Update(ctx context.Context, offer entities.Offer, entry *entities.StageEntry) (entities.Offer, error)
	SetConverted(ctx context.Context, id string, info entities.ConversionInfo, entry *entities.StageEntry) (entities.Offer, error)
	ClearConversion(ctx context.Context, id string, entry *entities.StageEntry) (entities.Offer, error)
	UpdateTotals(ctx context.Context, id string, totals entities.Totals) error
	Delete(ctx context.Context, id string) error
}
