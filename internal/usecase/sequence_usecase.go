package usecase

import (
	"context"
	"fmt"
	"time"

	"crm_pipeline/internal/usecase/interfaces"
)

const (
	counterKeyOfferNo = "offer-no"
	counterKeySaleNo  = "sale-no"
)

// ISequenceUseCase issues collision-free identifiers from the shared
// counter store.
//
// Pipeline refs are formatted PL-<year>-<seq> with the sequence zero-padded
// to 5 digits. The counter key embeds the calendar year, so sequences reset
// to 1 on year boundaries by construction (new key = new counter document).
// Offer and sale numbers use fixed keys and never reset.

type ISequenceUseCase interface {
	GeneratePipelineRef(ctx context.Context) (string, error)
	GenerateOfferNo(ctx context.Context) (int64, error)
	GenerateSaleNo(ctx context.Context) (int64, error)
	SyncOfferNo(ctx context.Context, min int64) error
	SyncSaleNo(ctx context.Context, min int64) error
}

type SequenceUseCase struct {
	counters interfaces.ICounterRepository
	now      func() time.Time
}

var _ ISequenceUseCase = (*SequenceUseCase)(nil)

func NewSequenceUseCase(counters interfaces.ICounterRepository) *SequenceUseCase {
	return &SequenceUseCase{counters: counters, now: time.Now}
}

func (u *SequenceUseCase) GeneratePipelineRef(ctx context.Context) (string, error) {
	year := u.now().UTC().Year()
	seq, err := u.counters.Next(ctx, fmt.Sprintf("pipeline-%d", year))
	if err != nil {
		// No client-guessed fallback: a dead counter store fails the request.
		return "", err
	}
	return fmt.Sprintf("PL-%d-%05d", year, seq), nil
}

func (u *SequenceUseCase) GenerateOfferNo(ctx context.Context) (int64, error) {
	return u.counters.Next(ctx, counterKeyOfferNo)
}

func (u *SequenceUseCase) GenerateSaleNo(ctx context.Context) (int64, error) {
	return u.counters.Next(ctx, counterKeySaleNo)
}

func (u *SequenceUseCase) SyncOfferNo(ctx context.Context, min int64) error {
	return u.counters.Sync(ctx, counterKeyOfferNo, min)
}

func (u *SequenceUseCase) SyncSaleNo(ctx context.Context, min int64) error {
	return u.counters.Sync(ctx, counterKeySaleNo, min)
}
