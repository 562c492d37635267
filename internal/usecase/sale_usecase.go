package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"
)

var (
	ErrInvalidSaleID = errors.New("invalid sale id")
	ErrSaleNotFound  = errors.New("sale not found")
)

// SalePatch is a partial sale update. Nil fields are left untouched.
type SalePatch struct {
	Title      *string
	CustomerID *string
	Status     *entities.SaleStatus
}

// SaleWriteResult mirrors OfferWriteResult for the sale side of the
// two-phase write.
type SaleWriteResult struct {
	Sale        entities.Sale
	Items       ItemBundle
	ItemsSynced bool
}

// ISaleUseCase covers the sale surface. Sales are created by the conversion
// engine only; here they can be read, patched and removed.

type ISaleUseCase interface {
	GetWithItems(ctx context.Context, id string) (entities.Sale, ItemBundle, error)
	Update(ctx context.Context, id string, patch SalePatch, items entities.ItemSet, actor entities.Actor) (SaleWriteResult, error)
	Delete(ctx context.Context, id string) error
}

type SaleUseCase struct {
	sales  interfaces.ISaleRepository
	sync   IPipelineSyncUseCase
	totals ITotalsUseCase
	now    func() time.Time
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(sales interfaces.ISaleRepository, sync IPipelineSyncUseCase, totals ITotalsUseCase) *SaleUseCase {
	return &SaleUseCase{sales: sales, sync: sync, totals: totals, now: time.Now}
}

func (u *SaleUseCase) GetWithItems(ctx context.Context, id string) (entities.Sale, ItemBundle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ItemBundle{}, ErrInvalidSaleID
	}
	sale, err := u.sales.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, ItemBundle{}, err
	}
	if sale.ID == "" {
		return entities.Sale{}, ItemBundle{}, ErrSaleNotFound
	}
	bundle, err := u.sync.GetAllItems(ctx, sale.ID, entities.ParentTypeSale)
	if err != nil {
		return entities.Sale{}, ItemBundle{}, err
	}
	return sale, bundle, nil
}

func (u *SaleUseCase) Update(ctx context.Context, id string, patch SalePatch, items entities.ItemSet, actor entities.Actor) (SaleWriteResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SaleWriteResult{}, ErrInvalidSaleID
	}
	sale, err := u.sales.GetByID(ctx, id)
	if err != nil {
		return SaleWriteResult{}, err
	}
	if sale.ID == "" {
		return SaleWriteResult{}, ErrSaleNotFound
	}

	var entry *entities.StageEntry
	if patch.Status != nil && *patch.Status != sale.Status {
		e := sale.NextStageEntry(*patch.Status, actor.ID, u.now().UTC())
		entry = &e
		sale.Status = *patch.Status
	}
	if patch.Title != nil {
		sale.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.CustomerID != nil {
		sale.CustomerID = strings.TrimSpace(*patch.CustomerID)
	}
	sale.UpdatedAt = u.now().UTC()

	updated, err := u.sales.Update(ctx, sale, entry)
	if err != nil {
		return SaleWriteResult{}, err
	}
	if updated.ID == "" {
		return SaleWriteResult{}, ErrSaleNotFound
	}

	result := SaleWriteResult{Sale: updated}
	if items == (entities.ItemSet{}) {
		result.ItemsSynced = true
		return result, nil
	}
	bundle, err := u.sync.SyncItems(ctx, updated.ID, entities.ParentTypeSale, updated.PipelineRef, items)
	if err != nil {
		return result, err
	}
	result.Items = bundle
	result.ItemsSynced = true

	totals, err := u.totals.RecalculateAndStore(ctx, updated.ID, entities.ParentTypeSale)
	if err != nil {
		return result, err
	}
	result.Sale.Totals = &totals
	return result, nil
}

// Delete cascades items first, then the sale, same ordering rule as offers.
func (u *SaleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSaleID
	}
	sale, err := u.sales.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale.ID == "" {
		return ErrSaleNotFound
	}
	if _, err := u.sync.DeleteAllItems(ctx, sale.ID, entities.ParentTypeSale); err != nil {
		return err
	}
	return u.sales.Delete(ctx, sale.ID)
}
