package usecase

import (
	"context"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// ItemBundle groups the items of all four sub-collections for one parent.
type ItemBundle struct {
	Products []entities.LineItem
	Licenses []entities.LineItem
	Rentals  []entities.LineItem
	Payments []entities.LineItem
}

// DeleteCounts reports how many items each store removed in a cascade.
type DeleteCounts struct {
	Products int
	Licenses int
	Rentals  int
	Payments int
}

// IPipelineSyncUseCase orchestrates the four line-item stores as one
// logical unit. The four per-store calls of every method are independent
// and fan out concurrently; a failure in any one aborts the join, but
// stores that already completed are not rolled back.
//
// SyncItems honors the dual-write presence contract: only the ItemSet
// fields that are non-nil are replaced (an empty slice clears that
// collection); nil fields are left untouched.

type IPipelineSyncUseCase interface {
	GetAllItems(ctx context.Context, parentID string, parentType entities.ParentType) (ItemBundle, error)
	DeleteAllItems(ctx context.Context, parentID string, parentType entities.ParentType) (DeleteCounts, error)
	CloneAllItems(ctx context.Context, sourceParentID string, sourceType entities.ParentType, targetParentID string, targetType entities.ParentType, pipelineRef string) (ItemBundle, error)
	SyncItems(ctx context.Context, parentID string, parentType entities.ParentType, pipelineRef string, set entities.ItemSet) (ItemBundle, error)
	SaleItemsTotal(ctx context.Context, parentIDs []string) (float64, error)
}

type PipelineSyncUseCase struct {
	products interfaces.ILineItemRepository
	licenses interfaces.ILineItemRepository
	rentals  interfaces.ILineItemRepository
	payments interfaces.ILineItemRepository
}

var _ IPipelineSyncUseCase = (*PipelineSyncUseCase)(nil)

func NewPipelineSyncUseCase(products, licenses, rentals, payments interfaces.ILineItemRepository) *PipelineSyncUseCase {
	return &PipelineSyncUseCase{products: products, licenses: licenses, rentals: rentals, payments: payments}
}

func (u *PipelineSyncUseCase) GetAllItems(ctx context.Context, parentID string, parentType entities.ParentType) (ItemBundle, error) {
	var bundle ItemBundle
	g, ctx := errgroup.WithContext(ctx)
	fetch := func(repo interfaces.ILineItemRepository, dst *[]entities.LineItem) func() error {
		return func() error {
			items, err := repo.FindByParent(ctx, parentID, parentType)
			if err != nil {
				return err
			}
			*dst = items
			return nil
		}
	}
	g.Go(fetch(u.products, &bundle.Products))
	g.Go(fetch(u.licenses, &bundle.Licenses))
	g.Go(fetch(u.rentals, &bundle.Rentals))
	g.Go(fetch(u.payments, &bundle.Payments))
	if err := g.Wait(); err != nil {
		return ItemBundle{}, err
	}
	return bundle, nil
}

func (u *PipelineSyncUseCase) DeleteAllItems(ctx context.Context, parentID string, parentType entities.ParentType) (DeleteCounts, error) {
	var counts DeleteCounts
	g, ctx := errgroup.WithContext(ctx)
	del := func(repo interfaces.ILineItemRepository, dst *int) func() error {
		return func() error {
			n, err := repo.DeleteByParent(ctx, parentID, parentType)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		}
	}
	g.Go(del(u.products, &counts.Products))
	g.Go(del(u.licenses, &counts.Licenses))
	g.Go(del(u.rentals, &counts.Rentals))
	g.Go(del(u.payments, &counts.Payments))
	if err := g.Wait(); err != nil {
		return DeleteCounts{}, err
	}
	return counts, nil
}

func (u *PipelineSyncUseCase) CloneAllItems(ctx context.Context, sourceParentID string, sourceType entities.ParentType, targetParentID string, targetType entities.ParentType, pipelineRef string) (ItemBundle, error) {
	var bundle ItemBundle
	g, ctx := errgroup.WithContext(ctx)
	clone := func(repo interfaces.ILineItemRepository, dst *[]entities.LineItem) func() error {
		return func() error {
			items, err := repo.CloneForParent(ctx, sourceParentID, sourceType, targetParentID, targetType, pipelineRef)
			if err != nil {
				return err
			}
			*dst = items
			return nil
		}
	}
	g.Go(clone(u.products, &bundle.Products))
	g.Go(clone(u.licenses, &bundle.Licenses))
	g.Go(clone(u.rentals, &bundle.Rentals))
	g.Go(clone(u.payments, &bundle.Payments))
	if err := g.Wait(); err != nil {
		return ItemBundle{}, err
	}
	return bundle, nil
}

func (u *PipelineSyncUseCase) SyncItems(ctx context.Context, parentID string, parentType entities.ParentType, pipelineRef string, set entities.ItemSet) (ItemBundle, error) {
	var bundle ItemBundle
	g, ctx := errgroup.WithContext(ctx)
	replace := func(repo interfaces.ILineItemRepository, src *[]entities.LineItem, dst *[]entities.LineItem) func() error {
		return func() error {
			items, err := repo.BatchReplace(ctx, parentID, parentType, pipelineRef, *src)
			if err != nil {
				return err
			}
			*dst = items
			return nil
		}
	}
	if set.Products != nil {
		g.Go(replace(u.products, set.Products, &bundle.Products))
	}
	if set.Licenses != nil {
		g.Go(replace(u.licenses, set.Licenses, &bundle.Licenses))
	}
	if set.Rentals != nil {
		g.Go(replace(u.rentals, set.Rentals, &bundle.Rentals))
	}
	if set.Payments != nil {
		g.Go(replace(u.payments, set.Payments, &bundle.Payments))
	}
	if err := g.Wait(); err != nil {
		return ItemBundle{}, err
	}
	return bundle, nil
}

// SaleItemsTotal sums the cached grand totals of sale-owned items across the
// four stores. Reporting only.
func (u *PipelineSyncUseCase) SaleItemsTotal(ctx context.Context, parentIDs []string) (float64, error) {
	sums := make([]float64, 4)
	repos := []interfaces.ILineItemRepository{u.products, u.licenses, u.rentals, u.payments}
	g, ctx := errgroup.WithContext(ctx)
	for i, repo := range repos {
		g.Go(func() error {
			total, err := repo.AggregateSaleTotal(ctx, parentIDs)
			if err != nil {
				return err
			}
			sums[i] = total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return sums[0] + sums[1] + sums[2] + sums[3], nil
}
