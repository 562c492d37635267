package usecase

import (
	"context"
	"sort"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// ITotalsUseCase computes per-currency and overall financial totals for a
// parent document.
//
// Payments are excluded: they represent money received, not money owed.
// Overall fields sum across currencies without conversion (see
// entities.Totals).

type ITotalsUseCase interface {
	Calculate(ctx context.Context, parentID string, parentType entities.ParentType) (entities.Totals, error)
	RecalculateAndStore(ctx context.Context, parentID string, parentType entities.ParentType) (entities.Totals, error)
}

type TotalsUseCase struct {
	products interfaces.ILineItemRepository
	licenses interfaces.ILineItemRepository
	rentals  interfaces.ILineItemRepository
	offers   interfaces.IOfferRepository
	sales    interfaces.ISaleRepository
}

var _ ITotalsUseCase = (*TotalsUseCase)(nil)

func NewTotalsUseCase(products, licenses, rentals interfaces.ILineItemRepository, offers interfaces.IOfferRepository, sales interfaces.ISaleRepository) *TotalsUseCase {
	return &TotalsUseCase{products: products, licenses: licenses, rentals: rentals, offers: offers, sales: sales}
}

func (u *TotalsUseCase) Calculate(ctx context.Context, parentID string, parentType entities.ParentType) (entities.Totals, error) {
	var products, licenses, rentals []entities.LineItem
	g, gctx := errgroup.WithContext(ctx)
	fetch := func(repo interfaces.ILineItemRepository, dst *[]entities.LineItem) func() error {
		return func() error {
			items, err := repo.FindByParent(gctx, parentID, parentType)
			if err != nil {
				return err
			}
			*dst = items
			return nil
		}
	}
	g.Go(fetch(u.products, &products))
	g.Go(fetch(u.licenses, &licenses))
	g.Go(fetch(u.rentals, &rentals))
	if err := g.Wait(); err != nil {
		return entities.Totals{}, err
	}

	buckets := map[entities.Currency]*entities.CurrencyTotals{}
	accumulate := func(items []entities.LineItem, kind entities.ItemKind) {
		for _, it := range items {
			sub, discount, tax, grand := it.Breakdown(kind)
			cur := it.EffectiveCurrency()
			b, ok := buckets[cur]
			if !ok {
				b = &entities.CurrencyTotals{Currency: cur}
				buckets[cur] = b
			}
			b.SubTotal += sub
			b.DiscountTotal += discount
			b.TaxTotal += tax
			b.GrandTotal += grand
		}
	}
	accumulate(products, entities.ItemKindProduct)
	accumulate(licenses, entities.ItemKindLicense)
	accumulate(rentals, entities.ItemKindRental)

	totals := entities.Totals{Currencies: make([]entities.CurrencyTotals, 0, len(buckets))}
	for _, b := range buckets {
		totals.Currencies = append(totals.Currencies, *b)
		totals.OverallSubTotal += b.SubTotal
		totals.OverallDiscountTotal += b.DiscountTotal
		totals.OverallTaxTotal += b.TaxTotal
		totals.OverallGrandTotal += b.GrandTotal
	}
	sort.Slice(totals.Currencies, func(i, j int) bool {
		return totals.Currencies[i].Currency < totals.Currencies[j].Currency
	})
	return totals, nil
}

// RecalculateAndStore computes totals and caches them on the parent.
func (u *TotalsUseCase) RecalculateAndStore(ctx context.Context, parentID string, parentType entities.ParentType) (entities.Totals, error) {
	totals, err := u.Calculate(ctx, parentID, parentType)
	if err != nil {
		return entities.Totals{}, err
	}
	switch parentType {
	case entities.ParentTypeSale:
		err = u.sales.UpdateTotals(ctx, parentID, totals)
	default:
		err = u.offers.UpdateTotals(ctx, parentID, totals)
	}
	if err != nil {
		return entities.Totals{}, err
	}
	return totals, nil
}
