package usecase

import (
	"context"
	"errors"
	"testing"

	"crm_pipeline/internal/domain/entities"
	mock_interfaces "crm_pipeline/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type totalsFixture struct {
	products *mock_interfaces.MockILineItemRepository
	licenses *mock_interfaces.MockILineItemRepository
	rentals  *mock_interfaces.MockILineItemRepository
	offers   *mock_interfaces.MockIOfferRepository
	sales    *mock_interfaces.MockISaleRepository
	uc       *TotalsUseCase
}

func newTotalsFixture(ctrl *gomock.Controller) *totalsFixture {
	f := &totalsFixture{
		products: mock_interfaces.NewMockILineItemRepository(ctrl),
		licenses: mock_interfaces.NewMockILineItemRepository(ctrl),
		rentals:  mock_interfaces.NewMockILineItemRepository(ctrl),
		offers:   mock_interfaces.NewMockIOfferRepository(ctrl),
		sales:    mock_interfaces.NewMockISaleRepository(ctrl),
	}
	f.uc = NewTotalsUseCase(f.products, f.licenses, f.rentals, f.offers, f.sales)
	return f
}

func TestTotalsUseCase_Calculate(t *testing.T) {
	t.Run("single currency breakdown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTotalsFixture(ctrl)

		product := entities.LineItem{Qty: 2, Price: 100, DiscountRate: 10, VatRate: 20}
		rental := entities.LineItem{Qty: 2, Price: 100, DiscountRate: 10, VatRate: 20, RentPeriod: 6}

		f.products.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return([]entities.LineItem{product}, nil)
		f.licenses.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, nil)
		f.rentals.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return([]entities.LineItem{rental}, nil)

		totals, err := f.uc.Calculate(context.Background(), "o-1", entities.ParentTypeOffer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals.Currencies) != 1 {
			t.Fatalf("expected one currency bucket, got %d", len(totals.Currencies))
		}
		tl := totals.Currencies[0]
		if tl.Currency != entities.CurrencyTL {
			t.Fatalf("expected tl default bucket, got %s", tl.Currency)
		}
		// product 180/20/36/216 + rental 1080/120/216/1296
		if tl.SubTotal != 1260 || tl.DiscountTotal != 140 || tl.TaxTotal != 252 || tl.GrandTotal != 1512 {
			t.Fatalf("unexpected bucket: %+v", tl)
		}
		if totals.OverallGrandTotal != 1512 {
			t.Fatalf("expected overall 1512, got %v", totals.OverallGrandTotal)
		}
	})

	t.Run("mixed currencies stay separate and overall adds them raw", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTotalsFixture(ctrl)

		usd := entities.LineItem{Qty: 1, Price: 100, Currency: entities.CurrencyUSD}
		eur := entities.LineItem{Qty: 1, Price: 200, Currency: entities.CurrencyEUR}

		f.products.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return([]entities.LineItem{usd}, nil)
		f.licenses.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return([]entities.LineItem{eur}, nil)
		f.rentals.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, nil)

		totals, err := f.uc.Calculate(context.Background(), "o-1", entities.ParentTypeOffer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals.Currencies) != 2 {
			t.Fatalf("expected two currency buckets, got %d", len(totals.Currencies))
		}
		// Sorted by code: eur before usd.
		if totals.Currencies[0].Currency != entities.CurrencyEUR || totals.Currencies[1].Currency != entities.CurrencyUSD {
			t.Fatalf("expected buckets sorted by currency code, got %+v", totals.Currencies)
		}
		// 100 usd + 200 eur summed without conversion.
		if totals.OverallGrandTotal != 300 {
			t.Fatalf("expected unconverted overall 300, got %v", totals.OverallGrandTotal)
		}
	})

	t.Run("store error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTotalsFixture(ctrl)

		f.products.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, errors.New("db")).MaxTimes(1)
		f.licenses.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, errors.New("db")).MaxTimes(1)
		f.rentals.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, nil).MaxTimes(1)

		if _, err := f.uc.Calculate(context.Background(), "o-1", entities.ParentTypeOffer); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestTotalsUseCase_RecalculateAndStore(t *testing.T) {
	t.Run("offer parent writes to offers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTotalsFixture(ctrl)

		f.products.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, nil)
		f.licenses.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, nil)
		f.rentals.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, nil)
		f.offers.EXPECT().UpdateTotals(gomock.Any(), "o-1", gomock.AssignableToTypeOf(entities.Totals{})).Return(nil)

		if _, err := f.uc.RecalculateAndStore(context.Background(), "o-1", entities.ParentTypeOffer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sale parent writes to sales", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTotalsFixture(ctrl)

		f.products.EXPECT().FindByParent(gomock.Any(), "s-1", entities.ParentTypeSale).Return(nil, nil)
		f.licenses.EXPECT().FindByParent(gomock.Any(), "s-1", entities.ParentTypeSale).Return(nil, nil)
		f.rentals.EXPECT().FindByParent(gomock.Any(), "s-1", entities.ParentTypeSale).Return(nil, nil)
		f.sales.EXPECT().UpdateTotals(gomock.Any(), "s-1", gomock.AssignableToTypeOf(entities.Totals{})).Return(nil)

		if _, err := f.uc.RecalculateAndStore(context.Background(), "s-1", entities.ParentTypeSale); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store write error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newTotalsFixture(ctrl)

		f.products.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, nil)
		f.licenses.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, nil)
		f.rentals.EXPECT().FindByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(nil, nil)
		f.offers.EXPECT().UpdateTotals(gomock.Any(), "o-1", gomock.Any()).Return(errors.New("db"))

		if _, err := f.uc.RecalculateAndStore(context.Background(), "o-1", entities.ParentTypeOffer); err == nil {
			t.Fatalf("expected error")
		}
	})
}
