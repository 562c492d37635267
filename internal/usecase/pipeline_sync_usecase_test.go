package usecase

import (
	"context"
	"errors"
	"testing"

	"crm_pipeline/internal/domain/entities"
	mock_interfaces "crm_pipeline/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type syncFixture struct {
	products *mock_interfaces.MockILineItemRepository
	licenses *mock_interfaces.MockILineItemRepository
	rentals  *mock_interfaces.MockILineItemRepository
	payments *mock_interfaces.MockILineItemRepository
	uc       *PipelineSyncUseCase
}

func newSyncFixture(ctrl *gomock.Controller) *syncFixture {
	f := &syncFixture{
		products: mock_interfaces.NewMockILineItemRepository(ctrl),
		licenses: mock_interfaces.NewMockILineItemRepository(ctrl),
		rentals:  mock_interfaces.NewMockILineItemRepository(ctrl),
		payments: mock_interfaces.NewMockILineItemRepository(ctrl),
	}
	f.uc = NewPipelineSyncUseCase(f.products, f.licenses, f.rentals, f.payments)
	return f
}

func TestPipelineSyncUseCase_SyncItems(t *testing.T) {
	t.Run("only present collections are touched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSyncFixture(ctrl)

		products := []entities.LineItem{{Name: "widget"}}
		set := entities.ItemSet{Products: &products}

		// Licenses, rentals and payments are absent from the set: no
		// BatchReplace expectation, so any call would fail the test.
		f.products.EXPECT().
			BatchReplace(gomock.Any(), "o-1", entities.ParentTypeOffer, "PL-2026-00001", products).
			Return(products, nil)

		bundle, err := f.uc.SyncItems(context.Background(), "o-1", entities.ParentTypeOffer, "PL-2026-00001", set)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bundle.Products) != 1 || bundle.Licenses != nil || bundle.Rentals != nil || bundle.Payments != nil {
			t.Fatalf("unexpected bundle: %+v", bundle)
		}
	})

	t.Run("present empty collection clears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSyncFixture(ctrl)

		empty := []entities.LineItem{}
		set := entities.ItemSet{Payments: &empty}

		f.payments.EXPECT().
			BatchReplace(gomock.Any(), "o-1", entities.ParentTypeOffer, "PL-2026-00001", empty).
			Return([]entities.LineItem{}, nil)

		bundle, err := f.uc.SyncItems(context.Background(), "o-1", entities.ParentTypeOffer, "PL-2026-00001", set)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bundle.Payments) != 0 {
			t.Fatalf("expected cleared payments, got %+v", bundle.Payments)
		}
	})

	t.Run("one failing store aborts the join", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSyncFixture(ctrl)

		products := []entities.LineItem{{Name: "widget"}}
		licenses := []entities.LineItem{{Name: "seat"}}
		set := entities.ItemSet{Products: &products, Licenses: &licenses}

		f.products.EXPECT().
			BatchReplace(gomock.Any(), "o-1", entities.ParentTypeOffer, "ref", products).
			Return(nil, errors.New("db")).MaxTimes(1)
		f.licenses.EXPECT().
			BatchReplace(gomock.Any(), "o-1", entities.ParentTypeOffer, "ref", licenses).
			Return(licenses, nil).MaxTimes(1)

		if _, err := f.uc.SyncItems(context.Background(), "o-1", entities.ParentTypeOffer, "ref", set); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPipelineSyncUseCase_GetAllItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSyncFixture(ctrl)

	f.products.EXPECT().FindByParent(gomock.Any(), "s-1", entities.ParentTypeSale).Return([]entities.LineItem{{Name: "p"}}, nil)
	f.licenses.EXPECT().FindByParent(gomock.Any(), "s-1", entities.ParentTypeSale).Return(nil, nil)
	f.rentals.EXPECT().FindByParent(gomock.Any(), "s-1", entities.ParentTypeSale).Return([]entities.LineItem{{Name: "r"}}, nil)
	f.payments.EXPECT().FindByParent(gomock.Any(), "s-1", entities.ParentTypeSale).Return(nil, nil)

	bundle, err := f.uc.GetAllItems(context.Background(), "s-1", entities.ParentTypeSale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundle.Products) != 1 || len(bundle.Rentals) != 1 {
		t.Fatalf("unexpected bundle: %+v", bundle)
	}
}

func TestPipelineSyncUseCase_DeleteAllItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSyncFixture(ctrl)

	f.products.EXPECT().DeleteByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(2, nil)
	f.licenses.EXPECT().DeleteByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(0, nil)
	f.rentals.EXPECT().DeleteByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(1, nil)
	f.payments.EXPECT().DeleteByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(3, nil)

	counts, err := f.uc.DeleteAllItems(context.Background(), "o-1", entities.ParentTypeOffer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.Products != 2 || counts.Licenses != 0 || counts.Rentals != 1 || counts.Payments != 3 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestPipelineSyncUseCase_CloneAllItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSyncFixture(ctrl)

	cloned := []entities.LineItem{{Name: "p", ParentID: "s-1", ParentType: entities.ParentTypeSale}}
	f.products.EXPECT().CloneForParent(gomock.Any(), "o-1", entities.ParentTypeOffer, "s-1", entities.ParentTypeSale, "ref").Return(cloned, nil)
	f.licenses.EXPECT().CloneForParent(gomock.Any(), "o-1", entities.ParentTypeOffer, "s-1", entities.ParentTypeSale, "ref").Return(nil, nil)
	f.rentals.EXPECT().CloneForParent(gomock.Any(), "o-1", entities.ParentTypeOffer, "s-1", entities.ParentTypeSale, "ref").Return(nil, nil)
	f.payments.EXPECT().CloneForParent(gomock.Any(), "o-1", entities.ParentTypeOffer, "s-1", entities.ParentTypeSale, "ref").Return(nil, nil)

	bundle, err := f.uc.CloneAllItems(context.Background(), "o-1", entities.ParentTypeOffer, "s-1", entities.ParentTypeSale, "ref")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bundle.Products) != 1 || bundle.Products[0].ParentID != "s-1" {
		t.Fatalf("unexpected bundle: %+v", bundle)
	}
}

func TestPipelineSyncUseCase_SaleItemsTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSyncFixture(ctrl)

	ids := []string{"s-1", "s-2"}
	f.products.EXPECT().AggregateSaleTotal(gomock.Any(), ids).Return(100.0, nil)
	f.licenses.EXPECT().AggregateSaleTotal(gomock.Any(), ids).Return(50.0, nil)
	f.rentals.EXPECT().AggregateSaleTotal(gomock.Any(), ids).Return(25.5, nil)
	f.payments.EXPECT().AggregateSaleTotal(gomock.Any(), ids).Return(0.0, nil)

	total, err := f.uc.SaleItemsTotal(context.Background(), ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 175.5 {
		t.Fatalf("expected 175.5, got %v", total)
	}
}
