package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"
	mock_interfaces "crm_pipeline/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type conversionFixture struct {
	leads     *mock_interfaces.MockILeadRepository
	offers    *mock_interfaces.MockIOfferRepository
	sales     *mock_interfaces.MockISaleRepository
	customers *mock_interfaces.MockICustomerService
	counters  *mock_interfaces.MockICounterRepository
	products  *mock_interfaces.MockILineItemRepository
	licenses  *mock_interfaces.MockILineItemRepository
	rentals   *mock_interfaces.MockILineItemRepository
	payments  *mock_interfaces.MockILineItemRepository
	uc        *ConversionUseCase
}

func newConversionFixture(ctrl *gomock.Controller) *conversionFixture {
	f := &conversionFixture{
		leads:     mock_interfaces.NewMockILeadRepository(ctrl),
		offers:    mock_interfaces.NewMockIOfferRepository(ctrl),
		sales:     mock_interfaces.NewMockISaleRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerService(ctrl),
		counters:  mock_interfaces.NewMockICounterRepository(ctrl),
		products:  mock_interfaces.NewMockILineItemRepository(ctrl),
		licenses:  mock_interfaces.NewMockILineItemRepository(ctrl),
		rentals:   mock_interfaces.NewMockILineItemRepository(ctrl),
		payments:  mock_interfaces.NewMockILineItemRepository(ctrl),
	}
	seq := NewSequenceUseCase(f.counters)
	seq.now = func() time.Time { return testNow }
	sync := NewPipelineSyncUseCase(f.products, f.licenses, f.rentals, f.payments)
	totals := NewTotalsUseCase(f.products, f.licenses, f.rentals, f.offers, f.sales)
	offerUC := NewOfferUseCase(f.offers, seq, sync, totals)
	offerUC.now = func() time.Time { return testNow }
	f.uc = NewConversionUseCase(f.leads, f.offers, f.sales, f.customers, offerUC, seq, sync, totals)
	f.uc.now = func() time.Time { return testNow }
	return f
}

func TestConversionUseCase_ConvertLead(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newConversionFixture(gomock.NewController(t))
		_, err := f.uc.ConvertLead(context.Background(), " ", OfferDraft{}, entities.Actor{})
		if !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		f.leads.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{}, nil)

		_, err := f.uc.ConvertLead(context.Background(), "l-1", OfferDraft{}, entities.Actor{})
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("converted and lost leads are rejected", func(t *testing.T) {
		for _, status := range []entities.LeadStatus{entities.LeadStatusConverted, entities.LeadStatusLost} {
			ctrl := gomock.NewController(t)
			f := newConversionFixture(ctrl)

			f.leads.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{ID: "l-1", Status: status}, nil)

			_, err := f.uc.ConvertLead(context.Background(), "l-1", OfferDraft{}, entities.Actor{})
			if !errors.Is(err, ErrLeadNotConvertible) {
				t.Fatalf("status %s: expected ErrLeadNotConvertible, got %v", status, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("qualified lead with linked customer converts and reuses the ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		lead := entities.Lead{ID: "l-1", Status: entities.LeadStatusQualified, CustomerID: "c-9", PipelineRef: "PL-2026-00042"}
		f.leads.EXPECT().GetByID(gomock.Any(), "l-1").Return(lead, nil)
		f.counters.EXPECT().Next(gomock.Any(), "offer-no").Return(int64(11), nil)
		f.offers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Offer) (entities.Offer, error) {
				if o.LeadID != "l-1" || o.CustomerID != "c-9" {
					t.Fatalf("unexpected linkage: %+v", o)
				}
				if o.PipelineRef != "PL-2026-00042" {
					t.Fatalf("expected the lead's ref reused, got %s", o.PipelineRef)
				}
				return o, nil
			},
		)
		f.leads.EXPECT().MarkConverted(gomock.Any(), "l-1", "").Return(lead, nil)

		offer, err := f.uc.ConvertLead(context.Background(), "l-1", OfferDraft{Title: "big deal"}, entities.Actor{ID: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if offer.No != 11 || offer.Title != "big deal" {
			t.Fatalf("unexpected offer: %+v", offer)
		}
	})

	t.Run("lead without customer gets a prospect created first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		lead := entities.Lead{ID: "l-1", Status: entities.LeadStatusContacted, Name: "Jo", CompanyName: "ACME", Phone: "555", Email: "jo@acme.test", PipelineRef: "ref"}
		f.leads.EXPECT().GetByID(gomock.Any(), "l-1").Return(lead, nil)
		f.customers.EXPECT().Create(gomock.Any(), interfaces.CustomerDraft{
			Name: "Jo", CompanyName: "ACME", Phone: "555", Email: "jo@acme.test", IsProspect: true,
		}).Return(interfaces.CustomerRef{ID: "c-new"}, nil)
		f.counters.EXPECT().Next(gomock.Any(), "offer-no").Return(int64(1), nil)
		f.offers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Offer) (entities.Offer, error) {
				if o.CustomerID != "c-new" {
					t.Fatalf("expected new prospect linked, got %q", o.CustomerID)
				}
				return o, nil
			},
		)
		f.leads.EXPECT().MarkConverted(gomock.Any(), "l-1", "c-new").Return(lead, nil)

		if _, err := f.uc.ConvertLead(context.Background(), "l-1", OfferDraft{}, entities.Actor{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestConversionUseCase_RevertLead(t *testing.T) {
	t.Run("no offer for lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		f.leads.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{ID: "l-1"}, nil)
		f.offers.EXPECT().GetLatestByLeadID(gomock.Any(), "l-1").Return(entities.Offer{}, nil)

		_, err := f.uc.RevertLead(context.Background(), "l-1")
		if !errors.Is(err, ErrLeadOfferNotFound) {
			t.Fatalf("expected ErrLeadOfferNotFound, got %v", err)
		}
	})

	t.Run("offer already became a sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		f.leads.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{ID: "l-1"}, nil)
		f.offers.EXPECT().GetLatestByLeadID(gomock.Any(), "l-1").Return(entities.Offer{ID: "o-1", Status: entities.OfferStatusConverted}, nil)

		_, err := f.uc.RevertLead(context.Background(), "l-1")
		if !errors.Is(err, ErrOfferAlreadyConverted) {
			t.Fatalf("expected ErrOfferAlreadyConverted, got %v", err)
		}
	})

	t.Run("deletes the offer cascade and requalifies the lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		f.leads.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{ID: "l-1", Status: entities.LeadStatusConverted}, nil)
		f.offers.EXPECT().GetLatestByLeadID(gomock.Any(), "l-1").Return(entities.Offer{ID: "o-1", Status: entities.OfferStatusDraft}, nil)

		f.offers.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Offer{ID: "o-1"}, nil)
		f.products.EXPECT().DeleteByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(1, nil)
		f.licenses.EXPECT().DeleteByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(0, nil)
		f.rentals.EXPECT().DeleteByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(0, nil)
		f.payments.EXPECT().DeleteByParent(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(0, nil)
		f.offers.EXPECT().Delete(gomock.Any(), "o-1").Return(nil)

		f.leads.EXPECT().SetStatus(gomock.Any(), "l-1", entities.LeadStatusQualified).
			Return(entities.Lead{ID: "l-1", Status: entities.LeadStatusQualified}, nil)

		lead, err := f.uc.RevertLead(context.Background(), "l-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lead.Status != entities.LeadStatusQualified {
			t.Fatalf("expected qualified, got %s", lead.Status)
		}
	})
}

func TestConversionUseCase_ConvertOffer(t *testing.T) {
	t.Run("already converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		f.offers.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Offer{ID: "o-1", ConversionInfo: entities.ConversionInfo{Converted: true}}, nil)

		_, err := f.uc.ConvertOffer(context.Background(), "o-1", entities.Actor{})
		if !errors.Is(err, ErrOfferAlreadyConverted) {
			t.Fatalf("expected ErrOfferAlreadyConverted, got %v", err)
		}
	})

	t.Run("creates the sale, clones items and stamps the offer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		offer := entities.Offer{ID: "o-1", LeadID: "l-1", CustomerID: "c-1", PipelineRef: "ref", Title: "deal", Status: entities.OfferStatusApproved, CreatedAt: testNow.Add(-time.Hour)}
		f.offers.EXPECT().GetByID(gomock.Any(), "o-1").Return(offer, nil)

		f.counters.EXPECT().Next(gomock.Any(), "sale-no").Return(int64(3), nil)
		f.sales.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale) (entities.Sale, error) {
				if s.OfferID != "o-1" || s.LeadID != "l-1" || s.CustomerID != "c-1" {
					t.Fatalf("unexpected linkage: %+v", s)
				}
				if s.No != 3 || s.Status != entities.SaleStatusCreated || s.PipelineRef != "ref" {
					t.Fatalf("unexpected sale: %+v", s)
				}
				return s, nil
			},
		)

		for _, repo := range []*mock_interfaces.MockILineItemRepository{f.products, f.licenses, f.rentals, f.payments} {
			repo.EXPECT().CloneForParent(gomock.Any(), "o-1", entities.ParentTypeOffer, gomock.Any(), entities.ParentTypeSale, "ref").Return(nil, nil)
		}

		f.products.EXPECT().FindByParent(gomock.Any(), gomock.Any(), entities.ParentTypeSale).Return(nil, nil)
		f.licenses.EXPECT().FindByParent(gomock.Any(), gomock.Any(), entities.ParentTypeSale).Return(nil, nil)
		f.rentals.EXPECT().FindByParent(gomock.Any(), gomock.Any(), entities.ParentTypeSale).Return(nil, nil)
		f.sales.EXPECT().UpdateTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		f.offers.EXPECT().SetConverted(gomock.Any(), "o-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, info entities.ConversionInfo, entry *entities.StageEntry) (entities.Offer, error) {
				if !info.Converted || info.SaleID == "" || info.ConvertedBy != "u-1" {
					t.Fatalf("unexpected info: %+v", info)
				}
				if entry == nil || entry.FromStatus != "approved" || entry.ToStatus != "converted" {
					t.Fatalf("unexpected entry: %+v", entry)
				}
				return entities.Offer{ID: id}, nil
			},
		)

		sale, err := f.uc.ConvertOffer(context.Background(), "o-1", entities.Actor{ID: "u-1", Name: "User One"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.No != 3 {
			t.Fatalf("unexpected sale: %+v", sale)
		}
	})

	t.Run("duplicate sale no resyncs and retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		offer := entities.Offer{ID: "o-1", PipelineRef: "ref", Status: entities.OfferStatusApproved}
		f.offers.EXPECT().GetByID(gomock.Any(), "o-1").Return(offer, nil)

		gomock.InOrder(
			f.counters.EXPECT().Next(gomock.Any(), "sale-no").Return(int64(1), nil),
			f.sales.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Sale{}, entities.ErrDuplicateNo),
			f.sales.EXPECT().MaxNo(gomock.Any()).Return(int64(8), nil),
			f.counters.EXPECT().Sync(gomock.Any(), "sale-no", int64(8)).Return(nil),
			f.counters.EXPECT().Next(gomock.Any(), "sale-no").Return(int64(9), nil),
			f.sales.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, s entities.Sale) (entities.Sale, error) { return s, nil },
			),
		)

		for _, repo := range []*mock_interfaces.MockILineItemRepository{f.products, f.licenses, f.rentals, f.payments} {
			repo.EXPECT().CloneForParent(gomock.Any(), "o-1", entities.ParentTypeOffer, gomock.Any(), entities.ParentTypeSale, "ref").Return(nil, nil)
		}
		f.products.EXPECT().FindByParent(gomock.Any(), gomock.Any(), entities.ParentTypeSale).Return(nil, nil)
		f.licenses.EXPECT().FindByParent(gomock.Any(), gomock.Any(), entities.ParentTypeSale).Return(nil, nil)
		f.rentals.EXPECT().FindByParent(gomock.Any(), gomock.Any(), entities.ParentTypeSale).Return(nil, nil)
		f.sales.EXPECT().UpdateTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.offers.EXPECT().SetConverted(gomock.Any(), "o-1", gomock.Any(), gomock.Any()).Return(entities.Offer{ID: "o-1"}, nil)

		sale, err := f.uc.ConvertOffer(context.Background(), "o-1", entities.Actor{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.No != 9 {
			t.Fatalf("expected retried no 9, got %d", sale.No)
		}
	})
}

func TestConversionUseCase_RevertOffer(t *testing.T) {
	t.Run("not converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		f.offers.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Offer{ID: "o-1"}, nil)

		_, err := f.uc.RevertOffer(context.Background(), "o-1", entities.Actor{})
		if !errors.Is(err, ErrOfferNotConverted) {
			t.Fatalf("expected ErrOfferNotConverted, got %v", err)
		}
	})

	t.Run("clears conversion and moves back to approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		offer := entities.Offer{ID: "o-1", Status: entities.OfferStatusConverted, ConversionInfo: entities.ConversionInfo{Converted: true, SaleID: "s-1"}}
		f.offers.EXPECT().GetByID(gomock.Any(), "o-1").Return(offer, nil)
		f.offers.EXPECT().ClearConversion(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, entry *entities.StageEntry) (entities.Offer, error) {
				if entry == nil || entry.FromStatus != "converted" || entry.ToStatus != "approved" {
					t.Fatalf("unexpected entry: %+v", entry)
				}
				return entities.Offer{ID: id, Status: entities.OfferStatusApproved}, nil
			},
		)

		reverted, err := f.uc.RevertOffer(context.Background(), "o-1", entities.Actor{ID: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reverted.Status != entities.OfferStatusApproved {
			t.Fatalf("unexpected offer: %+v", reverted)
		}
	})

	t.Run("no entry when the offer already shows approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newConversionFixture(ctrl)

		offer := entities.Offer{ID: "o-1", Status: entities.OfferStatusApproved, ConversionInfo: entities.ConversionInfo{Converted: true}}
		f.offers.EXPECT().GetByID(gomock.Any(), "o-1").Return(offer, nil)
		f.offers.EXPECT().ClearConversion(gomock.Any(), "o-1", nil).Return(offer, nil)

		if _, err := f.uc.RevertOffer(context.Background(), "o-1", entities.Actor{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
