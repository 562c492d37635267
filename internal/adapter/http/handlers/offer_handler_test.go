package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm_pipeline/internal/adapter/http/handlers/mocks"
	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOfferRouter(h *OfferHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/offers", h.CreateOffer)
	r.GET("/v1/offers/:offer_id", h.GetOffer)
	r.PUT("/v1/offers/:offer_id", h.UpdateOffer)
	r.PATCH("/v1/offers/:offer_id/status", h.ChangeOfferStatus)
	r.DELETE("/v1/offers/:offer_id", h.DeleteOffer)
	r.GET("/v1/offers/:offer_id/totals", h.GetOfferTotals)
	r.POST("/v1/offers/:offer_id/convert", h.ConvertOffer)
	r.POST("/v1/offers/:offer_id/revert-conversion", h.RevertOfferConversion)
	return r
}

func TestOfferHandler_CreateOffer(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOfferHandler(mocks.NewMockIOfferUseCase(ctrl), mocks.NewMockIConversionUseCase(ctrl), mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with actor from headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc, mocks.NewMockIConversionUseCase(ctrl), mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), entities.Actor{ID: "u-1", Name: "User One"}).DoAndReturn(
			func(_ context.Context, draft usecase.OfferDraft, items entities.ItemSet, _ entities.Actor) (usecase.OfferWriteResult, error) {
				if draft.Title != "deal" {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				if items.Products == nil || len(*items.Products) != 1 {
					t.Fatalf("expected products present, got %+v", items)
				}
				if items.Licenses != nil {
					t.Fatalf("expected licenses absent")
				}
				return usecase.OfferWriteResult{Offer: entities.Offer{ID: "o-1", No: 7}, ItemsSynced: true}, nil
			},
		)

		body := `{"title":"deal","pipeline_ref":"ref","products":[{"name":"widget","qty":1,"price":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/offers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		req.Header.Set("X-User-Name", "User One")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Offer struct {
				ID string `json:"id"`
				No int64  `json:"no"`
			} `json:"offer"`
			ItemsSynced bool `json:"items_synced"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Offer.ID != "o-1" || resp.Offer.No != 7 || !resp.ItemsSynced {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("partial write returns 207", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc, mocks.NewMockIConversionUseCase(ctrl), mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.OfferWriteResult{Offer: entities.Offer{ID: "o-1"}, ItemsSynced: false}, errors.New("sync failed"))

		req := httptest.NewRequest(http.MethodPost, "/v1/offers", bytes.NewBufferString(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusMultiStatus {
			t.Fatalf("expected 207, got %d", w.Code)
		}
	})

	t.Run("create exhaustion maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc, mocks.NewMockIConversionUseCase(ctrl), mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.OfferWriteResult{}, usecase.ErrOfferCreateFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers", bytes.NewBufferString(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOfferHandler_GetOffer(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc, mocks.NewMockIConversionUseCase(ctrl), mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		uc.EXPECT().GetWithItems(gomock.Any(), "o-404").Return(entities.Offer{}, usecase.ItemBundle{}, usecase.ErrOfferNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/offers/o-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with item bundle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc, mocks.NewMockIConversionUseCase(ctrl), mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		bundle := usecase.ItemBundle{Products: []entities.LineItem{{ID: "p-1", Name: "widget"}}}
		uc.EXPECT().GetWithItems(gomock.Any(), "o-1").Return(entities.Offer{ID: "o-1", Status: entities.OfferStatusDraft}, bundle, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/offers/o-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Items struct {
				Products []struct {
					ID string `json:"id"`
				} `json:"products"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if len(resp.Items.Products) != 1 || resp.Items.Products[0].ID != "p-1" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestOfferHandler_ChangeOfferStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOfferHandler(mocks.NewMockIOfferUseCase(ctrl), mocks.NewMockIConversionUseCase(ctrl), mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		req := httptest.NewRequest(http.MethodPatch, "/v1/offers/o-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOfferUseCase(ctrl)
		h := NewOfferHandler(uc, mocks.NewMockIConversionUseCase(ctrl), mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		uc.EXPECT().ChangeStatus(gomock.Any(), "o-1", entities.OfferStatusApproved, gomock.Any()).
			Return(entities.Offer{ID: "o-1", Status: entities.OfferStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/offers/o-1/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOfferHandler_DeleteOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOfferUseCase(ctrl)
	h := NewOfferHandler(uc, mocks.NewMockIConversionUseCase(ctrl), mocks.NewMockITotalsUseCase(ctrl))
	r := newOfferRouter(h)

	uc.EXPECT().Delete(gomock.Any(), "o-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/offers/o-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestOfferHandler_GetOfferTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	totals := mocks.NewMockITotalsUseCase(ctrl)
	h := NewOfferHandler(mocks.NewMockIOfferUseCase(ctrl), mocks.NewMockIConversionUseCase(ctrl), totals)
	r := newOfferRouter(h)

	totals.EXPECT().RecalculateAndStore(gomock.Any(), "o-1", entities.ParentTypeOffer).Return(entities.Totals{
		Currencies:        []entities.CurrencyTotals{{Currency: entities.CurrencyTL, GrandTotal: 216}},
		OverallGrandTotal: 216,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/offers/o-1/totals", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		OverallGrandTotal float64 `json:"overall_grand_total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.OverallGrandTotal != 216 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestOfferHandler_ConvertOffer(t *testing.T) {
	t.Run("already converted maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		conversions := mocks.NewMockIConversionUseCase(ctrl)
		h := NewOfferHandler(mocks.NewMockIOfferUseCase(ctrl), conversions, mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		conversions.EXPECT().ConvertOffer(gomock.Any(), "o-1", gomock.Any()).
			Return(entities.Sale{}, usecase.ErrOfferAlreadyConverted)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers/o-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns the new sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		conversions := mocks.NewMockIConversionUseCase(ctrl)
		h := NewOfferHandler(mocks.NewMockIOfferUseCase(ctrl), conversions, mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		conversions.EXPECT().ConvertOffer(gomock.Any(), "o-1", entities.Actor{ID: "u-1"}).
			Return(entities.Sale{ID: "s-1", No: 3, OfferID: "o-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers/o-1/convert", nil)
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp struct {
			ID      string `json:"id"`
			OfferID string `json:"offer_id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.ID != "s-1" || resp.OfferID != "o-1" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestOfferHandler_RevertOfferConversion(t *testing.T) {
	t.Run("not converted maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		conversions := mocks.NewMockIConversionUseCase(ctrl)
		h := NewOfferHandler(mocks.NewMockIOfferUseCase(ctrl), conversions, mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		conversions.EXPECT().RevertOffer(gomock.Any(), "o-1", gomock.Any()).
			Return(entities.Offer{}, usecase.ErrOfferNotConverted)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers/o-1/revert-conversion", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		conversions := mocks.NewMockIConversionUseCase(ctrl)
		h := NewOfferHandler(mocks.NewMockIOfferUseCase(ctrl), conversions, mocks.NewMockITotalsUseCase(ctrl))
		r := newOfferRouter(h)

		conversions.EXPECT().RevertOffer(gomock.Any(), "o-1", gomock.Any()).
			Return(entities.Offer{ID: "o-1", Status: entities.OfferStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers/o-1/revert-conversion", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
