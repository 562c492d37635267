package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "crm_pipeline/internal/adapter/http/dto/request"
	response "crm_pipeline/internal/adapter/http/dto/response"
	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase"
	"crm_pipeline/pkg"
)

var (
	errInvalidOfferPayload = pkg.NewDomainErrorSimple("INVALID_OFFER_INPUT", "Invalid offer payload", http.StatusBadRequest)
)

// OfferHandler handles HTTP requests for offers, including the
// Offer → Sale conversion endpoints.

type OfferHandler struct {
	offers      usecase.IOfferUseCase
	conversions usecase.IConversionUseCase
	totals      usecase.ITotalsUseCase
}

func NewOfferHandler(offers usecase.IOfferUseCase, conversions usecase.IConversionUseCase, totals usecase.ITotalsUseCase) *OfferHandler {
	return &OfferHandler{offers: offers, conversions: conversions, totals: totals}
}

// CreateOffer creates an offer with an auto-assigned no and, when the
// payload carries item arrays, replaces those collections in the same call.
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var payload request.OfferCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}

	result, err := h.offers.Create(c.Request.Context(), payload.ToDraft(), payload.ItemSet(), actorFrom(c))
	if err != nil {
		if result.Offer.ID != "" {
			// The parent write landed but the item sync did not; surface the
			// partial result so the caller can retry the sync.
			c.JSON(http.StatusMultiStatus, response.FromOfferWriteResult(result))
			return
		}
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOfferWriteResult(result))
}

func (h *OfferHandler) GetOffer(c *gin.Context) {
	offer, bundle, err := h.offers.GetWithItems(c.Request.Context(), c.Param("offer_id"))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OfferWithItemsResponse{
		Offer: response.FromOffer(offer),
		Items: response.FromItemBundle(bundle),
	})
}

func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	var payload request.OfferUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}

	result, err := h.offers.Update(c.Request.Context(), c.Param("offer_id"), payload.ToPatch(), payload.ItemSet(), actorFrom(c))
	if err != nil {
		if result.Offer.ID != "" {
			c.JSON(http.StatusMultiStatus, response.FromOfferWriteResult(result))
			return
		}
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOfferWriteResult(result))
}

// ChangeOfferStatus moves the offer to a new stage, appending a stage
// history entry. Setting the current status again is a no-op.
func (h *OfferHandler) ChangeOfferStatus(c *gin.Context) {
	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}

	offer, err := h.offers.ChangeStatus(c.Request.Context(), c.Param("offer_id"), entities.OfferStatus(payload.Status), actorFrom(c))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOffer(offer))
}

func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	if err := h.offers.Delete(c.Request.Context(), c.Param("offer_id")); err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOfferTotals recomputes totals from the live line items and caches the
// result on the offer.
func (h *OfferHandler) GetOfferTotals(c *gin.Context) {
	totals, err := h.totals.RecalculateAndStore(c.Request.Context(), c.Param("offer_id"), entities.ParentTypeOffer)
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// ConvertOffer promotes the offer to a sale, cloning its line items.
func (h *OfferHandler) ConvertOffer(c *gin.Context) {
	sale, err := h.conversions.ConvertOffer(c.Request.Context(), c.Param("offer_id"), actorFrom(c))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSale(sale))
}

// RevertOfferConversion clears the conversion stamp and moves the offer
// back to approved. The sale created earlier is left untouched.
func (h *OfferHandler) RevertOfferConversion(c *gin.Context) {
	offer, err := h.conversions.RevertOffer(c.Request.Context(), c.Param("offer_id"), actorFrom(c))
	if err != nil {
		appErr := mapOfferError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOffer(offer))
}

func mapOfferError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOfferID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOfferNotFound), errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferAlreadyConverted):
		return pkg.NewDomainErrorSimple("OFFER_ALREADY_CONVERTED", "Offer is already converted", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferNotConverted):
		return pkg.NewDomainErrorSimple("OFFER_NOT_CONVERTED", "Offer is not converted", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferCreateFailed), errors.Is(err, usecase.ErrSaleCreateFailed):
		return pkg.NewDomainError("CREATE_FAILED", "Could not assign a unique number", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
