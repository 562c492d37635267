package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	request "crm_pipeline/internal/adapter/http/dto/request"
	response "crm_pipeline/internal/adapter/http/dto/response"
	"crm_pipeline/internal/usecase"
	"crm_pipeline/pkg"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
)

// LeadHandler exposes the Lead → Offer side of the conversion engine.

type LeadHandler struct {
	conversions usecase.IConversionUseCase
}

func NewLeadHandler(conversions usecase.IConversionUseCase) *LeadHandler {
	return &LeadHandler{conversions: conversions}
}

// ConvertLead promotes a lead to an offer. The body is optional and may
// seed the new offer's title and status.
func (h *LeadHandler) ConvertLead(c *gin.Context) {
	var payload request.LeadConvertRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	offer, err := h.conversions.ConvertLead(c.Request.Context(), c.Param("lead_id"), payload.ToDraft(), actorFrom(c))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOffer(offer))
}

// RevertLeadConversion deletes the lead's latest offer together with its
// line items and moves the lead back to qualified.
func (h *LeadHandler) RevertLeadConversion(c *gin.Context) {
	lead, err := h.conversions.RevertLead(c.Request.Context(), c.Param("lead_id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadNotConvertible):
		return pkg.NewDomainErrorSimple("LEAD_NOT_CONVERTIBLE", "Lead is converted or lost and cannot be converted", http.StatusConflict)
	case errors.Is(err, usecase.ErrLeadOfferNotFound):
		return pkg.NewDomainErrorSimple("LEAD_OFFER_NOT_FOUND", "No offer found for lead", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferAlreadyConverted):
		return pkg.NewDomainErrorSimple("OFFER_ALREADY_CONVERTED", "Offer is already converted", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferCreateFailed):
		return pkg.NewDomainError("CREATE_FAILED", "Could not assign a unique number", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrCustomerServiceDown):
		return pkg.NewDomainErrorSimple("CUSTOMER_SERVICE_UNAVAILABLE", "Customer service is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
