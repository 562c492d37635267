package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "crm_pipeline/internal/adapter/http/dto/request"
	response "crm_pipeline/internal/adapter/http/dto/response"
	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase"
	"crm_pipeline/pkg"
)

var (
	errInvalidSalePayload = pkg.NewDomainErrorSimple("INVALID_SALE_INPUT", "Invalid sale payload", http.StatusBadRequest)
	errMissingSaleIDs     = pkg.NewDomainErrorSimple("MISSING_SALE_IDS", "Query parameter sale_ids is required", http.StatusBadRequest)
)

// SaleHandler handles HTTP requests for sales. Sales come into existence
// only through offer conversion; this handler reads, patches and removes
// them.

type SaleHandler struct {
	sales  usecase.ISaleUseCase
	totals usecase.ITotalsUseCase
	sync   usecase.IPipelineSyncUseCase
}

func NewSaleHandler(sales usecase.ISaleUseCase, totals usecase.ITotalsUseCase, sync usecase.IPipelineSyncUseCase) *SaleHandler {
	return &SaleHandler{sales: sales, totals: totals, sync: sync}
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, bundle, err := h.sales.GetWithItems(c.Request.Context(), c.Param("sale_id"))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SaleWithItemsResponse{
		Sale:  response.FromSale(sale),
		Items: response.FromItemBundle(bundle),
	})
}

func (h *SaleHandler) UpdateSale(c *gin.Context) {
	var payload request.SaleUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	result, err := h.sales.Update(c.Request.Context(), c.Param("sale_id"), payload.ToPatch(), payload.ItemSet(), actorFrom(c))
	if err != nil {
		if result.Sale.ID != "" {
			c.JSON(http.StatusMultiStatus, response.FromSaleWriteResult(result))
			return
		}
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSaleWriteResult(result))
}

func (h *SaleHandler) DeleteSale(c *gin.Context) {
	if err := h.sales.Delete(c.Request.Context(), c.Param("sale_id")); err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SaleHandler) GetSaleTotals(c *gin.Context) {
	totals, err := h.totals.RecalculateAndStore(c.Request.Context(), c.Param("sale_id"), entities.ParentTypeSale)
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// SalesItemsTotal sums the cached grand totals of every item owned by the
// given sales. sale_ids is a comma-separated list of sale ids.
func (h *SaleHandler) SalesItemsTotal(c *gin.Context) {
	raw := strings.Split(c.Query("sale_ids"), ",")
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		c.JSON(errMissingSaleIDs.HTTPStatus, errMissingSaleIDs.ToHTTPError())
		return
	}

	total, err := h.sync.SaleItemsTotal(c.Request.Context(), ids)
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale_ids": ids, "total": total})
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound), errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
