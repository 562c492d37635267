package request

import (
	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase"
)

// SaleUpdateRequest is a partial sale update with the same presence
// semantics as OfferUpdateRequest.
type SaleUpdateRequest struct {
	Title      *string `json:"title"`
	CustomerID *string `json:"customer_id"`
	Status     *string `json:"status"`

	Products *[]LineItemRequest `json:"products"`
	Licenses *[]LineItemRequest `json:"licenses"`
	Rentals  *[]LineItemRequest `json:"rentals"`
	Payments *[]LineItemRequest `json:"payments"`
}

func (r SaleUpdateRequest) ToPatch() usecase.SalePatch {
	patch := usecase.SalePatch{
		Title:      r.Title,
		CustomerID: r.CustomerID,
	}
	if r.Status != nil {
		status := entities.SaleStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

func (r SaleUpdateRequest) ItemSet() entities.ItemSet {
	return entities.ItemSet{
		Products: toEntityList(r.Products),
		Licenses: toEntityList(r.Licenses),
		Rentals:  toEntityList(r.Rentals),
		Payments: toEntityList(r.Payments),
	}
}
