package request

import (
	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase"
)

// OfferCreateRequest carries the parent fields of a new offer plus the
// optional line-item arrays. The item fields are pointers on purpose: an
// absent key leaves that collection untouched, an empty array clears it.
type OfferCreateRequest struct {
	LeadID      string `json:"lead_id"`
	CustomerID  string `json:"customer_id"`
	PipelineRef string `json:"pipeline_ref"`
	Title       string `json:"title"`
	Status      string `json:"status"`

	Products *[]LineItemRequest `json:"products"`
	Licenses *[]LineItemRequest `json:"licenses"`
	Rentals  *[]LineItemRequest `json:"rentals"`
	Payments *[]LineItemRequest `json:"payments"`
}

func (r OfferCreateRequest) ToDraft() usecase.OfferDraft {
	return usecase.OfferDraft{
		LeadID:      r.LeadID,
		CustomerID:  r.CustomerID,
		PipelineRef: r.PipelineRef,
		Title:       r.Title,
		Status:      entities.OfferStatus(r.Status),
	}
}

func (r OfferCreateRequest) ItemSet() entities.ItemSet {
	return entities.ItemSet{
		Products: toEntityList(r.Products),
		Licenses: toEntityList(r.Licenses),
		Rentals:  toEntityList(r.Rentals),
		Payments: toEntityList(r.Payments),
	}
}

// OfferUpdateRequest is a partial update; nil parent fields are left alone.
type OfferUpdateRequest struct {
	Title      *string `json:"title"`
	CustomerID *string `json:"customer_id"`
	Status     *string `json:"status"`

	Products *[]LineItemRequest `json:"products"`
	Licenses *[]LineItemRequest `json:"licenses"`
	Rentals  *[]LineItemRequest `json:"rentals"`
	Payments *[]LineItemRequest `json:"payments"`
}

func (r OfferUpdateRequest) ToPatch() usecase.OfferPatch {
	patch := usecase.OfferPatch{
		Title:      r.Title,
		CustomerID: r.CustomerID,
	}
	if r.Status != nil {
		status := entities.OfferStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

func (r OfferUpdateRequest) ItemSet() entities.ItemSet {
	return entities.ItemSet{
		Products: toEntityList(r.Products),
		Licenses: toEntityList(r.Licenses),
		Rentals:  toEntityList(r.Rentals),
		Payments: toEntityList(r.Payments),
	}
}

// StatusChangeRequest changes just the status of an offer or sale.
type StatusChangeRequest struct {
	Status string `json:"status" binding:"required"`
}

// LeadConvertRequest optionally seeds the offer created from the lead.
type LeadConvertRequest struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

func (r LeadConvertRequest) ToDraft() usecase.OfferDraft {
	return usecase.OfferDraft{
		Title:  r.Title,
		Status: entities.OfferStatus(r.Status),
	}
}
