package response

import (
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase"
)

type ConversionInfoResponse struct {
	SaleID          string     `json:"sale_id,omitempty"`
	Converted       bool       `json:"converted"`
	ConvertedBy     string     `json:"converted_by,omitempty"`
	ConvertedByName string     `json:"converted_by_name,omitempty"`
	ConvertedAt     *time.Time `json:"converted_at,omitempty"`
}

type OfferResponse struct {
	ID             string                 `json:"id"`
	No             int64                  `json:"no"`
	LeadID         string                 `json:"lead_id,omitempty"`
	CustomerID     string                 `json:"customer_id,omitempty"`
	PipelineRef    string                 `json:"pipeline_ref"`
	Title          string                 `json:"title,omitempty"`
	Status         string                 `json:"status"`
	ConversionInfo ConversionInfoResponse `json:"conversion_info"`
	StageHistory   []StageEntryResponse   `json:"stage_history"`
	Totals         *TotalsResponse        `json:"totals,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func FromOffer(o entities.Offer) OfferResponse {
	info := ConversionInfoResponse{
		SaleID:          o.ConversionInfo.SaleID,
		Converted:       o.ConversionInfo.Converted,
		ConvertedBy:     o.ConversionInfo.ConvertedBy,
		ConvertedByName: o.ConversionInfo.ConvertedByName,
	}
	if !o.ConversionInfo.ConvertedAt.IsZero() {
		at := o.ConversionInfo.ConvertedAt
		info.ConvertedAt = &at
	}
	return OfferResponse{
		ID:             o.ID,
		No:             o.No,
		LeadID:         o.LeadID,
		CustomerID:     o.CustomerID,
		PipelineRef:    o.PipelineRef,
		Title:          o.Title,
		Status:         string(o.Status),
		ConversionInfo: info,
		StageHistory:   fromStageHistory(o.StageHistory),
		Totals:         fromTotalsPtr(o.Totals),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// OfferWithItemsResponse is the read shape of an offer plus its four item
// collections.
type OfferWithItemsResponse struct {
	Offer OfferResponse      `json:"offer"`
	Items ItemBundleResponse `json:"items"`
}

// OfferWriteResponse reports both phases of an offer write. ItemsSynced is
// false when the parent was written but the item sync did not complete.
type OfferWriteResponse struct {
	Offer       OfferResponse      `json:"offer"`
	Items       ItemBundleResponse `json:"items"`
	ItemsSynced bool               `json:"items_synced"`
}

func FromOfferWriteResult(r usecase.OfferWriteResult) OfferWriteResponse {
	return OfferWriteResponse{
		Offer:       FromOffer(r.Offer),
		Items:       FromItemBundle(r.Items),
		ItemsSynced: r.ItemsSynced,
	}
}
