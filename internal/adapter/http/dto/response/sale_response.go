package response

import (
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase"
)

type SaleResponse struct {
	ID           string               `json:"id"`
	No           int64                `json:"no"`
	OfferID      string               `json:"offer_id,omitempty"`
	LeadID       string               `json:"lead_id,omitempty"`
	CustomerID   string               `json:"customer_id,omitempty"`
	PipelineRef  string               `json:"pipeline_ref"`
	Title        string               `json:"title,omitempty"`
	Status       string               `json:"status"`
	StageHistory []StageEntryResponse `json:"stage_history"`
	Totals       *TotalsResponse      `json:"totals,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		No:           s.No,
		OfferID:      s.OfferID,
		LeadID:       s.LeadID,
		CustomerID:   s.CustomerID,
		PipelineRef:  s.PipelineRef,
		Title:        s.Title,
		Status:       string(s.Status),
		StageHistory: fromStageHistory(s.StageHistory),
		Totals:       fromTotalsPtr(s.Totals),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

type SaleWithItemsResponse struct {
	Sale  SaleResponse       `json:"sale"`
	Items ItemBundleResponse `json:"items"`
}

type SaleWriteResponse struct {
	Sale        SaleResponse       `json:"sale"`
	Items       ItemBundleResponse `json:"items"`
	ItemsSynced bool               `json:"items_synced"`
}

func FromSaleWriteResult(r usecase.SaleWriteResult) SaleWriteResponse {
	return SaleWriteResponse{
		Sale:        FromSale(r.Sale),
		Items:       FromItemBundle(r.Items),
		ItemsSynced: r.ItemsSynced,
	}
}

type LeadResponse struct {
	ID          string    `json:"id"`
	PipelineRef string    `json:"pipeline_ref,omitempty"`
	Status      string    `json:"status"`
	CustomerID  string    `json:"customer_id,omitempty"`
	Name        string    `json:"name,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		PipelineRef: l.PipelineRef,
		Status:      string(l.Status),
		CustomerID:  l.CustomerID,
		Name:        l.Name,
		CompanyName: l.CompanyName,
		UpdatedAt:   l.UpdatedAt,
	}
}
