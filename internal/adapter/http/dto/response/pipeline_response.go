package response

import (
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase"
)

type LineItemResponse struct {
	ID            string  `json:"id"`
	ParentID      string  `json:"parent_id"`
	ParentType    string  `json:"parent_type"`
	PipelineRef   string  `json:"pipeline_ref,omitempty"`
	Name          string  `json:"name,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Qty           float64 `json:"qty"`
	Price         float64 `json:"price"`
	DiscountRate  float64 `json:"discount_rate"`
	VatRate       float64 `json:"vat_rate"`
	RentPeriod    int     `json:"rent_period,omitempty"`
	IsPaid        bool    `json:"is_paid"`
	SubTotal      float64 `json:"sub_total"`
	DiscountTotal float64 `json:"discount_total"`
	TaxTotal      float64 `json:"tax_total"`
	GrandTotal    float64 `json:"grand_total"`
}

func FromLineItem(it entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:            it.ID,
		ParentID:      it.ParentID,
		ParentType:    string(it.ParentType),
		PipelineRef:   it.PipelineRef,
		Name:          it.Name,
		Currency:      string(it.Currency),
		Qty:           it.Qty,
		Price:         it.Price,
		DiscountRate:  it.DiscountRate,
		VatRate:       it.VatRate,
		RentPeriod:    it.RentPeriod,
		IsPaid:        it.IsPaid,
		SubTotal:      it.SubTotal,
		DiscountTotal: it.DiscountTotal,
		TaxTotal:      it.TaxTotal,
		GrandTotal:    it.GrandTotal,
	}
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromLineItem(it))
	}
	return out
}

type ItemBundleResponse struct {
	Products []LineItemResponse `json:"products"`
	Licenses []LineItemResponse `json:"licenses"`
	Rentals  []LineItemResponse `json:"rentals"`
	Payments []LineItemResponse `json:"payments"`
}

func FromItemBundle(b usecase.ItemBundle) ItemBundleResponse {
	return ItemBundleResponse{
		Products: fromLineItems(b.Products),
		Licenses: fromLineItems(b.Licenses),
		Rentals:  fromLineItems(b.Rentals),
		Payments: fromLineItems(b.Payments),
	}
}

type StageEntryResponse struct {
	FromStatus      string    `json:"from_status"`
	ToStatus        string    `json:"to_status"`
	ChangedBy       string    `json:"changed_by,omitempty"`
	ChangedAt       time.Time `json:"changed_at"`
	DurationInStage int64     `json:"duration_in_stage"`
}

func fromStageHistory(entries []entities.StageEntry) []StageEntryResponse {
	out := make([]StageEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, StageEntryResponse{
			FromStatus:      e.FromStatus,
			ToStatus:        e.ToStatus,
			ChangedBy:       e.ChangedBy,
			ChangedAt:       e.ChangedAt,
			DurationInStage: e.DurationInStage,
		})
	}
	return out
}

type CurrencyTotalsResponse struct {
	Currency      string  `json:"currency"`
	SubTotal      float64 `json:"sub_total"`
	DiscountTotal float64 `json:"discount_total"`
	TaxTotal      float64 `json:"tax_total"`
	GrandTotal    float64 `json:"grand_total"`
}

type TotalsResponse struct {
	Currencies           []CurrencyTotalsResponse `json:"currencies"`
	OverallSubTotal      float64                  `json:"overall_sub_total"`
	OverallDiscountTotal float64                  `json:"overall_discount_total"`
	OverallTaxTotal      float64                  `json:"overall_tax_total"`
	OverallGrandTotal    float64                  `json:"overall_grand_total"`
}

func FromTotals(t entities.Totals) TotalsResponse {
	currencies := make([]CurrencyTotalsResponse, 0, len(t.Currencies))
	for _, c := range t.Currencies {
		currencies = append(currencies, CurrencyTotalsResponse{
			Currency:      string(c.Currency),
			SubTotal:      c.SubTotal,
			DiscountTotal: c.DiscountTotal,
			TaxTotal:      c.TaxTotal,
			GrandTotal:    c.GrandTotal,
		})
	}
	return TotalsResponse{
		Currencies:           currencies,
		OverallSubTotal:      t.OverallSubTotal,
		OverallDiscountTotal: t.OverallDiscountTotal,
		OverallTaxTotal:      t.OverallTaxTotal,
		OverallGrandTotal:    t.OverallGrandTotal,
	}
}

func fromTotalsPtr(t *entities.Totals) *TotalsResponse {
	if t == nil {
		return nil
	}
	resp := FromTotals(*t)
	return &resp
}
