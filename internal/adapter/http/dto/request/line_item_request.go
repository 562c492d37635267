package request

import "crm_pipeline/internal/domain/entities"

// LineItemRequest is the wire shape shared by the four item arrays. An id,
// if present, is an optimistic-UI placeholder and is discarded by the
// stores on batch replace.
type LineItemRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Currency     string  `json:"currency"`
	Qty          float64 `json:"qty"`
	Price        float64 `json:"price"`
	DiscountRate float64 `json:"discount_rate"`
	VatRate      float64 `json:"vat_rate"`
	RentPeriod   int     `json:"rent_period"`
	IsPaid       bool    `json:"is_paid"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	return entities.LineItem{
		ID:           r.ID,
		Name:         r.Name,
		Currency:     entities.Currency(r.Currency),
		Qty:          r.Qty,
		Price:        r.Price,
		DiscountRate: r.DiscountRate,
		VatRate:      r.VatRate,
		RentPeriod:   r.RentPeriod,
		IsPaid:       r.IsPaid,
	}
}

func toEntityList(items *[]LineItemRequest) *[]entities.LineItem {
	if items == nil {
		return nil
	}
	out := make([]entities.LineItem, 0, len(*items))
	for _, it := range *items {
		out = append(out, it.ToEntity())
	}
	return &out
}
