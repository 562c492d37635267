package entities

import "time"

// ItemKind identifies which of the four line-item sub-collections an item
// belongs to. The repositories are kind-scoped; the entity shape is shared.

type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindLicense ItemKind = "license"
	ItemKindRental  ItemKind = "rental"
	ItemKindPayment ItemKind = "payment"
)

// Currency codes accepted on line items. Items without a currency fall back
// to TL when totals are computed.

type Currency string

const (
	CurrencyTL  Currency = "tl"
	CurrencyUSD Currency = "usd"
	CurrencyEUR Currency = "eur"
)

// DefaultRentPeriod applies to rentals that don't set one; rentals are
// priced per period, not per unit.
const DefaultRentPeriod = 12

// LineItem is the shared shape of Product, License, Rental and Payment
// records. Every item belongs to exactly one (ParentID, ParentType) pair;
// PipelineRef is denormalized onto it for cross-collection lookups.
//
// Storage model (DynamoDB, one table per kind):
//   - PK: id
//   - GSI: parent_id-index (PK: parent_id)
//
// RentPeriod is meaningful for rentals only; IsPaid for payments only. The
// derived monetary fields may arrive pre-computed from the caller and are
// recomputed by WithComputedTotals on every write path.
type LineItem struct {
	ID           string
	ParentID     string
	ParentType   ParentType
	PipelineRef  string
	Name         string
	Currency     Currency
	Qty          float64
	Price        float64
	DiscountRate float64
	VatRate      float64
	RentPeriod   int
	IsPaid       bool

	SubTotal      float64
	DiscountTotal float64
	TaxTotal      float64
	GrandTotal    float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Breakdown computes the monetary breakdown of the item for the given kind:
//
//	lineTotal = qty × price            (products, licenses, payments)
//	lineTotal = qty × price × period   (rentals; period defaults to 12)
//	discountTotal = lineTotal × discountRate/100
//	subTotal = lineTotal − discountTotal
//	taxTotal = subTotal × vatRate/100
//	grandTotal = subTotal + taxTotal
func (it LineItem) Breakdown(kind ItemKind) (subTotal, discountTotal, taxTotal, grandTotal float64) {
	lineTotal := it.Qty * it.Price
	if kind == ItemKindRental {
		period := it.RentPeriod
		if period == 0 {
			period = DefaultRentPeriod
		}
		lineTotal *= float64(period)
	}
	discountTotal = lineTotal * it.DiscountRate / 100
	subTotal = lineTotal - discountTotal
	taxTotal = subTotal * it.VatRate / 100
	grandTotal = subTotal + taxTotal
	return
}

// WithComputedTotals returns a copy with the derived monetary fields
// recomputed from the pricing fields.
func (it LineItem) WithComputedTotals(kind ItemKind) LineItem {
	it.SubTotal, it.DiscountTotal, it.TaxTotal, it.GrandTotal = it.Breakdown(kind)
	return it
}

// EffectiveCurrency returns the item currency, defaulting to TL.
func (it LineItem) EffectiveCurrency() Currency {
	if it.Currency == "" {
		return CurrencyTL
	}
	return it.Currency
}

// ItemSet carries the four optional line-item arrays of a dual-write
// request. A nil field means "leave that collection untouched"; a non-nil
// empty slice means "clear it". Presence, not truthiness.
type ItemSet struct {
	Products *[]LineItem
	Licenses *[]LineItem
	Rentals  *[]LineItem
	Payments *[]LineItem
}
