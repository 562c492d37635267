package entities

// CurrencyTotals is one per-currency bucket of a totals computation.
type CurrencyTotals struct {
	Currency      Currency
	SubTotal      float64
	DiscountTotal float64
	TaxTotal      float64
	GrandTotal    float64
}

// Totals is the calculator output cached on parent documents.
//
// The Overall* fields sum every currency bucket without conversion
// (TL + USD + EUR as raw numbers). That matches how the business reads the
// figure today; a correct implementation needs exchange rates and should
// replace only these four fields.
type Totals struct {
	Currencies           []CurrencyTotals
	OverallSubTotal      float64
	OverallDiscountTotal float64
	OverallTaxTotal      float64
	OverallGrandTotal    float64
}
