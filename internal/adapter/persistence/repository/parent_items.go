package repository

import (
	"errors"
	"fmt"
	"strings"

	"crm_pipeline/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Shared storage shapes and helpers for the two parent repositories.

const defaultUniqueKeysTableName = "unique-keys"

type stageEntryItem struct {
	FromStatus      string `dynamodbav:"from_status"`
	ToStatus        string `dynamodbav:"to_status"`
	ChangedBy       string `dynamodbav:"changed_by,omitempty"`
	ChangedAt       string `dynamodbav:"changed_at"`
	DurationInStage int64  `dynamodbav:"duration_in_stage"`
}

type conversionInfoItem struct {
	SaleID          string `dynamodbav:"sale_id,omitempty"`
	Converted       bool   `dynamodbav:"converted"`
	ConvertedBy     string `dynamodbav:"converted_by,omitempty"`
	ConvertedByName string `dynamodbav:"converted_by_name,omitempty"`
	ConvertedAt     string `dynamodbav:"converted_at,omitempty"`
}

type currencyTotalsItem struct {
	Currency      string  `dynamodbav:"currency"`
	SubTotal      float64 `dynamodbav:"sub_total"`
	DiscountTotal float64 `dynamodbav:"discount_total"`
	TaxTotal      float64 `dynamodbav:"tax_total"`
	GrandTotal    float64 `dynamodbav:"grand_total"`
}

type totalsItem struct {
	Currencies           []currencyTotalsItem `dynamodbav:"currencies"`
	OverallSubTotal      float64              `dynamodbav:"overall_sub_total"`
	OverallDiscountTotal float64              `dynamodbav:"overall_discount_total"`
	OverallTaxTotal      float64              `dynamodbav:"overall_tax_total"`
	OverallGrandTotal    float64              `dynamodbav:"overall_grand_total"`
}

func toStageEntryItems(entries []entities.StageEntry) []stageEntryItem {
	out := make([]stageEntryItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, stageEntryItem{
			FromStatus:      e.FromStatus,
			ToStatus:        e.ToStatus,
			ChangedBy:       e.ChangedBy,
			ChangedAt:       formatTime(e.ChangedAt),
			DurationInStage: e.DurationInStage,
		})
	}
	return out
}

func fromStageEntryItems(items []stageEntryItem) []entities.StageEntry {
	out := make([]entities.StageEntry, 0, len(items))
	for _, it := range items {
		out = append(out, entities.StageEntry{
			FromStatus:      it.FromStatus,
			ToStatus:        it.ToStatus,
			ChangedBy:       it.ChangedBy,
			ChangedAt:       parseTime(it.ChangedAt),
			DurationInStage: it.DurationInStage,
		})
	}
	return out
}

func toConversionInfoItem(info entities.ConversionInfo) conversionInfoItem {
	return conversionInfoItem{
		SaleID:          info.SaleID,
		Converted:       info.Converted,
		ConvertedBy:     info.ConvertedBy,
		ConvertedByName: info.ConvertedByName,
		ConvertedAt:     formatTime(info.ConvertedAt),
	}
}

func fromConversionInfoItem(it conversionInfoItem) entities.ConversionInfo {
	return entities.ConversionInfo{
		SaleID:          it.SaleID,
		Converted:       it.Converted,
		ConvertedBy:     it.ConvertedBy,
		ConvertedByName: it.ConvertedByName,
		ConvertedAt:     parseTime(it.ConvertedAt),
	}
}

func toTotalsItem(t entities.Totals) totalsItem {
	currencies := make([]currencyTotalsItem, 0, len(t.Currencies))
	for _, c := range t.Currencies {
		currencies = append(currencies, currencyTotalsItem{
			Currency:      string(c.Currency),
			SubTotal:      c.SubTotal,
			DiscountTotal: c.DiscountTotal,
			TaxTotal:      c.TaxTotal,
			GrandTotal:    c.GrandTotal,
		})
	}
	return totalsItem{
		Currencies:           currencies,
		OverallSubTotal:      t.OverallSubTotal,
		OverallDiscountTotal: t.OverallDiscountTotal,
		OverallTaxTotal:      t.OverallTaxTotal,
		OverallGrandTotal:    t.OverallGrandTotal,
	}
}

func fromTotalsItem(it *totalsItem) *entities.Totals {
	if it == nil {
		return nil
	}
	currencies := make([]entities.CurrencyTotals, 0, len(it.Currencies))
	for _, c := range it.Currencies {
		currencies = append(currencies, entities.CurrencyTotals{
			Currency:      entities.Currency(c.Currency),
			SubTotal:      c.SubTotal,
			DiscountTotal: c.DiscountTotal,
			TaxTotal:      c.TaxTotal,
			GrandTotal:    c.GrandTotal,
		})
	}
	return &entities.Totals{
		Currencies:           currencies,
		OverallSubTotal:      it.OverallSubTotal,
		OverallDiscountTotal: it.OverallDiscountTotal,
		OverallTaxTotal:      it.OverallTaxTotal,
		OverallGrandTotal:    it.OverallGrandTotal,
	}
}

// stageEntryListValue marshals a single stage entry as a one-element list,
// ready for list_append.
func stageEntryListValue(entry entities.StageEntry) (types.AttributeValue, error) {
	list, err := attributevalue.MarshalList([]stageEntryItem{{
		FromStatus:      entry.FromStatus,
		ToStatus:        entry.ToStatus,
		ChangedBy:       entry.ChangedBy,
		ChangedAt:       formatTime(entry.ChangedAt),
		DurationInStage: entry.DurationInStage,
	}})
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberL{Value: list}, nil
}

// updateExpr accumulates SET clauses with their attribute names and values
// for an UpdateItem call.
type updateExpr struct {
	sets   []string
	names  map[string]string
	values map[string]types.AttributeValue
}

func newUpdateExpr() *updateExpr {
	return &updateExpr{
		names:  map[string]string{},
		values: map[string]types.AttributeValue{},
	}
}

func (e *updateExpr) set(nameKey, attrName string, value types.AttributeValue) {
	placeholder := ":" + attrName
	e.sets = append(e.sets, nameKey+" = "+placeholder)
	e.names[nameKey] = attrName
	e.values[placeholder] = value
}

// appendStageEntry adds a list_append clause for the stage history. Being
// part of the same UpdateItem as the status SET is what makes the history
// append impossible to skip between two status writes.
func (e *updateExpr) appendStageEntry(entry *entities.StageEntry) error {
	if entry == nil {
		return nil
	}
	v, err := stageEntryListValue(*entry)
	if err != nil {
		return err
	}
	e.sets = append(e.sets, "#stage_history = list_append(if_not_exists(#stage_history, :empty_history), :stage_entry)")
	e.names["#stage_history"] = "stage_history"
	e.values[":empty_history"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
	e.values[":stage_entry"] = v
	return nil
}

func (e *updateExpr) expression() string {
	return "SET " + strings.Join(e.sets, ", ")
}

func noMarkerID(counterKey string, no int64) string {
	return fmt.Sprintf("%s#%d", counterKey, no)
}

// isTransactConditionFailure reports whether a TransactWriteItems error was
// cancelled by a conditional check, which for the parent create transaction
// means the no marker (or the id) already exists.
func isTransactConditionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
