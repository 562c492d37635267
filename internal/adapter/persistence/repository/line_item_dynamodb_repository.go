package repository

import (
	"context"
	"errors"
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	lineItemParentIndex = "parent_id-index"
	batchWriteChunkSize = 25
)

type lineItemItem struct {
	ID           string  `dynamodbav:"id"`
	ParentID     string  `dynamodbav:"parent_id"`
	ParentType   string  `dynamodbav:"parent_type"`
	PipelineRef  string  `dynamodbav:"pipeline_ref,omitempty"`
	Name         string  `dynamodbav:"name,omitempty"`
	Currency     string  `dynamodbav:"currency,omitempty"`
	Qty          float64 `dynamodbav:"qty"`
	Price        float64 `dynamodbav:"price"`
	DiscountRate float64 `dynamodbav:"discount_rate"`
	VatRate      float64 `dynamodbav:"vat_rate"`
	RentPeriod   int     `dynamodbav:"rent_period,omitempty"`
	IsPaid       bool    `dynamodbav:"is_paid"`

	SubTotal      float64 `dynamodbav:"sub_total"`
	DiscountTotal float64 `dynamodbav:"discount_total"`
	TaxTotal      float64 `dynamodbav:"tax_total"`
	GrandTotal    float64 `dynamodbav:"grand_total"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// LineItemDynamoRepository persists one of the four line-item
// sub-collections. The same type serves products, licenses, rentals and
// payments; the kind picks the table and the clone behavior.
//
// Table requirements (per kind):
//   - PK: id (string)
//   - GSI: parent_id-index (PK: parent_id)

type LineItemDynamoRepository struct {
	ddb       *dynamodb.Client
	kind      entities.ItemKind
	tableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client, kind entities.ItemKind) *LineItemDynamoRepository {
	var table string
	switch kind {
	case entities.ItemKindProduct:
		table = getenvDefault("PRODUCTS_TABLE", "products")
	case entities.ItemKindLicense:
		table = getenvDefault("LICENSES_TABLE", "licenses")
	case entities.ItemKindRental:
		table = getenvDefault("RENTALS_TABLE", "rentals")
	case entities.ItemKindPayment:
		table = getenvDefault("PAYMENTS_TABLE", "payments")
	}
	return &LineItemDynamoRepository{ddb: ddb, kind: kind, tableName: table}
}

func (r *LineItemDynamoRepository) Kind() entities.ItemKind {
	return r.kind
}

func (r *LineItemDynamoRepository) FindByParent(ctx context.Context, parentID string, parentType entities.ParentType) ([]entities.LineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lineItemParentIndex),
		KeyConditionExpression: aws.String("parent_id = :pid"),
		FilterExpression:       aws.String("parent_type = :pt"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: parentID},
			":pt":  &types.AttributeValueMemberS{Value: string(parentType)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.LineItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it lineItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLineItemItem(it))
	}
	return items, nil
}

func (r *LineItemDynamoRepository) Create(ctx context.Context, item entities.LineItem) (entities.LineItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	item = item.WithComputedTotals(r.kind)

	av, err := attributevalue.MarshalMap(toLineItemItem(item))
	if err != nil {
		return entities.LineItem{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *LineItemDynamoRepository) Update(ctx context.Context, id string, item entities.LineItem) (entities.LineItem, error) {
	item.ID = id
	item.UpdatedAt = time.Now().UTC()
	item = item.WithComputedTotals(r.kind)

	av, err := attributevalue.MarshalMap(toLineItemItem(item))
	if err != nil {
		return entities.LineItem{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.LineItem{}, entities.ErrNotFound
		}
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *LineItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ErrNotFound
		}
		return err
	}
	return nil
}

// BatchReplace deletes every item of (parentID, parentType) and inserts the
// given list verbatim with fresh ids. The delete and the inserts are
// separate store calls; a crash in between leaves the collection empty, not
// duplicated.
func (r *LineItemDynamoRepository) BatchReplace(ctx context.Context, parentID string, parentType entities.ParentType, pipelineRef string, items []entities.LineItem) ([]entities.LineItem, error) {
	if _, err := r.DeleteByParent(ctx, parentID, parentType); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []entities.LineItem{}, nil
	}

	now := time.Now().UTC()
	inserted := make([]entities.LineItem, 0, len(items))
	for _, item := range items {
		// Client-supplied ids may be optimistic-UI placeholders; always
		// assign fresh ones.
		item.ID = uuid.NewString()
		item.ParentID = parentID
		item.ParentType = parentType
		item.PipelineRef = pipelineRef
		item.CreatedAt = now
		item.UpdatedAt = now
		inserted = append(inserted, item.WithComputedTotals(r.kind))
	}
	if err := r.batchPut(ctx, inserted); err != nil {
		return nil, err
	}
	return inserted, nil
}

func (r *LineItemDynamoRepository) CloneForParent(ctx context.Context, sourceParentID string, sourceType entities.ParentType, targetParentID string, targetType entities.ParentType, newPipelineRef string) ([]entities.LineItem, error) {
	source, err := r.FindByParent(ctx, sourceParentID, sourceType)
	if err != nil {
		return nil, err
	}
	if len(source) == 0 {
		return []entities.LineItem{}, nil
	}

	now := time.Now().UTC()
	clones := make([]entities.LineItem, 0, len(source))
	for _, item := range source {
		item.ID = uuid.NewString()
		item.ParentID = targetParentID
		item.ParentType = targetType
		if newPipelineRef != "" {
			item.PipelineRef = newPipelineRef
		}
		if r.kind == entities.ItemKindPayment {
			// A payment carried into a new stage is unpaid again.
			item.IsPaid = false
		}
		item.CreatedAt = now
		item.UpdatedAt = now
		clones = append(clones, item)
	}
	if err := r.batchPut(ctx, clones); err != nil {
		return nil, err
	}
	return clones, nil
}

func (r *LineItemDynamoRepository) DeleteByParent(ctx context.Context, parentID string, parentType entities.ParentType) (int, error) {
	existing, err := r.FindByParent(ctx, parentID, parentType)
	if err != nil {
		return 0, err
	}
	if len(existing) == 0 {
		return 0, nil
	}

	requests := make([]types.WriteRequest, 0, len(existing))
	for _, item := range existing {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: item.ID},
				},
			},
		})
	}
	if err := r.batchWrite(ctx, requests); err != nil {
		return 0, err
	}
	return len(existing), nil
}

// AggregateSaleTotal sums the cached grand totals of sale-owned items for
// the given parents. Reporting only.
func (r *LineItemDynamoRepository) AggregateSaleTotal(ctx context.Context, parentIDs []string) (float64, error) {
	total := 0.0
	for _, parentID := range parentIDs {
		items, err := r.FindByParent(ctx, parentID, entities.ParentTypeSale)
		if err != nil {
			return 0, err
		}
		for _, item := range items {
			total += item.GrandTotal
		}
	}
	return total, nil
}

func (r *LineItemDynamoRepository) batchPut(ctx context.Context, items []entities.LineItem) error {
	requests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		av, err := attributevalue.MarshalMap(toLineItemItem(item))
		if err != nil {
			return err
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}
	return r.batchWrite(ctx, requests)
}

func (r *LineItemDynamoRepository) batchWrite(ctx context.Context, requests []types.WriteRequest) error {
	for start := 0; start < len(requests); start += batchWriteChunkSize {
		end := start + batchWriteChunkSize
		if end > len(requests) {
			end = len(requests)
		}
		pending := requests[start:end]
		for len(pending) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					r.tableName: pending,
				},
			})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems[r.tableName]
		}
	}
	return nil
}

func toLineItemItem(item entities.LineItem) lineItemItem {
	return lineItemItem{
		ID:            item.ID,
		ParentID:      item.ParentID,
		ParentType:    string(item.ParentType),
		PipelineRef:   item.PipelineRef,
		Name:          item.Name,
		Currency:      string(item.Currency),
		Qty:           item.Qty,
		Price:         item.Price,
		DiscountRate:  item.DiscountRate,
		VatRate:       item.VatRate,
		RentPeriod:    item.RentPeriod,
		IsPaid:        item.IsPaid,
		SubTotal:      item.SubTotal,
		DiscountTotal: item.DiscountTotal,
		TaxTotal:      item.TaxTotal,
		GrandTotal:    item.GrandTotal,
		CreatedAt:     formatTime(item.CreatedAt),
		UpdatedAt:     formatTime(item.UpdatedAt),
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	return entities.LineItem{
		ID:            it.ID,
		ParentID:      it.ParentID,
		ParentType:    entities.ParentType(it.ParentType),
		PipelineRef:   it.PipelineRef,
		Name:          it.Name,
		Currency:      entities.Currency(it.Currency),
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
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
