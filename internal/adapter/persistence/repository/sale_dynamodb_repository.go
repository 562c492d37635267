package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSalesTableName = "sales"
	saleNoCounterKey      = "sale-no"
)

type saleItem struct {
	ID           string           `dynamodbav:"id"`
	No           int64            `dynamodbav:"no"`
	OfferID      string           `dynamodbav:"offer_id,omitempty"`
	LeadID       string           `dynamodbav:"lead_id,omitempty"`
	CustomerID   string           `dynamodbav:"customer_id,omitempty"`
	PipelineRef  string           `dynamodbav:"pipeline_ref,omitempty"`
	Title        string           `dynamodbav:"title,omitempty"`
	Status       string           `dynamodbav:"status"`
	StageHistory []stageEntryItem `dynamodbav:"stage_history"`
	Totals       *totalsItem      `dynamodbav:"totals,omitempty"`
	CreatedAt    string           `dynamodbav:"created_at"`
	UpdatedAt    string           `dynamodbav:"updated_at"`
}

// SaleDynamoRepository persists Sale parent documents. Same marker-based no
// uniqueness and in-update stage-history append as offers.
//
// Table requirements:
//   - PK: id (string)

type SaleDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	uniqueKeysTable string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("SALES_TABLE", defaultSalesTableName),
		uniqueKeysTable: getenvDefault("UNIQUE_KEYS_TABLE", defaultUniqueKeysTableName),
	}
}

func (r *SaleDynamoRepository) Create(ctx context.Context, sale entities.Sale) (entities.Sale, error) {
	av, err := attributevalue.MarshalMap(toSaleItem(sale))
	if err != nil {
		return entities.Sale{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.uniqueKeysTable),
					Item: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: noMarkerID(saleNoCounterKey, sale.No)},
					},
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isTransactConditionFailure(err) {
			return entities.Sale{}, entities.ErrDuplicateNo
		}
		return entities.Sale{}, err
	}
	return sale, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) MaxNo(ctx context.Context) (int64, error) {
	var max int64
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("#no"),
			ExpressionAttributeNames: map[string]string{
				"#no": "no",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		for _, raw := range out.Items {
			if n, ok := raw["no"].(*types.AttributeValueMemberN); ok {
				v, err := strconv.ParseInt(n.Value, 10, 64)
				if err == nil && v > max {
					max = v
				}
			}
		}
		if out.LastEvaluatedKey == nil {
			return max, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *SaleDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SaleStatus, entry *entities.StageEntry) (entities.Sale, error) {
	return r.update(ctx, id, func(expr *updateExpr) error {
		expr.set("#status", "status", &types.AttributeValueMemberS{Value: string(status)})
		return expr.appendStageEntry(entry)
	})
}

func (r *SaleDynamoRepository) Update(ctx context.Context, sale entities.Sale, entry *entities.StageEntry) (entities.Sale, error) {
	return r.update(ctx, sale.ID, func(expr *updateExpr) error {
		expr.set("#status", "status", &types.AttributeValueMemberS{Value: string(sale.Status)})
		expr.set("#title", "title", &types.AttributeValueMemberS{Value: sale.Title})
		expr.set("#customer_id", "customer_id", &types.AttributeValueMemberS{Value: sale.CustomerID})
		return expr.appendStageEntry(entry)
	})
}

func (r *SaleDynamoRepository) UpdateTotals(ctx context.Context, id string, totals entities.Totals) error {
	totalsAV, err := attributevalue.Marshal(toTotalsItem(totals))
	if err != nil {
		return err
	}
	_, err = r.update(ctx, id, func(expr *updateExpr) error {
		expr.set("#totals", "totals", totalsAV)
		return nil
	})
	return err
}

func (r *SaleDynamoRepository) Delete(ctx context.Context, id string) error {
	sale, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sale.ID == "" {
		return entities.ErrNotFound
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.uniqueKeysTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: noMarkerID(saleNoCounterKey, sale.No)},
					},
				},
			},
		},
	})
	return err
}

func (r *SaleDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(expr *updateExpr) error,
) (entities.Sale, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := newUpdateExpr()
	expr.set("#updated_at", "updated_at", &types.AttributeValueMemberS{Value: now})
	if err := build(expr); err != nil {
		return entities.Sale{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr.expression()),
		ExpressionAttributeValues: expr.values,
		ExpressionAttributeNames:  mergeNames(expr.names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Sale{}, nil
		}
		return entities.Sale{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Sale{}, nil
	}
	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func toSaleItem(s entities.Sale) saleItem {
	return saleItem{
		ID:           s.ID,
		No:           s.No,
		OfferID:      s.OfferID,
		LeadID:       s.LeadID,
		CustomerID:   s.CustomerID,
		PipelineRef:  s.PipelineRef,
		Title:        s.Title,
		Status:       string(s.Status),
		StageHistory: toStageEntryItems(s.StageHistory),
		Totals:       offerTotalsItem(s.Totals),
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	return entities.Sale{
		ID:           it.ID,
		No:           it.No,
		OfferID:      it.OfferID,
		LeadID:       it.LeadID,
		CustomerID:   it.CustomerID,
		PipelineRef:  it.PipelineRef,
		Title:        it.Title,
		Status:       entities.SaleStatus(it.Status),
		StageHistory: fromStageEntryItems(it.StageHistory),
		Totals:       fromTotalsItem(it.Totals),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
