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
	defaultOffersTableName = "offers"
	offersLeadIDIndex      = "lead_id-index"
	offerNoCounterKey      = "offer-no"
)

type offerItem struct {
	ID             string             `dynamodbav:"id"`
	No             int64              `dynamodbav:"no"`
	LeadID         string             `dynamodbav:"lead_id,omitempty"`
	CustomerID     string             `dynamodbav:"customer_id,omitempty"`
	PipelineRef    string             `dynamodbav:"pipeline_ref,omitempty"`
	Title          string             `dynamodbav:"title,omitempty"`
	Status         string             `dynamodbav:"status"`
	ConversionInfo conversionInfoItem `dynamodbav:"conversion_info"`
	StageHistory   []stageEntryItem   `dynamodbav:"stage_history"`
	Totals         *totalsItem        `dynamodbav:"totals,omitempty"`
	CreatedAt      string             `dynamodbav:"created_at"`
	UpdatedAt      string             `dynamodbav:"updated_at"`
}

// OfferDynamoRepository persists Offer parent documents.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id, SK: created_at)
//
// No uniqueness is enforced with a marker item ("offer-no#<n>") in the
// unique-keys table, written in the same TransactWriteItems as the offer.
// Stage-history entries are appended with list_append inside the same
// UpdateItem as the status write, so a second status change can never skip
// an entry.

type OfferDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	uniqueKeysTable string
}

var _ interfaces.IOfferRepository = (*OfferDynamoRepository)(nil)

func NewOfferDynamoRepository(ddb *dynamodb.Client) *OfferDynamoRepository {
	return &OfferDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("OFFERS_TABLE", defaultOffersTableName),
		uniqueKeysTable: getenvDefault("UNIQUE_KEYS_TABLE", defaultUniqueKeysTableName),
	}
}

func (r *OfferDynamoRepository) Create(ctx context.Context, offer entities.Offer) (entities.Offer, error) {
	av, err := attributevalue.MarshalMap(toOfferItem(offer))
	if err != nil {
		return entities.Offer{}, err
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
						"id": &types.AttributeValueMemberS{Value: noMarkerID(offerNoCounterKey, offer.No)},
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
			return entities.Offer{}, entities.ErrDuplicateNo
		}
		return entities.Offer{}, err
	}
	return offer, nil
}

func (r *OfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.Offer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Offer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Offer{}, nil
	}

	var it offerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Offer{}, err
	}
	return fromOfferItem(it), nil
}

func (r *OfferDynamoRepository) GetLatestByLeadID(ctx context.Context, leadID string) (entities.Offer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(offersLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.Offer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Offer{}, nil
	}

	var it offerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Offer{}, err
	}
	return fromOfferItem(it), nil
}

// MaxNo scans the collection for the highest assigned no. Repair path only
// (counter drift after manual imports), so a full scan is acceptable.
func (r *OfferDynamoRepository) MaxNo(ctx context.Context) (int64, error) {
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

func (r *OfferDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OfferStatus, entry *entities.StageEntry) (entities.Offer, error) {
	return r.update(ctx, id, func(expr *updateExpr) error {
		expr.set("#status", "status", &types.AttributeValueMemberS{Value: string(status)})
		return expr.appendStageEntry(entry)
	})
}

func (r *OfferDynamoRepository) Update(ctx context.Context, offer entities.Offer, entry *entities.StageEntry) (entities.Offer, error) {
	return r.update(ctx, offer.ID, func(expr *updateExpr) error {
		expr.set("#status", "status", &types.AttributeValueMemberS{Value: string(offer.Status)})
		expr.set("#title", "title", &types.AttributeValueMemberS{Value: offer.Title})
		expr.set("#customer_id", "customer_id", &types.AttributeValueMemberS{Value: offer.CustomerID})
		return expr.appendStageEntry(entry)
	})
}

func (r *OfferDynamoRepository) SetConverted(ctx context.Context, id string, info entities.ConversionInfo, entry *entities.StageEntry) (entities.Offer, error) {
	infoAV, err := attributevalue.Marshal(toConversionInfoItem(info))
	if err != nil {
		return entities.Offer{}, err
	}
	return r.update(ctx, id, func(expr *updateExpr) error {
		expr.set("#status", "status", &types.AttributeValueMemberS{Value: string(entities.OfferStatusConverted)})
		expr.set("#conversion_info", "conversion_info", infoAV)
		return expr.appendStageEntry(entry)
	})
}

func (r *OfferDynamoRepository) ClearConversion(ctx context.Context, id string, entry *entities.StageEntry) (entities.Offer, error) {
	infoAV, err := attributevalue.Marshal(conversionInfoItem{})
	if err != nil {
		return entities.Offer{}, err
	}
	return r.update(ctx, id, func(expr *updateExpr) error {
		expr.set("#status", "status", &types.AttributeValueMemberS{Value: string(entities.OfferStatusApproved)})
		expr.set("#conversion_info", "conversion_info", infoAV)
		return expr.appendStageEntry(entry)
	})
}

func (r *OfferDynamoRepository) UpdateTotals(ctx context.Context, id string, totals entities.Totals) error {
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

// Delete removes the offer and its no marker in one transaction, so the no
// becomes reusable exactly when the offer is gone.
func (r *OfferDynamoRepository) Delete(ctx context.Context, id string) error {
	offer, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if offer.ID == "" {
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
						"id": &types.AttributeValueMemberS{Value: noMarkerID(offerNoCounterKey, offer.No)},
					},
				},
			},
		},
	})
	return err
}

func (r *OfferDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(expr *updateExpr) error,
) (entities.Offer, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := newUpdateExpr()
	expr.set("#updated_at", "updated_at", &types.AttributeValueMemberS{Value: now})
	if err := build(expr); err != nil {
		return entities.Offer{}, err
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
			return entities.Offer{}, nil
		}
		return entities.Offer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Offer{}, nil
	}
	var it offerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Offer{}, err
	}
	return fromOfferItem(it), nil
}

func toOfferItem(o entities.Offer) offerItem {
	return offerItem{
		ID:             o.ID,
		No:             o.No,
		LeadID:         o.LeadID,
		CustomerID:     o.CustomerID,
		PipelineRef:    o.PipelineRef,
		Title:          o.Title,
		Status:         string(o.Status),
		ConversionInfo: toConversionInfoItem(o.ConversionInfo),
		StageHistory:   toStageEntryItems(o.StageHistory),
		Totals:         offerTotalsItem(o.Totals),
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
}

func offerTotalsItem(t *entities.Totals) *totalsItem {
	if t == nil {
		return nil
	}
	it := toTotalsItem(*t)
	return &it
}

func fromOfferItem(it offerItem) entities.Offer {
	return entities.Offer{
		ID:             it.ID,
		No:             it.No,
		LeadID:         it.LeadID,
		CustomerID:     it.CustomerID,
		PipelineRef:    it.PipelineRef,
		Title:          it.Title,
		Status:         entities.OfferStatus(it.Status),
		ConversionInfo: fromConversionInfoItem(it.ConversionInfo),
		StageHistory:   fromStageEntryItems(it.StageHistory),
		Totals:         fromTotalsItem(it.Totals),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
