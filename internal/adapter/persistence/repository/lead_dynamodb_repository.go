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
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID          string `dynamodbav:"id"`
	PipelineRef string `dynamodbav:"pipeline_ref,omitempty"`
	Status      string `dynamodbav:"status"`
	CustomerID  string `dynamodbav:"customer_id,omitempty"`
	Name        string `dynamodbav:"name,omitempty"`
	CompanyName string `dynamodbav:"company_name,omitempty"`
	Phone       string `dynamodbav:"phone,omitempty"`
	Email       string `dynamodbav:"email,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository reads leads and stamps conversion status changes.
// Lead lifecycle management otherwise belongs to the CRM service that owns
// the table.
//
// Table requirements:
//   - PK: id (string)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

// MarkConverted stamps the lead converted and, when customerID is non-empty,
// links the newly created prospect customer.
func (r *LeadDynamoRepository) MarkConverted(ctx context.Context, id string, customerID string) (entities.Lead, error) {
	return r.update(ctx, id, func(expr *updateExpr) error {
		expr.set("#status", "status", &types.AttributeValueMemberS{Value: string(entities.LeadStatusConverted)})
		if customerID != "" {
			expr.set("#customer_id", "customer_id", &types.AttributeValueMemberS{Value: customerID})
		}
		return nil
	})
}

func (r *LeadDynamoRepository) SetStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	return r.update(ctx, id, func(expr *updateExpr) error {
		expr.set("#status", "status", &types.AttributeValueMemberS{Value: string(status)})
		return nil
	})
}

func (r *LeadDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(expr *updateExpr) error,
) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := newUpdateExpr()
	expr.set("#updated_at", "updated_at", &types.AttributeValueMemberS{Value: now})
	if err := build(expr); err != nil {
		return entities.Lead{}, err
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
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID:          it.ID,
		PipelineRef: it.PipelineRef,
		Status:      entities.LeadStatus(it.Status),
		CustomerID:  it.CustomerID,
		Name:        it.Name,
		CompanyName: it.CompanyName,
		Phone:       it.Phone,
		Email:       it.Email,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
