package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAuthorizationsTableName = "authorization_requests"
	authorizationsWorkOrderIDIndex = "work_order_id-index"
)

type authorizationItem struct {
	ID                      string `dynamodbav:"id"`
	WorkOrderID             string `dynamodbav:"work_order_id"`
	Reason                  string `dynamodbav:"reason"`
	Details                 string `dynamodbav:"details,omitempty"`
	EstimatedAdditionalCost string `dynamodbav:"estimated_additional_cost,omitempty"`
	Status                  string `dynamodbav:"status"`
	SentBy                  string `dynamodbav:"sent_by,omitempty"`
	SentAt                  string `dynamodbav:"sent_at"`
	RespondedAt             string `dynamodbav:"responded_at,omitempty"`
	ClientComments          string `dynamodbav:"client_comments,omitempty"`
}

// AuthorizationDynamoRepository persists AuthorizationRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
//
// Resolve carries a conditional expression pinning the pending status, so a
// second resolution of the same request fails the condition and is reported
// as a zero entity.

type AuthorizationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuthorizationRepository = (*AuthorizationDynamoRepository)(nil)

func NewAuthorizationDynamoRepository(ddb *dynamodb.Client) *AuthorizationDynamoRepository {
	return &AuthorizationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUTHORIZATIONS_TABLE", defaultAuthorizationsTableName),
	}
}

func (r *AuthorizationDynamoRepository) Create(ctx context.Context, a entities.AuthorizationRequest) (entities.AuthorizationRequest, error) {
	it := toAuthorizationItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AuthorizationRequest{}, err
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
		return entities.AuthorizationRequest{}, err
	}
	return a, nil
}

func (r *AuthorizationDynamoRepository) GetByID(ctx context.Context, id string) (entities.AuthorizationRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AuthorizationRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.AuthorizationRequest{}, nil
	}

	var it authorizationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AuthorizationRequest{}, err
	}
	return fromAuthorizationItem(it), nil
}

func (r *AuthorizationDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.AuthorizationRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(authorizationsWorkOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.AuthorizationRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it authorizationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAuthorizationItem(it))
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].SentAt.Equal(items[j].SentAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].SentAt.Before(items[j].SentAt)
	})
	return items, nil
}

func (r *AuthorizationDynamoRepository) PendingByWorkOrderID(ctx context.Context, workOrderID string) (entities.AuthorizationRequest, error) {
	all, err := r.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return entities.AuthorizationRequest{}, err
	}
	for _, a := range all {
		if a.Status == entities.AuthorizationStatusPending {
			return a, nil
		}
	}
	return entities.AuthorizationRequest{}, nil
}

func (r *AuthorizationDynamoRepository) Resolve(ctx context.Context, id string, status entities.AuthorizationStatus, comments string, respondedAt time.Time) (entities.AuthorizationRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #responded_at = :responded_at, #client_comments = :client_comments"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":         &types.AttributeValueMemberS{Value: string(entities.AuthorizationStatusPending)},
			":status":          &types.AttributeValueMemberS{Value: string(status)},
			":responded_at":    &types.AttributeValueMemberS{Value: respondedAt.UTC().Format(time.RFC3339Nano)},
			":client_comments": &types.AttributeValueMemberS{Value: comments},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#status":          "status",
			"#responded_at":    "responded_at",
			"#client_comments": "client_comments",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AuthorizationRequest{}, nil
		}
		return entities.AuthorizationRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.AuthorizationRequest{}, nil
	}

	var it authorizationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AuthorizationRequest{}, err
	}
	return fromAuthorizationItem(it), nil
}

func toAuthorizationItem(a entities.AuthorizationRequest) authorizationItem {
	it := authorizationItem{
		ID:             a.ID,
		WorkOrderID:    a.WorkOrderID,
		Reason:         a.Reason,
		Details:        a.Details,
		Status:         string(a.Status),
		SentBy:         a.SentBy,
		SentAt:         a.SentAt.UTC().Format(time.RFC3339Nano),
		ClientComments: a.ClientComments,
	}
	if a.EstimatedAdditionalCost != 0 {
		it.EstimatedAdditionalCost = floatToString(a.EstimatedAdditionalCost)
	}
	if a.RespondedAt != nil {
		it.RespondedAt = a.RespondedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromAuthorizationItem(it authorizationItem) entities.AuthorizationRequest {
	sentAt, _ := time.Parse(time.RFC3339Nano, it.SentAt)
	estimatedCost, _ := strconv.ParseFloat(it.EstimatedAdditionalCost, 64)

	a := entities.AuthorizationRequest{
		ID:                      it.ID,
		WorkOrderID:             it.WorkOrderID,
		Reason:                  it.Reason,
		Details:                 it.Details,
		EstimatedAdditionalCost: estimatedCost,
		Status:                  entities.AuthorizationStatus(it.Status),
		SentBy:                  it.SentBy,
		SentAt:                  sentAt,
		ClientComments:          it.ClientComments,
	}
	if it.RespondedAt != "" {
		if respondedAt, err := time.Parse(time.RFC3339Nano, it.RespondedAt); err == nil {
			a.RespondedAt = &respondedAt
		}
	}
	return a
}
