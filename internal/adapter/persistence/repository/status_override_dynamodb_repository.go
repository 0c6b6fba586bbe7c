package repository

import (
	"context"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStatusOverridesTableName = "status_overrides"

type statusOverrideItem struct {
	WorkOrderID string `dynamodbav:"work_order_id"`
	Status      string `dynamodbav:"status"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// StatusOverrideDynamoRepository persists StatusOverrideEntry records in DynamoDB.
//
// Table requirements:
//   - PK: work_order_id (string)
//
// Put is an unconditional replace: the override table is append/replace-only
// and the latest write always wins.

type StatusOverrideDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatusOverrideRepository = (*StatusOverrideDynamoRepository)(nil)

func NewStatusOverrideDynamoRepository(ddb *dynamodb.Client) *StatusOverrideDynamoRepository {
	return &StatusOverrideDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATUS_OVERRIDES_TABLE", defaultStatusOverridesTableName),
	}
}

func (r *StatusOverrideDynamoRepository) Get(ctx context.Context, workOrderID string) (entities.StatusOverrideEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"work_order_id": &types.AttributeValueMemberS{Value: workOrderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StatusOverrideEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.StatusOverrideEntry{}, nil
	}

	var it statusOverrideItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StatusOverrideEntry{}, err
	}
	return fromStatusOverrideItem(it), nil
}

func (r *StatusOverrideDynamoRepository) Put(ctx context.Context, e entities.StatusOverrideEntry) (entities.StatusOverrideEntry, error) {
	it := statusOverrideItem{
		WorkOrderID: e.WorkOrderID,
		Status:      string(e.Status),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.StatusOverrideEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.StatusOverrideEntry{}, err
	}
	return e, nil
}

func fromStatusOverrideItem(it statusOverrideItem) entities.StatusOverrideEntry {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.StatusOverrideEntry{
		WorkOrderID: it.WorkOrderID,
		Status:      entities.WorkOrderStatus(it.Status),
		UpdatedAt:   updatedAt,
	}
}
