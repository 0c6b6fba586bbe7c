package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkOrdersTableName = "work_orders"

type workOrderItem struct {
	ID                      string `dynamodbav:"id"`
	ClientID                string `dynamodbav:"client_id"`
	VehicleID               string `dynamodbav:"vehicle_id"`
	AdvisorID               string `dynamodbav:"advisor_id,omitempty"`
	MechanicID              string `dynamodbav:"mechanic_id,omitempty"`
	Status                  string `dynamodbav:"status"`
	ReceptionNotes          string `dynamodbav:"reception_notes,omitempty"`
	OdometerIn              int64  `dynamodbav:"odometer_in,omitempty"`
	EstimatedCompletionDate string `dynamodbav:"estimated_completion_date,omitempty"`
	EstimatedHours          string `dynamodbav:"estimated_hours,omitempty"`
	CreatedAt               string `dynamodbav:"created_at"`
	UpdatedAt               string `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	it := toWorkOrderItem(wo)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkOrder{}, err
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
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:             wo.ID,
		ClientID:       wo.ClientID,
		VehicleID:      wo.VehicleID,
		AdvisorID:      wo.AdvisorID,
		MechanicID:     wo.MechanicID,
		Status:         string(wo.Status),
		ReceptionNotes: wo.ReceptionNotes,
		OdometerIn:     wo.OdometerIn,
		CreatedAt:      wo.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      wo.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if wo.EstimatedCompletionDate != nil {
		it.EstimatedCompletionDate = wo.EstimatedCompletionDate.UTC().Format(time.RFC3339Nano)
	}
	if wo.EstimatedHours != 0 {
		it.EstimatedHours = floatToString(wo.EstimatedHours)
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	estimatedHours, _ := strconv.ParseFloat(it.EstimatedHours, 64)

	wo := entities.WorkOrder{
		ID:             it.ID,
		ClientID:       it.ClientID,
		VehicleID:      it.VehicleID,
		AdvisorID:      it.AdvisorID,
		MechanicID:     it.MechanicID,
		Status:         entities.WorkOrderStatus(it.Status),
		ReceptionNotes: it.ReceptionNotes,
		OdometerIn:     it.OdometerIn,
		EstimatedHours: estimatedHours,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.EstimatedCompletionDate != "" {
		if ecd, err := time.Parse(time.RFC3339Nano, it.EstimatedCompletionDate); err == nil {
			wo.EstimatedCompletionDate = &ecd
		}
	}
	return wo
}
