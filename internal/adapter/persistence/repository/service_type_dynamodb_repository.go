package repository

import (
	"context"
	"strconv"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceTypesTableName = "service_types"

type serviceTypeItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ServiceTypeDynamoRepository persists the ServiceType catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceTypeRepository = (*ServiceTypeDynamoRepository)(nil)

func NewServiceTypeDynamoRepository(ddb *dynamodb.Client) *ServiceTypeDynamoRepository {
	return &ServiceTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_TYPES_TABLE", defaultServiceTypesTableName),
	}
}

func (r *ServiceTypeDynamoRepository) Create(ctx context.Context, st entities.ServiceType) (entities.ServiceType, error) {
	it := serviceTypeItem{
		ID:          st.ID,
		Name:        st.Name,
		Description: st.Description,
		Price:       floatToString(st.Price),
		CreatedAt:   st.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   st.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceType{}, err
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
		return entities.ServiceType{}, err
	}
	return st, nil
}

func (r *ServiceTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceType{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceType{}, nil
	}

	var it serviceTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceType{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.ServiceType{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
