package repository

import (
	"context"
	"time"

	"my_trip/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultKVTableName = "my_trip_kv"

// DynamoKVAPI is the subset of *dynamodb.Client used by KVDynamoRepository.
type DynamoKVAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// KVDynamoRepository stores each key as one DynamoDB item.
//
// Table requirements:
//   - PK: key (string)
type KVDynamoRepository struct {
	ddb       DynamoKVAPI
	tableName string
}

var _ interfaces.IKeyValueStore = (*KVDynamoRepository)(nil)

func NewKVDynamoRepository(ddb DynamoKVAPI) *KVDynamoRepository {
	return &KVDynamoRepository{
		ddb:       ddb,
		tableName: KVTableName(),
	}
}

// KVTableName returns the configured table name (KV_TABLE).
func KVTableName() string {
	return getenvDefault("KV_TABLE", defaultKVTableName)
}

func (r *KVDynamoRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Value, true, nil
}

func (r *KVDynamoRepository) Set(ctx context.Context, key string, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *KVDynamoRepository) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
