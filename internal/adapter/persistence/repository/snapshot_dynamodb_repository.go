package repository

import (
	"context"

	"photostudio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSnapshotsTableName = "snapshots"

type snapshotItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// SnapshotDynamoRepository is the durable key/value store for cart and
// session snapshots.
//
// Table requirements:
//   - PK: key (string)
//
// Values are opaque strings; the use cases own their serialization and treat
// parse failures as "start from the default state". The table is assumed
// single-writer, so plain PutItem overwrites are safe.

type SnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISnapshotStore = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb *dynamodb.Client) *SnapshotDynamoRepository {
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

func (r *SnapshotDynamoRepository) Get(ctx context.Context, key string) (string, bool, error) {
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

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Value, true, nil
}

func (r *SnapshotDynamoRepository) Set(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(snapshotItem{Key: key, Value: value})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SnapshotDynamoRepository) Remove(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
