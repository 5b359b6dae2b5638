package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "custom_orders"

type customOrderItem struct {
	ID          string `dynamodbav:"id"`
	OrderNumber string `dynamodbav:"order_number"`
	CreatedAt   string `dynamodbav:"created_at"`
	Document    string `dynamodbav:"document"`
}

// OrderDynamoRepository persists CustomOrder entities in DynamoDB for
// deployments that run a real order backend.
//
// Table requirements:
//   - PK: id (string)
//
// The order is stored whole as a JSON document attribute; order_number and
// created_at are duplicated as plain attributes for listing without parsing
// every document.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderBackend = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) CreateOrder(ctx context.Context, order entities.CustomOrder) (entities.CustomOrder, error) {
	it, err := toCustomOrderItem(order)
	if err != nil {
		return entities.CustomOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CustomOrder{}, err
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
		return entities.CustomOrder{}, err
	}
	return order, nil
}

func (r *OrderDynamoRepository) UpdateOrder(ctx context.Context, order entities.CustomOrder) (entities.CustomOrder, error) {
	it, err := toCustomOrderItem(order)
	if err != nil {
		return entities.CustomOrder{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CustomOrder{}, err
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
			return entities.CustomOrder{}, nil
		}
		return entities.CustomOrder{}, err
	}
	return order, nil
}

func (r *OrderDynamoRepository) FetchOrder(ctx context.Context, id string) (entities.CustomOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CustomOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomOrder{}, nil
	}

	var it customOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomOrder{}, err
	}
	return fromCustomOrderItem(it)
}

func (r *OrderDynamoRepository) FetchOrders(ctx context.Context, filters interfaces.OrderFilters) ([]entities.CustomOrder, error) {
	orders := make([]entities.CustomOrder, 0)

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []customOrderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			order, err := fromCustomOrderItem(it)
			if err != nil {
				return nil, err
			}
			if orderMatchesFilters(order, filters) {
				orders = append(orders, order)
			}
		}
	}

	// Most-recent-first, matching the storefront's canonical listing order.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func toCustomOrderItem(order entities.CustomOrder) (customOrderItem, error) {
	doc, err := json.Marshal(order)
	if err != nil {
		return customOrderItem{}, err
	}
	return customOrderItem{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		CreatedAt:   order.CreatedAt.UTC().Format(time.RFC3339Nano),
		Document:    string(doc),
	}, nil
}

func fromCustomOrderItem(it customOrderItem) (entities.CustomOrder, error) {
	var order entities.CustomOrder
	if err := json.Unmarshal([]byte(it.Document), &order); err != nil {
		return entities.CustomOrder{}, err
	}
	return order, nil
}

func orderMatchesFilters(order entities.CustomOrder, filters interfaces.OrderFilters) bool {
	if filters.Status != "" && order.Status != filters.Status {
		return false
	}
	if filters.ServiceType != "" && order.ServiceType != filters.ServiceType {
		return false
	}
	if filters.DateFrom != nil && order.CreatedAt.Before(*filters.DateFrom) {
		return false
	}
	if filters.DateTo != nil && order.CreatedAt.After(*filters.DateTo) {
		return false
	}
	if s := strings.TrimSpace(filters.Search); s != "" {
		needle := strings.ToLower(s)
		if !strings.Contains(strings.ToLower(order.OrderNumber), needle) &&
			!strings.Contains(strings.ToLower(order.CustomerName), needle) &&
			!strings.Contains(strings.ToLower(order.CustomerEmail), needle) {
			return false
		}
	}
	return true
}
