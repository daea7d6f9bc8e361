package repository

import (
	"context"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConnectionsTableName = "connection_requests"
	connectionsBuildingIndex    = "building_id-index"
)

type connectionItem struct {
	ID          string `dynamodbav:"request_id"`
	UserID      string `dynamodbav:"user_id"`
	UserName    string `dynamodbav:"user_name"`
	UserMobile  string `dynamodbav:"user_mobile"`
	BuildingID  string `dynamodbav:"building_id"`
	Wing        string `dynamodbav:"wing"`
	Floor       int    `dynamodbav:"floor"`
	UnitNumber  string `dynamodbav:"unit_number"`
	Status      string `dynamodbav:"status"`
	ProcessedBy string `dynamodbav:"processed_by,omitempty"`
	ProcessedAt string `dynamodbav:"processed_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ConnectionDynamoRepository persists connection requests in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string)
//   - GSI: building_id-index (PK: building_id)

type ConnectionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConnectionRepository = (*ConnectionDynamoRepository)(nil)

func NewConnectionDynamoRepository(ddb *dynamodb.Client) *ConnectionDynamoRepository {
	return &ConnectionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONNECTION_REQUESTS_TABLE", defaultConnectionsTableName),
	}
}

func (r *ConnectionDynamoRepository) Create(ctx context.Context, req entities.ConnectionRequest) (entities.ConnectionRequest, error) {
	av, err := attributevalue.MarshalMap(toConnectionItem(req))
	if err != nil {
		return entities.ConnectionRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "request_id",
		},
	})
	if err != nil {
		return entities.ConnectionRequest{}, wrapConditional(err)
	}
	return req, nil
}

func (r *ConnectionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConnectionRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConnectionRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConnectionRequest{}, nil
	}

	var it connectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConnectionRequest{}, err
	}
	return fromConnectionItem(it), nil
}

func (r *ConnectionDynamoRepository) ListByBuilding(ctx context.Context, buildingID string) ([]entities.ConnectionRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(connectionsBuildingIndex),
		KeyConditionExpression: aws.String("building_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: buildingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ConnectionRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it connectionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromConnectionItem(it))
	}
	return items, nil
}

func (r *ConnectionDynamoRepository) UpdateStatusIfPending(ctx context.Context, id string, status entities.ConnectionStatus, processedBy string) (entities.ConnectionRequest, error) {
	now := formatTime(nowUTC())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #processed_by = :processed_by, #processed_at = :now, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "request_id",
			"#status":       "status",
			"#processed_by": "processed_by",
			"#processed_at": "processed_at",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":      &types.AttributeValueMemberS{Value: string(entities.ConnectionStatusPending)},
			":status":       &types.AttributeValueMemberS{Value: string(status)},
			":processed_by": &types.AttributeValueMemberS{Value: processedBy},
			":now":          &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ConnectionRequest{}, wrapConditional(err)
	}

	var it connectionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ConnectionRequest{}, err
	}
	return fromConnectionItem(it), nil
}

func toConnectionItem(req entities.ConnectionRequest) connectionItem {
	it := connectionItem{
		ID:          req.ID,
		UserID:      req.UserID,
		UserName:    req.UserName,
		UserMobile:  req.UserMobile,
		BuildingID:  req.BuildingID,
		Wing:        req.Wing,
		Floor:       req.Floor,
		UnitNumber:  req.UnitNumber,
		Status:      string(req.Status),
		ProcessedBy: req.ProcessedBy,
		CreatedAt:   formatTime(req.CreatedAt),
		UpdatedAt:   formatTime(req.UpdatedAt),
	}
	if !req.ProcessedAt.IsZero() {
		it.ProcessedAt = formatTime(req.ProcessedAt)
	}
	return it
}

func fromConnectionItem(it connectionItem) entities.ConnectionRequest {
	req := entities.ConnectionRequest{
		ID:          it.ID,
		UserID:      it.UserID,
		UserName:    it.UserName,
		UserMobile:  it.UserMobile,
		BuildingID:  it.BuildingID,
		Wing:        it.Wing,
		Floor:       it.Floor,
		UnitNumber:  it.UnitNumber,
		Status:      entities.ConnectionStatus(it.Status),
		ProcessedBy: it.ProcessedBy,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.ProcessedAt != "" {
		req.ProcessedAt = parseTime(it.ProcessedAt)
	}
	return req
}
