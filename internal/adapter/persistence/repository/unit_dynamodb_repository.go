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
	defaultUnitsTableName = "user_units"
	unitsBuildingIndex    = "building_id-index"
	unitsUserIndex        = "user_id-index"
)

type unitItem struct {
	OccupancyID string `dynamodbav:"occupancy_id"`
	BuildingID  string `dynamodbav:"building_id"`
	Wing        string `dynamodbav:"wing"`
	Floor       int    `dynamodbav:"floor"`
	UnitNumber  string `dynamodbav:"unit_number"`
	UserID      string `dynamodbav:"user_id"`
	Status      string `dynamodbav:"status"`
	AssignedAt  string `dynamodbav:"assigned_at"`
}

// UnitDynamoRepository persists unit assignments in DynamoDB.
//
// Table requirements:
//   - PK: occupancy_id (string)
//   - GSI: building_id-index (PK: building_id)
//   - GSI: user_id-index (PK: user_id)
//
// The PK is the occupancy tuple, so the conditional put in Create is the
// whole uniqueness story: the dwelling is either free (or released) and the
// write wins, or the condition fails.

type UnitDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUnitRepository = (*UnitDynamoRepository)(nil)

func NewUnitDynamoRepository(ddb *dynamodb.Client) *UnitDynamoRepository {
	return &UnitDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USER_UNITS_TABLE", defaultUnitsTableName),
	}
}

func (r *UnitDynamoRepository) Create(ctx context.Context, u entities.UnitAssignment) (entities.UnitAssignment, error) {
	av, err := attributevalue.MarshalMap(toUnitItem(u))
	if err != nil {
		return entities.UnitAssignment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #status = :inactive"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "occupancy_id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inactive": &types.AttributeValueMemberS{Value: string(entities.UnitStatusInactive)},
		},
	})
	if err != nil {
		return entities.UnitAssignment{}, wrapConditional(err)
	}
	return u, nil
}

func (r *UnitDynamoRepository) GetByOccupancy(ctx context.Context, occupancyID string) (entities.UnitAssignment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"occupancy_id": &types.AttributeValueMemberS{Value: occupancyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UnitAssignment{}, err
	}
	if len(out.Item) == 0 {
		return entities.UnitAssignment{}, nil
	}

	var it unitItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UnitAssignment{}, err
	}
	return fromUnitItem(it), nil
}

func (r *UnitDynamoRepository) ListByBuilding(ctx context.Context, buildingID string) ([]entities.UnitAssignment, error) {
	return r.queryIndex(ctx, unitsBuildingIndex, "building_id", buildingID)
}

func (r *UnitDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.UnitAssignment, error) {
	return r.queryIndex(ctx, unitsUserIndex, "user_id", userID)
}

func (r *UnitDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.UnitAssignment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.UnitAssignment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it unitItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUnitItem(it))
	}
	return items, nil
}

func toUnitItem(u entities.UnitAssignment) unitItem {
	return unitItem{
		OccupancyID: u.OccupancyID,
		BuildingID:  u.BuildingID,
		Wing:        u.Wing,
		Floor:       u.Floor,
		UnitNumber:  u.UnitNumber,
		UserID:      u.UserID,
		Status:      string(u.Status),
		AssignedAt:  formatTime(u.AssignedAt),
	}
}

func fromUnitItem(it unitItem) entities.UnitAssignment {
	return entities.UnitAssignment{
		OccupancyID: it.OccupancyID,
		BuildingID:  it.BuildingID,
		Wing:        it.Wing,
		Floor:       it.Floor,
		UnitNumber:  it.UnitNumber,
		UserID:      it.UserID,
		Status:      entities.UnitStatus(it.Status),
		AssignedAt:  parseTime(it.AssignedAt),
	}
}
