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
	defaultBuildingsTableName = "buildings"
	buildingsOwnerIndex       = "owner_id-index"
)

type wingDetailItem struct {
	TotalFloors   int `dynamodbav:"total_floors"`
	UnitsPerFloor int `dynamodbav:"units_per_floor"`
	TotalUnits    int `dynamodbav:"total_units"`
}

type buildingItem struct {
	ID          string                    `dynamodbav:"building_id"`
	Name        string                    `dynamodbav:"building_name"`
	OwnerID     string                    `dynamodbav:"owner_id"`
	Wings       []string                  `dynamodbav:"wings"`
	WingDetails map[string]wingDetailItem `dynamodbav:"wing_details"`
	TotalWings  int                       `dynamodbav:"total_wings"`
	TotalUnits  int                       `dynamodbav:"total_units_of_building"`
	Status      string                    `dynamodbav:"status"`
	CreatedAt   string                    `dynamodbav:"created_at"`
	UpdatedAt   string                    `dynamodbav:"updated_at"`
}

// BuildingDynamoRepository persists Building entities in DynamoDB.
//
// Table requirements:
//   - PK: building_id (string)
//   - GSI: owner_id-index (PK: owner_id)

type BuildingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBuildingRepository = (*BuildingDynamoRepository)(nil)

func NewBuildingDynamoRepository(ddb *dynamodb.Client) *BuildingDynamoRepository {
	return &BuildingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUILDINGS_TABLE", defaultBuildingsTableName),
	}
}

func (r *BuildingDynamoRepository) Create(ctx context.Context, b entities.Building) (entities.Building, error) {
	av, err := attributevalue.MarshalMap(toBuildingItem(b))
	if err != nil {
		return entities.Building{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "building_id",
		},
	})
	if err != nil {
		return entities.Building{}, wrapConditional(err)
	}
	return b, nil
}

func (r *BuildingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Building, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"building_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Building{}, err
	}
	if len(out.Item) == 0 {
		return entities.Building{}, nil
	}

	var it buildingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Building{}, err
	}
	return fromBuildingItem(it), nil
}

func (r *BuildingDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Building, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(buildingsOwnerIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Building, 0, len(out.Items))
	for _, raw := range out.Items {
		var it buildingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBuildingItem(it))
	}
	return items, nil
}

func (r *BuildingDynamoRepository) Update(ctx context.Context, b entities.Building) (entities.Building, error) {
	details, err := attributevalue.Marshal(toWingDetailItems(b.WingDetails))
	if err != nil {
		return entities.Building{}, err
	}
	wings, err := attributevalue.Marshal(b.Wings)
	if err != nil {
		return entities.Building{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"building_id": &types.AttributeValueMemberS{Value: b.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #name = :name, #wings = :wings, #wing_details = :wing_details, " +
			"#total_wings = :total_wings, #total_units = :total_units, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "building_id",
			"#name":         "building_name",
			"#wings":        "wings",
			"#wing_details": "wing_details",
			"#total_wings":  "total_wings",
			"#total_units":  "total_units_of_building",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":         &types.AttributeValueMemberS{Value: b.Name},
			":wings":        wings,
			":wing_details": details,
			":total_wings":  &types.AttributeValueMemberN{Value: itoa(b.TotalWings)},
			":total_units":  &types.AttributeValueMemberN{Value: itoa(b.TotalUnits)},
			":updated_at":   &types.AttributeValueMemberS{Value: formatTime(b.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Building{}, wrapConditional(err)
	}

	var it buildingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Building{}, err
	}
	return fromBuildingItem(it), nil
}

func (r *BuildingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BuildingStatus) (entities.Building, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"building_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "building_id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Building{}, wrapConditional(err)
	}

	var it buildingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Building{}, err
	}
	return fromBuildingItem(it), nil
}

func toBuildingItem(b entities.Building) buildingItem {
	return buildingItem{
		ID:          b.ID,
		Name:        b.Name,
		OwnerID:     b.OwnerID,
		Wings:       b.Wings,
		WingDetails: toWingDetailItems(b.WingDetails),
		TotalWings:  b.TotalWings,
		TotalUnits:  b.TotalUnits,
		Status:      string(b.Status),
		CreatedAt:   formatTime(b.CreatedAt),
		UpdatedAt:   formatTime(b.UpdatedAt),
	}
}

func fromBuildingItem(it buildingItem) entities.Building {
	details := make(map[string]entities.WingDetail, len(it.WingDetails))
	for name, d := range it.WingDetails {
		details[name] = entities.WingDetail{
			TotalFloors:   d.TotalFloors,
			UnitsPerFloor: d.UnitsPerFloor,
			TotalUnits:    d.TotalUnits,
		}
	}
	return entities.Building{
		ID:          it.ID,
		Name:        it.Name,
		OwnerID:     it.OwnerID,
		Wings:       it.Wings,
		WingDetails: details,
		TotalWings:  it.TotalWings,
		TotalUnits:  it.TotalUnits,
		Status:      entities.BuildingStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toWingDetailItems(details map[string]entities.WingDetail) map[string]wingDetailItem {
	out := make(map[string]wingDetailItem, len(details))
	for name, d := range details {
		out[name] = wingDetailItem{
			TotalFloors:   d.TotalFloors,
			UnitsPerFloor: d.UnitsPerFloor,
			TotalUnits:    d.TotalUnits,
		}
	}
	return out
}
