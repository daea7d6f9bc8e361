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
	defaultMembersTableName = "building_members"
	membersUserIndex        = "user_id-index"
)

type roleItem struct {
	BuildingID string `dynamodbav:"building_id"`
	UserID     string `dynamodbav:"user_id"`
	Role       string `dynamodbav:"role"`
	GrantedBy  string `dynamodbav:"granted_by"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// RoleDynamoRepository persists role assignments in DynamoDB.
//
// Table requirements:
//   - PK: building_id (string), SK: user_id (string)
//   - GSI: user_id-index (PK: user_id)
//
// This composite-key table is the only role store; there is deliberately no
// second membership shape.

type RoleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRoleRepository = (*RoleDynamoRepository)(nil)

func NewRoleDynamoRepository(ddb *dynamodb.Client) *RoleDynamoRepository {
	return &RoleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUILDING_MEMBERS_TABLE", defaultMembersTableName),
	}
}

func (r *RoleDynamoRepository) Get(ctx context.Context, buildingID, userID string) (entities.RoleAssignment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"building_id": &types.AttributeValueMemberS{Value: buildingID},
			"user_id":     &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RoleAssignment{}, err
	}
	if len(out.Item) == 0 {
		return entities.RoleAssignment{}, nil
	}

	var it roleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RoleAssignment{}, err
	}
	return fromRoleItem(it), nil
}

func (r *RoleDynamoRepository) ListByBuilding(ctx context.Context, buildingID string) ([]entities.RoleAssignment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("building_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: buildingID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRoleItems(out.Items)
}

func (r *RoleDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.RoleAssignment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(membersUserIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRoleItems(out.Items)
}

func (r *RoleDynamoRepository) PutIfAbsent(ctx context.Context, a entities.RoleAssignment) error {
	av, err := attributevalue.MarshalMap(toRoleItem(a))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#bid) AND attribute_not_exists(#uid)"),
		ExpressionAttributeNames: map[string]string{
			"#bid": "building_id",
			"#uid": "user_id",
		},
	})
	return wrapConditional(err)
}

func (r *RoleDynamoRepository) Overwrite(ctx context.Context, a entities.RoleAssignment) (entities.RoleAssignment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"building_id": &types.AttributeValueMemberS{Value: a.BuildingID},
			"user_id":     &types.AttributeValueMemberS{Value: a.UserID},
		},
		ConditionExpression: aws.String("attribute_exists(#bid)"),
		UpdateExpression:    aws.String("SET #role = :role, #granted_by = :granted_by, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#bid":        "building_id",
			"#role":       "role",
			"#granted_by": "granted_by",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role":       &types.AttributeValueMemberS{Value: string(a.Role)},
			":granted_by": &types.AttributeValueMemberS{Value: a.GrantedBy},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(a.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.RoleAssignment{}, wrapConditional(err)
	}

	var it roleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RoleAssignment{}, err
	}
	return fromRoleItem(it), nil
}

func (r *RoleDynamoRepository) Delete(ctx context.Context, buildingID, userID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"building_id": &types.AttributeValueMemberS{Value: buildingID},
			"user_id":     &types.AttributeValueMemberS{Value: userID},
		},
	})
	return err
}

func unmarshalRoleItems(raw []map[string]types.AttributeValue) ([]entities.RoleAssignment, error) {
	items := make([]entities.RoleAssignment, 0, len(raw))
	for _, m := range raw {
		var it roleItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRoleItem(it))
	}
	return items, nil
}

func toRoleItem(a entities.RoleAssignment) roleItem {
	return roleItem{
		BuildingID: a.BuildingID,
		UserID:     a.UserID,
		Role:       string(a.Role),
		GrantedBy:  a.GrantedBy,
		CreatedAt:  formatTime(a.CreatedAt),
		UpdatedAt:  formatTime(a.UpdatedAt),
	}
}

func fromRoleItem(it roleItem) entities.RoleAssignment {
	return entities.RoleAssignment{
		BuildingID: it.BuildingID,
		UserID:     it.UserID,
		Role:       entities.Role(it.Role),
		GrantedBy:  it.GrantedBy,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
