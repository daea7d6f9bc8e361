package repository

import (
	"context"
	"fmt"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultUnitBillsTableName = "unit_maintenance_bills"
	unitBillsBuildingIndex    = "building_id-index"
	unitBillsMaintenanceIndex = "maintenance_id-index"
	unitBillsUserIndex        = "user_id-index"
)

type resolvedLineItem struct {
	Name   string `dynamodbav:"name"`
	Amount string `dynamodbav:"amount"`
}

type unitBillItem struct {
	ID            string             `dynamodbav:"unit_maintenance_id"`
	MaintenanceID string             `dynamodbav:"maintenance_id"`
	BuildingID    string             `dynamodbav:"building_id"`
	UserID        string             `dynamodbav:"user_id"`
	Wing          string             `dynamodbav:"wing"`
	Floor         int                `dynamodbav:"floor"`
	UnitNumber    string             `dynamodbav:"unit_number"`
	BillLines     []resolvedLineItem `dynamodbav:"bill_lines"`
	TotalAmount   string             `dynamodbav:"total_amount"`
	Status        string             `dynamodbav:"status"`
	PaymentStatus string             `dynamodbav:"payment_status"`
	CreatedAt     string             `dynamodbav:"created_at"`
	UpdatedAt     string             `dynamodbav:"updated_at"`
}

// UnitBillDynamoRepository persists per-unit maintenance bills.
//
// Table requirements:
//   - PK: unit_maintenance_id (string)
//   - GSI: building_id-index (PK: building_id)
//   - GSI: maintenance_id-index (PK: maintenance_id)
//   - GSI: user_id-index (PK: user_id)
//
// The PK is deterministic per (maintenance, wing, floor, unit), which turns
// PutNew's existence condition into the allocation idempotency guard.

type UnitBillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUnitBillRepository = (*UnitBillDynamoRepository)(nil)

func NewUnitBillDynamoRepository(ddb *dynamodb.Client) *UnitBillDynamoRepository {
	return &UnitBillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UNIT_MAINTENANCE_TABLE", defaultUnitBillsTableName),
	}
}

func (r *UnitBillDynamoRepository) PutNew(ctx context.Context, b entities.UnitMaintenanceBill) error {
	av, err := attributevalue.MarshalMap(toUnitBillItem(b))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "unit_maintenance_id",
		},
	})
	return wrapConditional(err)
}

func (r *UnitBillDynamoRepository) PutOverwriteUnpaid(ctx context.Context, b entities.UnitMaintenanceBill) error {
	av, err := attributevalue.MarshalMap(toUnitBillItem(b))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #payment_status = :unpaid"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "unit_maintenance_id",
			"#payment_status": "payment_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":unpaid": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusUnpaid)},
		},
	})
	return wrapConditional(err)
}

func (r *UnitBillDynamoRepository) GetByID(ctx context.Context, id string) (entities.UnitMaintenanceBill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"unit_maintenance_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UnitMaintenanceBill{}, err
	}
	if len(out.Item) == 0 {
		return entities.UnitMaintenanceBill{}, nil
	}

	var it unitBillItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UnitMaintenanceBill{}, err
	}
	return fromUnitBillItem(it)
}

func (r *UnitBillDynamoRepository) ListByMaintenance(ctx context.Context, maintenanceID string) ([]entities.UnitMaintenanceBill, error) {
	return r.queryIndex(ctx, unitBillsMaintenanceIndex, "maintenance_id", maintenanceID)
}

func (r *UnitBillDynamoRepository) ListByBuilding(ctx context.Context, buildingID string) ([]entities.UnitMaintenanceBill, error) {
	return r.queryIndex(ctx, unitBillsBuildingIndex, "building_id", buildingID)
}

func (r *UnitBillDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.UnitMaintenanceBill, error) {
	return r.queryIndex(ctx, unitBillsUserIndex, "user_id", userID)
}

func (r *UnitBillDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.UnitMaintenanceBill, error) {
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

	items := make([]entities.UnitMaintenanceBill, 0, len(out.Items))
	for _, raw := range out.Items {
		var it unitBillItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		b, err := fromUnitBillItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, nil
}

func (r *UnitBillDynamoRepository) UpdateLines(ctx context.Context, id string, lines []entities.ResolvedBillLine, total decimal.Decimal) (entities.UnitMaintenanceBill, error) {
	lineItems := make([]resolvedLineItem, 0, len(lines))
	for _, l := range lines {
		lineItems = append(lineItems, resolvedLineItem{Name: l.Name, Amount: l.Amount.String()})
	}
	linesAV, err := attributevalue.Marshal(lineItems)
	if err != nil {
		return entities.UnitMaintenanceBill{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"unit_maintenance_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #payment_status = :unpaid"),
		UpdateExpression:    aws.String("SET #bill_lines = :bill_lines, #total_amount = :total_amount, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "unit_maintenance_id",
			"#payment_status": "payment_status",
			"#bill_lines":     "bill_lines",
			"#total_amount":   "total_amount",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":unpaid":       &types.AttributeValueMemberS{Value: string(entities.PaymentStatusUnpaid)},
			":bill_lines":   linesAV,
			":total_amount": &types.AttributeValueMemberS{Value: total.String()},
			":updated_at":   &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.UnitMaintenanceBill{}, wrapConditional(err)
	}

	var it unitBillItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.UnitMaintenanceBill{}, err
	}
	return fromUnitBillItem(it)
}

func (r *UnitBillDynamoRepository) DeleteUnpaid(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"unit_maintenance_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#payment_status = :unpaid"),
		ExpressionAttributeNames: map[string]string{
			"#payment_status": "payment_status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":unpaid": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusUnpaid)},
		},
	})
	return wrapConditional(err)
}

func toUnitBillItem(b entities.UnitMaintenanceBill) unitBillItem {
	lines := make([]resolvedLineItem, 0, len(b.BillLines))
	for _, l := range b.BillLines {
		lines = append(lines, resolvedLineItem{Name: l.Name, Amount: l.Amount.String()})
	}
	return unitBillItem{
		ID:            b.ID,
		MaintenanceID: b.MaintenanceID,
		BuildingID:    b.BuildingID,
		UserID:        b.UserID,
		Wing:          b.Wing,
		Floor:         b.Floor,
		UnitNumber:    b.UnitNumber,
		BillLines:     lines,
		TotalAmount:   b.TotalAmount.String(),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     formatTime(b.CreatedAt),
		UpdatedAt:     formatTime(b.UpdatedAt),
	}
}

func fromUnitBillItem(it unitBillItem) (entities.UnitMaintenanceBill, error) {
	lines := make([]entities.ResolvedBillLine, 0, len(it.BillLines))
	for _, l := range it.BillLines {
		amount, err := decimal.NewFromString(l.Amount)
		if err != nil {
			return entities.UnitMaintenanceBill{}, fmt.Errorf("unit bill %s: bad stored line amount %q: %w", it.ID, l.Amount, err)
		}
		lines = append(lines, entities.ResolvedBillLine{Name: l.Name, Amount: amount})
	}
	total, err := decimal.NewFromString(it.TotalAmount)
	if err != nil {
		return entities.UnitMaintenanceBill{}, fmt.Errorf("unit bill %s: bad stored total %q: %w", it.ID, it.TotalAmount, err)
	}
	return entities.UnitMaintenanceBill{
		ID:            it.ID,
		MaintenanceID: it.MaintenanceID,
		BuildingID:    it.BuildingID,
		UserID:        it.UserID,
		Wing:          it.Wing,
		Floor:         it.Floor,
		UnitNumber:    it.UnitNumber,
		BillLines:     lines,
		TotalAmount:   total,
		Status:        entities.BillStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}, nil
}
