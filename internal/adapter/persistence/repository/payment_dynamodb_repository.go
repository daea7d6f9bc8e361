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
	defaultPaymentsTableName = "payments"
	paymentsBillIndex        = "bill_id-index"
	paymentsBuildingIndex    = "building_id-index"
)

type paymentItem struct {
	ID            string `dynamodbav:"payment_id"`
	BillID        string `dynamodbav:"bill_id"`
	MaintenanceID string `dynamodbav:"maintenance_id,omitempty"`
	UnitBillID    string `dynamodbav:"unit_maintenance_id,omitempty"`
	BuildingID    string `dynamodbav:"building_id"`
	UserID        string `dynamodbav:"user_id"`
	Amount        string `dynamodbav:"amount"`
	Method        string `dynamodbav:"payment_method"`
	TransactionID string `dynamodbav:"transaction_id"`
	Wing          string `dynamodbav:"wing,omitempty"`
	Floor         int    `dynamodbav:"floor,omitempty"`
	UnitNumber    string `dynamodbav:"unit_number,omitempty"`
	PaidAt        string `dynamodbav:"payment_date"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists payments in DynamoDB.
//
// Table requirements:
//   - PK: payment_id (string)
//   - GSI: bill_id-index (PK: bill_id)
//   - GSI: building_id-index (PK: building_id)
//
// Recording a payment and flipping the referenced bill are one
// TransactWriteItems call, so a payment row never exists next to a bill that
// still reads unpaid.

type PaymentDynamoRepository struct {
	ddb                *dynamodb.Client
	tableName          string
	unitBillsTableName string
	maintenanceTable   string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:                ddb,
		tableName:          getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		unitBillsTableName: getenvDefault("UNIT_MAINTENANCE_TABLE", defaultUnitBillsTableName),
		maintenanceTable:   getenvDefault("MAINTENANCE_TABLE", defaultMaintenanceTableName),
	}
}

func (r *PaymentDynamoRepository) RecordUnitBillPayment(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	putItem, err := r.paymentPut(p)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: putItem},
			{
				Update: &types.Update{
					TableName: aws.String(r.unitBillsTableName),
					Key: map[string]types.AttributeValue{
						"unit_maintenance_id": &types.AttributeValueMemberS{Value: p.UnitBillID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #payment_status = :unpaid"),
					UpdateExpression:    aws.String("SET #payment_status = :paid, #status = :paid_status, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":             "unit_maintenance_id",
						"#payment_status": "payment_status",
						"#status":         "status",
						"#updated_at":     "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":unpaid":      &types.AttributeValueMemberS{Value: string(entities.PaymentStatusUnpaid)},
						":paid":        &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
						":paid_status": &types.AttributeValueMemberS{Value: string(entities.BillStatusPaid)},
						":updated_at":  &types.AttributeValueMemberS{Value: formatTime(p.CreatedAt)},
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Payment{}, wrapConditional(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) RecordBuildingBillPayment(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	putItem, err := r.paymentPut(p)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: putItem},
			{
				Update: &types.Update{
					TableName: aws.String(r.maintenanceTable),
					Key: map[string]types.AttributeValue{
						"maintenance_id": &types.AttributeValueMemberS{Value: p.MaintenanceID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
					UpdateExpression:    aws.String("SET #status = :paid, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "maintenance_id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":    &types.AttributeValueMemberS{Value: string(entities.BillStatusPending)},
						":paid":       &types.AttributeValueMemberS{Value: string(entities.BillStatusPaid)},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(p.CreatedAt)},
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Payment{}, wrapConditional(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) paymentPut(p entities.Payment) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "payment_id",
		},
	}, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

func (r *PaymentDynamoRepository) ListByBillID(ctx context.Context, billID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, paymentsBillIndex, "bill_id", billID)
}

func (r *PaymentDynamoRepository) ListByBuilding(ctx context.Context, buildingID string) ([]entities.Payment, error) {
	return r.queryIndex(ctx, paymentsBuildingIndex, "building_id", buildingID)
}

func (r *PaymentDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Payment, error) {
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

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		p, err := fromPaymentItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:            p.ID,
		BillID:        p.BillID(),
		MaintenanceID: p.MaintenanceID,
		UnitBillID:    p.UnitBillID,
		BuildingID:    p.BuildingID,
		UserID:        p.UserID,
		Amount:        p.Amount.String(),
		Method:        string(p.Method),
		TransactionID: p.TransactionID,
		Wing:          p.Wing,
		Floor:         p.Floor,
		UnitNumber:    p.UnitNumber,
		PaidAt:        formatTime(p.PaidAt),
		CreatedAt:     formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("payment %s: bad stored amount %q: %w", it.ID, it.Amount, err)
	}
	return entities.Payment{
		ID:            it.ID,
		MaintenanceID: it.MaintenanceID,
		UnitBillID:    it.UnitBillID,
		BuildingID:    it.BuildingID,
		UserID:        it.UserID,
		Amount:        amount,
		Method:        entities.PaymentMethod(it.Method),
		TransactionID: it.TransactionID,
		Wing:          it.Wing,
		Floor:         it.Floor,
		UnitNumber:    it.UnitNumber,
		PaidAt:        parseTime(it.PaidAt),
		CreatedAt:     parseTime(it.CreatedAt),
	}, nil
}
