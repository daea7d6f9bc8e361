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
	defaultMaintenanceTableName = "maintenance_bills"
	maintenanceBuildingIndex    = "building_id-index"
)

type billLineItem struct {
	Name          string `dynamodbav:"name"`
	FixedAmount   string `dynamodbav:"fixed_amount,omitempty"`
	RatePerUnit   string `dynamodbav:"rate_per_unit,omitempty"`
	UnitsConsumed string `dynamodbav:"units_consumed,omitempty"`
}

type maintenanceItem struct {
	ID          string         `dynamodbav:"maintenance_id"`
	BuildingID  string         `dynamodbav:"building_id"`
	CreatedBy   string         `dynamodbav:"created_by"`
	DueDate     string         `dynamodbav:"due_date"`
	Month       int            `dynamodbav:"month"`
	Year        int            `dynamodbav:"year"`
	AllWings    bool           `dynamodbav:"is_all_wings"`
	Wings       []string       `dynamodbav:"wings,omitempty"`
	Description string         `dynamodbav:"description,omitempty"`
	BillLines   []billLineItem `dynamodbav:"bill_lines"`
	Status      string         `dynamodbav:"status"`
	CreatedAt   string         `dynamodbav:"created_at"`
	UpdatedAt   string         `dynamodbav:"updated_at"`
}

// MaintenanceDynamoRepository persists building-level maintenance bills.
//
// Table requirements:
//   - PK: maintenance_id (string)
//   - GSI: building_id-index (PK: building_id)
//
// Monetary fields are stored as decimal strings; floats never cross this
// boundary.

type MaintenanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaintenanceRepository = (*MaintenanceDynamoRepository)(nil)

func NewMaintenanceDynamoRepository(ddb *dynamodb.Client) *MaintenanceDynamoRepository {
	return &MaintenanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MAINTENANCE_TABLE", defaultMaintenanceTableName),
	}
}

func (r *MaintenanceDynamoRepository) Create(ctx context.Context, m entities.MaintenanceBill) (entities.MaintenanceBill, error) {
	av, err := attributevalue.MarshalMap(toMaintenanceItem(m))
	if err != nil {
		return entities.MaintenanceBill{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "maintenance_id",
		},
	})
	if err != nil {
		return entities.MaintenanceBill{}, wrapConditional(err)
	}
	return m, nil
}

func (r *MaintenanceDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaintenanceBill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"maintenance_id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaintenanceBill{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaintenanceBill{}, nil
	}

	var it maintenanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaintenanceBill{}, err
	}
	return fromMaintenanceItem(it)
}

func (r *MaintenanceDynamoRepository) ListByBuilding(ctx context.Context, buildingID string) ([]entities.MaintenanceBill, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(maintenanceBuildingIndex),
		KeyConditionExpression: aws.String("building_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: buildingID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.MaintenanceBill, 0, len(out.Items))
	for _, raw := range out.Items {
		var it maintenanceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		m, err := fromMaintenanceItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, nil
}

func (r *MaintenanceDynamoRepository) DeletePending(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"maintenance_id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.BillStatusPending)},
		},
	})
	return wrapConditional(err)
}

func toMaintenanceItem(m entities.MaintenanceBill) maintenanceItem {
	lines := make([]billLineItem, 0, len(m.BillLines))
	for _, l := range m.BillLines {
		it := billLineItem{Name: l.Name}
		if l.FixedAmount != nil {
			it.FixedAmount = l.FixedAmount.String()
		}
		if l.RatePerUnit != nil {
			it.RatePerUnit = l.RatePerUnit.String()
		}
		if l.UnitsConsumed != nil {
			it.UnitsConsumed = l.UnitsConsumed.String()
		}
		lines = append(lines, it)
	}
	return maintenanceItem{
		ID:          m.ID,
		BuildingID:  m.BuildingID,
		CreatedBy:   m.CreatedBy,
		DueDate:     formatTime(m.DueDate),
		Month:       m.Month,
		Year:        m.Year,
		AllWings:    m.AllWings,
		Wings:       m.Wings,
		Description: m.Description,
		BillLines:   lines,
		Status:      string(m.Status),
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func fromMaintenanceItem(it maintenanceItem) (entities.MaintenanceBill, error) {
	lines := make([]entities.BillLine, 0, len(it.BillLines))
	for _, l := range it.BillLines {
		line := entities.BillLine{Name: l.Name}
		if l.FixedAmount != "" {
			d, err := decimal.NewFromString(l.FixedAmount)
			if err != nil {
				return entities.MaintenanceBill{}, fmt.Errorf("maintenance bill %s: bad stored fixed_amount %q: %w", it.ID, l.FixedAmount, err)
			}
			line.FixedAmount = &d
		}
		if l.RatePerUnit != "" {
			d, err := decimal.NewFromString(l.RatePerUnit)
			if err != nil {
				return entities.MaintenanceBill{}, fmt.Errorf("maintenance bill %s: bad stored rate_per_unit %q: %w", it.ID, l.RatePerUnit, err)
			}
			line.RatePerUnit = &d
		}
		if l.UnitsConsumed != "" {
			d, err := decimal.NewFromString(l.UnitsConsumed)
			if err != nil {
				return entities.MaintenanceBill{}, fmt.Errorf("maintenance bill %s: bad stored units_consumed %q: %w", it.ID, l.UnitsConsumed, err)
			}
			line.UnitsConsumed = &d
		}
		lines = append(lines, line)
	}
	return entities.MaintenanceBill{
		ID:          it.ID,
		BuildingID:  it.BuildingID,
		CreatedBy:   it.CreatedBy,
		DueDate:     parseTime(it.DueDate),
		Month:       it.Month,
		Year:        it.Year,
		AllWings:    it.AllWings,
		Wings:       it.Wings,
		Description: it.Description,
		BillLines:   lines,
		Status:      entities.BillStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}, nil
}
