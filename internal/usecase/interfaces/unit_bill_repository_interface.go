package interfaces

import (
	"context"

	"societyhub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IUnitBillRepository abstracts DynamoDB persistence for per-unit maintenance
// bills. Unit-bill IDs are deterministic per (maintenance, wing, floor, unit),
// which is what makes PutNew an idempotency guard rather than a blind insert.
type IUnitBillRepository interface {
	// PutNew writes the bill; ErrConditionalCheckFailed when one already
	// exists for the dwelling under this building bill.
	PutNew(ctx context.Context, b entities.UnitMaintenanceBill) error
	// PutOverwriteUnpaid replaces an existing bill unless it has been paid;
	// ErrConditionalCheckFailed protects paid bills.
	PutOverwriteUnpaid(ctx context.Context, b entities.UnitMaintenanceBill) error
	GetByID(ctx context.Context, id string) (entities.UnitMaintenanceBill, error)
	ListByMaintenance(ctx context.Context, maintenanceID string) ([]entities.UnitMaintenanceBill, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]entities.UnitMaintenanceBill, error)
	ListByUser(ctx context.Context, userID string) ([]entities.UnitMaintenanceBill, error)
	// UpdateLines rewrites lines and total; ErrConditionalCheckFailed when the
	// bill is absent or already paid.
	UpdateLines(ctx context.Context, id string, lines []entities.ResolvedBillLine, total decimal.Decimal) (entities.UnitMaintenanceBill, error)
	// DeleteUnpaid removes the bill; ErrConditionalCheckFailed when paid.
	DeleteUnpaid(ctx context.Context, id string) error
}
