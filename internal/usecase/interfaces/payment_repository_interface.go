package interfaces

import (
	"context"

	"societyhub/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for payments.
//
// The Record* methods run a single TransactWriteItems pairing the payment put
// with the referenced bill's status flip, so "payment recorded" and "bill
// paid" are one atomic outcome. ErrConditionalCheckFailed means the bill was
// already paid (or a payment with the same id exists) and nothing was written.
type IPaymentRepository interface {
	RecordUnitBillPayment(ctx context.Context, p entities.Payment) (entities.Payment, error)
	RecordBuildingBillPayment(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByBillID(ctx context.Context, billID string) ([]entities.Payment, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]entities.Payment, error)
}
