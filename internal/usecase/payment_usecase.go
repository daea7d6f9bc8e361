package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidPaymentID      = errors.New("invalid payment_id")
	ErrInvalidBillRef        = errors.New("exactly one of maintenance_id or unit_maintenance_id must be set")
	ErrInvalidPaymentMethod  = errors.New("payment method must be cash or online")
	ErrBillAlreadyPaid       = errors.New("bill is already paid")
	ErrPayerNotOccupant      = errors.New("payer does not occupy this unit")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrPaymentPartiallyDone  = errors.New("payment recorded but bill status unresolved; re-check bill status before retrying")
	ErrInvalidPaymentsFilter = errors.New("provide bill_id or building_id")
)

// BillRef identifies exactly one bill: building-level or unit-level.
type BillRef struct {
	MaintenanceID string
	UnitBillID    string
}

// PaymentsFilter selects payments by bill or by building (one of the two).
type PaymentsFilter struct {
	BillID     string
	BuildingID string
}

// IPaymentLedger records payments and drives the pending->paid transition.

type IPaymentLedger interface {
	RecordPayment(ctx context.Context, payerID string, ref BillRef, method entities.PaymentMethod) (entities.Payment, error)
	GetPayment(ctx context.Context, paymentID string) (entities.Payment, error)
	ListPayments(ctx context.Context, filter PaymentsFilter) ([]entities.Payment, error)
}

type PaymentLedger struct {
	payments  interfaces.IPaymentRepository
	bills     interfaces.IMaintenanceRepository
	unitBills interfaces.IUnitBillRepository
	resolver  IRoleResolver
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentLedger = (*PaymentLedger)(nil)

func NewPaymentLedger(
	payments interfaces.IPaymentRepository,
	bills interfaces.IMaintenanceRepository,
	unitBills interfaces.IUnitBillRepository,
	resolver IRoleResolver,
	gateway interfaces.IPaymentGateway,
) *PaymentLedger {
	return &PaymentLedger{
		payments:  payments,
		bills:     bills,
		unitBills: unitBills,
		resolver:  resolver,
		gateway:   gateway,
	}
}

// RecordPayment persists one payment and flips the referenced bill to paid in
// a single transaction. The amount is always copied from the bill; a
// caller-supplied amount is never accepted. Replaying against a paid bill is
// a conflict, never a second payment.
func (u *PaymentLedger) RecordPayment(ctx context.Context, payerID string, ref BillRef, method entities.PaymentMethod) (entities.Payment, error) {
	payerID = strings.TrimSpace(payerID)
	if payerID == "" {
		return entities.Payment{}, ErrInvalidRoleKey
	}
	if !method.Valid() {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}
	ref.MaintenanceID = strings.TrimSpace(ref.MaintenanceID)
	ref.UnitBillID = strings.TrimSpace(ref.UnitBillID)
	if (ref.MaintenanceID == "") == (ref.UnitBillID == "") {
		return entities.Payment{}, ErrInvalidBillRef
	}

	if ref.UnitBillID != "" {
		return u.recordUnitBillPayment(ctx, payerID, ref.UnitBillID, method)
	}
	return u.recordBuildingBillPayment(ctx, payerID, ref.MaintenanceID, method)
}

func (u *PaymentLedger) recordUnitBillPayment(ctx context.Context, payerID, unitBillID string, method entities.PaymentMethod) (entities.Payment, error) {
	bill, err := u.unitBills.GetByID(ctx, unitBillID)
	if err != nil {
		return entities.Payment{}, err
	}
	if bill.ID == "" {
		return entities.Payment{}, ErrUnitBillNotFound
	}
	if bill.UserID != payerID {
		return entities.Payment{}, ErrPayerNotOccupant
	}
	if bill.PaymentStatus == entities.PaymentStatusPaid {
		return entities.Payment{}, ErrBillAlreadyPaid
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:            newPaymentCode(),
		MaintenanceID: bill.MaintenanceID,
		UnitBillID:    bill.ID,
		BuildingID:    bill.BuildingID,
		UserID:        payerID,
		Amount:        bill.TotalAmount,
		Method:        method,
		Wing:          bill.Wing,
		Floor:         bill.Floor,
		UnitNumber:    bill.UnitNumber,
		PaidAt:        now,
		CreatedAt:     now,
	}

	p.TransactionID, err = u.settle(ctx, p, fmt.Sprintf("Unit maintenance %s (%s-%d-%s)", bill.MaintenanceID, bill.Wing, bill.Floor, bill.UnitNumber))
	if err != nil {
		return entities.Payment{}, err
	}

	recorded, err := u.payments.RecordUnitBillPayment(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			if p.Method == entities.PaymentMethodOnline {
				// Lost the already-paid race after charging the provider; this
				// line is what reconciliation has to refund from.
				log.Printf("[payment][usecase] orphaned gateway charge provider_payment_id=%s unit_maintenance_id=%s amount=%s", p.TransactionID, bill.ID, p.Amount.StringFixed(2))
			}
			return entities.Payment{}, ErrBillAlreadyPaid
		}
		if errors.Is(err, interfaces.ErrTransactionUnresolved) {
			log.Printf("[payment][usecase] transaction unresolved payment_id=%s unit_maintenance_id=%s", p.ID, bill.ID)
			return entities.Payment{}, ErrPaymentPartiallyDone
		}
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] unit bill paid payment_id=%s unit_maintenance_id=%s amount=%s method=%s", recorded.ID, bill.ID, p.Amount.StringFixed(2), method)
	return recorded, nil
}

func (u *PaymentLedger) recordBuildingBillPayment(ctx context.Context, payerID, maintenanceID string, method entities.PaymentMethod) (entities.Payment, error) {
	bill, err := u.bills.GetByID(ctx, maintenanceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if bill.ID == "" {
		return entities.Payment{}, ErrMaintenanceNotFound
	}
	if err := u.resolver.RequireRole(ctx, payerID, bill.BuildingID, entities.RoleAdmin, entities.RoleMember); err != nil {
		return entities.Payment{}, err
	}
	if bill.Status == entities.BillStatusPaid {
		return entities.Payment{}, ErrBillAlreadyPaid
	}

	total := decimalSumBillLines(bill.BillLines)

	now := time.Now().UTC()
	p := entities.Payment{
		ID:            newPaymentCode(),
		MaintenanceID: bill.ID,
		BuildingID:    bill.BuildingID,
		UserID:        payerID,
		Amount:        total,
		Method:        method,
		PaidAt:        now,
		CreatedAt:     now,
	}

	p.TransactionID, err = u.settle(ctx, p, fmt.Sprintf("Building maintenance %s", bill.ID))
	if err != nil {
		return entities.Payment{}, err
	}

	recorded, err := u.payments.RecordBuildingBillPayment(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			if p.Method == entities.PaymentMethodOnline {
				log.Printf("[payment][usecase] orphaned gateway charge provider_payment_id=%s maintenance_id=%s amount=%s", p.TransactionID, bill.ID, p.Amount.StringFixed(2))
			}
			return entities.Payment{}, ErrBillAlreadyPaid
		}
		if errors.Is(err, interfaces.ErrTransactionUnresolved) {
			log.Printf("[payment][usecase] transaction unresolved payment_id=%s maintenance_id=%s", p.ID, bill.ID)
			return entities.Payment{}, ErrPaymentPartiallyDone
		}
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] building bill paid payment_id=%s maintenance_id=%s amount=%s method=%s", recorded.ID, bill.ID, total.StringFixed(2), method)
	return recorded, nil
}

// settle obtains a transaction id: a local one for cash, the provider's for
// online. The gateway charge happens before any write, so a gateway failure
// leaves no partial state behind.
func (u *PaymentLedger) settle(ctx context.Context, p entities.Payment, description string) (string, error) {
	if p.Method == entities.PaymentMethodCash {
		return "CASH-" + time.Now().UTC().Format("20060102150405"), nil
	}
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}
	providerID, providerStatus, err := u.gateway.CreatePayment(ctx, p.Amount, description, p.BillID())
	if err != nil {
		return "", err
	}
	log.Printf("[payment][usecase] gateway charge ok provider_payment_id=%s provider_status=%s", providerID, providerStatus)
	return providerID, nil
}

func (u *PaymentLedger) GetPayment(ctx context.Context, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentLedger) ListPayments(ctx context.Context, filter PaymentsFilter) ([]entities.Payment, error) {
	billID := strings.TrimSpace(filter.BillID)
	buildingID := strings.TrimSpace(filter.BuildingID)
	switch {
	case billID != "" && buildingID == "":
		return u.payments.ListByBillID(ctx, billID)
	case buildingID != "" && billID == "":
		return u.payments.ListByBuilding(ctx, buildingID)
	default:
		return nil, ErrInvalidPaymentsFilter
	}
}

func newPaymentCode() string {
	return "PAY-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func decimalSumBillLines(lines []entities.BillLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Resolve())
	}
	return total.Round(2)
}
