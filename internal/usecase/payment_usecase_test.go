package usecase

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase/interfaces"
	mock_interfaces "societyhub/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	payments  *mock_interfaces.MockIPaymentRepository
	bills     *mock_interfaces.MockIMaintenanceRepository
	unitBills *mock_interfaces.MockIUnitBillRepository
	roles     *mock_interfaces.MockIRoleRepository
	gateway   *mock_interfaces.MockIPaymentGateway
}

func newPaymentLedgerForTest(ctrl *gomock.Controller) (*PaymentLedger, paymentMocks) {
	m := paymentMocks{
		payments:  mock_interfaces.NewMockIPaymentRepository(ctrl),
		bills:     mock_interfaces.NewMockIMaintenanceRepository(ctrl),
		unitBills: mock_interfaces.NewMockIUnitBillRepository(ctrl),
		roles:     mock_interfaces.NewMockIRoleRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewPaymentLedger(m.payments, m.bills, m.unitBills, NewRoleResolver(m.roles), m.gateway)
	return uc, m
}

func unpaidUnitBill() entities.UnitMaintenanceBill {
	return entities.UnitMaintenanceBill{
		ID:            "UMB#MAINT-1#A#1#101",
		MaintenanceID: "MAINT-1",
		BuildingID:    "BLD-1",
		UserID:        "u-1",
		Wing:          "A",
		Floor:         1,
		UnitNumber:    "101",
		TotalAmount:   decimal.RequireFromString("1050.00"),
		Status:        entities.BillStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
	}
}

func TestPaymentLedger_RecordPayment_Validation(t *testing.T) {
	t.Run("invalid method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newPaymentLedgerForTest(ctrl)

		_, err := uc.RecordPayment(context.Background(), "u-1", BillRef{UnitBillID: "UMB#x"}, entities.PaymentMethod("upi"))
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("both refs set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newPaymentLedgerForTest(ctrl)

		_, err := uc.RecordPayment(context.Background(), "u-1", BillRef{MaintenanceID: "MAINT-1", UnitBillID: "UMB#x"}, entities.PaymentMethodCash)
		if !errors.Is(err, ErrInvalidBillRef) {
			t.Fatalf("expected ErrInvalidBillRef, got %v", err)
		}
	})

	t.Run("neither ref set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newPaymentLedgerForTest(ctrl)

		_, err := uc.RecordPayment(context.Background(), "u-1", BillRef{}, entities.PaymentMethodCash)
		if !errors.Is(err, ErrInvalidBillRef) {
			t.Fatalf("expected ErrInvalidBillRef, got %v", err)
		}
	})
}

func TestPaymentLedger_RecordUnitBillPayment(t *testing.T) {
	t.Run("payer is not the occupant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		bill := unpaidUnitBill()
		m.unitBills.EXPECT().GetByID(gomock.Any(), bill.ID).Return(bill, nil)

		_, err := uc.RecordPayment(context.Background(), "u-2", BillRef{UnitBillID: bill.ID}, entities.PaymentMethodCash)
		if !errors.Is(err, ErrPayerNotOccupant) {
			t.Fatalf("expected ErrPayerNotOccupant, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		bill := unpaidUnitBill()
		bill.PaymentStatus = entities.PaymentStatusPaid
		m.unitBills.EXPECT().GetByID(gomock.Any(), bill.ID).Return(bill, nil)

		_, err := uc.RecordPayment(context.Background(), "u-1", BillRef{UnitBillID: bill.ID}, entities.PaymentMethodCash)
		if !errors.Is(err, ErrBillAlreadyPaid) {
			t.Fatalf("expected ErrBillAlreadyPaid, got %v", err)
		}
	})

	t.Run("cash copies the bill amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		bill := unpaidUnitBill()
		m.unitBills.EXPECT().GetByID(gomock.Any(), bill.ID).Return(bill, nil)
		m.payments.EXPECT().RecordUnitBillPayment(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if !p.Amount.Equal(bill.TotalAmount) {
					t.Fatalf("expected amount copied from bill, got %s", p.Amount)
				}
				if !strings.HasPrefix(p.TransactionID, "CASH-") {
					t.Fatalf("unexpected transaction id: %s", p.TransactionID)
				}
				if p.UnitBillID != bill.ID || p.MaintenanceID != bill.MaintenanceID {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		p, err := uc.RecordPayment(context.Background(), "u-1", BillRef{UnitBillID: bill.ID}, entities.PaymentMethodCash)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == "" {
			t.Fatalf("expected generated payment id")
		}
	})

	t.Run("online charges the gateway first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		bill := unpaidUnitBill()
		m.unitBills.EXPECT().GetByID(gomock.Any(), bill.ID).Return(bill, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), bill.TotalAmount, gomock.Any(), bill.ID).Return("mp-123", "approved", nil)
		m.payments.EXPECT().RecordUnitBillPayment(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.TransactionID != "mp-123" {
					t.Fatalf("unexpected transaction id: %s", p.TransactionID)
				}
				return p, nil
			},
		)

		if _, err := uc.RecordPayment(context.Background(), "u-1", BillRef{UnitBillID: bill.ID}, entities.PaymentMethodOnline); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		bill := unpaidUnitBill()
		m.unitBills.EXPECT().GetByID(gomock.Any(), bill.ID).Return(bill, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", "", errors.New("declined"))

		_, err := uc.RecordPayment(context.Background(), "u-1", BillRef{UnitBillID: bill.ID}, entities.PaymentMethodOnline)
		if err == nil || err.Error() != "declined" {
			t.Fatalf("expected declined error, got %v", err)
		}
	})

	t.Run("no gateway configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := paymentMocks{
			payments:  mock_interfaces.NewMockIPaymentRepository(ctrl),
			unitBills: mock_interfaces.NewMockIUnitBillRepository(ctrl),
			roles:     mock_interfaces.NewMockIRoleRepository(ctrl),
		}
		uc := NewPaymentLedger(m.payments, nil, m.unitBills, NewRoleResolver(m.roles), nil)
		bill := unpaidUnitBill()
		m.unitBills.EXPECT().GetByID(gomock.Any(), bill.ID).Return(bill, nil)

		_, err := uc.RecordPayment(context.Background(), "u-1", BillRef{UnitBillID: bill.ID}, entities.PaymentMethodOnline)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("lost transaction race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		bill := unpaidUnitBill()
		m.unitBills.EXPECT().GetByID(gomock.Any(), bill.ID).Return(bill, nil)
		m.payments.EXPECT().RecordUnitBillPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrConditionalCheckFailed)

		_, err := uc.RecordPayment(context.Background(), "u-1", BillRef{UnitBillID: bill.ID}, entities.PaymentMethodCash)
		if !errors.Is(err, ErrBillAlreadyPaid) {
			t.Fatalf("expected ErrBillAlreadyPaid, got %v", err)
		}
	})

	t.Run("lost race after online charge logs the orphaned charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		bill := unpaidUnitBill()
		m.unitBills.EXPECT().GetByID(gomock.Any(), bill.ID).Return(bill, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), bill.TotalAmount, gomock.Any(), bill.ID).Return("mp-456", "approved", nil)
		m.payments.EXPECT().RecordUnitBillPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrConditionalCheckFailed)

		var logs bytes.Buffer
		log.SetOutput(&logs)
		defer log.SetOutput(os.Stderr)

		_, err := uc.RecordPayment(context.Background(), "u-1", BillRef{UnitBillID: bill.ID}, entities.PaymentMethodOnline)
		if !errors.Is(err, ErrBillAlreadyPaid) {
			t.Fatalf("expected ErrBillAlreadyPaid, got %v", err)
		}
		if !strings.Contains(logs.String(), "provider_payment_id=mp-456") {
			t.Fatalf("expected orphaned charge log with provider id, got %q", logs.String())
		}
	})

	t.Run("unresolved transaction surfaces partial failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		bill := unpaidUnitBill()
		m.unitBills.EXPECT().GetByID(gomock.Any(), bill.ID).Return(bill, nil)
		m.payments.EXPECT().RecordUnitBillPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrTransactionUnresolved)

		_, err := uc.RecordPayment(context.Background(), "u-1", BillRef{UnitBillID: bill.ID}, entities.PaymentMethodCash)
		if !errors.Is(err, ErrPaymentPartiallyDone) {
			t.Fatalf("expected ErrPaymentPartiallyDone, got %v", err)
		}
	})
}

func TestPaymentLedger_RecordBuildingBillPayment(t *testing.T) {
	bill := entities.MaintenanceBill{
		ID:         "MAINT-1",
		BuildingID: "BLD-1",
		BillLines: []entities.BillLine{
			{Name: "Maintenance", FixedAmount: dec("1000")},
			{Name: "Water", RatePerUnit: dec("12.5"), UnitsConsumed: dec("4")},
		},
		Status: entities.BillStatusPending,
	}

	t.Run("requires membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		m.bills.EXPECT().GetByID(gomock.Any(), "MAINT-1").Return(bill, nil)
		m.roles.EXPECT().Get(gomock.Any(), "BLD-1", "outsider").Return(entities.RoleAssignment{}, nil)

		_, err := uc.RecordPayment(context.Background(), "outsider", BillRef{MaintenanceID: "MAINT-1"}, entities.PaymentMethodCash)
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		paid := bill
		paid.Status = entities.BillStatusPaid
		m.bills.EXPECT().GetByID(gomock.Any(), "MAINT-1").Return(paid, nil)
		m.roles.EXPECT().Get(gomock.Any(), "BLD-1", "u-1").Return(entities.RoleAssignment{
			BuildingID: "BLD-1", UserID: "u-1", Role: entities.RoleMember,
		}, nil)

		_, err := uc.RecordPayment(context.Background(), "u-1", BillRef{MaintenanceID: "MAINT-1"}, entities.PaymentMethodCash)
		if !errors.Is(err, ErrBillAlreadyPaid) {
			t.Fatalf("expected ErrBillAlreadyPaid, got %v", err)
		}
	})

	t.Run("sums resolved lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		m.bills.EXPECT().GetByID(gomock.Any(), "MAINT-1").Return(bill, nil)
		m.roles.EXPECT().Get(gomock.Any(), "BLD-1", "u-1").Return(entities.RoleAssignment{
			BuildingID: "BLD-1", UserID: "u-1", Role: entities.RoleMember,
		}, nil)
		m.payments.EXPECT().RecordBuildingBillPayment(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if !p.Amount.Equal(decimal.RequireFromString("1050")) {
					t.Fatalf("unexpected amount: %s", p.Amount)
				}
				if p.MaintenanceID != "MAINT-1" || p.UnitBillID != "" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.RecordPayment(context.Background(), "u-1", BillRef{MaintenanceID: "MAINT-1"}, entities.PaymentMethodCash); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentLedger_ListPayments(t *testing.T) {
	t.Run("requires exactly one filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newPaymentLedgerForTest(ctrl)

		if _, err := uc.ListPayments(context.Background(), PaymentsFilter{}); !errors.Is(err, ErrInvalidPaymentsFilter) {
			t.Fatalf("expected ErrInvalidPaymentsFilter, got %v", err)
		}
		if _, err := uc.ListPayments(context.Background(), PaymentsFilter{BillID: "a", BuildingID: "b"}); !errors.Is(err, ErrInvalidPaymentsFilter) {
			t.Fatalf("expected ErrInvalidPaymentsFilter, got %v", err)
		}
	})

	t.Run("by bill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		m.payments.EXPECT().ListByBillID(gomock.Any(), "UMB#x").Return([]entities.Payment{{ID: "PAY-1"}}, nil)

		out, err := uc.ListPayments(context.Background(), PaymentsFilter{BillID: "UMB#x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(out))
		}
	})

	t.Run("by building", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		m.payments.EXPECT().ListByBuilding(gomock.Any(), "BLD-1").Return(nil, nil)

		if _, err := uc.ListPayments(context.Background(), PaymentsFilter{BuildingID: "BLD-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentLedger_GetPayment(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		m.payments.EXPECT().GetByID(gomock.Any(), "PAY-404").Return(entities.Payment{}, nil)

		_, err := uc.GetPayment(context.Background(), "PAY-404")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newPaymentLedgerForTest(ctrl)
		m.payments.EXPECT().GetByID(gomock.Any(), "PAY-1").Return(entities.Payment{ID: "PAY-1"}, nil)

		p, err := uc.GetPayment(context.Background(), " PAY-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "PAY-1" {
			t.Fatalf("unexpected result: %+v", p)
		}
	})
}
