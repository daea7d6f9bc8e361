package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Used for method=online: the gateway charge must succeed before anything is
// persisted, and the returned provider id becomes the payment's transaction
// id for reconciliation.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, amount decimal.Decimal, description, externalReference string) (providerPaymentID string, providerStatus string, err error)
}
