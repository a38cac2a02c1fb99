package interfaces

import (
	"context"

	"concert_tickets/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

// IPaymentGateway abstracts the external payment provider (PayPal Orders v2).
//
// Both calls return the provider's JSON body and HTTP status untouched so the
// storefront sees exactly what the provider answered.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, order entities.OrderRequest) (entities.ProviderResponse, error)
	CaptureOrder(ctx context.Context, orderID string) (entities.ProviderResponse, error)
}
