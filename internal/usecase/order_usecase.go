package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"concert_tickets/internal/domain/entities"
	"concert_tickets/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCart    = errors.New("invalid cart")
	ErrInvalidOrderID = errors.New("invalid order id")
)

var orderIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

// IOrderUseCase covers the two checkout steps of the storefront:
//   - create an order from the cart (server-side pricing)
//   - capture a previously approved order
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cart entities.Cart) (entities.ProviderResponse, error)
	CaptureOrder(ctx context.Context, orderID string) (entities.ProviderResponse, error)
}

type OrderUseCase struct {
	gateway     interfaces.IPaymentGateway
	pricing     entities.PricingTable
	description string
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(gateway interfaces.IPaymentGateway, pricing entities.PricingTable, description string) *OrderUseCase {
	return &OrderUseCase{gateway: gateway, pricing: pricing, description: description}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cart entities.Cart) (entities.ProviderResponse, error) {
	log.Printf("[order][usecase] create start premium=%d standard=%d student=%d total=%q",
		cart.PremiumQuantity, cart.StandardQuantity, cart.StudentQuantity, cart.TotalPrice)

	total, err := validateCart(cart)
	if err != nil {
		log.Printf("[order][usecase] invalid cart err=%v", err)
		return entities.ProviderResponse{}, err
	}
	if u.gateway == nil {
		log.Printf("[order][usecase] gateway not configured")
		return entities.ProviderResponse{}, errors.New("payment gateway not configured")
	}

	items := u.pricing.LineItems(cart)

	// The client total is forwarded as-is; a mismatch is only reported.
	if subtotal := u.pricing.Subtotal(cart); !subtotal.Equal(total) {
		log.Printf("[order][usecase] WARN client total differs from computed subtotal total=%s computed=%s",
			cart.TotalPrice, subtotal.StringFixed(2))
	}

	order := entities.NewOrderRequest(u.description, cart.TotalPrice, items)
	resp, err := u.gateway.CreateOrder(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] payment gateway create failed err=%v", err)
		return entities.ProviderResponse{}, err
	}
	log.Printf("[order][usecase] create done items=%d provider_status=%d", len(items), resp.StatusCode)
	return resp, nil
}

func (u *OrderUseCase) CaptureOrder(ctx context.Context, orderID string) (entities.ProviderResponse, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[order][usecase] capture start order_id=%q", orderID)
	if !orderIDPattern.MatchString(orderID) {
		log.Printf("[order][usecase] invalid order id order_id=%q", orderID)
		return entities.ProviderResponse{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		log.Printf("[order][usecase] gateway not configured")
		return entities.ProviderResponse{}, errors.New("payment gateway not configured")
	}

	resp, err := u.gateway.CaptureOrder(ctx, orderID)
	if err != nil {
		log.Printf("[order][usecase] payment gateway capture failed order_id=%s err=%v", orderID, err)
		return entities.ProviderResponse{}, err
	}
	log.Printf("[order][usecase] capture done order_id=%s provider_status=%d", orderID, resp.StatusCode)
	return resp, nil
}

func validateCart(cart entities.Cart) (decimal.Decimal, error) {
	if cart.PremiumQuantity < 0 || cart.StandardQuantity < 0 || cart.StudentQuantity < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: negative quantity", ErrInvalidCart)
	}
	if strings.TrimSpace(cart.TotalPrice) == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: missing total price", ErrInvalidCart)
	}
	total, err := decimal.NewFromString(cart.TotalPrice)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: total price %q is not a decimal", ErrInvalidCart, cart.TotalPrice)
	}
	if total.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative total price", ErrInvalidCart)
	}
	return total, nil
}
