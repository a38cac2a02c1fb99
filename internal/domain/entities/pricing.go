package entities

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const CurrencyUSD = "USD"

type TicketTier string

const (
	TicketTierPremium  TicketTier = "premium"
	TicketTierStandard TicketTier = "standard"
	TicketTierStudent  TicketTier = "student"
)

// TierPrice is one row of the pricing table.
type TierPrice struct {
	Tier      TicketTier
	Name      string
	UnitPrice decimal.Decimal
}

// PricingTable maps ticket tiers to fixed unit prices. Row order is the order
// line items are emitted in.
type PricingTable []TierPrice

// DefaultPricing is the concert's price list (USD).
var DefaultPricing = PricingTable{
	{Tier: TicketTierPremium, Name: "Premium tickets", UnitPrice: decimal.RequireFromString("65.00")},
	{Tier: TicketTierStandard, Name: "Standard tickets", UnitPrice: decimal.RequireFromString("40.00")},
	{Tier: TicketTierStudent, Name: "Student tickets", UnitPrice: decimal.RequireFromString("25.00")},
}

// LineItems builds one item per tier whose quantity is above zero.
// The result is never nil so it always serializes as a JSON array.
func (p PricingTable) LineItems(cart Cart) []Item {
	items := make([]Item, 0, len(p))
	for _, row := range p {
		qty := cart.QuantityFor(row.Tier)
		if qty <= 0 {
			continue
		}
		items = append(items, Item{
			Name: row.Name,
			UnitAmount: Money{
				CurrencyCode: CurrencyUSD,
				Value:        row.UnitPrice.StringFixed(2),
			},
			Quantity: strconv.Itoa(qty),
		})
	}
	return items
}

// Subtotal is the server-side sum of unit price * quantity over all tiers.
func (p PricingTable) Subtotal(cart Cart) decimal.Decimal {
	total := decimal.Zero
	for _, row := range p {
		qty := cart.QuantityFor(row.Tier)
		if qty <= 0 {
			continue
		}
		total = total.Add(row.UnitPrice.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}
