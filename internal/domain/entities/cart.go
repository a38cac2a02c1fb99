package entities

// Cart is the ticket selection sent by the storefront.
//
// It is transient: it lives for a single create-order request and is never stored.
// TotalPrice is kept exactly as the client sent it (it is forwarded verbatim to the
// payment provider as amount.value and amount.breakdown.item_total.value).
type Cart struct {
	PremiumQuantity  int    `json:"premium_quantity"`
	StandardQuantity int    `json:"standard_quantity"`
	StudentQuantity  int    `json:"student_quantity"`
	TotalPrice       string `json:"total_price"`
}

// QuantityFor returns the number of tickets requested for a tier.
func (c Cart) QuantityFor(tier TicketTier) int {
	switch tier {
	case TicketTierPremium:
		return c.PremiumQuantity
	case TicketTierStandard:
		return c.StandardQuantity
	case TicketTierStudent:
		return c.StudentQuantity
	}
	return 0
}

// TicketCount is the sum of all tier quantities.
func (c Cart) TicketCount() int {
	return c.PremiumQuantity + c.StandardQuantity + c.StudentQuantity
}
