package entities

import "encoding/json"

const OrderIntentCapture = "CAPTURE"

// Money is the provider's amount object.
type Money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// Item is a priced line of a purchase unit.
type Item struct {
	Name       string `json:"name"`
	UnitAmount Money  `json:"unit_amount"`
	Quantity   string `json:"quantity"`
}

type AmountBreakdown struct {
	ItemTotal Money `json:"item_total"`
}

type Amount struct {
	CurrencyCode string          `json:"currency_code"`
	Value        string          `json:"value"`
	Breakdown    AmountBreakdown `json:"breakdown"`
}

type PurchaseUnit struct {
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
	Items       []Item `json:"items"`
}

// OrderRequest is the body sent to the provider's order-creation endpoint.
type OrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
}

// NewOrderRequest wraps items into a single CAPTURE purchase unit.
//
// totalPrice is used verbatim for both amount.value and item_total.value; it is
// not recomputed from items.
func NewOrderRequest(description, totalPrice string, items []Item) OrderRequest {
	if items == nil {
		items = []Item{}
	}
	return OrderRequest{
		Intent: OrderIntentCapture,
		PurchaseUnits: []PurchaseUnit{
			{
				Description: description,
				Amount: Amount{
					CurrencyCode: CurrencyUSD,
					Value:        totalPrice,
					Breakdown: AmountBreakdown{
						ItemTotal: Money{CurrencyCode: CurrencyUSD, Value: totalPrice},
					},
				},
				Items: items,
			},
		},
	}
}

// ProviderResponse is a normalized payment provider reply: a JSON body and the
// HTTP status it came with. Both are relayed to the storefront unchanged.
type ProviderResponse struct {
	StatusCode int
	Body       json.RawMessage
}
