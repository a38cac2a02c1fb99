package response

import "encoding/json"

// OrderSummary is the part of a provider order body worth logging.
type OrderSummary struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func SummarizeOrder(body json.RawMessage) OrderSummary {
	var s OrderSummary
	_ = json.Unmarshal(body, &s)
	return s
}
