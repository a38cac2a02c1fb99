package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"concert_tickets/internal/domain/entities"
	"concert_tickets/internal/usecase"
)

// Positional keys of the storefront cart.
const (
	keyPremiumQuantity  = "premiumQuantity"
	keyStandardQuantity = "standardQuantity"
	keyStudentQuantity  = "studentQuantity"
	keyTotalPrice       = "totalPrice"
)

var cartKeys = []string{keyPremiumQuantity, keyStandardQuantity, keyStudentQuantity, keyTotalPrice}

// CreateOrderRequest is the body the storefront posts to create an order:
//
//	{"cart":[{"premiumQuantity":2},{"standardQuantity":0},{"studentQuantity":0},{"totalPrice":"130.00"}]}
type CreateOrderRequest struct {
	Cart []map[string]json.RawMessage `json:"cart"`
}

// ResolveCart decodes the four positional cart entries. Quantities may be
// JSON numbers or digit strings; the total price keeps its original text.
func (r CreateOrderRequest) ResolveCart() (entities.Cart, error) {
	if len(r.Cart) != len(cartKeys) {
		return entities.Cart{}, fmt.Errorf("%w: expected %d entries, got %d", usecase.ErrInvalidCart, len(cartKeys), len(r.Cart))
	}

	quantities := make([]int, 3)
	for i, key := range cartKeys[:3] {
		raw, ok := r.Cart[i][key]
		if !ok {
			return entities.Cart{}, fmt.Errorf("%w: entry %d missing %s", usecase.ErrInvalidCart, i, key)
		}
		q, err := parseQuantity(raw)
		if err != nil {
			return entities.Cart{}, fmt.Errorf("%w: %s: %v", usecase.ErrInvalidCart, key, err)
		}
		quantities[i] = q
	}

	raw, ok := r.Cart[3][keyTotalPrice]
	if !ok {
		return entities.Cart{}, fmt.Errorf("%w: entry 3 missing %s", usecase.ErrInvalidCart, keyTotalPrice)
	}
	total, err := parseTotal(raw)
	if err != nil {
		return entities.Cart{}, fmt.Errorf("%w: %s: %v", usecase.ErrInvalidCart, keyTotalPrice, err)
	}

	return entities.Cart{
		PremiumQuantity:  quantities[0],
		StandardQuantity: quantities[1],
		StudentQuantity:  quantities[2],
		TotalPrice:       total,
	}, nil
}

func decodeScalar(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch t := v.(type) {
	case json.Number:
		return t.String(), nil
	case string:
		return strings.TrimSpace(t), nil
	default:
		return "", fmt.Errorf("unexpected %T", v)
	}
}

func parseQuantity(raw json.RawMessage) (int, error) {
	s, err := decodeScalar(raw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return n, nil
}

func parseTotal(raw json.RawMessage) (string, error) {
	s, err := decodeScalar(raw)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", errors.New("empty")
	}
	return s, nil
}
