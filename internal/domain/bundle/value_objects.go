package bundle

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrInvalidQuantity      = errors.New("bundle item quantity must be at least 1")
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentPoints PaymentMethod = "points"
)

func NewPaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentPoints:
		return PaymentMethod(s), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// Price is an original/selling pair. Selling is what the buyer pays;
// original is kept for strike-through display only.
type Price struct {
	Original int64
	Selling  int64
}

func NewPrice(original, selling int64) (*Price, error) {
	if original < 0 || selling < 0 {
		return nil, ErrNegativePrice
	}
	return &Price{Original: original, Selling: selling}, nil
}

// Item is one line of a bundle's composition: how many vouchers of one
// template the buyer receives.
type Item struct {
	VoucherTemplateID uuid.UUID
	Quantity          int32
	DisplayName       string
}

func NewItem(voucherTemplateID uuid.UUID, quantity int32, displayName string) (Item, error) {
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}
	return Item{
		VoucherTemplateID: voucherTemplateID,
		Quantity:          quantity,
		DisplayName:       displayName,
	}, nil
}
