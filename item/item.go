// Package item defines the priced purchase lines a cart operates on.
//
// An Item is a closed variant: it is either sold per unit (Each) or by weight
// (Kilogram). Both variants share the same price contract,
//
//	Price() = UnitPrice × Amount
//
// and are immutable values compared with Equal. Monetary values and amounts use
// decimal arithmetic so totals never drift.
//
// Example usage:
//
//	apple := item.NewQuantified("apple", decimal.RequireFromString("1.00"), 1)
//	banana := item.NewWeighted("banana", decimal.RequireFromString("3.00"), decimal.NewFromInt(5))
//	fmt.Println(apple.Price(), banana.Price()) // 1 15
package item

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Measure tells how an item's amount is counted.
type Measure int

const (
	// Each counts whole units.
	Each Measure = iota
	// Kilogram counts weight in kilograms.
	Kilogram
)

// String returns the string representation of the measure
func (m Measure) String() string {
	switch m {
	case Each:
		return "each"
	case Kilogram:
		return "kg"
	default:
		return "unknown"
	}
}

// Item is a single purchase line.
type Item struct {
	Name      string
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
	Measure   Measure
}

// NewQuantified creates an item sold per unit.
func NewQuantified(name string, unitPrice decimal.Decimal, quantity int64) Item {
	return Item{
		Name:      name,
		UnitPrice: unitPrice,
		Amount:    decimal.NewFromInt(quantity),
		Measure:   Each,
	}
}

// NewWeighted creates an item sold by the kilogram.
func NewWeighted(name string, unitPrice, kilograms decimal.Decimal) Item {
	return Item{
		Name:      name,
		UnitPrice: unitPrice,
		Amount:    kilograms,
		Measure:   Kilogram,
	}
}

// Price returns the extended price of the line.
func (it Item) Price() decimal.Decimal {
	return it.UnitPrice.Mul(it.Amount)
}

// IsWeighted reports whether the item is sold by weight.
func (it Item) IsWeighted() bool {
	return it.Measure == Kilogram
}

// Equal reports whether two items carry the same value.
func (it Item) Equal(other Item) bool {
	return it.Name == other.Name &&
		it.Measure == other.Measure &&
		it.UnitPrice.Equal(other.UnitPrice) &&
		it.Amount.Equal(other.Amount)
}

// String returns a short human-readable form, e.g. "5 kg banana @ 3.00".
func (it Item) String() string {
	if it.IsWeighted() {
		return fmt.Sprintf("%s kg %s @ %s", it.Amount, it.Name, it.UnitPrice.StringFixed(2))
	}
	return fmt.Sprintf("%s %s @ %s", it.Amount, it.Name, it.UnitPrice.StringFixed(2))
}

// Validate checks that the item can be priced. Carts accept any item; callers
// that want to reject bad input up front (such as a replayed register log)
// validate first.
func (it Item) Validate() error {
	switch {
	case it.Name == "":
		return &InvalidItemError{Item: it, Reason: "name is empty"}
	case it.Measure != Each && it.Measure != Kilogram:
		return &InvalidItemError{Item: it, Reason: fmt.Sprintf("unknown measure %d", int(it.Measure))}
	case it.UnitPrice.IsNegative():
		return &InvalidItemError{Item: it, Reason: fmt.Sprintf("unit price %s is negative", it.UnitPrice)}
	case !it.Amount.IsPositive():
		return &InvalidItemError{Item: it, Reason: fmt.Sprintf("amount %s must be positive", it.Amount)}
	case it.Measure == Each && !it.Amount.IsInteger():
		return &InvalidItemError{Item: it, Reason: fmt.Sprintf("quantity %s is not a whole number", it.Amount)}
	}
	return nil
}

// InvalidItemError is returned by Validate when an item cannot be priced.
type InvalidItemError struct {
	Item   Item
	Reason string
}

func (e *InvalidItemError) Error() string {
	name := e.Item.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("invalid item %q: %s", name, e.Reason)
}
