package ledger

import (
	"fmt"

	"github.com/robinvdvleuten/till/discount"
	"github.com/robinvdvleuten/till/item"
	"github.com/shopspring/decimal"
)

// Kind identifies what an entry records.
type Kind int

const (
	// KindItem is an item added to the cart.
	KindItem Kind = iota
	// KindVoidedItem reverses an earlier item.
	KindVoidedItem
	// KindReward is a discount granted by a rule.
	KindReward
	// KindVoidedReward reverses an earlier reward.
	KindVoidedReward
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindVoidedItem:
		return "voided item"
	case KindReward:
		return "reward"
	case KindVoidedReward:
		return "voided reward"
	default:
		return "unknown"
	}
}

// Entry is one line of the ledger. Item is set for the item kinds, Reward for
// the reward kinds.
type Entry struct {
	Kind   Kind
	Item   item.Item
	Reward *discount.Reward
}

// ItemEntry records an added item.
func ItemEntry(it item.Item) Entry {
	return Entry{Kind: KindItem, Item: it}
}

// VoidedItemEntry records the removal of an item.
func VoidedItemEntry(it item.Item) Entry {
	return Entry{Kind: KindVoidedItem, Item: it}
}

// RewardEntry records a granted reward.
func RewardEntry(r *discount.Reward) Entry {
	return Entry{Kind: KindReward, Reward: r}
}

// VoidedRewardEntry records that a reward was voided.
func VoidedRewardEntry(r *discount.Reward) Entry {
	return Entry{Kind: KindVoidedReward, Reward: r}
}

// IsItem reports whether the entry records an item rather than a reward.
func (e Entry) IsItem() bool {
	return e.Kind == KindItem || e.Kind == KindVoidedItem
}

// IsVoid reports whether the entry reverses an earlier one.
func (e Entry) IsVoid() bool {
	return e.Kind == KindVoidedItem || e.Kind == KindVoidedReward
}

// Name returns the item name the entry refers to.
func (e Entry) Name() string {
	if e.IsItem() {
		return e.Item.Name
	}
	if e.Reward == nil {
		return ""
	}
	return e.Reward.Name()
}

// Original returns the value of the entry being recorded or reversed, before
// any negation: the item's price or the reward's value.
func (e Entry) Original() decimal.Decimal {
	if e.IsItem() {
		return e.Item.Price()
	}
	if e.Reward == nil {
		return decimal.Zero
	}
	return e.Reward.Value()
}

// Value returns the signed contribution of the entry to the total.
func (e Entry) Value() decimal.Decimal {
	if e.IsVoid() {
		return e.Original().Neg()
	}
	return e.Original()
}

// Equal reports whether two entries record the same thing. Reward entries are
// equal only when they refer to the same reward.
func (e Entry) Equal(other Entry) bool {
	if e.Kind != other.Kind {
		return false
	}
	if e.IsItem() {
		return e.Item.Equal(other.Item)
	}
	return e.Reward == other.Reward
}

// String returns a compact description, e.g. "voided item 5 kg banana @ 3.00".
func (e Entry) String() string {
	if e.IsItem() {
		return fmt.Sprintf("%s %s", e.Kind, e.Item)
	}
	return fmt.Sprintf("%s %s %s", e.Kind, e.Name(), e.Original().StringFixed(2))
}
