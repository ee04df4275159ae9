package discount

import (
	"fmt"

	"github.com/robinvdvleuten/till/item"
	"github.com/shopspring/decimal"
)

// AddOn grants M free units of the trigger item for every N units bought.
type AddOn struct {
	counter
	free decimal.Decimal
}

var _ Rule = &AddOn{}

// NewAddOn creates a buy-N-get-M-free rule for the named item.
func NewAddOn(trigger string, threshold, free decimal.Decimal) (*AddOn, error) {
	if err := validateThreshold("add_on", trigger, threshold); err != nil {
		return nil, err
	}
	if free.IsNegative() {
		return nil, &InvalidRuleError{Kind: "add_on", Trigger: trigger, Reason: fmt.Sprintf("free count %s is negative", free)}
	}
	return &AddOn{counter: newCounter(trigger, threshold), free: free}, nil
}

// MustAddOn is like NewAddOn but panics on error.
// Use only in tests or with literal configuration.
func MustAddOn(trigger string, threshold, free decimal.Decimal) *AddOn {
	r, err := NewAddOn(trigger, threshold, free)
	if err != nil {
		panic(err)
	}
	return r
}

// Trigger returns the item name the rule reacts to.
func (a *AddOn) Trigger() string { return a.trigger }

// Observe counts the item and grants one reward per threshold crossed. Each
// reward is worth minus the price of the free units at the item's unit price.
func (a *AddOn) Observe(it item.Item) []*Reward {
	if !a.matches(it) {
		return nil
	}
	crossed := a.add(it.Amount)
	if crossed <= 0 {
		return nil
	}
	value := it.UnitPrice.Mul(a.free).Neg()
	rewards := make([]*Reward, 0, crossed)
	for i := int64(0); i < crossed; i++ {
		rewards = append(rewards, a.grant(a, value))
	}
	return rewards
}

// Reverse uncounts the item and voids one reward per threshold un-crossed.
func (a *AddOn) Reverse(it item.Item) []*Reward {
	if !a.matches(it) {
		return nil
	}
	return a.voidLatest(a.sub(it.Amount))
}

func (a *AddOn) String() string {
	return fmt.Sprintf("add_on:%s:%s:%s", a.trigger, a.threshold, a.free)
}
