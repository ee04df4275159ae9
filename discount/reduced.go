package discount

import (
	"fmt"

	"github.com/robinvdvleuten/till/item"
	"github.com/shopspring/decimal"
)

// ReducedRate grants a fixed adjustment for every N units bought.
type ReducedRate struct {
	counter
	adjustment decimal.Decimal
}

var _ Rule = &ReducedRate{}

// NewReducedRate creates a rule granting adjustment (usually negative) per
// threshold crossed.
func NewReducedRate(trigger string, threshold, adjustment decimal.Decimal) (*ReducedRate, error) {
	if err := validateThreshold("reduced_rate", trigger, threshold); err != nil {
		return nil, err
	}
	return &ReducedRate{counter: newCounter(trigger, threshold), adjustment: adjustment}, nil
}

// MustReducedRate is like NewReducedRate but panics on error.
// Use only in tests or with literal configuration.
func MustReducedRate(trigger string, threshold, adjustment decimal.Decimal) *ReducedRate {
	r, err := NewReducedRate(trigger, threshold, adjustment)
	if err != nil {
		panic(err)
	}
	return r
}

// Trigger returns the item name the rule reacts to.
func (r *ReducedRate) Trigger() string { return r.trigger }

// Observe counts the item and grants the adjustment once per threshold crossed.
func (r *ReducedRate) Observe(it item.Item) []*Reward {
	if !r.matches(it) {
		return nil
	}
	crossed := r.add(it.Amount)
	var rewards []*Reward
	for i := int64(0); i < crossed; i++ {
		rewards = append(rewards, r.grant(r, r.adjustment))
	}
	return rewards
}

// Reverse uncounts the item and voids one reward per threshold un-crossed.
func (r *ReducedRate) Reverse(it item.Item) []*Reward {
	if !r.matches(it) {
		return nil
	}
	return r.voidLatest(r.sub(it.Amount))
}

func (r *ReducedRate) String() string {
	return fmt.Sprintf("reduced_rate:%s:%s:%s", r.trigger, r.threshold, r.adjustment.StringFixed(2))
}
