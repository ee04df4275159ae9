// Package discount implements the promotional rules a cart evaluates on every
// add and remove.
//
// A Rule watches a single item name. It keeps a running count of the units (or
// kilograms) it has seen and grants one Reward each time that count crosses a
// multiple of its threshold. Removing units walks the count back down; every
// threshold that is no longer reached voids one still-active reward, most
// recently granted first.
//
// Two kinds of rule exist:
//   - AddOn: buy N, get M free. The reward is worth the price of M units.
//   - ReducedRate: buy N, get a fixed adjustment A.
//
// Example usage:
//
//	rule := discount.MustAddOn("apple", decimal.NewFromInt(3), decimal.NewFromInt(1))
//	for i := 0; i < 3; i++ {
//	    rewards := rule.Observe(apple) // one reward on the third apple
//	}
package discount

import (
	"fmt"

	"github.com/robinvdvleuten/till/item"
	"github.com/shopspring/decimal"
)

// Rule is a stateful promotional policy keyed to one item name.
type Rule interface {
	// Trigger returns the item name the rule reacts to.
	Trigger() string

	// Observe records an added item and returns the rewards it earned, in
	// grant order. Items with a different name yield nil.
	Observe(it item.Item) []*Reward

	// Reverse records a removed item and returns the rewards it voided, most
	// recently granted first. Items with a different name yield nil.
	Reverse(it item.Item) []*Reward

	String() string
}

// Reward is a discount line granted by a rule. Its value never changes once
// granted; voiding only flips a flag.
type Reward struct {
	rule   Rule
	name   string
	value  decimal.Decimal
	voided bool
}

// Rule returns the rule that granted the reward.
func (r *Reward) Rule() Rule { return r.rule }

// Name returns the item name the reward applies to.
func (r *Reward) Name() string { return r.name }

// Value returns the signed monetary value of the reward.
func (r *Reward) Value() decimal.Decimal { return r.value }

// Voided reports whether the reward has been voided.
func (r *Reward) Voided() bool { return r.voided }

func (r *Reward) String() string {
	state := "active"
	if r.voided {
		state = "voided"
	}
	return fmt.Sprintf("%s discount %s (%s)", r.name, r.value.StringFixed(2), state)
}

func (r *Reward) void() {
	r.voided = true
}
