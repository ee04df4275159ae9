package discount

import (
	"github.com/robinvdvleuten/till/item"
	"github.com/shopspring/decimal"
)

// counter holds the state every rule shares: the trigger name, the running
// count of matched units and the stack of rewards still in effect.
type counter struct {
	trigger   string
	threshold decimal.Decimal
	count     decimal.Decimal
	active    []*Reward // granted and not voided, oldest first
}

func newCounter(trigger string, threshold decimal.Decimal) counter {
	return counter{
		trigger:   trigger,
		threshold: threshold,
		count:     decimal.Zero,
	}
}

func (c *counter) matches(it item.Item) bool {
	return it.Name == c.trigger
}

// add increments the count and returns how many thresholds were crossed.
func (c *counter) add(amount decimal.Decimal) int64 {
	before := c.reached()
	c.count = c.count.Add(amount)
	return c.reached() - before
}

// sub decrements the count and returns how many thresholds were un-crossed.
func (c *counter) sub(amount decimal.Decimal) int64 {
	before := c.reached()
	c.count = c.count.Sub(amount)
	return before - c.reached()
}

// reached is floor(count / threshold).
func (c *counter) reached() int64 {
	return c.count.Div(c.threshold).Floor().IntPart()
}

func (c *counter) grant(rule Rule, value decimal.Decimal) *Reward {
	r := &Reward{rule: rule, name: c.trigger, value: value}
	c.active = append(c.active, r)
	return r
}

// voidLatest voids up to n active rewards, newest first.
func (c *counter) voidLatest(n int64) []*Reward {
	var voided []*Reward
	for ; n > 0 && len(c.active) > 0; n-- {
		last := len(c.active) - 1
		r := c.active[last]
		c.active[last] = nil
		c.active = c.active[:last]
		r.void()
		voided = append(voided, r)
	}
	return voided
}
