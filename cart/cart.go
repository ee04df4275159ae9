// Package cart provides the shopping cart: an append-only ledger of items and
// the promotional rules that react to them.
//
// Every Add appends the item followed by any discounts it earned. Every Remove
// appends a voided copy of the item followed by a voided copy of every
// discount the removal took away. Nothing is ever deleted, so the receipt
// shows the full history of the cart while the total reflects only what is
// still in it.
//
// Example usage:
//
//	c := cart.New(cart.WithDiscounts(
//	    discount.MustAddOn("apple", decimal.NewFromInt(3), decimal.NewFromInt(1)),
//	))
//	for i := 0; i < 3; i++ {
//	    c.Add(apple)
//	}
//	c.Remove(apple)
//	fmt.Println(c.PrintReceipt())
//
// A Cart is not safe for concurrent use.
package cart

import (
	"context"
	"io"
	"slices"

	"github.com/google/uuid"
	"github.com/robinvdvleuten/till/discount"
	"github.com/robinvdvleuten/till/item"
	"github.com/robinvdvleuten/till/ledger"
	"github.com/robinvdvleuten/till/receipt"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Cart is a single shopping session.
type Cart struct {
	id        uuid.UUID
	rules     []discount.Rule
	ledger    *ledger.Ledger
	onHand    []item.Item // added and not yet removed, in add order
	formatter *receipt.Formatter
	log       zerolog.Logger
}

// Option is a functional option for configuring a Cart.
type Option func(*Cart)

// WithDiscounts registers discount rules. Rules are evaluated in the order
// given. Rules carry state and must not be shared between carts.
func WithDiscounts(rules ...discount.Rule) Option {
	return func(c *Cart) {
		c.rules = append(c.rules, rules...)
	}
}

// WithLogger sets the logger cart activity is reported to at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cart) {
		c.log = logger
	}
}

// WithFormatter sets the formatter used by PrintReceipt and WriteReceipt.
func WithFormatter(f *receipt.Formatter) Option {
	return func(c *Cart) {
		c.formatter = f
	}
}

// New creates an empty cart with the given options.
func New(opts ...Option) *Cart {
	c := &Cart{
		id:        uuid.New(),
		ledger:    ledger.New(),
		formatter: receipt.New(),
		log:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.log = c.log.With().Str("cart_id", c.id.String()).Logger()

	return c
}

// ID returns the identifier the cart logs under.
func (c *Cart) ID() uuid.UUID {
	return c.id
}

// Add puts an item in the cart and applies every rule to it.
func (c *Cart) Add(it item.Item) {
	delta := ledger.NewDelta(ledger.OpAdd, it)
	delta.Append(ledger.ItemEntry(it))

	for _, rule := range c.rules {
		for _, r := range rule.Observe(it) {
			delta.Append(ledger.RewardEntry(r))
			c.log.Debug().
				Str("rule", rule.String()).
				Str("value", r.Value().StringFixed(2)).
				Msg("discount granted")
		}
	}

	c.ledger.Apply(delta)
	c.onHand = append(c.onHand, it)

	c.log.Debug().
		Str("item", it.Name).
		Str("amount", it.Amount.String()).
		Str("price", it.Price().StringFixed(2)).
		Int("discounts", delta.Rewards()).
		Msg("item added")
}

// Remove takes an item out of the cart. It appends a voided copy of the item
// and voids every discount the removal un-earns. If no equal item is in the
// cart, nothing happens and ok is false.
func (c *Cart) Remove(it item.Item) (voided ledger.Entry, ok bool) {
	i := c.findOnHand(it)
	if i < 0 {
		c.log.Debug().
			Str("item", it.Name).
			Str("amount", it.Amount.String()).
			Msg("removal ignored, item not in cart")
		return ledger.Entry{}, false
	}
	c.onHand = slices.Delete(c.onHand, i, i+1)

	voided = ledger.VoidedItemEntry(it)
	delta := ledger.NewDelta(ledger.OpRemove, it)
	delta.Append(voided)

	for _, rule := range c.rules {
		for _, r := range rule.Reverse(it) {
			delta.Append(ledger.VoidedRewardEntry(r))
			c.log.Debug().
				Str("rule", rule.String()).
				Str("value", r.Value().StringFixed(2)).
				Msg("discount voided")
		}
	}

	c.ledger.Apply(delta)

	c.log.Debug().
		Str("item", it.Name).
		Str("amount", it.Amount.String()).
		Str("price", it.Price().StringFixed(2)).
		Int("discounts", delta.Rewards()).
		Msg("item removed")

	return voided, true
}

// findOnHand returns the index of the most recently added equal item still in
// the cart, or -1.
func (c *Cart) findOnHand(it item.Item) int {
	for i := len(c.onHand) - 1; i >= 0; i-- {
		if c.onHand[i].Equal(it) {
			return i
		}
	}
	return -1
}

// Items returns the item and voided item entries in the order they happened.
// Discount entries are left out.
func (c *Cart) Items() []ledger.Entry {
	return c.ledger.Items()
}

// Entries returns the full ledger, discounts included.
func (c *Cart) Entries() []ledger.Entry {
	return c.ledger.Entries()
}

// Total returns what the cart currently costs.
func (c *Cart) Total() decimal.Decimal {
	return c.ledger.Total()
}

// Receipt returns the item entries together with the total.
func (c *Cart) Receipt() ([]ledger.Entry, decimal.Decimal) {
	return c.Items(), c.Total()
}

// PrintReceipt renders the full ledger and total as receipt text.
func (c *Cart) PrintReceipt() string {
	return c.formatter.FormatString(c.ledger.Entries(), c.ledger.Total())
}

// WriteReceipt writes the receipt text to w.
func (c *Cart) WriteReceipt(ctx context.Context, w io.Writer) error {
	return c.formatter.Format(ctx, c.ledger.Entries(), c.ledger.Total(), w)
}
