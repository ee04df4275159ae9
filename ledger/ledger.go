// Package ledger provides the append-only log a cart records its history in.
//
// Every add and remove appends entries; nothing is ever deleted or rewritten.
// A removed item stays on the ledger and gains a voided counterpart, and a
// voided reward likewise keeps its original line. The total is the sum of all
// entries' signed values, so a voided pair always nets to zero while both
// lines remain visible on the receipt.
//
// Entries are appended as deltas: one delta per cart operation, holding the
// item line followed by the reward lines it triggered.
//
// Example usage:
//
//	l := ledger.New()
//	d := ledger.NewDelta(ledger.OpAdd, apple)
//	d.Append(ledger.ItemEntry(apple))
//	l.Apply(d)
//	fmt.Println(l.Total()) // 1
package ledger

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger is the ordered history of a cart.
type Ledger struct {
	entries []Entry
	total   decimal.Decimal
}

// New creates a new empty ledger
func New() *Ledger {
	return &Ledger{
		entries: make([]Entry, 0),
		total:   decimal.Zero,
	}
}

// Apply appends the delta's entries in order.
func (l *Ledger) Apply(delta *Delta) {
	for _, e := range delta.Entries {
		l.entries = append(l.entries, e)
		l.total = l.total.Add(e.Value())
	}
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns every entry in ledger order.
func (l *Ledger) Entries() []Entry {
	return slices.Clone(l.entries)
}

// Items returns the item and voided item entries in ledger order, leaving out
// rewards.
func (l *Ledger) Items() []Entry {
	items := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if e.IsItem() {
			items = append(items, e)
		}
	}
	return items
}

// Total returns the sum of every entry's signed value.
func (l *Ledger) Total() decimal.Decimal {
	return l.total
}
