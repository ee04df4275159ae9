package ledger

import (
	"strings"

	"github.com/robinvdvleuten/till/item"
)

// Operation is the cart operation a delta was produced by.
type Operation int

const (
	// OpAdd adds an item.
	OpAdd Operation = iota
	// OpRemove removes an item.
	OpRemove
)

// String returns the string representation of the operation
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

// Delta is the set of entries a single cart operation appends. The cart builds
// the complete delta (the item line followed by any reward lines) before
// applying it, so the ledger never holds half an operation.
type Delta struct {
	Operation Operation
	Item      item.Item
	Entries   []Entry
}

// NewDelta creates an empty delta for an operation on it.
func NewDelta(op Operation, it item.Item) *Delta {
	return &Delta{Operation: op, Item: it}
}

// Append adds entries to the delta in order.
func (d *Delta) Append(entries ...Entry) {
	d.Entries = append(d.Entries, entries...)
}

// Rewards returns how many reward or voided reward entries the delta holds.
func (d *Delta) Rewards() int {
	n := 0
	for _, e := range d.Entries {
		if !e.IsItem() {
			n++
		}
	}
	return n
}

// String returns a human-readable representation of the delta
func (d *Delta) String() string {
	var sb strings.Builder
	sb.WriteString(d.Operation.String())
	sb.WriteString(" ")
	sb.WriteString(d.Item.String())
	for _, e := range d.Entries {
		sb.WriteString("; ")
		sb.WriteString(e.String())
	}
	return sb.String()
}
