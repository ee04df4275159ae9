// Package receipt renders a cart's ledger as a printable receipt.
//
// Every ledger entry becomes one line, in ledger order, followed by a dashed
// separator and the total:
//
//	1 apple $1.00: $1.00
//	5 kg banana $3.00/kg: $15.00
//	1 DISCOUNT banana: $-2.00
//	5 VOIDED banana: $-15.00
//	1 VOIDED DISCOUNT banana: $2.00
//	----------------------------
//	TOTAL: $1.00
//
// Money is printed with two decimals. Voided lines print the negation of the
// line they reverse, so voiding a zero-valued discount prints "$-0.00".
package receipt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/robinvdvleuten/till/ledger"
	"github.com/robinvdvleuten/till/output"
	"github.com/robinvdvleuten/till/telemetry"
	"github.com/shopspring/decimal"
)

// DefaultSeparatorWidth is the number of dashes above the total line.
const DefaultSeparatorWidth = 28

// Formatter renders ledger entries as receipt text.
type Formatter struct {
	// SeparatorWidth is the number of dashes in the separator line.
	SeparatorWidth int

	// Align pads descriptions so every amount starts in the same column.
	// Display width is used, so wide characters in item names line up.
	Align bool

	styles *output.Styles
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithSeparatorWidth sets the number of dashes in the separator line.
func WithSeparatorWidth(width int) Option {
	return func(f *Formatter) {
		f.SeparatorWidth = width
	}
}

// WithAlignment aligns amounts in a single column.
func WithAlignment() Option {
	return func(f *Formatter) {
		f.Align = true
	}
}

// WithStyles colors lines by kind using the given styles.
func WithStyles(styles *output.Styles) Option {
	return func(f *Formatter) {
		f.styles = styles
	}
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		SeparatorWidth: DefaultSeparatorWidth,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// line is a receipt line split at the colon.
type line struct {
	kind  ledger.Kind
	desc  string
	value string
}

// Format writes the receipt for entries and total to w. The output has no
// trailing newline.
func (f *Formatter) Format(ctx context.Context, entries []ledger.Entry, total decimal.Decimal, w io.Writer) error {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("receipt.format (%d lines)", len(entries)))
	defer timer.End()

	_, err := io.WriteString(w, f.FormatString(entries, total))
	return err
}

// FormatString returns the receipt for entries and total.
func (f *Formatter) FormatString(entries []ledger.Entry, total decimal.Decimal) string {
	lines := make([]line, 0, len(entries))
	width := 0
	for _, e := range entries {
		l := describe(e)
		if w := runewidth.StringWidth(l.desc); w > width {
			width = w
		}
		lines = append(lines, l)
	}

	var buf strings.Builder
	buf.Grow((len(lines) + 2) * 32)

	for _, l := range lines {
		buf.WriteString(f.style(l.kind, f.render(l, width)))
		buf.WriteByte('\n')
	}

	buf.WriteString(f.dim(strings.Repeat("-", f.SeparatorWidth)))
	buf.WriteByte('\n')
	buf.WriteString(f.totalLine("TOTAL: $" + money(total, false)))

	return buf.String()
}

// Line returns the receipt line for a single entry, without styling.
func (f *Formatter) Line(e ledger.Entry) string {
	l := describe(e)
	return f.render(l, runewidth.StringWidth(l.desc))
}

func (f *Formatter) render(l line, width int) string {
	if !f.Align {
		return l.desc + ": $" + l.value
	}
	pad := width - runewidth.StringWidth(l.desc)
	return l.desc + ":" + strings.Repeat(" ", pad+1) + "$" + l.value
}

func describe(e ledger.Entry) line {
	l := line{kind: e.Kind}

	switch e.Kind {
	case ledger.KindItem:
		it := e.Item
		if it.IsWeighted() {
			l.desc = fmt.Sprintf("%s kg %s $%s/kg", it.Amount, it.Name, it.UnitPrice.StringFixed(2))
		} else {
			l.desc = fmt.Sprintf("%s %s $%s", it.Amount, it.Name, it.UnitPrice.StringFixed(2))
		}
		l.value = money(it.Price(), false)
	case ledger.KindVoidedItem:
		l.desc = fmt.Sprintf("%s VOIDED %s", e.Item.Amount, e.Item.Name)
		l.value = money(e.Item.Price(), true)
	case ledger.KindReward:
		l.desc = "1 DISCOUNT " + e.Name()
		l.value = money(e.Original(), false)
	case ledger.KindVoidedReward:
		l.desc = "1 VOIDED DISCOUNT " + e.Name()
		l.value = money(e.Original(), true)
	}

	return l
}

// money formats d with two decimals, negated when asked. Negation works on
// the text so that negating zero keeps its sign ("-0.00").
func money(d decimal.Decimal, negate bool) string {
	s := d.StringFixed(2)
	if !negate {
		return s
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return rest
	}
	return "-" + s
}

func (f *Formatter) style(kind ledger.Kind, text string) string {
	if f.styles == nil {
		return text
	}
	switch kind {
	case ledger.KindReward:
		return f.styles.Discount(text)
	case ledger.KindVoidedItem, ledger.KindVoidedReward:
		return f.styles.Voided(text)
	default:
		return f.styles.Item(text)
	}
}

func (f *Formatter) dim(text string) string {
	if f.styles == nil {
		return text
	}
	return f.styles.Dim(text)
}

func (f *Formatter) totalLine(text string) string {
	if f.styles == nil {
		return text
	}
	return f.styles.Total(text)
}
