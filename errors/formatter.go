// Package errors presents cart validation errors. It keeps presentation out of
// the domain packages, so the same errors can be rendered as text for people
// or as JSON for machines.
//
// The package defines a Formatter interface with two implementations:
//   - TextFormatter: the error message followed by the offending receipt line
//   - JSONFormatter: structured JSON with the operation and error details
//
// Domain error types stay in their packages (item, discount, cart); this
// package only reads them.
package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/robinvdvleuten/till/cart"
	"github.com/robinvdvleuten/till/discount"
	"github.com/robinvdvleuten/till/item"
	"github.com/robinvdvleuten/till/ledger"
	"github.com/robinvdvleuten/till/receipt"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// Flatten returns the errors joined in err, or err itself when it joins
// nothing. A *cart.ValidationErrors yields its individual errors.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// TextFormatter formats errors for people.
type TextFormatter struct {
	receipt *receipt.Formatter
}

// NewTextFormatter creates a text formatter that renders offending items with
// f. A nil f uses the default receipt layout.
func NewTextFormatter(f *receipt.Formatter) *TextFormatter {
	if f == nil {
		f = receipt.New()
	}
	return &TextFormatter{receipt: f}
}

// Format formats a single error. Errors from a replayed operation are followed
// by the receipt line the operation would have produced.
func (tf *TextFormatter) Format(err error) string {
	var opErr *cart.OperationError
	if !stderrors.As(err, &opErr) {
		return err.Error()
	}

	var buf bytes.Buffer
	buf.WriteString(err.Error())
	buf.WriteString("\n\n   ")
	buf.WriteString(tf.receipt.Line(operationEntry(opErr.Operation)))
	return buf.String()
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	var buf bytes.Buffer
	for i, err := range errs {
		buf.WriteString(tf.Format(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}
	return buf.String()
}

func operationEntry(op cart.Operation) ledger.Entry {
	if op.Op == ledger.OpRemove {
		return ledger.VoidedItemEntry(op.Item)
	}
	return ledger.ItemEntry(op.Item)
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type      string            `json:"type"`
	Message   string            `json:"message"`
	Operation *OperationJSON    `json:"operation,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// OperationJSON represents a replayed operation in JSON format.
type OperationJSON struct {
	Index  int    `json:"index"`
	Op     string `json:"op"`
	Item   string `json:"item"`
	Amount string `json:"amount"`
	Price  string `json:"unit_price"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	data, _ := json.MarshalIndent(jf.FormatAllToSlice(errs), "", "  ")
	return string(data)
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		result = append(result, jf.toJSON(err))
	}
	return result
}

func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
		Details: make(map[string]string),
	}

	var opErr *cart.OperationError
	if stderrors.As(err, &opErr) {
		op := opErr.Operation
		errJSON.Operation = &OperationJSON{
			Index:  opErr.Index,
			Op:     op.Op.String(),
			Item:   op.Item.Name,
			Amount: op.Item.Amount.String(),
			Price:  op.Item.UnitPrice.StringFixed(2),
		}
	}

	var itemErr *item.InvalidItemError
	if stderrors.As(err, &itemErr) {
		errJSON.Details["reason"] = itemErr.Reason
		errJSON.Details["measure"] = itemErr.Item.Measure.String()
	}

	var ruleErr *discount.InvalidRuleError
	if stderrors.As(err, &ruleErr) {
		errJSON.Details["reason"] = ruleErr.Reason
		errJSON.Details["kind"] = ruleErr.Kind
		if ruleErr.Trigger != "" {
			errJSON.Details["item"] = ruleErr.Trigger
		}
	}

	if len(errJSON.Details) == 0 {
		errJSON.Details = nil
	}

	return errJSON
}
