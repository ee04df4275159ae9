package cart

import (
	"context"
	"fmt"

	"github.com/robinvdvleuten/till/item"
	"github.com/robinvdvleuten/till/ledger"
	"github.com/robinvdvleuten/till/telemetry"
)

// Operation is one recorded register action.
type Operation struct {
	Op   ledger.Operation
	Item item.Item
}

// AddOp records adding it.
func AddOp(it item.Item) Operation {
	return Operation{Op: ledger.OpAdd, Item: it}
}

// RemoveOp records removing it.
func RemoveOp(it item.Item) Operation {
	return Operation{Op: ledger.OpRemove, Item: it}
}

// ValidationErrors wraps multiple validation errors
type ValidationErrors struct {
	Errors []error
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d validation errors occurred", len(e.Errors))
}

// Unwrap returns the underlying errors for error unwrapping
func (e *ValidationErrors) Unwrap() []error {
	return e.Errors
}

// OperationError is returned for a replayed operation that was skipped.
type OperationError struct {
	Index     int
	Operation Operation
	Err       error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %d (%s): %v", e.Index+1, e.Operation.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Replay applies recorded operations in order. Operations whose item does not
// validate, or whose kind is unknown, are skipped and reported together in a
// *ValidationErrors once the rest have been applied. Removing an item that is
// not in the cart is not an error. Replay stops early with the context's error
// when ctx is cancelled.
func (c *Cart) Replay(ctx context.Context, ops []Operation) error {
	timer := telemetry.StartTimer(ctx, fmt.Sprintf("cart.replay (%d operations)", len(ops)))
	defer timer.End()

	var errs []error
	for i, op := range ops {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := op.Item.Validate(); err != nil {
			errs = append(errs, &OperationError{Index: i, Operation: op, Err: err})
			continue
		}

		switch op.Op {
		case ledger.OpAdd:
			c.Add(op.Item)
		case ledger.OpRemove:
			c.Remove(op.Item)
		default:
			errs = append(errs, &OperationError{Index: i, Operation: op, Err: fmt.Errorf("unknown operation %d", int(op.Op))})
		}
	}

	if len(errs) > 0 {
		c.log.Debug().Int("errors", len(errs)).Msg("replay skipped invalid operations")
		return &ValidationErrors{Errors: errs}
	}
	return nil
}
