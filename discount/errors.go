package discount

import "fmt"

// InvalidRuleError is returned when a rule cannot be constructed or parsed.
type InvalidRuleError struct {
	Kind    string
	Trigger string
	Reason  string
}

func (e *InvalidRuleError) Error() string {
	if e.Trigger == "" {
		return fmt.Sprintf("invalid %s discount: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s discount for %q: %s", e.Kind, e.Trigger, e.Reason)
}
