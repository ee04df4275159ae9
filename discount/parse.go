package discount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRule builds a rule from its textual form.
// Supports:
//   - "add_on:<item>:<threshold>:<free>"           e.g. "add_on:apple:3:1"
//   - "reduced_rate:<item>:<threshold>:<amount>"   e.g. "reduced_rate:banana:10:-2.00"
//
// The kind is case-insensitive and whitespace around fields is ignored.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return nil, &InvalidRuleError{
			Kind:   "unknown",
			Reason: fmt.Sprintf("invalid format %q, expected KIND:ITEM:THRESHOLD:VALUE", s),
		}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	kind := strings.ToLower(parts[0])
	trigger := parts[1]
	if kind != "add_on" && kind != "reduced_rate" {
		return nil, &InvalidRuleError{Kind: kind, Trigger: trigger, Reason: "unknown discount kind"}
	}

	threshold, err := decimal.NewFromString(parts[2])
	if err != nil {
		return nil, &InvalidRuleError{Kind: kind, Trigger: trigger, Reason: fmt.Sprintf("invalid threshold %q", parts[2])}
	}
	value, err := decimal.NewFromString(parts[3])
	if err != nil {
		return nil, &InvalidRuleError{Kind: kind, Trigger: trigger, Reason: fmt.Sprintf("invalid value %q", parts[3])}
	}

	if kind == "add_on" {
		rule, err := NewAddOn(trigger, threshold, value)
		if err != nil {
			return nil, err
		}
		return rule, nil
	}

	rule, err := NewReducedRate(trigger, threshold, value)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// ParseRules parses every value with ParseRule, keeping their order.
func ParseRules(values []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(values))
	for _, v := range values {
		r, err := ParseRule(v)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func validateThreshold(kind, trigger string, threshold decimal.Decimal) error {
	if trigger == "" {
		return &InvalidRuleError{Kind: kind, Reason: "item name is empty"}
	}
	if !threshold.IsPositive() {
		return &InvalidRuleError{Kind: kind, Trigger: trigger, Reason: fmt.Sprintf("threshold %s must be positive", threshold)}
	}
	return nil
}
