package cart

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/robinvdvleuten/till/discount"
	"github.com/robinvdvleuten/till/receipt"
)

// Config holds parsed cart options. Discounts are kept in their textual form
// because rules carry per-cart state: every cart built from a Config gets
// fresh rules.
type Config struct {
	Discounts      []string
	SeparatorWidth int
	AlignAmounts   bool
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	return &Config{
		SeparatorWidth: receipt.DefaultSeparatorWidth,
	}
}

// ConfigFromOptions parses an options map into a Config.
// Supports:
//   - "discount" "add_on:apple:3:1" (repeatable, evaluated in order)
//   - "discount" "reduced_rate:banana:10:-2.00"
//   - "separator_width" "28"
//   - "align_amounts" "TRUE"
func ConfigFromOptions(options map[string][]string) (*Config, error) {
	cfg := NewConfig()

	// Parse every rule once so bad configuration fails here rather than per cart
	if vals := options["discount"]; len(vals) > 0 {
		if _, err := discount.ParseRules(vals); err != nil {
			return nil, err
		}
		cfg.Discounts = append(cfg.Discounts, vals...)
	}

	// Use first value if multiple
	if vals := options["separator_width"]; len(vals) > 0 {
		width, err := strconv.Atoi(strings.TrimSpace(vals[0]))
		if err != nil || width <= 0 {
			return nil, fmt.Errorf("invalid separator_width %q, expected a positive integer", vals[0])
		}
		cfg.SeparatorWidth = width
	}

	if vals := options["align_amounts"]; len(vals) > 0 {
		cfg.AlignAmounts = strings.ToUpper(strings.TrimSpace(vals[0])) == "TRUE"
	}

	return cfg, nil
}

// NewFromConfig creates a cart with fresh rules and a receipt formatter built
// from cfg. Additional options are applied after the configuration.
func NewFromConfig(cfg *Config, opts ...Option) (*Cart, error) {
	rules, err := discount.ParseRules(cfg.Discounts)
	if err != nil {
		return nil, err
	}

	formatterOpts := []receipt.Option{receipt.WithSeparatorWidth(cfg.SeparatorWidth)}
	if cfg.AlignAmounts {
		formatterOpts = append(formatterOpts, receipt.WithAlignment())
	}

	base := []Option{
		WithDiscounts(rules...),
		WithFormatter(receipt.New(formatterOpts...)),
	}
	return New(append(base, opts...)...), nil
}

// contextKey is a private type to avoid key collisions in context.
type contextKey struct{}

// WithContext returns a new context with the Config attached.
func (c *Config) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// ConfigFromContext retrieves the Config from context.
// Returns a default Config if not found.
func ConfigFromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(contextKey{}).(*Config); ok {
		return cfg
	}
	return NewConfig()
}
