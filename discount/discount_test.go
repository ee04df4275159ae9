package discount

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/till/item"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func values(rewards []*Reward) []string {
	out := make([]string, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, r.Value().StringFixed(2))
	}
	return out
}

func TestAddOn_Observe(t *testing.T) {
	apple := item.NewQuantified("apple", dec("1.00"), 1)

	t.Run("grants a reward on every third apple", func(t *testing.T) {
		rule := MustAddOn("apple", dec("3"), dec("1"))

		var granted []int
		for i := 1; i <= 6; i++ {
			if rewards := rule.Observe(apple); len(rewards) > 0 {
				assert.Equal(t, 1, len(rewards))
				assert.Equal(t, "-1.00", rewards[0].Value().StringFixed(2))
				assert.Equal(t, "apple", rewards[0].Name())
				assert.False(t, rewards[0].Voided())
				granted = append(granted, i)
			}
		}
		assert.Equal(t, []int{3, 6}, granted)
	})

	t.Run("values the free units at the item's unit price", func(t *testing.T) {
		rule := MustAddOn("orange", dec("2"), dec("2"))
		orange := item.NewQuantified("orange", dec("2.50"), 2)

		rewards := rule.Observe(orange)
		assert.Equal(t, []string{"-5.00"}, values(rewards))
	})

	t.Run("ignores other items", func(t *testing.T) {
		rule := MustAddOn("apple", dec("1"), dec("1"))
		orange := item.NewQuantified("orange", dec("2.00"), 10)

		assert.Zero(t, rule.Observe(orange))
		assert.Zero(t, rule.Reverse(orange))
	})

	t.Run("multiple crossings in one add", func(t *testing.T) {
		rule := MustAddOn("apple", dec("5"), dec("1"))
		tenApples := item.NewQuantified("apple", dec("1.00"), 10)

		rewards := rule.Observe(tenApples)
		assert.Equal(t, []string{"-1.00", "-1.00"}, values(rewards))
		assert.True(t, rewards[0] != rewards[1], "each crossing is a separate reward")
	})

	t.Run("reward points back at its rule", func(t *testing.T) {
		rule := MustAddOn("apple", dec("1"), dec("1"))
		rewards := rule.Observe(apple)
		assert.True(t, rewards[0].Rule() == Rule(rule))
	})
}

func TestAddOn_Reverse(t *testing.T) {
	apple := item.NewQuantified("apple", dec("1.00"), 1)

	t.Run("un-crossing voids the latest reward", func(t *testing.T) {
		rule := MustAddOn("apple", dec("3"), dec("1"))
		var granted []*Reward
		for i := 0; i < 6; i++ {
			granted = append(granted, rule.Observe(apple)...)
		}
		assert.Equal(t, 2, len(granted))

		voided := rule.Reverse(apple)
		assert.Equal(t, 1, len(voided))
		assert.True(t, voided[0] == granted[1], "should void the most recent reward")
		assert.True(t, granted[1].Voided())
		assert.False(t, granted[0].Voided())
	})

	t.Run("staying above the threshold voids nothing", func(t *testing.T) {
		rule := MustAddOn("apple", dec("3"), dec("1"))
		for i := 0; i < 4; i++ {
			rule.Observe(apple)
		}
		assert.Zero(t, rule.Reverse(apple))
	})

	t.Run("re-crossing grants a fresh reward", func(t *testing.T) {
		rule := MustAddOn("apple", dec("1"), dec("1"))
		first := rule.Observe(apple)
		voided := rule.Reverse(apple)
		second := rule.Observe(apple)

		assert.True(t, first[0] == voided[0])
		assert.True(t, first[0] != second[0], "voided reward must not be reused")
		assert.True(t, first[0].Voided())
		assert.False(t, second[0].Voided())
	})
}

func TestReducedRate(t *testing.T) {
	t.Run("incrementally voided by weight", func(t *testing.T) {
		rule := MustReducedRate("banana", dec("10"), dec("-2.00"))
		first := item.NewWeighted("banana", dec("3.00"), dec("5"))
		second := item.NewWeighted("banana", dec("3.00"), dec("10"))

		assert.Zero(t, rule.Observe(first))
		granted := rule.Observe(second)
		assert.Equal(t, []string{"-2.00"}, values(granted))

		// 15 -> 10 still reaches the threshold
		assert.Zero(t, rule.Reverse(first))

		voided := rule.Reverse(second)
		assert.Equal(t, 1, len(voided))
		assert.True(t, voided[0] == granted[0])
		assert.True(t, granted[0].Voided())
	})

	t.Run("two crossings voided LIFO", func(t *testing.T) {
		rule := MustReducedRate("banana", dec("5"), dec("-2.00"))
		banana := item.NewWeighted("banana", dec("3.00"), dec("10"))

		granted := rule.Observe(banana)
		assert.Equal(t, 2, len(granted))

		voided := rule.Reverse(banana)
		assert.Equal(t, 2, len(voided))
		assert.True(t, voided[0] == granted[1])
		assert.True(t, voided[1] == granted[0])
	})

	t.Run("zero adjustment still grants", func(t *testing.T) {
		rule := MustReducedRate("apple", dec("1"), decimal.Zero)
		rewards := rule.Observe(item.NewQuantified("apple", dec("1.00"), 1))
		assert.Equal(t, []string{"0.00"}, values(rewards))
	})

	t.Run("fractional weights accumulate", func(t *testing.T) {
		rule := MustReducedRate("banana", dec("1"), dec("-0.50"))
		half := item.NewWeighted("banana", dec("3.00"), dec("0.5"))

		assert.Zero(t, rule.Observe(half))
		assert.Equal(t, 1, len(rule.Observe(half)))
	})
}

func TestNewRules_Validation(t *testing.T) {
	_, err := NewAddOn("apple", decimal.Zero, dec("1"))
	assert.EqualError(t, err, `invalid add_on discount for "apple": threshold 0 must be positive`)

	_, err = NewAddOn("apple", dec("3"), dec("-1"))
	assert.EqualError(t, err, `invalid add_on discount for "apple": free count -1 is negative`)

	_, err = NewReducedRate("", dec("3"), dec("-1"))
	assert.EqualError(t, err, `invalid reduced_rate discount: item name is empty`)

	assert.Panics(t, func() {
		MustReducedRate("banana", dec("-1"), dec("-1"))
	})
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{
			name:  "add on",
			input: "add_on:apple:3:1",
			want:  "add_on:apple:3:1",
		},
		{
			name:  "reduced rate with spaces and upper case kind",
			input: " REDUCED_RATE : banana : 10 : -2.00 ",
			want:  "reduced_rate:banana:10:-2.00",
		},
		{
			name:    "missing field",
			input:   "add_on:apple:3",
			wantErr: `invalid unknown discount: invalid format "add_on:apple:3", expected KIND:ITEM:THRESHOLD:VALUE`,
		},
		{
			name:    "unknown kind",
			input:   "percent:apple:3:10",
			wantErr: `invalid percent discount for "apple": unknown discount kind`,
		},
		{
			name:    "bad threshold",
			input:   "add_on:apple:three:1",
			wantErr: `invalid add_on discount for "apple": invalid threshold "three"`,
		},
		{
			name:    "zero threshold",
			input:   "reduced_rate:apple:0:-1",
			wantErr: `invalid reduced_rate discount for "apple": threshold 0 must be positive`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := ParseRule(tt.input)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Zero(t, rule)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, rule.String())
		})
	}
}

func TestParseRules_KeepsOrder(t *testing.T) {
	rules, err := ParseRules([]string{"reduced_rate:banana:5:-2.00", "add_on:orange:2:1"})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(rules))
	assert.Equal(t, "banana", rules[0].Trigger())
	assert.Equal(t, "orange", rules[1].Trigger())
}
