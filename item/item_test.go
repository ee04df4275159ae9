package item

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestItem_Price(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "single unit",
			item: NewQuantified("apple", decimal.RequireFromString("1.00"), 1),
			want: "1.00",
		},
		{
			name: "multiple units",
			item: NewQuantified("orange", decimal.RequireFromString("2.00"), 2),
			want: "4.00",
		},
		{
			name: "weighted",
			item: NewWeighted("banana", decimal.RequireFromString("3.00"), decimal.NewFromInt(5)),
			want: "15.00",
		},
		{
			name: "fractional weight",
			item: NewWeighted("banana", decimal.RequireFromString("2.99"), decimal.RequireFromString("0.5")),
			want: "1.50", // 1.495 rounds half up
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Price().StringFixed(2))
		})
	}
}

func TestItem_Equal(t *testing.T) {
	apple := NewQuantified("apple", decimal.RequireFromString("1.00"), 1)

	t.Run("same value with different scale", func(t *testing.T) {
		other := NewQuantified("apple", decimal.RequireFromString("1"), 1)
		assert.True(t, apple.Equal(other))
	})

	t.Run("different name", func(t *testing.T) {
		other := NewQuantified("pear", decimal.RequireFromString("1.00"), 1)
		assert.False(t, apple.Equal(other))
	})

	t.Run("different amount", func(t *testing.T) {
		other := NewQuantified("apple", decimal.RequireFromString("1.00"), 2)
		assert.False(t, apple.Equal(other))
	})

	t.Run("different measure", func(t *testing.T) {
		other := NewWeighted("apple", decimal.RequireFromString("1.00"), decimal.NewFromInt(1))
		assert.False(t, apple.Equal(other))
	})
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr string
	}{
		{
			name: "valid quantified",
			item: NewQuantified("apple", decimal.RequireFromString("1.00"), 3),
		},
		{
			name: "valid free item",
			item: NewQuantified("bag", decimal.Zero, 1),
		},
		{
			name:    "empty name",
			item:    NewQuantified("", decimal.RequireFromString("1.00"), 1),
			wantErr: `invalid item "<unnamed>": name is empty`,
		},
		{
			name:    "negative price",
			item:    NewQuantified("apple", decimal.RequireFromString("-1.00"), 1),
			wantErr: `invalid item "apple": unit price -1 is negative`,
		},
		{
			name:    "zero weight",
			item:    NewWeighted("banana", decimal.RequireFromString("3.00"), decimal.Zero),
			wantErr: `invalid item "banana": amount 0 must be positive`,
		},
		{
			name: "fractional quantity",
			item: Item{
				Name:      "apple",
				UnitPrice: decimal.RequireFromString("1.00"),
				Amount:    decimal.RequireFromString("1.5"),
				Measure:   Each,
			},
			wantErr: `invalid item "apple": quantity 1.5 is not a whole number`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			_, ok := err.(*InvalidItemError)
			assert.True(t, ok, "should be InvalidItemError")
		})
	}
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "2 orange @ 2.00", NewQuantified("orange", decimal.RequireFromString("2"), 2).String())
	assert.Equal(t, "5 kg banana @ 3.00", NewWeighted("banana", decimal.RequireFromString("3"), decimal.NewFromInt(5)).String())
}
