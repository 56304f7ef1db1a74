package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	testTable := []struct {
		name     string
		payload  string
		expected Amount
	}{
		{name: "number", payload: `129.99`, expected: 129.99},
		{name: "numeric string", payload: `"129.99"`, expected: 129.99},
		{name: "padded string", payload: `" 80 "`, expected: 80},
		{name: "null", payload: `null`, expected: 0},
		{name: "garbage string", payload: `"abc"`, expected: 0},
		{name: "bool", payload: `true`, expected: 0},
		{name: "object", payload: `{}`, expected: 0},
		{name: "overflowing number", payload: `1e999`, expected: 0},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &a))
			assert.Equal(t, tc.expected, a)
		})
	}
}

func TestFlagUnmarshal(t *testing.T) {
	testTable := []struct {
		name     string
		payload  string
		expected Flag
	}{
		{name: "true", payload: `true`, expected: true},
		{name: "false", payload: `false`, expected: false},
		{name: "one", payload: `1`, expected: true},
		{name: "zero", payload: `0`, expected: false},
		{name: "string one", payload: `"1"`, expected: true},
		{name: "string zero", payload: `"0"`, expected: false},
		{name: "string true", payload: `"true"`, expected: true},
		{name: "null", payload: `null`, expected: false},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			var f Flag
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &f))
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestFinalPrice(t *testing.T) {
	testTable := []struct {
		name     string
		parfum   Parfum
		expected float64
	}{
		{
			name:     "server-computed final price wins",
			parfum:   Parfum{Prix: 100, HasActivePromotion: true, DiscountPercentage: 20, PrixFinal: 75},
			expected: 75,
		},
		{
			name:     "discount applied locally",
			parfum:   Parfum{Prix: 100, HasActivePromotion: true, DiscountPercentage: 20},
			expected: 80,
		},
		{
			name:     "no promotion keeps the base price",
			parfum:   Parfum{Prix: 100},
			expected: 100,
		},
		{
			name:     "promotion flag without a discount keeps the base price",
			parfum:   Parfum{Prix: 100, HasActivePromotion: true},
			expected: 100,
		},
	}

	for _, tc := range testTable {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.parfum.FinalPrice())
		})
	}
}
