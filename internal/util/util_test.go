package util

import (
	"testing"
	"time"
)

func TestRoundMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{name: "already exact", amount: 12.34, expected: 12.34},
		{name: "rounds half up", amount: 12.345, expected: 12.35},
		{name: "rounds down", amount: 12.344, expected: 12.34},
		{name: "float artifacts", amount: 0.1 + 0.2, expected: 0.3},
		{name: "zero", amount: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RoundMoney(tt.amount); got != tt.expected {
				t.Fatalf("RoundMoney(%v) = %v, want %v", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatUSD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "whole dollars", amount: 65, expected: "$65.00"},
		{name: "with cents", amount: 9.99, expected: "$9.99"},
		{name: "rounds to cents", amount: 74.2549, expected: "$74.25"},
		{name: "zero", amount: 0, expected: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatUSD(tt.amount); got != tt.expected {
				t.Fatalf("FormatUSD(%v) = %s, want %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatOrderDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	if got := FormatOrderDate(date); got != "Friday, March 14, 2025" {
		t.Fatalf("FormatOrderDate = %s, want %s", got, "Friday, March 14, 2025")
	}
}

func TestFormatItemLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		quantity   int
		product    string
		option     string
		lineTotal  float64
		expected   string
	}{
		{name: "with option", quantity: 2, product: "Apple Pie", option: "Large", lineTotal: 25.98, expected: "2x Apple Pie (Large) - $25.98"},
		{name: "without option", quantity: 1, product: "Cider", option: "", lineTotal: 5.50, expected: "1x Cider - $5.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatItemLine(tt.quantity, tt.product, tt.option, tt.lineTotal)
			if got != tt.expected {
				t.Fatalf("FormatItemLine = %s, want %s", got, tt.expected)
			}
		})
	}
}
