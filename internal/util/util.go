package util

import (
	"fmt"
	"math"
	"time"
)

// RoundMoney rounds a dollar amount to cents, half away from zero.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatUSD formats a dollar amount for chatbot-facing text (e.g., "$74.25").
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", RoundMoney(amount))
}

// FormatOrderDate formats a scheduled date for chatbot-facing text
// (e.g., "Monday, January 2, 2006").
func FormatOrderDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatItemLine renders a single order line for chatbot-facing summaries,
// e.g. "2x Apple Pie (Large) - $25.98". Option name is omitted when empty.
func FormatItemLine(quantity int, productName, optionName string, lineTotal float64) string {
	if optionName != "" {
		return fmt.Sprintf("%dx %s (%s) - %s", quantity, productName, optionName, FormatUSD(lineTotal))
	}

	return fmt.Sprintf("%dx %s - %s", quantity, productName, FormatUSD(lineTotal))
}
