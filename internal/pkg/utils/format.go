package utils

import (
	"fmt"
	"strings"

	"dentalbridge-service/internal/pkg/constvars"
)

// FormatMoney renders an optional monetary amount with fixed two decimals.
// Absent values render as the placeholder dash.
func FormatMoney(amount *float64) string {
	if amount == nil {
		return constvars.ValuePlaceholder
	}
	return fmt.Sprintf("$%.2f", *amount)
}

// TextOrPlaceholder trims the value and falls back to the placeholder dash.
func TextOrPlaceholder(value string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return constvars.ValuePlaceholder
}

// ClampPage keeps a 1-based page index inside [1, max(1, ceil(total/pageSize))].
func ClampPage(page, total, pageSize int) int {
	totalPages := TotalPages(total, pageSize)
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
