// Package sizeparse provides byte-size parsing utilities.
package sizeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseBytes parses a human-readable size string into bytes.
// Supports formats like "1M", "500k", "1.5G", "1024" (plain bytes).
// Units are case-insensitive and use binary (1024-based) multipliers.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	// Find where the unit starts (last non-digit character)
	i := len(s) - 1
	for i >= 0 && !unicode.IsDigit(rune(s[i])) && s[i] != '.' {
		i--
	}

	// Parse the number part
	numStr := s[:i+1]
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", numStr, err)
	}
	if num < 0 {
		return 0, fmt.Errorf("size cannot be negative")
	}

	// Parse the unit suffix
	unit := strings.ToLower(strings.TrimSpace(s[i+1:]))
	var multiplier float64
	switch unit {
	case "", "b":
		multiplier = 1
	case "k", "kb", "kib":
		multiplier = 1024
	case "m", "mb", "mib":
		multiplier = 1024 * 1024
	case "g", "gb", "gib":
		multiplier = 1024 * 1024 * 1024
	case "t", "tb", "tib":
		multiplier = 1024 * 1024 * 1024 * 1024
	case "p", "pb", "pib":
		multiplier = 1024 * 1024 * 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unknown unit %q (supported: b, k, m, g, t, p)", unit)
	}

	result := num * multiplier
	if result > float64(math.MaxInt64) {
		return 0, fmt.Errorf("size too large (exceeds max int64)")
	}

	return int64(result), nil
}
