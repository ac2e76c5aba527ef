package main

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantity is the parsed form of a free-text quantity like "2 caixas"
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Matches a leading integer or decimal; both "." and "," are accepted as
// the decimal separator (operators type quantities in pt-BR notation).
var quantityRegex = regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?)`)

// parseQuantity extracts the leading numeric portion and the trailing unit
// label from a free-text quantity string. Malformed input never fails; it
// degrades to a zero value so downstream accumulation is a no-op.
func parseQuantity(text string) Quantity {
	match := quantityRegex.FindStringSubmatch(text)
	if match == nil {
		return Quantity{}
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
	if err != nil {
		return Quantity{}
	}

	unit := strings.TrimSpace(text[len(match[0]):])
	return Quantity{Value: value, Unit: unit}
}

// formatQuantity renders a value and unit back into the stored free-text
// form. Whole numbers render without a decimal point ("2 caixas", not
// "2.0 caixas"); the unit is omitted when empty.
func formatQuantity(value float64, unit string) string {
	text := strconv.FormatFloat(value, 'f', -1, 64)
	if unit == "" {
		return text
	}
	return text + " " + unit
}
