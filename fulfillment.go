package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount rejects a contribution whose amount is not a finite,
// non-negative number. Unlike parseQuantity's silent zero fallback, an
// operator-entered amount is an explicit action and invalid input must be
// surfaced, not discarded.
var ErrInvalidAmount = errors.New("invalid contribution amount")

// addContribution merges a partial donation drop-off into the item's running
// total and decides whether the goal is now met. The unit is carried from
// the target quantity, not re-derived from user input: the operator enters a
// bare number. The caller persists the returned item.
//
// Re-applying the same contribution twice double-counts. That is intended:
// contributions represent physical drop-offs, not replayable commands.
func addContribution(item DonationItem, amountText string) (DonationItem, error) {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(amountText), ",", "."), 64)
	if err != nil {
		return item, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, amountText)
	}
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return item, fmt.Errorf("%w: %q is not finite", ErrInvalidAmount, amountText)
	}
	if amount < 0 {
		return item, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, amountText)
	}

	target := parseQuantity(item.TargetQuantity)

	// No received quantity yet means zero, in the target's unit.
	received := Quantity{Unit: target.Unit}
	if item.ReceivedQuantity != nil {
		received = parseQuantity(*item.ReceivedQuantity)
	}

	newValue := received.Value + amount
	newReceived := formatQuantity(newValue, target.Unit)
	item.ReceivedQuantity = &newReceived

	// Fulfillment is monotonic: an item fulfilled through another channel
	// stays fulfilled. A zero target is met by any non-negative total.
	if newValue >= target.Value {
		item.Fulfilled = true
	}

	return item, nil
}

// setFulfilled is the unconditional toggle for goals met outside the tracked
// contribution flow (e.g. donated outright). It leaves the running total alone.
func setFulfilled(item DonationItem, fulfilled bool) DonationItem {
	item.Fulfilled = fulfilled
	return item
}
