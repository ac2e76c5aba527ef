package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(target string) DonationItem {
	return DonationItem{ID: "item-1", Name: "Leite em pó", TargetQuantity: target, Category: "Alimentos"}
}

// Two partial drop-offs accumulate in the target's unit and flip the goal
// once the target is reached.
func TestAddContributionAccumulates(t *testing.T) {
	item := newItem("2 caixas")

	item, err := addContribution(item, "1")
	require.NoError(t, err)
	require.NotNil(t, item.ReceivedQuantity)
	assert.Equal(t, "1 caixas", *item.ReceivedQuantity)
	assert.False(t, item.Fulfilled)

	item, err = addContribution(item, "1")
	require.NoError(t, err)
	assert.Equal(t, "2 caixas", *item.ReceivedQuantity)
	assert.True(t, item.Fulfilled)
}

func TestAddContributionDecimals(t *testing.T) {
	item := newItem("1,5 kg")

	item, err := addContribution(item, "0,5")
	require.NoError(t, err)
	assert.Equal(t, "0.5 kg", *item.ReceivedQuantity)
	assert.False(t, item.Fulfilled)

	item, err = addContribution(item, "1")
	require.NoError(t, err)
	assert.Equal(t, "1.5 kg", *item.ReceivedQuantity)
	assert.True(t, item.Fulfilled)
}

func TestAddContributionRejectsInvalidAmounts(t *testing.T) {
	for _, amount := range []string{"-1", "abc", "", "NaN", "Inf", "-0.01"} {
		t.Run(amount, func(t *testing.T) {
			item := newItem("2 caixas")
			updated, err := addContribution(item, amount)
			assert.ErrorIs(t, err, ErrInvalidAmount)
			// The item comes back unchanged.
			assert.Equal(t, item, updated)
		})
	}
}

func TestAddContributionUnitlessTarget(t *testing.T) {
	item := newItem("50")

	item, err := addContribution(item, "20")
	require.NoError(t, err)
	assert.Equal(t, "20", *item.ReceivedQuantity)
	assert.False(t, item.Fulfilled)
}

// A target that parses to zero ("algumas") is met by any contribution.
func TestAddContributionZeroTarget(t *testing.T) {
	item := newItem("algumas")

	item, err := addContribution(item, "0")
	require.NoError(t, err)
	assert.True(t, item.Fulfilled)
}

// Fulfillment is monotonic: no sequence of non-negative contributions ever
// reverts a fulfilled item.
func TestFulfillmentMonotonic(t *testing.T) {
	item := newItem("2 caixas")
	item.Fulfilled = true // manually fulfilled through another channel

	var err error
	for _, amount := range []string{"0", "1", "0.5"} {
		item, err = addContribution(item, amount)
		require.NoError(t, err)
		assert.True(t, item.Fulfilled)
	}
}

func TestSetFulfilledLeavesReceivedAlone(t *testing.T) {
	received := "1 caixas"
	item := newItem("2 caixas")
	item.ReceivedQuantity = &received

	item = setFulfilled(item, true)
	assert.True(t, item.Fulfilled)
	assert.Equal(t, "1 caixas", *item.ReceivedQuantity)

	item = setFulfilled(item, false)
	assert.False(t, item.Fulfilled)
	assert.Equal(t, "1 caixas", *item.ReceivedQuantity)
}
