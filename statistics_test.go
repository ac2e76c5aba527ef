package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func size(s string) *string { return &s }

func dateOf(yearsAgo int, month time.Month, day int) *string {
	d := time.Date(statsNow.Year()-yearsAgo, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	return &d
}

func TestKitName(t *testing.T) {
	assert.Equal(t, "Completo", kitName("Completo - camiseta e shorts - 150"))
	assert.Equal(t, "Basico", kitName("Basico"))
	assert.Equal(t, "", kitName(""))
}

func TestKitPrice(t *testing.T) {
	assert.Equal(t, 150.0, kitPrice("Completo - camiseta e shorts - 150"))
	assert.Equal(t, 120.5, kitPrice("Camiseta - 120,5"))
	assert.Equal(t, 90.0, kitPrice("Basico - R$ 90"))
	assert.Equal(t, 0.0, kitPrice("Cortesia"))
}

func TestComputeStatisticsRevenueAndActiveCount(t *testing.T) {
	registrations := []Registration{
		{PaymentStatus: StatusPaid, PaymentAmount: 100},
		{PaymentStatus: StatusPending, PaymentAmount: 50},
		{PaymentStatus: StatusCanceled, PaymentAmount: 999},
	}

	snapshot := computeStatistics(registrations, statsNow)
	assert.Equal(t, 150.0, snapshot.TotalRevenue)
	assert.Equal(t, 2, snapshot.ActiveCount)
}

// The kit percentage denominator is the total collection size, canceled
// records included. The operators' reports have always read that way.
func TestComputeStatisticsKitDistribution(t *testing.T) {
	registrations := []Registration{
		{PaymentStatus: StatusPaid, KitOption: "Completo - 150"},
		{PaymentStatus: StatusPaid, KitOption: "Completo - 150"},
		{PaymentStatus: StatusPending, KitOption: "Basico - 90"},
		{PaymentStatus: StatusCanceled, KitOption: "Basico - 90"},
	}

	snapshot := computeStatistics(registrations, statsNow)
	require.Len(t, snapshot.Kits, 2)

	// Counts cover the active subset; the denominator is the unfiltered
	// total of 4, so Basico reads 25% even though it is 1 of 3 active.
	assert.Equal(t, KitCount{Kit: "Basico", Count: 1, Percentage: 25}, snapshot.Kits[0])
	assert.Equal(t, KitCount{Kit: "Completo", Count: 2, Percentage: 50}, snapshot.Kits[1])
}

func TestComputeStatisticsSizeCounts(t *testing.T) {
	registrations := []Registration{
		{PaymentStatus: StatusPaid, GarmentSize1: size("M"), GarmentSize2: size("G")},
		{PaymentStatus: StatusPending, GarmentSize1: size("M")},
		{PaymentStatus: StatusPaid, GarmentSize1: size("PP"), GarmentSize2: size("Infantil 10")},
		{PaymentStatus: StatusPaid, GarmentSize1: size("Infantil 8")},
		// Canceled sizes are not produced.
		{PaymentStatus: StatusCanceled, GarmentSize1: size("XGG")},
	}

	snapshot := computeStatistics(registrations, statsNow)

	expected := []SizeCount{
		{Size: "PP", Count: 1},
		{Size: "M", Count: 2},
		{Size: "G", Count: 1},
		{Size: "Infantil 10", Count: 1},
		{Size: "Infantil 8", Count: 1},
	}
	assert.Equal(t, expected, snapshot.Sizes)
}

func TestComputeStatisticsAgeHistogram(t *testing.T) {
	registrations := []Registration{
		{PaymentStatus: StatusPaid, BirthDate: dateOf(20, time.January, 1)},
		{PaymentStatus: StatusPaid, BirthDate: dateOf(32, time.March, 10)},
		{PaymentStatus: StatusPaid, BirthDate: dateOf(55, time.July, 1)},
		// Unparseable and missing birth dates drop out of the histogram only.
		{PaymentStatus: StatusPaid, BirthDate: size("31/12/1990")},
		{PaymentStatus: StatusPaid},
		// Canceled never counts.
		{PaymentStatus: StatusCanceled, BirthDate: dateOf(30, time.January, 1)},
	}

	snapshot := computeStatistics(registrations, statsNow)

	expected := []AgeBucketCount{
		{Bucket: "18-24", Count: 1},
		{Bucket: "25-29", Count: 0},
		{Bucket: "30-34", Count: 1},
		{Bucket: "35-39", Count: 0},
		{Bucket: "40+", Count: 1},
	}
	assert.Equal(t, expected, snapshot.AgeBuckets)
	assert.Equal(t, 5, snapshot.ActiveCount)
}

// A person turning exactly 25 today falls into the 25-29 bucket.
func TestAgeBucketExactBirthday(t *testing.T) {
	registrations := []Registration{
		{PaymentStatus: StatusPaid, BirthDate: dateOf(25, statsNow.Month(), statsNow.Day())},
	}

	snapshot := computeStatistics(registrations, statsNow)
	assert.Equal(t, 1, snapshot.AgeBuckets[1].Count, "25-29 bucket")
	assert.Equal(t, 0, snapshot.AgeBuckets[0].Count, "18-24 bucket")
}

func TestAgeAt(t *testing.T) {
	birth := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 24, ageAt(birth, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 25, ageAt(birth, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 25, ageAt(birth, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

// No registrations means zero percentages, never a division by zero.
func TestComputeStatisticsEmpty(t *testing.T) {
	snapshot := computeStatistics(nil, statsNow)

	assert.Equal(t, 0.0, snapshot.TotalRevenue)
	assert.Equal(t, 0, snapshot.ActiveCount)
	assert.Empty(t, snapshot.Kits)
	assert.Empty(t, snapshot.Sizes)
	for _, bucket := range snapshot.AgeBuckets {
		assert.Equal(t, 0, bucket.Count)
	}
}
