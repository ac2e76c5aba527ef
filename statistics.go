package main

import (
	"sort"
	"strings"
	"time"
)

// Garment sizes are produced in this order on the statistics screen; sizes
// outside the list are appended afterwards in lexicographic order.
var sizePriority = []string{"PP", "P", "M", "G", "GG", "XG", "XGG", "EXG", "G1", "G2", "G3"}

// Age histogram buckets. Lower bound inclusive, upper bound exclusive, so a
// person turning exactly 25 falls into "25-29".
var ageBuckets = []struct {
	label string
	min   int
	max   int // exclusive; 0 means unbounded
}{
	{"18-24", 18, 25},
	{"25-29", 25, 30},
	{"30-34", 30, 35},
	{"35-39", 35, 40},
	{"40+", 40, 0},
}

// kitName returns the canonical kit name used for grouping: the text before
// the first " - " separator in the kit option.
func kitName(kitOption string) string {
	name, _, _ := strings.Cut(kitOption, " - ")
	return strings.TrimSpace(name)
}

// kitPrice derives the registration fee from a kit option like
// "Completo - camiseta e shorts - 150". The last segment that parses as a
// number is the price; options without one cost zero.
func kitPrice(kitOption string) float64 {
	segments := strings.Split(kitOption, " - ")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(segments[i]), "R$"))
		if q := parseQuantity(segment); q.Value > 0 && q.Unit == "" {
			return q.Value
		}
	}
	return 0
}

// ageAt computes age in whole years as of now: year difference, decremented
// by one when the current month/day precedes the birth month/day.
func ageAt(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// parseBirthDate accepts the stored date-only form. Returns false for
// missing or unparseable dates, which are excluded from the histogram only.
func parseBirthDate(birthDate *string) (time.Time, bool) {
	if birthDate == nil || *birthDate == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse("2006-01-02", *birthDate)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// computeStatistics derives the full snapshot over the registration
// collection as of now. Revenue, sizes, and ages are computed over the
// non-canceled subset; the kit percentage denominator is the total
// collection size including canceled records, which matches what the
// operators' existing reports show and is kept for output parity.
func computeStatistics(registrations []Registration, now time.Time) StatisticsSnapshot {
	snapshot := StatisticsSnapshot{
		Kits:       []KitCount{},
		Sizes:      []SizeCount{},
		AgeBuckets: []AgeBucketCount{},
	}

	kitCounts := make(map[string]int)
	sizeCounts := make(map[string]int)
	bucketCounts := make(map[string]int)

	for _, reg := range registrations {
		if reg.PaymentStatus == StatusCanceled {
			continue
		}

		kitCounts[kitName(reg.KitOption)]++
		snapshot.ActiveCount++
		snapshot.TotalRevenue += reg.PaymentAmount

		for _, size := range []*string{reg.GarmentSize1, reg.GarmentSize2} {
			if size != nil && *size != "" {
				sizeCounts[strings.TrimSpace(*size)]++
			}
		}

		if birth, ok := parseBirthDate(reg.BirthDate); ok {
			age := ageAt(birth, now)
			for _, bucket := range ageBuckets {
				if age >= bucket.min && (bucket.max == 0 || age < bucket.max) {
					bucketCounts[bucket.label]++
					break
				}
			}
		}
	}

	// The percentage denominator is the whole collection, canceled included.
	// That matches the reports the operators already read; do not "fix" it
	// to the active count.
	total := len(registrations)
	kitNames := make([]string, 0, len(kitCounts))
	for name := range kitCounts {
		kitNames = append(kitNames, name)
	}
	sort.Strings(kitNames)
	for _, name := range kitNames {
		kit := KitCount{Kit: name, Count: kitCounts[name]}
		if total > 0 {
			kit.Percentage = float64(kit.Count) / float64(total) * 100
		}
		snapshot.Kits = append(snapshot.Kits, kit)
	}

	snapshot.Sizes = orderSizeCounts(sizeCounts)

	for _, bucket := range ageBuckets {
		snapshot.AgeBuckets = append(snapshot.AgeBuckets, AgeBucketCount{
			Bucket: bucket.label,
			Count:  bucketCounts[bucket.label],
		})
	}

	return snapshot
}

// orderSizeCounts lays out the size counters in production order: the fixed
// priority list first, then any unknown size tokens lexicographically.
func orderSizeCounts(counts map[string]int) []SizeCount {
	sizes := make([]SizeCount, 0, len(counts))
	seen := make(map[string]bool)

	for _, size := range sizePriority {
		seen[size] = true
		if count, ok := counts[size]; ok {
			sizes = append(sizes, SizeCount{Size: size, Count: count})
		}
	}

	var extras []string
	for size := range counts {
		if !seen[size] {
			extras = append(extras, size)
		}
	}
	sort.Strings(extras)
	for _, size := range extras {
		sizes = append(sizes, SizeCount{Size: size, Count: counts[size]})
	}

	return sizes
}
