package main

import "time"

// Payment status values for a registration.
const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusCanceled = "canceled"
)

// DonationItem represents one donation goal tracked toward fulfillment
type DonationItem struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	TargetQuantity   string    `json:"target_quantity"`
	Category         string    `json:"category"`
	Fulfilled        bool      `json:"fulfilled"`
	ReceivedQuantity *string   `json:"received_quantity"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Registration represents a person's signup for the event
type Registration struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	EmergencyPhone string    `json:"emergency_phone"`
	Affiliation    string    `json:"affiliation"`
	City           string    `json:"city"`
	Address        string    `json:"address"`
	PaymentStatus  string    `json:"payment_status"`
	Sponsor        *string   `json:"sponsor"`
	KitOption      string    `json:"kit_option"`
	GarmentSize1   *string   `json:"garment_size_1"`
	GarmentSize2   *string   `json:"garment_size_2"`
	PaymentAmount  float64   `json:"payment_amount"`
	BirthDate      *string   `json:"birth_date"`
	Gender         *string   `json:"gender"`
	StaysOnSite    bool      `json:"stays_on_site"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SponsorPortfolio groups the registrations assigned to one sponsor.
// Derived on every read, never persisted.
type SponsorPortfolio struct {
	Sponsor       string         `json:"sponsor"`
	Unassigned    bool           `json:"unassigned"`
	Members       []Registration `json:"members"`
	PaidCount     int            `json:"paid_count"`
	PendingCount  int            `json:"pending_count"`
	CanceledCount int            `json:"canceled_count"`
	TotalRevenue  float64        `json:"total_revenue"`
}

// KitCount is the per-kit slice of the kit distribution
type KitCount struct {
	Kit        string  `json:"kit"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SizeCount is the production count for one garment size
type SizeCount struct {
	Size  string `json:"size"`
	Count int    `json:"count"`
}

// AgeBucketCount is one bar of the age histogram
type AgeBucketCount struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// StatisticsSnapshot is the cross-cutting aggregate over the live
// registration collection
type StatisticsSnapshot struct {
	TotalRevenue float64          `json:"total_revenue"`
	ActiveCount  int              `json:"active_count"`
	Kits         []KitCount       `json:"kits"`
	Sizes        []SizeCount      `json:"sizes"`
	AgeBuckets   []AgeBucketCount `json:"age_buckets"`
}

// CreateDonationRequest is the payload for creating a donation goal
type CreateDonationRequest struct {
	Name           string `json:"name"`
	TargetQuantity string `json:"target_quantity"`
	Category       string `json:"category"`
}

// SetFulfilledRequest is the payload for the fulfilled toggle
type SetFulfilledRequest struct {
	Fulfilled bool `json:"fulfilled"`
}

// ContributionRequest is the payload for a partial donation drop-off.
// Amount is a bare number; the unit is carried from the item's target.
type ContributionRequest struct {
	Amount string `json:"amount"`
}
