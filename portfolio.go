package main

import (
	"sort"
	"strings"
)

// UnassignedKey labels the portfolio bucket for registrations with no
// sponsor. It always sorts last.
const UnassignedKey = "Unassigned"

// buildPortfolios partitions a registration collection by sponsor and
// computes per-partition counts and revenue. It is a pure read: the input
// is never mutated and the result is recomputed from scratch on every call.
//
// Grouping keys are trimmed but case-sensitive: "Ana" and "ana" are two
// sponsors. Canceled registrations stay visible in the member lists but
// never contribute to revenue.
func buildPortfolios(registrations []Registration) []SponsorPortfolio {
	groups := make(map[string]*SponsorPortfolio)
	var keys []string

	for _, reg := range registrations {
		key := UnassignedKey
		if reg.Sponsor != nil {
			if trimmed := strings.TrimSpace(*reg.Sponsor); trimmed != "" {
				key = trimmed
			}
		}

		portfolio, ok := groups[key]
		if !ok {
			portfolio = &SponsorPortfolio{
				Sponsor:    key,
				Unassigned: key == UnassignedKey,
				Members:    []Registration{},
			}
			groups[key] = portfolio
			keys = append(keys, key)
		}

		portfolio.Members = append(portfolio.Members, reg)
		switch reg.PaymentStatus {
		case StatusPaid:
			portfolio.PaidCount++
		case StatusPending:
			portfolio.PendingCount++
		case StatusCanceled:
			portfolio.CanceledCount++
		}
		if reg.PaymentStatus != StatusCanceled {
			portfolio.TotalRevenue += reg.PaymentAmount
		}
	}

	// Unassigned sorts strictly last; everything else ascending by name.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == UnassignedKey {
			return false
		}
		if keys[j] == UnassignedKey {
			return true
		}
		return keys[i] < keys[j]
	})

	portfolios := make([]SponsorPortfolio, 0, len(keys))
	for _, key := range keys {
		portfolios = append(portfolios, *groups[key])
	}
	return portfolios
}

// portfolioMatches reports whether a portfolio matches a free-text search.
// The filter is trimmed and case-insensitive, and matches against the
// sponsor name or any member's name, email, or phone.
func portfolioMatches(portfolio SponsorPortfolio, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}

	if strings.Contains(strings.ToLower(portfolio.Sponsor), search) {
		return true
	}
	for _, member := range portfolio.Members {
		if strings.Contains(strings.ToLower(member.FullName), search) ||
			strings.Contains(strings.ToLower(member.Email), search) ||
			strings.Contains(strings.ToLower(member.Phone), search) {
			return true
		}
	}
	return false
}

// filterPortfolios applies portfolioMatches over a portfolio list.
func filterPortfolios(portfolios []SponsorPortfolio, search string) []SponsorPortfolio {
	if strings.TrimSpace(search) == "" {
		return portfolios
	}

	filtered := make([]SponsorPortfolio, 0, len(portfolios))
	for _, portfolio := range portfolios {
		if portfolioMatches(portfolio, search) {
			filtered = append(filtered, portfolio)
		}
	}
	return filtered
}
