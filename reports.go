package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Reporting handler functions: sponsor portfolios, statistics, flat export.

// @Summary Get sponsor portfolios
// @Description Group registrations by assigned sponsor. The unassigned bucket is always last. An optional search filters by sponsor name or member name/email/phone.
// @Tags reports
// @Produce json
// @Param search query string false "Case-insensitive search text"
// @Success 200 {array} SponsorPortfolio "Ordered portfolio list"
// @Router /api/portfolios [get]
func (s *Server) getPortfolios(c *gin.Context) {
	portfolios := buildPortfolios(s.registrations.Snapshot())
	c.JSON(http.StatusOK, filterPortfolios(portfolios, c.Query("search")))
}

// @Summary Get statistics
// @Description Compute revenue, kit distribution, garment-size production counts, and the age histogram over the live registration collection
// @Tags reports
// @Produce json
// @Success 200 {object} StatisticsSnapshot "Aggregate statistics"
// @Router /api/statistics [get]
func (s *Server) getStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, computeStatistics(s.registrations.Snapshot(), time.Now()))
}

// @Summary Export registrations
// @Description Flat tab-delimited table with the fixed column schema. Optional status and search query parameters pre-filter the rows; the formatter itself does not filter.
// @Tags reports
// @Produce plain
// @Param status query string false "Payment status filter (pending, paid, canceled)"
// @Param search query string false "Case-insensitive search over name, email, phone, sponsor"
// @Success 200 {string} string "Tab-separated rows"
// @Router /api/export [get]
func (s *Server) exportRegistrations(c *gin.Context) {
	registrations := s.registrations.Snapshot()

	if status := c.Query("status"); status != "" {
		filtered := registrations[:0:0]
		for _, reg := range registrations {
			if reg.PaymentStatus == status {
				filtered = append(filtered, reg)
			}
		}
		registrations = filtered
	}

	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		filtered := registrations[:0:0]
		for _, reg := range registrations {
			if registrationMatches(reg, search) {
				filtered = append(filtered, reg)
			}
		}
		registrations = filtered
	}

	rows := exportRows(registrations, time.Now())
	c.Header("Content-Disposition", `attachment; filename="registrations.tsv"`)
	c.String(http.StatusOK, strings.Join(rows, "\n")+"\n")
}

// registrationMatches mirrors the portfolio search contract for one record:
// lowercase substring match over name, email, phone, and sponsor.
func registrationMatches(reg Registration, search string) bool {
	if strings.Contains(strings.ToLower(reg.FullName), search) ||
		strings.Contains(strings.ToLower(reg.Email), search) ||
		strings.Contains(strings.ToLower(reg.Phone), search) {
		return true
	}
	return reg.Sponsor != nil && strings.Contains(strings.ToLower(*reg.Sponsor), search)
}
