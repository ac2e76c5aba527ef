package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Donation item handler functions

// @Summary Get all donation items
// @Description Retrieve all donation goals with their fulfillment state
// @Tags donations
// @Produce json
// @Success 200 {array} DonationItem "List of donation items"
// @Router /api/donations [get]
func (s *Server) getDonations(c *gin.Context) {
	c.JSON(http.StatusOK, s.items.Snapshot())
}

// @Summary Create donation item
// @Description Create a new donation goal (name, free-text target quantity, category)
// @Tags donations
// @Accept json
// @Produce json
// @Param donation body CreateDonationRequest true "Donation goal data"
// @Success 201 {object} DonationItem "Created donation item"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 502 {object} map[string]interface{} "Record store unavailable"
// @Router /api/donations [post]
func (s *Server) createDonation(c *gin.Context) {
	var request CreateDonationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateName(request.TargetQuantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target quantity cannot be empty"})
		return
	}

	item, err := s.items.Insert(c.Request.Context(), DonationItem{
		Name:           request.Name,
		TargetQuantity: request.TargetQuantity,
		Category:       request.Category,
	})
	if err != nil {
		log.Printf("Error creating donation item: %v", err)
		c.JSON(statusForError(err), gin.H{"error": "Error creating donation item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// @Summary Toggle donation fulfillment
// @Description Mark a donation goal fulfilled or not, without touching the running total
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "Donation item ID"
// @Param toggle body SetFulfilledRequest true "New fulfilled state"
// @Success 200 {object} DonationItem "Updated donation item"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Donation item not found"
// @Failure 502 {object} map[string]interface{} "Record store unavailable"
// @Router /api/donations/{id}/fulfilled [put]
func (s *Server) setDonationFulfilled(c *gin.Context) {
	var request SetFulfilledRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, ok := s.items.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation item not found"})
		return
	}

	updated, err := s.items.Update(c.Request.Context(), setFulfilled(item, request.Fulfilled))
	if err != nil {
		log.Printf("Error updating donation item: %v", err)
		c.JSON(statusForError(err), gin.H{"error": "Error updating donation item"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Add partial contribution
// @Description Merge a donation drop-off into the item's running total. The amount is a bare number; the unit comes from the target quantity.
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "Donation item ID"
// @Param contribution body ContributionRequest true "Contribution amount"
// @Success 200 {object} DonationItem "Updated donation item"
// @Failure 400 {object} map[string]interface{} "Invalid amount"
// @Failure 404 {object} map[string]interface{} "Donation item not found"
// @Failure 502 {object} map[string]interface{} "Record store unavailable"
// @Router /api/donations/{id}/contribute [put]
func (s *Server) contributeDonation(c *gin.Context) {
	var request ContributionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, ok := s.items.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation item not found"})
		return
	}

	merged, err := addContribution(item, request.Amount)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	updated, err := s.items.Update(c.Request.Context(), merged)
	if err != nil {
		log.Printf("Error saving contribution: %v", err)
		c.JSON(statusForError(err), gin.H{"error": "Error saving contribution"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete donation item
// @Description Delete a donation goal by ID (hard delete)
// @Tags donations
// @Produce json
// @Param id path string true "Donation item ID"
// @Success 200 {object} map[string]interface{} "Donation item deleted"
// @Failure 404 {object} map[string]interface{} "Donation item not found"
// @Failure 502 {object} map[string]interface{} "Record store unavailable"
// @Router /api/donations/{id} [delete]
func (s *Server) deleteDonation(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.items.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation item not found"})
		return
	}

	if err := s.items.Delete(c.Request.Context(), id); err != nil {
		log.Printf("Error deleting donation item: %v", err)
		c.JSON(statusForError(err), gin.H{"error": "Error deleting donation item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Donation item deleted successfully"})
}
