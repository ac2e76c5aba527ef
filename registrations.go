package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Registration handler functions

// CreateRegistrationRequest is the self-registration payload. The payment
// amount is derived from the chosen kit, not supplied by the registrant.
type CreateRegistrationRequest struct {
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	EmergencyPhone string  `json:"emergency_phone"`
	Affiliation    string  `json:"affiliation"`
	City           string  `json:"city"`
	Address        string  `json:"address"`
	KitOption      string  `json:"kit_option"`
	GarmentSize1   *string `json:"garment_size_1"`
	GarmentSize2   *string `json:"garment_size_2"`
	BirthDate      *string `json:"birth_date"`
	Gender         *string `json:"gender"`
	StaysOnSite    bool    `json:"stays_on_site"`
}

// @Summary Get all registrations
// @Description Retrieve all registrations, including canceled ones
// @Tags registrations
// @Produce json
// @Success 200 {array} Registration "List of registrations"
// @Router /api/registrations [get]
func (s *Server) getRegistrations(c *gin.Context) {
	c.JSON(http.StatusOK, s.registrations.Snapshot())
}

// @Summary Create registration
// @Description Self-registration for the event. Starts pending; the amount comes from the kit's price segment.
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body CreateRegistrationRequest true "Registration data"
// @Success 201 {object} Registration "Created registration"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 502 {object} map[string]interface{} "Record store unavailable"
// @Router /api/registrations [post]
func (s *Server) createRegistration(c *gin.Context) {
	var request CreateRegistrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := validateName(request.FullName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := s.registrations.Insert(c.Request.Context(), Registration{
		FullName:       request.FullName,
		Email:          request.Email,
		Phone:          request.Phone,
		EmergencyPhone: request.EmergencyPhone,
		Affiliation:    request.Affiliation,
		City:           request.City,
		Address:        request.Address,
		PaymentStatus:  StatusPending,
		KitOption:      request.KitOption,
		GarmentSize1:   request.GarmentSize1,
		GarmentSize2:   request.GarmentSize2,
		PaymentAmount:  kitPrice(request.KitOption),
		BirthDate:      request.BirthDate,
		Gender:         request.Gender,
		StaysOnSite:    request.StaysOnSite,
	})
	if err != nil {
		log.Printf("Error creating registration: %v", err)
		c.JSON(statusForError(err), gin.H{"error": "Error creating registration"})
		return
	}

	c.JSON(http.StatusCreated, reg)
}

// @Summary Update registration
// @Description Operator edit of any registration field, including payment status and sponsor
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param registration body Registration true "Updated registration fields"
// @Success 200 {object} Registration "Updated registration"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Registration not found"
// @Failure 502 {object} map[string]interface{} "Record store unavailable"
// @Router /api/registrations/{id} [put]
func (s *Server) updateRegistration(c *gin.Context) {
	var request Registration
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	existing, ok := s.registrations.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}

	if err := validateName(request.FullName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validatePaymentStatus(request.PaymentStatus); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Identity and creation time are not operator-editable.
	request.ID = existing.ID
	request.CreatedAt = existing.CreatedAt

	updated, err := s.registrations.Update(c.Request.Context(), request)
	if err != nil {
		log.Printf("Error updating registration: %v", err)
		c.JSON(statusForError(err), gin.H{"error": "Error updating registration"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete registration
// @Description Delete a registration by ID (explicit operator action only)
// @Tags registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} map[string]interface{} "Registration deleted"
// @Failure 404 {object} map[string]interface{} "Registration not found"
// @Failure 502 {object} map[string]interface{} "Record store unavailable"
// @Router /api/registrations/{id} [delete]
func (s *Server) deleteRegistration(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.registrations.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}

	if err := s.registrations.Delete(c.Request.Context(), id); err != nil {
		log.Printf("Error deleting registration: %v", err)
		c.JSON(statusForError(err), gin.H{"error": "Error deleting registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration deleted successfully"})
}
