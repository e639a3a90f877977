package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/faramide/eventra/internal/helpers"
	"github.com/faramide/eventra/internal/models"
)

type TicketRequest struct {
	TicketType  string  `json:"ticket_type" binding:"required,max=25"`
	TicketPrice float64 `json:"ticket_price" binding:"gte=0"`
	EventID     string  `json:"event_id" binding:"required,uuid"`
}

type TicketUpdateRequest struct {
	TicketType  string  `json:"ticket_type" binding:"required,max=25"`
	TicketPrice float64 `json:"ticket_price" binding:"gte=0"`
}

// CreateTicket adds a ticket type to an event owned by the caller.
func CreateTicket(c *gin.Context) {
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	event, ok := findEventForWrite(c, gormDB, req.EventID)
	if !ok {
		return
	}

	ticket := models.Ticket{
		TicketType:  req.TicketType,
		TicketPrice: req.TicketPrice,
		EventID:     event.ID,
	}

	if err := gormDB.Create(&ticket).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create ticket.")
		return
	}

	helpers.Respond(c, http.StatusCreated, ticket)
}

// UpdateTicket replaces a ticket's type and price.
func UpdateTicket(c *gin.Context) {
	var req TicketUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	ticket, ok := findOwnedTicket(c, gormDB)
	if !ok {
		return
	}

	ticket.TicketType = req.TicketType
	ticket.TicketPrice = req.TicketPrice

	if err := gormDB.Save(ticket).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update ticket.")
		return
	}

	helpers.Respond(c, http.StatusOK, ticket)
}

func DeleteTicket(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	ticket, ok := findOwnedTicket(c, gormDB)
	if !ok {
		return
	}

	if err := gormDB.Delete(ticket).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete ticket.")
		return
	}

	helpers.Respond(c, http.StatusOK, gin.H{"message": "Ticket deleted successfully."})
}

// findEventForWrite loads an event by id and checks the caller may
// mutate resources hanging off it.
func findEventForWrite(c *gin.Context, gormDB *gorm.DB, eventID string) (*models.Event, bool) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_id.")
		return nil, false
	}

	var event models.Event
	if err := gormDB.Where("id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return nil, false
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return nil, false
	}

	user, ok := currentUser(c, gormDB)
	if !ok {
		return nil, false
	}
	if !canModifyEvent(user, &event) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to modify this event.")
		return nil, false
	}
	return &event, true
}

func findOwnedTicket(c *gin.Context, gormDB *gorm.DB) (*models.Ticket, bool) {
	var ticket models.Ticket
	if err := gormDB.Preload("Event").Where("id = ?", c.Param("id")).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
			return nil, false
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving ticket.")
		return nil, false
	}

	user, ok := currentUser(c, gormDB)
	if !ok {
		return nil, false
	}
	if ticket.Event == nil || !canModifyEvent(user, ticket.Event) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to modify this ticket.")
		return nil, false
	}
	return &ticket, true
}
