package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faramide/eventra/internal/helpers"
	"github.com/faramide/eventra/internal/models"
)

type SocialMediaRequest struct {
	Facebook  string `json:"facebook" binding:"omitempty,url"`
	Instagram string `json:"instagram" binding:"omitempty,url"`
	Twitter   string `json:"twitter" binding:"omitempty,url"`
	LinkedIn  string `json:"linkedin" binding:"omitempty,url"`
	EventID   string `json:"event_id" binding:"required,uuid"`
}

// CreateSocialMedia attaches social links to an event owned by the caller.
func CreateSocialMedia(c *gin.Context) {
	var req SocialMediaRequest
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

	links := models.SocialMedia{
		Facebook:  req.Facebook,
		Instagram: req.Instagram,
		Twitter:   req.Twitter,
		LinkedIn:  req.LinkedIn,
		EventID:   event.ID,
	}

	if err := gormDB.Create(&links).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create social media links.")
		return
	}

	helpers.Respond(c, http.StatusCreated, links)
}

func UpdateSocialMedia(c *gin.Context) {
	var req SocialMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	links, ok := findOwnedSocialMedia(c, gormDB)
	if !ok {
		return
	}

	links.Facebook = req.Facebook
	links.Instagram = req.Instagram
	links.Twitter = req.Twitter
	links.LinkedIn = req.LinkedIn

	if err := gormDB.Save(links).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update social media links.")
		return
	}

	helpers.Respond(c, http.StatusOK, links)
}

func DeleteSocialMedia(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	links, ok := findOwnedSocialMedia(c, gormDB)
	if !ok {
		return
	}

	if err := gormDB.Delete(links).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete social media links.")
		return
	}

	helpers.Respond(c, http.StatusOK, gin.H{"message": "Social media links deleted successfully."})
}

func findOwnedSocialMedia(c *gin.Context, gormDB *gorm.DB) (*models.SocialMedia, bool) {
	var links models.SocialMedia
	if err := gormDB.Preload("Event").Where("id = ?", c.Param("id")).First(&links).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Social media links not found.")
			return nil, false
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving social media links.")
		return nil, false
	}

	user, ok := currentUser(c, gormDB)
	if !ok {
		return nil, false
	}
	if links.Event == nil || !canModifyEvent(user, links.Event) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to modify these links.")
		return nil, false
	}
	return &links, true
}
