package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faramide/eventra/internal/helpers"
	"github.com/faramide/eventra/internal/models"
)

type HostProfileRequest struct {
	CompanyName        string `json:"company_name" binding:"required,max=50"`
	CompanyDescription string `json:"company_description" binding:"max=500"`
	WebsiteURL         string `json:"website_url" binding:"omitempty,url"`
	PhoneNumber        string `json:"phone_number" binding:"max=20"`
	Address            string `json:"address" binding:"max=200"`
	City               string `json:"city" binding:"max=100"`
	State              string `json:"state" binding:"max=100"`
	Country            string `json:"country" binding:"max=100"`
	ZipCode            string `json:"zip_code" binding:"max=20"`
	Twitter            string `json:"twitter" binding:"omitempty,url"`
	Facebook           string `json:"facebook" binding:"omitempty,url"`
	Instagram          string `json:"instagram" binding:"omitempty,url"`
}

// CreateHostProfile creates the caller's company profile and promotes
// the account to host. Both writes happen in one transaction so a crash
// can't leave a profile without the host flag.
func CreateHostProfile(c *gin.Context) {
	var req HostProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	user, ok := currentUser(c, gormDB)
	if !ok {
		return
	}

	var existing models.HostProfile
	if result := gormDB.Where("user_id = ?", user.ID).First(&existing); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "This user already has an event host profile.")
		return
	}

	profile := models.HostProfile{
		UserID:             user.ID,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		WebsiteURL:         req.WebsiteURL,
		PhoneNumber:        req.PhoneNumber,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		Country:            req.Country,
		ZipCode:            req.ZipCode,
		Twitter:            req.Twitter,
		Facebook:           req.Facebook,
		Instagram:          req.Instagram,
	}

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", user.ID).Update("is_host", true).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithError(c, http.StatusConflict, "A host profile with these details already exists.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create host profile.")
		return
	}

	helpers.Respond(c, http.StatusCreated, profile)
}

// GetHostProfile returns the caller's own company profile.
func GetHostProfile(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	user, ok := currentUser(c, gormDB)
	if !ok {
		return
	}

	var profile models.HostProfile
	if err := gormDB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "No host profile found for this user.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving host profile.")
		return
	}

	helpers.Respond(c, http.StatusOK, profile)
}
