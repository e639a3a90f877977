package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faramide/eventra/internal/helpers"
	"github.com/faramide/eventra/internal/models"
)

func getDB(c *gin.Context) (*gorm.DB, bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return db.(*gorm.DB), true
}

// currentUser loads the authenticated caller's account. The auth
// middleware guarantees user_id is present on protected routes.
func currentUser(c *gin.Context, gormDB *gorm.DB) (*models.User, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return nil, false
	}

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not found.")
		return nil, false
	}
	return &user, true
}

// canModifyEvent is the owner-or-read-only predicate for writes: staff
// or the owning host may mutate, everyone else is read-only.
func canModifyEvent(user *models.User, event *models.Event) bool {
	if user.IsStaff {
		return true
	}
	return event.HostID != nil && *event.HostID == user.ID
}
