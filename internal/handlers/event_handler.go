package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/faramide/eventra/internal/helpers"
	"github.com/faramide/eventra/internal/models"
)

type EventRequest struct {
	Title          string   `json:"title" binding:"required,max=250"`
	EventStartDate string   `json:"event_start_date" binding:"required"`
	EventEndDate   string   `json:"event_end_date" binding:"required"`
	EventStartTime string   `json:"event_start_time" binding:"required"`
	EventEndTime   string   `json:"event_end_time" binding:"required"`
	Location       string   `json:"location" binding:"required,max=300"`
	Address        string   `json:"address" binding:"max=100"`
	Category       []string `json:"category" binding:"required,min=1,dive,eventcategory"`
	About          string   `json:"about"`
	Expired        *bool    `json:"expired"`
}

// EventPatchRequest carries a partial update; only non-nil fields are
// applied.
type EventPatchRequest struct {
	Title          *string   `json:"title" binding:"omitempty,max=250"`
	EventStartDate *string   `json:"event_start_date"`
	EventEndDate   *string   `json:"event_end_date"`
	EventStartTime *string   `json:"event_start_time"`
	EventEndTime   *string   `json:"event_end_time"`
	Location       *string   `json:"location" binding:"omitempty,max=300"`
	Address        *string   `json:"address" binding:"omitempty,max=100"`
	Category       *[]string `json:"category" binding:"omitempty,min=1,dive,eventcategory"`
	About          *string   `json:"about"`
	Expired        *bool     `json:"expired"`
}

var orderingFields = map[string]string{
	"event_start_date": "start_date",
	"date_created":     "created_at",
	"last_updated":     "updated_at",
}

// CreateEvent creates an event owned by the authenticated host. The
// host is never client-supplied.
func CreateEvent(c *gin.Context) {
	var req EventRequest
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

	event := models.Event{
		Title:    req.Title,
		Location: req.Location,
		Address:  req.Address,
		About:    req.About,
		HostID:   &user.ID,
	}
	if req.Expired != nil {
		event.Expired = *req.Expired
	}
	if !applyEventDates(c, &event, req.EventStartDate, req.EventEndDate, req.EventStartTime, req.EventEndTime) {
		return
	}

	categories, ok := resolveCategories(c, gormDB, req.Category)
	if !ok {
		return
	}
	event.Categories = categories

	if err := gormDB.Create(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithError(c, http.StatusConflict, "An event with this title already exists.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	event.Host = user
	helpers.Respond(c, http.StatusCreated, event)
}

// ListEvents is the default listing: upcoming events only (start date
// today or later), most recently updated first. Supports filtering,
// search, ordering and pagination.
func ListEvents(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	page, size, err := helpers.PageParams(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := gormDB.Model(&models.Event{}).Where("start_date >= ?", helpers.Today())
	query, ok = applyEventFilters(c, query)
	if !ok {
		return
	}
	query = query.Preload("Categories").Preload("Host").Preload("Tickets")

	var events []models.Event
	result, err := helpers.Paginate(query, eventOrdering(c), page, size, &events)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	helpers.Respond(c, http.StatusOK, result)
}

// GetEvent retrieves a single event by slug, open to anyone.
func GetEvent(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var event models.Event
	err := gormDB.
		Preload("Categories").
		Preload("Host").
		Preload("Tickets").
		Preload("SocialMedia").
		Where("slug = ?", c.Param("slug")).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	helpers.Respond(c, http.StatusOK, event)
}

// UpdateEvent replaces an event. Only the owning host or staff may
// write; the slug follows the new title.
func UpdateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	event, user, ok := findOwnedEvent(c, gormDB)
	if !ok {
		return
	}

	event.Title = req.Title
	event.Location = req.Location
	event.Address = req.Address
	event.About = req.About
	if req.Expired != nil {
		event.Expired = *req.Expired
	}
	if !applyEventDates(c, event, req.EventStartDate, req.EventEndDate, req.EventStartTime, req.EventEndTime) {
		return
	}

	categories, ok := resolveCategories(c, gormDB, req.Category)
	if !ok {
		return
	}

	if !saveEvent(c, gormDB, event, categories) {
		return
	}

	event.Host = user
	helpers.Respond(c, http.StatusOK, event)
}

// PartialUpdateEvent applies only the fields present in the request.
func PartialUpdateEvent(c *gin.Context) {
	var req EventPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	event, user, ok := findOwnedEvent(c, gormDB)
	if !ok {
		return
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Address != nil {
		event.Address = *req.Address
	}
	if req.About != nil {
		event.About = *req.About
	}
	if req.Expired != nil {
		event.Expired = *req.Expired
	}
	if req.EventStartDate != nil {
		startDate, err := helpers.ParseDate(*req.EventStartDate)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_start_date format. Expected YYYY-MM-DD.")
			return
		}
		event.StartDate = startDate
	}
	if req.EventEndDate != nil {
		endDate, err := helpers.ParseDate(*req.EventEndDate)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_end_date format. Expected YYYY-MM-DD.")
			return
		}
		event.EndDate = endDate
	}
	if req.EventStartTime != nil {
		startTime, err := helpers.ParseTimeOfDay(*req.EventStartTime)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_start_time format. Expected HH:MM:SS.")
			return
		}
		event.StartTime = startTime
	}
	if req.EventEndTime != nil {
		endTime, err := helpers.ParseTimeOfDay(*req.EventEndTime)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_end_time format. Expected HH:MM:SS.")
			return
		}
		event.EndTime = endTime
	}

	if err := event.Validate(); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var categories []models.Category
	if req.Category != nil {
		categories, ok = resolveCategories(c, gormDB, *req.Category)
		if !ok {
			return
		}
	}

	if !saveEvent(c, gormDB, event, categories) {
		return
	}

	event.Host = user
	helpers.Respond(c, http.StatusOK, event)
}

// DeleteEvent removes an event together with its tickets, social media
// links and category references.
func DeleteEvent(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	event, _, ok := findOwnedEvent(c, gormDB)
	if !ok {
		return
	}

	if err := gormDB.Select(clause.Associations).Delete(event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	helpers.Respond(c, http.StatusOK, gin.H{"message": "Event deleted successfully."})
}

// ListEventsByCategory lists every event tagged with the category,
// past ones included.
func ListEventsByCategory(c *gin.Context) {
	gormDB, ok := getDB(c)
	if !ok {
		return
	}

	var category models.Category
	if err := gormDB.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Category not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving category.")
		return
	}

	page, size, err := helpers.PageParams(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := gormDB.Model(&models.Event{}).
		Where("events.id IN (SELECT event_id FROM event_categories WHERE category_id = ?)", category.ID)
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(location) LIKE ? OR LOWER(title) LIKE ?", pattern, pattern)
	}
	query = query.Preload("Categories").Preload("Host").Preload("Tickets")

	var events []models.Event
	result, err := helpers.Paginate(query, eventOrdering(c), page, size, &events)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	helpers.Respond(c, http.StatusOK, result)
}

// applyEventFilters narrows the listing by the supported query params:
// a start-date range, exact location, exact host email, exact category
// name, and free-text search over location, category name and title.
func applyEventFilters(c *gin.Context, query *gorm.DB) (*gorm.DB, bool) {
	if after := c.Query("event_start_date_after"); after != "" {
		date, err := helpers.ParseDate(after)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_start_date_after format. Expected YYYY-MM-DD.")
			return nil, false
		}
		query = query.Where("start_date >= ?", date)
	}
	if before := c.Query("event_start_date_before"); before != "" {
		date, err := helpers.ParseDate(before)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_start_date_before format. Expected YYYY-MM-DD.")
			return nil, false
		}
		query = query.Where("start_date <= ?", date)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location = ?", location)
	}
	if hostEmail := c.Query("host_email"); hostEmail != "" {
		query = query.Where("host_id IN (SELECT id FROM users WHERE email = ?)", strings.ToLower(hostEmail))
	}
	if categoryName := c.Query("category_name"); categoryName != "" {
		query = query.Where(
			"events.id IN (SELECT ec.event_id FROM event_categories ec JOIN categories cat ON cat.id = ec.category_id WHERE cat.name = ?)",
			categoryName,
		)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(location) LIKE ? OR LOWER(title) LIKE ? OR events.id IN (SELECT ec.event_id FROM event_categories ec JOIN categories cat ON cat.id = ec.category_id WHERE LOWER(cat.name) LIKE ?)",
			pattern, pattern, pattern,
		)
	}
	return query, true
}

// eventOrdering maps the ordering query param onto a column; a leading
// "-" means descending. Unknown fields fall back to the default of most
// recently updated first.
func eventOrdering(c *gin.Context) string {
	ordering := c.Query("ordering")
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	column, ok := orderingFields[field]
	if !ok {
		return "updated_at DESC"
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

func applyEventDates(c *gin.Context, event *models.Event, startDate, endDate, startTime, endTime string) bool {
	start, err := helpers.ParseDate(startDate)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_start_date format. Expected YYYY-MM-DD.")
		return false
	}
	end, err := helpers.ParseDate(endDate)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_end_date format. Expected YYYY-MM-DD.")
		return false
	}
	startT, err := helpers.ParseTimeOfDay(startTime)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_start_time format. Expected HH:MM:SS.")
		return false
	}
	endT, err := helpers.ParseTimeOfDay(endTime)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event_end_time format. Expected HH:MM:SS.")
		return false
	}

	event.StartDate = start
	event.EndDate = end
	event.StartTime = startT
	event.EndTime = endT

	if err := event.Validate(); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// resolveCategories maps names onto existing categories. Categories are
// admin-managed, so unknown names are rejected rather than created.
func resolveCategories(c *gin.Context, gormDB *gorm.DB, names []string) ([]models.Category, bool) {
	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		var category models.Category
		if err := gormDB.Where("name = ?", name).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				helpers.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf("Category %q does not exist.", name))
				return nil, false
			}
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error processing categories.")
			return nil, false
		}
		categories = append(categories, category)
	}
	return categories, true
}

// findOwnedEvent loads the event by slug and enforces the
// owner-or-read-only predicate for write operations.
func findOwnedEvent(c *gin.Context, gormDB *gorm.DB) (*models.Event, *models.User, bool) {
	var event models.Event
	if err := gormDB.Preload("Categories").Where("slug = ?", c.Param("slug")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return nil, nil, false
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return nil, nil, false
	}

	user, ok := currentUser(c, gormDB)
	if !ok {
		return nil, nil, false
	}

	if !canModifyEvent(user, &event) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to modify this event.")
		return nil, nil, false
	}
	return &event, user, true
}

func saveEvent(c *gin.Context, gormDB *gorm.DB, event *models.Event, categories []models.Category) bool {
	// Detach the loaded association before saving so gorm doesn't try to
	// upsert category rows alongside the event.
	event.Categories = nil

	if err := gormDB.Omit("Categories").Save(event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithError(c, http.StatusConflict, "An event with this title already exists.")
			return false
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return false
	}

	if categories != nil {
		if err := gormDB.Model(event).Association("Categories").Replace(categories); err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error updating categories.")
			return false
		}
		event.Categories = categories
	} else {
		var current []models.Category
		if err := gormDB.Model(event).Association("Categories").Find(&current); err == nil {
			event.Categories = current
		}
	}
	return true
}
