package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nailstudio-backend/config"
	"nailstudio-backend/metrics"
	"nailstudio-backend/models"
	"nailstudio-backend/repository"
	"nailstudio-backend/scheduling"
	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateEntryInput defines the expected JSON structure for booking an entry
type CreateEntryInput struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Services []uint `json:"services"`
	UserID   string `json:"userId"` // admins may book for another user
}

// UpdateEntryInput defines the expected JSON structure for rescheduling an entry
type UpdateEntryInput struct {
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Services *[]uint `json:"services"`
}

// EntryStore is the persistence surface the entry handlers need.
// *repository.EntryRepository satisfies it.
type EntryStore interface {
	Reserve(ctx context.Context, entry *models.Entry) error
	Schedule(ctx context.Context, date time.Time) ([]models.Entry, error)
	InvalidateDay(ctx context.Context, date time.Time)
	Delete(ctx context.Context, entry *models.Entry) error
}

type EntryController struct {
	Repo EntryStore
}

// entryJSON shapes an entry for responses, including the derived interval
// fields the client displays for confirmation.
func entryJSON(entry *models.Entry) gin.H {
	body := gin.H{
		"id":        entry.ID,
		"userId":    entry.UserID,
		"date":      entry.Date.Format(utils.DateLayout),
		"time":      entry.Time,
		"createdOn": entry.CreatedOn,
		"services":  entry.Services,
		"duration":  entry.TotalDuration(),
	}
	if interval, err := scheduling.IntervalOf(entry); err == nil {
		body["startsAt"] = interval.Start
		body["endsAt"] = interval.End
	}
	return body
}

func entriesJSON(entries []models.Entry) []gin.H {
	out := make([]gin.H, 0, len(entries))
	for i := range entries {
		out = append(out, entryJSON(&entries[i]))
	}
	return out
}

// CreateEntry books a new appointment after running the slot conflict check.
func (ec *EntryController) CreateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.UserID != "" {
		if !c.GetBool("admin") {
			utils.RespondWithError(c, http.StatusForbidden, "Only admins can book for another user")
			return
		}
		other, err := uuid.Parse(input.UserID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
			return
		}
		userID = other
	}

	date, timeOfDay, ok := parseSlot(c, input.Date, input.Time)
	if !ok {
		return
	}

	services, ok := resolveServices(c, input.Services)
	if !ok {
		return
	}

	entry := models.Entry{
		UserID:   userID,
		Date:     date,
		Time:     timeOfDay,
		Services: services,
	}

	if !ec.reserve(c, &entry) {
		return
	}

	metrics.IncEntryBooked()
	c.Header("Location", "/api/entries/"+entry.ID.String())
	c.JSON(http.StatusCreated, entryJSON(&entry))
}

// UpdateEntry reschedules an entry, re-running the conflict check against
// all other entries on the (possibly new) date.
func (ec *EntryController) UpdateEntry(c *gin.Context) {
	entry, ok := loadOwnedEntry(c)
	if !ok {
		return
	}

	var input UpdateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	previousDate := entry.Date

	dateValue := entry.Date.Format(utils.DateLayout)
	timeValue := entry.Time
	if input.Date != nil {
		dateValue = *input.Date
	}
	if input.Time != nil {
		timeValue = *input.Time
	}
	date, timeOfDay, ok := parseSlot(c, dateValue, timeValue)
	if !ok {
		return
	}
	entry.Date = date
	entry.Time = timeOfDay

	if input.Services != nil {
		services, ok := resolveServices(c, *input.Services)
		if !ok {
			return
		}
		entry.Services = services
	}

	if !ec.reserve(c, entry) {
		return
	}
	if !previousDate.Equal(entry.Date) {
		ec.Repo.InvalidateDay(c.Request.Context(), previousDate)
	}

	c.JSON(http.StatusOK, entryJSON(entry))
}

// reserve runs the atomic check-and-persist and shapes the conflict error,
// embedding the day's booked slots so the client can pick another one.
func (ec *EntryController) reserve(c *gin.Context, entry *models.Entry) bool {
	err := ec.Repo.Reserve(c.Request.Context(), entry)
	if err == nil {
		return true
	}
	if errors.Is(err, repository.ErrSlotConflict) {
		metrics.IncSlotConflict()
		schedule, schedErr := ec.Repo.Schedule(c.Request.Context(), entry.Date)
		if schedErr != nil {
			schedule = nil
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":       repository.ErrSlotConflict.Error(),
			"bookedSlots": entriesJSON(schedule),
		})
		return false
	}
	utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save entry")
	return false
}

// GetEntries retrieves all entries, newest first
func (ec *EntryController) GetEntries(c *gin.Context) {
	var entries []models.Entry
	if err := config.DB.Preload("Services").
		Order("date DESC, time DESC").
		Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve entries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entriesJSON(entries)})
}

// GetMyEntries retrieves the authenticated user's entries, newest first
func (ec *EntryController) GetMyEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var entries []models.Entry
	if err := config.DB.Preload("Services").
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve entries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entriesJSON(entries)})
}

// GetDaySchedule lists the booked slots for one date, ordered by time. This
// is the listing a rejected booking points the client at.
func (ec *EntryController) GetDaySchedule(c *gin.Context) {
	date, err := utils.ParseDate(c.Param("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := ec.Repo.Schedule(c.Request.Context(), date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedule")
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entriesJSON(entries)})
}

// GetEntry retrieves a single entry by ID
func (ec *EntryController) GetEntry(c *gin.Context) {
	entryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	var entry models.Entry
	if err := config.DB.Preload("Services").First(&entry, "id = ?", entryUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Entry not found")
		return
	}
	c.JSON(http.StatusOK, entryJSON(&entry))
}

// DeleteEntry removes an entry outright. Deletion has no conflict
// implications.
func (ec *EntryController) DeleteEntry(c *gin.Context) {
	entry, ok := loadOwnedEntry(c)
	if !ok {
		return
	}

	if err := ec.Repo.Delete(c.Request.Context(), entry); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// loadOwnedEntry fetches the entry from the path and verifies the caller is
// its owner or an admin.
func loadOwnedEntry(c *gin.Context) (*models.Entry, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return nil, false
	}

	entryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid entry ID format")
		return nil, false
	}

	var entry models.Entry
	if err := config.DB.Preload("Services").First(&entry, "id = ?", entryUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Entry not found")
		return nil, false
	}

	if entry.UserID != userID && !c.GetBool("admin") {
		utils.RespondWithError(c, http.StatusForbidden, "You are not allowed to perform this operation")
		return nil, false
	}
	return &entry, true
}

// parseSlot validates the requested date and time. Past dates are rejected
// here, before the conflict check runs.
func parseSlot(c *gin.Context, dateValue, timeValue string) (time.Time, string, bool) {
	date, err := utils.ParseDate(dateValue)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return time.Time{}, "", false
	}
	if date.Format(utils.DateLayout) < time.Now().Format(utils.DateLayout) {
		utils.RespondWithError(c, http.StatusBadRequest, "Date cannot be lower than current date")
		return time.Time{}, "", false
	}

	timeOfDay, err := utils.NormalizeTimeOfDay(timeValue)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return time.Time{}, "", false
	}
	return date, timeOfDay, true
}

// resolveServices loads the referenced services and rejects the request if
// any ID is unknown rather than silently dropping it.
func resolveServices(c *gin.Context, ids []uint) ([]models.Service, bool) {
	if len(ids) == 0 {
		return nil, true
	}

	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	var services []models.Service
	if err := config.DB.Where("id IN ?", ids).Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve services")
		return nil, false
	}
	if len(services) != len(unique) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown service in selection")
		return nil, false
	}
	return services, true
}

// currentUserID reads the authenticated user's ID set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, false
	}
	value, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
