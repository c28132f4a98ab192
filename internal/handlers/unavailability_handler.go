package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareBridgeServices/care-scheduler/internal/cache"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/httpresp"
	"github.com/CareBridgeServices/care-scheduler/internal/middleware"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type UnavailabilityHandler struct {
	db      *gorm.DB
	daysCch *cache.AvailabilityCache
}

func NewUnavailabilityHandler(db *gorm.DB, daysCch *cache.AvailabilityCache) *UnavailabilityHandler {
	return &UnavailabilityHandler{db: db, daysCch: daysCch}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUnavailabilityRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

// Create stores the block-out. A range that crosses midnight is split
// into one row per calendar day so the day view only ever intersects
// rows of its own date.
func (h *UnavailabilityHandler) Create(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "start_date and end_date are required.")
		return
	}

	start, err := parseDateTime(req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD HH:MM.")
		return
	}
	end, err := parseDateTime(req.EndDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD HH:MM.")
		return
	}
	if !start.Before(end) {
		httperr.BadRequest(c, "start_after_end", "start_date must come before end_date.")
		return
	}

	rows := splitByDay(caregiverID, start, end)

	if err := h.db.WithContext(c.Request.Context()).Create(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_save_unavailability", "Could not save unavailability.")
		return
	}

	h.daysCch.Invalidate(c.Request.Context(), caregiverID)

	httpresp.Created(c, rows)
}

func splitByDay(caregiverID uint, start, end time.Time) []models.UnavailabilityRange {
	var rows []models.UnavailabilityRange

	cursor := start
	for cursor.Before(end) {
		midnight := time.Date(
			cursor.Year(), cursor.Month(), cursor.Day(),
			0, 0, 0, 0, time.UTC,
		).Add(24 * time.Hour)

		segEnd := end
		if midnight.Before(end) {
			segEnd = midnight
		}

		rows = append(rows, models.UnavailabilityRange{
			CaregiverID: caregiverID,
			StartDate:   cursor,
			EndDate:     segEnd,
		})

		cursor = midnight
	}

	return rows
}

// ======================================================
// LIST / DELETE
// ======================================================

func (h *UnavailabilityHandler) List(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)

	var rows []models.UnavailabilityRange
	if err := h.db.WithContext(c.Request.Context()).
		Where("caregiver_id = ?", caregiverID).
		Order("start_date ASC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_get_unavailability", "Could not load unavailability.")
		return
	}

	httpresp.List(c, rows)
}

func (h *UnavailabilityHandler) Delete(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid unavailability id.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND caregiver_id = ?", id, caregiverID).
		Delete(&models.UnavailabilityRange{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_unavailability", "Could not delete unavailability.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "unavailability_not_found", "Unavailability not found.")
		return
	}

	h.daysCch.Invalidate(c.Request.Context(), caregiverID)

	c.JSON(200, gin.H{"status": "ok"})
}
