package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/httpresp"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type HolidayHandler struct {
	db *gorm.DB
}

func NewHolidayHandler(db *gorm.DB) *HolidayHandler {
	return &HolidayHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateHolidayRequest struct {
	HolidayStartDate string `json:"holiday_start_date" binding:"required"`
	HolidayEndDate   string `json:"holiday_end_date" binding:"required"`
}

// ======================================================
// CRUD
// ======================================================

// Create registers a holiday window. Holidays reprice slots, they never
// remove them, so no cache invalidation fan-out is needed beyond the TTL.
func (h *HolidayHandler) Create(c *gin.Context) {
	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "holiday_start_date and holiday_end_date are required.")
		return
	}

	start, err := parseDate(req.HolidayStartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
		return
	}
	end, err := parseDate(req.HolidayEndDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
		return
	}
	if end.Before(start) {
		httperr.BadRequest(c, "start_after_end", "holiday_end_date must not precede holiday_start_date.")
		return
	}

	holiday := models.Holiday{
		HolidayStartDate: datatypes.Date(start),
		HolidayEndDate:   datatypes.Date(end),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&holiday).Error; err != nil {
		httperr.Internal(c, "failed_to_save_holiday", "Could not save holiday.")
		return
	}

	httpresp.Created(c, holiday)
}

func (h *HolidayHandler) List(c *gin.Context) {
	var holidays []models.Holiday
	if err := h.db.WithContext(c.Request.Context()).
		Order("holiday_start_date ASC").
		Find(&holidays).Error; err != nil {

		httperr.Internal(c, "failed_to_get_holidays", "Could not load holidays.")
		return
	}

	httpresp.List(c, holidays)
}

func (h *HolidayHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid holiday id.")
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Holiday{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_holiday", "Could not delete holiday.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "holiday_not_found", "Holiday not found.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
