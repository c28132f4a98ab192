package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/CareBridgeServices/care-scheduler/internal/cache"
	"github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"
	"github.com/CareBridgeServices/care-scheduler/internal/dto"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/httpresp"
	"github.com/CareBridgeServices/care-scheduler/internal/middleware"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
	"github.com/CareBridgeServices/care-scheduler/internal/usecase/availability"
	"github.com/CareBridgeServices/care-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	db      *gorm.DB
	getDay  *availability.GetAvailability
	daysCch *cache.AvailabilityCache
}

func NewAvailabilityHandler(
	db *gorm.DB,
	getDay *availability.GetAvailability,
	daysCch *cache.AvailabilityCache,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:      db,
		getDay:  getDay,
		daysCch: daysCch,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TemplateDayConfig struct {
	WeekDay   string `json:"week_day" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type TemplateUpdateRequest struct {
	Days []TemplateDayConfig `json:"days" binding:"required"`
}

// ======================================================
// DAY VIEW
// ======================================================

func (h *AvailabilityHandler) GetMine(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)
	h.day(c, caregiverID)
}

func (h *AvailabilityHandler) GetForCaregiver(c *gin.Context) {
	caregiverID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_caregiver", "Invalid caregiver id.")
		return
	}
	h.day(c, caregiverID)
}

func (h *AvailabilityHandler) day(c *gin.Context, caregiverID uint) {
	dateStr := c.Query("booking_date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_booking_date", "booking_date is required.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid booking_date.")
		return
	}

	var cached dto.AvailabilityDayDTO
	if h.daysCch.Get(c.Request.Context(), caregiverID, dateStr, &cached) {
		c.JSON(200, cached)
		return
	}

	out, err := h.getDay.Execute(c.Request.Context(), availability.Input{
		CaregiverID: caregiverID,
		Date:        date,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Could not build availability.")
		return
	}

	h.daysCch.Set(c.Request.Context(), caregiverID, dateStr, out)

	c.JSON(200, out)
}

// ======================================================
// WEEKLY TEMPLATE
// ======================================================

// UpdateTemplate replaces the caregiver's weekly windows. Slots are
// generated boundary-inclusive at edit time so day reads never re-derive
// them.
func (h *AvailabilityHandler) UpdateTemplate(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)

	var req TemplateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid template payload.")
		return
	}

	for _, d := range req.Days {
		if !validators.IsWeekday(d.WeekDay) {
			httperr.BadRequest(c, "invalid_weekday", "Unknown weekday name.")
			return
		}
		if d.StartTime != "" && !validators.IsClockLabel(d.StartTime) {
			httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
			return
		}
		if d.EndTime != "" && !validators.IsClockLabel(d.EndTime) {
			httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
			return
		}
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		for _, d := range req.Days {
			slots := schedule.GenerateSlots(d.StartTime, d.EndTime)

			tpl := models.WeeklyAvailability{
				CaregiverID:       caregiverID,
				WeekDay:           d.WeekDay,
				StartTime:         d.StartTime,
				EndTime:           d.EndTime,
				AvailabilitySlots: datatypes.JSONSlice[string](slots),
			}

			res := tx.
				Model(&models.WeeklyAvailability{}).
				Where("caregiver_id = ? AND week_day = ?", caregiverID, d.WeekDay).
				Updates(map[string]any{
					"start_time":         tpl.StartTime,
					"end_time":           tpl.EndTime,
					"availability_slots": tpl.AvailabilitySlots,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				if err := tx.Create(&tpl).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_template", "Could not save weekly template.")
		return
	}

	h.daysCch.Invalidate(c.Request.Context(), caregiverID)

	c.JSON(200, gin.H{"status": "ok"})
}

func (h *AvailabilityHandler) GetTemplate(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)

	var days []models.WeeklyAvailability
	if err := h.db.WithContext(c.Request.Context()).
		Where("caregiver_id = ?", caregiverID).
		Order("id ASC").
		Find(&days).Error; err != nil {

		httperr.Internal(c, "failed_to_get_template", "Could not load weekly template.")
		return
	}

	httpresp.List(c, days)
}
