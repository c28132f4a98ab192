package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/httpresp"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
	"github.com/CareBridgeServices/care-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type RateCardHandler struct {
	db *gorm.DB
}

func NewRateCardHandler(db *gorm.DB) *RateCardHandler {
	return &RateCardHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type RateCardConfig struct {
	DayType      string  `json:"day_type" binding:"required"`
	Band         string  `json:"band" binding:"required"`
	PricePerHour float64 `json:"price_perhour" binding:"required,gt=0"`
	StartTime    string  `json:"start_time" binding:"required"`
	EndTime      string  `json:"end_time" binding:"required"`
}

type RateCardUpdateRequest struct {
	Cards []RateCardConfig `json:"cards" binding:"required,min=1"`
}

// ======================================================
// UPDATE
// ======================================================

// Update upserts by (day_type, band). Pricing reads join against the
// full table on every day build, so a changed card takes effect as soon
// as cached days expire.
func (h *RateCardHandler) Update(c *gin.Context) {
	var req RateCardUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid rate card payload.")
		return
	}

	for _, card := range req.Cards {
		switch schedule.DayType(card.DayType) {
		case schedule.DayWeekday, schedule.DaySaturday, schedule.DaySunday, schedule.DayHoliday:
		default:
			httperr.BadRequest(c, "invalid_day_type", "Unknown day_type.")
			return
		}

		if card.Band != schedule.BandStandard && card.Band != schedule.BandNonStandard {
			httperr.BadRequest(c, "invalid_band", "Band must be standard or nonstandard.")
			return
		}

		if !validators.IsClockLabel(card.StartTime) || !validators.IsClockLabel(card.EndTime) {
			httperr.BadRequest(c, "invalid_time", "Times must be HH:MM.")
			return
		}
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		for _, card := range req.Cards {
			res := tx.
				Model(&models.RateCard{}).
				Where("day_type = ? AND band = ?", card.DayType, card.Band).
				Updates(map[string]any{
					"price_per_hour": card.PricePerHour,
					"start_time":     card.StartTime,
					"end_time":       card.EndTime,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				row := models.RateCard{
					DayType:      card.DayType,
					Band:         card.Band,
					PricePerHour: card.PricePerHour,
					StartTime:    card.StartTime,
					EndTime:      card.EndTime,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_rate_cards", "Could not save rate cards.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

// ======================================================
// LIST
// ======================================================

func (h *RateCardHandler) List(c *gin.Context) {
	var cards []models.RateCard
	if err := h.db.WithContext(c.Request.Context()).
		Order("day_type ASC, band ASC").
		Find(&cards).Error; err != nil {

		httperr.Internal(c, "failed_to_get_rate_cards", "Could not load rate cards.")
		return
	}

	httpresp.List(c, cards)
}
