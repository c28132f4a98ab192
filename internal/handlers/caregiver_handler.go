package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareBridgeServices/care-scheduler/internal/audit"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/httpresp"
	"github.com/CareBridgeServices/care-scheduler/internal/middleware"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type CaregiverHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCaregiverHandler(db *gorm.DB, audit *audit.Dispatcher) *CaregiverHandler {
	return &CaregiverHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type OnboardCaregiverRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`

	Gender string `json:"gender"`
	City   string `json:"city"`

	ServicesCost float64 `json:"services_cost" binding:"required,gt=0"`
	WeekHours    int     `json:"week_hours"`
	About        string  `json:"about" binding:"max=500"`
}

// ======================================================
// ONBOARD
// ======================================================

// Onboard creates the caregiver account with every dependent row the
// engine assumes exists: one empty template row per weekday and the
// rating summary. Day reads and feedback writes then never hit a
// missing-row path.
func (h *CaregiverHandler) Onboard(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req OnboardCaregiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid caregiver payload.")
		return
	}

	var user models.User

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		user = models.User{
			Name:   req.Name,
			Email:  req.Email,
			Phone:  req.Phone,
			Role:   middleware.RoleCaregiver,
			Gender: req.Gender,
			City:   req.City,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		detail := models.CaregiverDetail{
			UserID:       user.ID,
			ServicesCost: req.ServicesCost,
			WeekHours:    req.WeekHours,
			About:        req.About,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return err
		}

		weekdays := []string{
			"Sunday", "Monday", "Tuesday", "Wednesday",
			"Thursday", "Friday", "Saturday",
		}
		for _, day := range weekdays {
			tpl := models.WeeklyAvailability{
				CaregiverID: user.ID,
				WeekDay:     day,
			}
			if err := tx.Create(&tpl).Error; err != nil {
				return err
			}
		}

		summary := models.FeedbackSummary{CaregiverID: user.ID}
		return tx.Create(&summary).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_onboard_caregiver", "Could not create caregiver.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  &adminID,
		Action:   "caregiver_onboarded",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, user)
}

// ======================================================
// LIST
// ======================================================

func (h *CaregiverHandler) List(c *gin.Context) {
	var details []models.CaregiverDetail
	if err := h.db.WithContext(c.Request.Context()).
		Preload("User").
		Order("id ASC").
		Find(&details).Error; err != nil {

		httperr.Internal(c, "failed_to_get_caregivers", "Could not load caregivers.")
		return
	}

	httpresp.List(c, details)
}
