package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/middleware"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
	"github.com/CareBridgeServices/care-scheduler/internal/usecase/feedback"
)

// ======================================================
// HANDLER
// ======================================================

type FeedbackHandler struct {
	db  *gorm.DB
	add *feedback.AddFeedback
}

func NewFeedbackHandler(db *gorm.DB, add *feedback.AddFeedback) *FeedbackHandler {
	return &FeedbackHandler{db: db, add: add}
}

// ======================================================
// REQUESTS
// ======================================================

type AddFeedbackRequest struct {
	AppointmentID uint    `json:"appointment_id" binding:"required"`
	Rate          float64 `json:"rate" binding:"required,gt=0,lte=5"`
	Comments      string  `json:"comments" binding:"max=500"`
}

// ======================================================
// CREATE
// ======================================================

func (h *FeedbackHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	caregiverID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_caregiver", "Invalid caregiver id.")
		return
	}

	var req AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Rate must be in (0, 5].")
		return
	}

	result, err := h.add.Execute(c.Request.Context(), feedback.AddFeedbackInput{
		CaregiverID:   caregiverID,
		UserID:        userID,
		AppointmentID: req.AppointmentID,
		Rate:          req.Rate,
		Comments:      req.Comments,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_caregiver") {
			httperr.NotFound(c, "invalid_caregiver", "Caregiver not found.")
			return
		}
		if httperr.IsBusiness(err, "feedback_exists") {
			httperr.BadRequest(c, "feedback_exists", "Appointment already rated.")
			return
		}
		httperr.Internal(c, "failed_to_add_feedback", "Could not save feedback.")
		return
	}

	c.JSON(201, result)
}

// ======================================================
// LIST
// ======================================================

func (h *FeedbackHandler) ListForCaregiver(c *gin.Context) {
	caregiverID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_caregiver", "Invalid caregiver id.")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	var entries []models.Feedback
	if err := h.db.WithContext(c.Request.Context()).
		Where("caregiver_id = ?", caregiverID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {

		httperr.Internal(c, "failed_to_get_feedback", "Could not load feedback.")
		return
	}

	var summary models.FeedbackSummary
	err := h.db.WithContext(c.Request.Context()).
		Where("caregiver_id = ?", caregiverID).
		First(&summary).Error
	if err != nil {
		// no summary row yet: zero values are the honest answer
		summary = models.FeedbackSummary{CaregiverID: caregiverID}
	}

	c.JSON(200, gin.H{
		"summary":  summary,
		"feedback": entries,
	})
}
