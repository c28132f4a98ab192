package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/httpresp"
	"github.com/CareBridgeServices/care-scheduler/internal/middleware"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type MemberHandler struct {
	db *gorm.DB
}

func NewMemberHandler(db *gorm.DB) *MemberHandler {
	return &MemberHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Relation string `json:"relation"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// ======================================================
// CRUD
// ======================================================

func (h *MemberHandler) Create(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "name is required.")
		return
	}

	member := models.PatientMember{
		PatientID: patientID,
		Name:      req.Name,
		Relation:  req.Relation,
		Email:     req.Email,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_save_member", "Could not save member.")
		return
	}

	httpresp.Created(c, member)
}

func (h *MemberHandler) List(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var members []models.PatientMember
	if err := h.db.WithContext(c.Request.Context()).
		Where("patient_id = ?", patientID).
		Order("id ASC").
		Find(&members).Error; err != nil {

		httperr.Internal(c, "failed_to_get_members", "Could not load members.")
		return
	}

	httpresp.List(c, members)
}
