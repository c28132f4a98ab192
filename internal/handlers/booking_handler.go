package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CareBridgeServices/care-scheduler/internal/cache"
	"github.com/CareBridgeServices/care-scheduler/internal/dto"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/middleware"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
	"github.com/CareBridgeServices/care-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db      *gorm.DB
	create  *booking.CreateBooking
	status  *booking.ChangeStatus
	clock   *booking.Clock
	daysCch *cache.AvailabilityCache
}

func NewBookingHandler(
	db *gorm.DB,
	create *booking.CreateBooking,
	status *booking.ChangeStatus,
	clock *booking.Clock,
	daysCch *cache.AvailabilityCache,
) *BookingHandler {
	return &BookingHandler{
		db:      db,
		create:  create,
		status:  status,
		clock:   clock,
		daysCch: daysCch,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	StartAppointment string `json:"start_appointment" binding:"required"`
	EndAppointment   string `json:"end_appointment" binding:"required"`
	BookingFor       string `json:"booking_for" binding:"omitempty,oneof=self member"`
	MemberID         uint   `json:"member_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ClockVerifyRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// ======================================================
// BUSINESS ERROR MAPPING
// ======================================================

var bookingErrorStatus = map[string]int{
	"invalid_caregiver":   404,
	"booking_not_found":   404,
	"member_not_found":    400,
	"multi_day_booking":   400,
	"start_after_end":     400,
	"slot_already_booked": 409,
	"invalid_status":      400,
	"invalid_state":       400,
	"invalid_otp":         400,
}

func writeBookingError(c *gin.Context, err error) bool {
	var be httperr.BusinessError
	if !errors.As(err, &be) && !httperr.IsExclusionConflict(err) {
		return false
	}

	code := be.Code
	if code == "" {
		code = "slot_already_booked"
	}

	status, ok := bookingErrorStatus[code]
	if !ok {
		status = 400
	}
	httperr.Write(c, status, code, "Booking request rejected.")
	return true
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	requesterID := c.MustGet(middleware.ContextUserID).(uint)

	caregiverID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_caregiver", "Invalid caregiver id.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	start, err := parseDateTime(req.StartAppointment)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Datetimes must be YYYY-MM-DD HH:MM.")
		return
	}
	end, err := parseDateTime(req.EndAppointment)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Datetimes must be YYYY-MM-DD HH:MM.")
		return
	}

	bookingFor := req.BookingFor
	if bookingFor == "" {
		bookingFor = "self"
	}

	created, err := h.create.Execute(c.Request.Context(), booking.CreateBookingInput{
		CaregiverID:      caregiverID,
		RequesterID:      requesterID,
		StartAppointment: start,
		EndAppointment:   end,
		BookingFor:       bookingFor,
		MemberID:         req.MemberID,
	})
	if err != nil {
		if writeBookingError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
		return
	}

	h.daysCch.Invalidate(c.Request.Context(), caregiverID)

	c.JSON(201, created)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	dayStart := date
	dayEnd := dayStart.Add(24 * time.Hour)

	var bookings []models.AppointmentBooking
	if err := h.db.WithContext(c.Request.Context()).
		Where(
			"caregiver_id = ? AND start_appointment >= ? AND start_appointment < ?",
			caregiverID, dayStart, dayEnd,
		).
		Order("start_appointment ASC").
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_get_bookings", "Could not load bookings.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:               b.ID,
			Reference:        b.Reference,
			StartAppointment: b.StartAppointment,
			EndAppointment:   b.EndAppointment,
			BookingStatus:    b.BookingStatus,
			BookingFor:       b.BookingFor,
			TotalHours:       b.TotalHours,
			TotalCost:        b.TotalCost,
		})
	}

	c.JSON(200, gin.H{"date": dateStr, "bookings": out})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "status is required.")
		return
	}

	b, err := h.status.Execute(c.Request.Context(), booking.ChangeStatusInput{
		CaregiverID: caregiverID,
		BookingID:   bookingID,
		Status:      req.Status,
	})
	if err != nil {
		if writeBookingError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Could not update booking.")
		return
	}

	// a rejection frees the window for other patients
	h.daysCch.Invalidate(c.Request.Context(), caregiverID)

	c.JSON(200, b)
}

// ======================================================
// CLOCK IN / OUT
// ======================================================

func (h *BookingHandler) RequestClockIn(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	err := h.clock.RequestClockIn(c.Request.Context(), booking.ClockInput{
		CaregiverID: caregiverID,
		BookingID:   bookingID,
	})
	if err != nil {
		if writeBookingError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_request_clock_in", "Could not issue clock-in code.")
		return
	}

	c.JSON(200, gin.H{"status": "code_sent"})
}

func (h *BookingHandler) VerifyClockIn(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req ClockVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "otp is required.")
		return
	}

	b, err := h.clock.VerifyClockIn(c.Request.Context(), booking.ClockInput{
		CaregiverID: caregiverID,
		BookingID:   bookingID,
		OTP:         req.OTP,
	})
	if err != nil {
		if writeBookingError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_clock_in", "Could not clock in.")
		return
	}

	c.JSON(200, b)
}

func (h *BookingHandler) ClockOut(c *gin.Context) {
	caregiverID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := h.clock.ClockOut(c.Request.Context(), booking.ClockInput{
		CaregiverID: caregiverID,
		BookingID:   bookingID,
	})
	if err != nil {
		if writeBookingError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_clock_out", "Could not clock out.")
		return
	}

	c.JSON(200, b)
}
