package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainfb "github.com/CareBridgeServices/care-scheduler/internal/domain/feedback"
	"github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"
	"github.com/CareBridgeServices/care-scheduler/internal/httperr"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

type CareGormRepository struct {
	db *gorm.DB
}

func NewCareGormRepository(db *gorm.DB) *CareGormRepository {
	return &CareGormRepository{db: db}
}

// --------------------------------------------------
// Caregiver
// --------------------------------------------------

func (r *CareGormRepository) GetCaregiverDetail(
	ctx context.Context,
	caregiverID uint,
) (*models.CaregiverDetail, error) {

	var detail models.CaregiverDetail
	err := r.db.WithContext(ctx).
		Where("user_id = ?", caregiverID).
		First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *CareGormRepository) CaregiverExists(
	ctx context.Context,
	caregiverID uint,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND role = ?", caregiverID, "caregiver").
		Count(&count).Error
	return count > 0, err
}

func (r *CareGormRepository) GetMember(
	ctx context.Context,
	memberID uint,
	patientID uint,
) (*models.PatientMember, error) {

	var member models.PatientMember
	err := r.db.WithContext(ctx).
		Where("id = ? AND patient_id = ?", memberID, patientID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// --------------------------------------------------
// Weekly template
// --------------------------------------------------

func (r *CareGormRepository) GetWeeklyAvailability(
	ctx context.Context,
	caregiverID uint,
	weekday string,
) (*models.WeeklyAvailability, error) {

	var tpl models.WeeklyAvailability
	err := r.db.WithContext(ctx).
		Where("caregiver_id = ? AND week_day = ?", caregiverID, weekday).
		First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// --------------------------------------------------
// Holidays / rate cards
// --------------------------------------------------

func (r *CareGormRepository) HasHoliday(
	ctx context.Context,
	date string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Holiday{}).
		Where("holiday_start_date <= ? AND holiday_end_date >= ?", date, date).
		Count(&count).Error
	return count > 0, err
}

func (r *CareGormRepository) ListRateCards(
	ctx context.Context,
) ([]models.RateCard, error) {

	var cards []models.RateCard
	if err := r.db.WithContext(ctx).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// --------------------------------------------------
// Unavailability
// --------------------------------------------------

func (r *CareGormRepository) ListUnavailability(
	ctx context.Context,
	caregiverID uint,
) ([]models.UnavailabilityRange, error) {

	var ranges []models.UnavailabilityRange
	err := r.db.WithContext(ctx).
		Where("caregiver_id = ?", caregiverID).
		Find(&ranges).Error
	if err != nil {
		return nil, err
	}
	return ranges, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *CareGormRepository) ListBookingsForDay(
	ctx context.Context,
	caregiverID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.AppointmentBooking, error) {

	var bookings []models.AppointmentBooking
	err := r.db.WithContext(ctx).
		Select("start_appointment", "end_appointment").
		Where(
			"caregiver_id = ? AND start_appointment >= ? AND start_appointment < ?",
			caregiverID, dayStart, dayEnd,
		).
		Order("start_appointment ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBookingIfFree holds a row lock over the conflict scan for the
// whole check-then-insert, so two racing requests serialize here. The
// table's exclusion constraint catches anything that slips past.
func (r *CareGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.AppointmentBooking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var clashes []models.AppointmentBooking
		if err := conflictScan(tx, b.CaregiverID, b.StartAppointment, b.EndAppointment).
			Find(&clashes).Error; err != nil {
			return err
		}

		if len(clashes) > 0 {
			return httperr.ErrBusiness("slot_already_booked")
		}

		return tx.Create(b).Error
	})
}

// conflictScan selects the non-rejected bookings overlapping [start, end).
// Postgres refuses FOR UPDATE on aggregates, so the scan locks plain rows
// and the caller checks the slice length instead of a count.
func conflictScan(tx *gorm.DB, caregiverID uint, start, end time.Time) *gorm.DB {
	return tx.
		Model(&models.AppointmentBooking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where(
			"caregiver_id = ? AND booking_status <> 'rejected' AND start_appointment < ? AND end_appointment > ?",
			caregiverID, end, start,
		)
}

func (r *CareGormRepository) GetBookingForCaregiver(
	ctx context.Context,
	bookingID uint,
	caregiverID uint,
) (*models.AppointmentBooking, error) {

	var b models.AppointmentBooking
	err := r.db.WithContext(ctx).
		Where("id = ? AND caregiver_id = ?", bookingID, caregiverID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *CareGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.AppointmentBooking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Clock-in verification
// --------------------------------------------------

func (r *CareGormRepository) SaveVerification(
	ctx context.Context,
	userID uint,
	otp string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// one live code per patient
		if err := tx.
			Where("user_id = ?", userID).
			Delete(&models.Verification{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Verification{UserID: userID, OTP: otp}).Error
	})
}

func (r *CareGormRepository) ConsumeVerification(
	ctx context.Context,
	userID uint,
	otp string,
) (bool, error) {

	var v models.Verification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND otp = ?", userID, otp).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Verification{}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// --------------------------------------------------
// Feedback
// --------------------------------------------------

func (r *CareGormRepository) FeedbackExists(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Where("user_id = ? AND appointment_id = ?", userID, appointmentID).
		Count(&count).Error
	return count > 0, err
}

// ApplyFeedback locks the caregiver's summary row for the whole
// read-modify-write, so concurrent ratings for one caregiver serialize
// instead of losing increments.
func (r *CareGormRepository) ApplyFeedback(
	ctx context.Context,
	fb *models.Feedback,
) (*models.FeedbackSummary, error) {

	var summary models.FeedbackSummary

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(fb).Error; err != nil {
			return err
		}

		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("caregiver_id = ?", fb.CaregiverID).
			First(&summary).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			summary = models.FeedbackSummary{CaregiverID: fb.CaregiverID}
			if err := tx.Create(&summary).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		domainfb.Apply(&summary, fb.Rate)

		return tx.Save(&summary).Error
	})
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// Compile-time check
var _ schedule.Repository = (*CareGormRepository)(nil)
