package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/CareBridgeServices/care-scheduler/internal/config"
	"github.com/CareBridgeServices/care-scheduler/internal/domain/schedule"
	"github.com/CareBridgeServices/care-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.CaregiverDetail{},
		&models.PatientMember{},
		&models.WeeklyAvailability{},
		&models.UnavailabilityRange{},
		&models.Holiday{},
		&models.RateCard{},
		&models.AppointmentBooking{},
		&models.Feedback{},
		&models.FeedbackSummary{},
		&models.Verification{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Store-level backstop for the booking race: no two non-rejected
	// bookings of one caregiver may hold overlapping [start, end) windows,
	// even if two requests pass the application-side check concurrently.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Warn("btree_gist extension unavailable", zap.Error(err))
	}
	var haveConstraint int64
	db.Raw(`SELECT count(*) FROM pg_constraint WHERE conname = 'appointment_bookings_no_overlap'`).
		Scan(&haveConstraint)
	if haveConstraint == 0 {
		err := db.Exec(`
        ALTER TABLE appointment_bookings
        ADD CONSTRAINT appointment_bookings_no_overlap
        EXCLUDE USING gist (
            caregiver_id WITH =,
            tstzrange(start_appointment, end_appointment) WITH &&
        )
        WHERE (booking_status <> 'rejected')
    `).Error
		if err != nil {
			log.Warn("booking overlap constraint not installed", zap.Error(err))
		}
	}

	seedRateCards(db, log)

	return db
}

// seedRateCards inserts the eight (day-type, band) rows with zero prices
// when absent, so the pricing classifier always has rows to update and
// absence stays a deliberate admin state rather than a missing migration.
func seedRateCards(db *gorm.DB, log *zap.Logger) {
	dayTypes := []schedule.DayType{
		schedule.DayWeekday,
		schedule.DaySaturday,
		schedule.DaySunday,
		schedule.DayHoliday,
	}
	bands := []string{schedule.BandStandard, schedule.BandNonStandard}

	for _, dt := range dayTypes {
		for _, band := range bands {
			card := models.RateCard{
				DayType:   string(dt),
				Band:      band,
				StartTime: "00:00",
				EndTime:   "00:00",
			}
			err := db.
				Where("day_type = ? AND band = ?", dt, band).
				FirstOrCreate(&card).Error
			if err != nil {
				log.Warn("rate card seed failed",
					zap.String("day_type", string(dt)),
					zap.String("band", band),
					zap.Error(err),
				)
			}
		}
	}
}
