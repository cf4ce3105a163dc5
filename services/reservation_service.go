package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
	"gorm.io/gorm"
)

var (
	ErrPastDate            = errors.New("reservation date cannot be in the past")
	ErrInvalidPartySize    = errors.New("party size must be at least 1")
	ErrInvalidDate         = errors.New("invalid reservation date, expected YYYY-MM-DD")
	ErrReservationNotFound = errors.New("reservation not found")
)

// CapacityError reports a full slot along with how many guest slots
// are still free, so the caller can offer alternatives.
type CapacityError struct {
	SlotsLeft int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("not enough capacity, %d slots left", e.SlotsLeft)
}

const (
	confirmationCodeLength  = 8
	confirmationCodeRetries = 10
	pendingReservationTTL   = 24 * time.Hour
)

// ReservationRequest carries the details a customer submits.
type ReservationRequest struct {
	Name       string
	Email      string
	Phone      string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	Guests     int
	Notes      string
	CustomerID *uint
}

// ReservationService owns the booking workflow: validation, capacity
// check, confirmation code and persistence in one transaction,
// followed by best-effort notification.
type ReservationService struct {
	db           *gorm.DB
	availability *AvailabilityService
	notifier     Notifier
	activity     *ActivityLogger
}

func NewReservationService(db *gorm.DB, availability *AvailabilityService, notifier Notifier, activity *ActivityLogger) *ReservationService {
	return &ReservationService{
		db:           db,
		availability: availability,
		notifier:     notifier,
		activity:     activity,
	}
}

// Create books a reservation. The capacity check and the insert share
// one transaction so two concurrent bookings cannot both pass the
// check and overfill the slot.
func (s *ReservationService) Create(req ReservationRequest) (*models.Reservation, error) {
	reqDate, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	today := time.Now()
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if reqDate.Before(todayDate) {
		return nil, ErrPastDate
	}

	if req.Guests < 1 {
		return nil, ErrInvalidPartySize
	}

	var reservation models.Reservation
	err = s.db.Transaction(func(tx *gorm.DB) error {
		slot, err := s.availability.checkSlot(tx, req.Date, req.Time, nil)
		if err != nil {
			return err
		}
		if !slot.Fits(req.Guests) {
			return &CapacityError{SlotsLeft: slot.AvailableSlots}
		}

		code, err := s.uniqueConfirmationCode(tx)
		if err != nil {
			return err
		}

		reservation = models.Reservation{
			ConfirmationCode: code,
			CustomerID:       req.CustomerID,
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			Date:             req.Date,
			Time:             req.Time,
			Guests:           req.Guests,
			Status:           models.ReservationStatusConfirmed,
			Notes:            req.Notes,
			DepositStatus:    models.DepositStatusNone,
			ExpiresAt:        time.Now().Add(pendingReservationTTL),
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ReservationConfirmed(&reservation)
	}
	if s.activity != nil {
		s.activity.Record(req.Name, "reservation_created",
			fmt.Sprintf("reservation %s for %d guest(s) on %s %s", reservation.ConfirmationCode, req.Guests, req.Date, req.Time))
	}

	return &reservation, nil
}

// uniqueConfirmationCode generates a short code and checks it against
// existing reservations. After a bounded number of collisions it
// falls back to a longer high-entropy code.
func (s *ReservationService) uniqueConfirmationCode(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < confirmationCodeRetries; attempt++ {
		code := utils.GenerateConfirmationCode(confirmationCodeLength)

		var count int64
		if err := tx.Model(&models.Reservation{}).Where("confirmation_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return utils.GenerateLongConfirmationCode(), nil
}

// Cancel looks a reservation up by its confirmation code, the only
// handle the customer holds, and marks it cancelled.
func (s *ReservationService) Cancel(confirmationCode string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.Where("confirmation_code = ?", confirmationCode).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	reservation.Status = models.ReservationStatusCancelled
	if err := s.db.Save(&reservation).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ReservationCancelled(&reservation)
	}
	if s.activity != nil {
		s.activity.Record(reservation.Name, "reservation_cancelled",
			fmt.Sprintf("reservation %s on %s %s", reservation.ConfirmationCode, reservation.Date, reservation.Time))
	}

	return &reservation, nil
}
