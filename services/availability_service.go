package services

import (
	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"gorm.io/gorm"
)

// SlotAvailability describes how much guest capacity is left for one
// (date, time) slot.
type SlotAvailability struct {
	Available      bool `json:"available"`
	BookedGuests   int  `json:"booked_guests"`
	AvailableSlots int  `json:"available_slots"`
	MaxCapacity    int  `json:"max_capacity"`
}

// Fits reports whether a party of the given size can still book.
func (a SlotAvailability) Fits(guests int) bool {
	return guests <= a.AvailableSlots
}

// AvailabilityService aggregates guest counts per slot against the
// configured capacity ceiling.
type AvailabilityService struct {
	db       *gorm.DB
	settings *SettingsService
}

func NewAvailabilityService(db *gorm.DB, settings *SettingsService) *AvailabilityService {
	return &AvailabilityService{db: db, settings: settings}
}

// CheckSlot sums the guests of all Pending/Confirmed reservations at
// the exact date+time. excludeID skips one reservation, for
// edit-in-place flows.
func (s *AvailabilityService) CheckSlot(date, timeSlot string, excludeID *uint) (SlotAvailability, error) {
	return s.checkSlot(s.db, date, timeSlot, excludeID)
}

// checkSlot runs against the given handle so the reservation workflow
// can reuse it inside its own transaction.
func (s *AvailabilityService) checkSlot(tx *gorm.DB, date, timeSlot string, excludeID *uint) (SlotAvailability, error) {
	maxCapacity, err := s.settings.MaxCapacity()
	if err != nil {
		return SlotAvailability{}, err
	}

	query := tx.Model(&models.Reservation{}).
		Where("date = ? AND time = ?", date, timeSlot).
		Where("status IN ?", []string{models.ReservationStatusPending, models.ReservationStatusConfirmed})
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var booked int64
	if err := query.Select("COALESCE(SUM(guests), 0)").Scan(&booked).Error; err != nil {
		return SlotAvailability{}, err
	}

	remaining := maxCapacity - int(booked)
	if remaining < 0 {
		remaining = 0
	}

	return SlotAvailability{
		Available:      remaining > 0,
		BookedGuests:   int(booked),
		AvailableSlots: remaining,
		MaxCapacity:    maxCapacity,
	}, nil
}
