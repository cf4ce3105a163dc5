package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
)

// recordingNotifier captures dispatches so tests can assert on them.
type recordingNotifier struct {
	confirmed []string
	cancelled []string
}

func (n *recordingNotifier) ReservationConfirmed(r *models.Reservation) {
	n.confirmed = append(n.confirmed, r.ConfirmationCode)
}

func (n *recordingNotifier) ReservationCancelled(r *models.Reservation) {
	n.cancelled = append(n.cancelled, r.ConfirmationCode)
}

func (n *recordingNotifier) OrderConfirmed(o *models.Order, pointsEarned int64, tier string) {}

func newReservationService(t *testing.T) (*ReservationService, *recordingNotifier) {
	t.Helper()
	db := setupServiceDB(t)
	settings := NewSettingsService(db)
	availability := NewAvailabilityService(db, settings)
	notifier := &recordingNotifier{}
	svc := NewReservationService(db, availability, notifier, NewActivityLogger(db, nil))
	return svc, notifier
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestCreateReservationRejectsPastDate(t *testing.T) {
	svc, notifier := newReservationService(t)

	_, err := svc.Create(ReservationRequest{
		Name:   "Alice",
		Date:   futureDate(-1),
		Time:   "19:00",
		Guests: 2,
	})
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Empty(t, notifier.confirmed)
}

func TestCreateReservationAllowsToday(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Create(ReservationRequest{
		Name:   "Alice",
		Date:   futureDate(0),
		Time:   "23:59",
		Guests: 2,
	})
	assert.NoError(t, err)
}

func TestCreateReservationRejectsZeroGuests(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Create(ReservationRequest{
		Name:   "Bob",
		Date:   futureDate(7),
		Time:   "19:00",
		Guests: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidPartySize)
}

func TestCreateReservationRejectsMalformedDate(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Create(ReservationRequest{
		Name:   "Bob",
		Date:   "tomorrow",
		Time:   "19:00",
		Guests: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateReservationCapacity(t *testing.T) {
	svc, notifier := newReservationService(t)
	date := futureDate(14)

	// Fill the slot to 48 of 50.
	seedReservation(t, svc.db, date, "19:00", 30, models.ReservationStatusConfirmed)
	seedReservation(t, svc.db, date, "19:00", 18, models.ReservationStatusPending)

	_, err := svc.Create(ReservationRequest{
		Name:   "Carol",
		Date:   date,
		Time:   "19:00",
		Guests: 3,
	})
	var capErr *CapacityError
	assert.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.SlotsLeft)
	assert.Contains(t, err.Error(), "2 slots left")
	assert.Empty(t, notifier.confirmed)

	// A party of 2 still fits.
	reservation, err := svc.Create(ReservationRequest{
		Name:   "Dave",
		Date:   date,
		Time:   "19:00",
		Guests: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)
}

func TestCreateReservationSuccess(t *testing.T) {
	svc, notifier := newReservationService(t)

	before := time.Now()
	reservation, err := svc.Create(ReservationRequest{
		Name:   "Eve",
		Email:  "eve@example.com",
		Date:   futureDate(21),
		Time:   "20:00",
		Guests: 4,
		Notes:  "window seat",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, reservation.ConfirmationCode)
	assert.Len(t, reservation.ConfirmationCode, 8)
	assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)
	assert.Equal(t, 4, reservation.Guests)

	// Booking hold expires 24h from creation.
	assert.WithinDuration(t, before.Add(24*time.Hour), reservation.ExpiresAt, 5*time.Second)

	// Best-effort notification went out.
	assert.Equal(t, []string{reservation.ConfirmationCode}, notifier.confirmed)

	// Persisted and findable by code.
	var stored models.Reservation
	err = svc.db.Where("confirmation_code = ?", reservation.ConfirmationCode).First(&stored).Error
	assert.NoError(t, err)
}

func TestCreateReservationCodesAreUnique(t *testing.T) {
	svc, _ := newReservationService(t)

	codes := map[string]bool{}
	for i := 0; i < 20; i++ {
		reservation, err := svc.Create(ReservationRequest{
			Name:   "Frank",
			Date:   futureDate(30 + i),
			Time:   "18:00",
			Guests: 2,
		})
		assert.NoError(t, err)
		assert.False(t, codes[reservation.ConfirmationCode], "duplicate code issued")
		codes[reservation.ConfirmationCode] = true
	}
}

func TestCancelReservation(t *testing.T) {
	svc, notifier := newReservationService(t)

	created, err := svc.Create(ReservationRequest{
		Name:   "Grace",
		Date:   futureDate(10),
		Time:   "19:00",
		Guests: 2,
	})
	assert.NoError(t, err)

	other := seedReservation(t, svc.db, futureDate(10), "19:00", 3, models.ReservationStatusConfirmed)

	cancelled, err := svc.Cancel(created.ConfirmationCode)
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCancelled, cancelled.Status)
	assert.Equal(t, []string{created.ConfirmationCode}, notifier.cancelled)

	// Untouched sibling reservation keeps its status.
	var sibling models.Reservation
	assert.NoError(t, svc.db.First(&sibling, other.ID).Error)
	assert.Equal(t, models.ReservationStatusConfirmed, sibling.Status)

	// Cancelled booking releases its capacity.
	slot, err := svc.availability.CheckSlot(created.Date, created.Time, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, slot.BookedGuests)
}

func TestCancelReservationUnknownCode(t *testing.T) {
	svc, notifier := newReservationService(t)

	_, err := svc.Cancel("NOSUCHCODE")
	assert.True(t, errors.Is(err, ErrReservationNotFound))
	assert.Empty(t, notifier.cancelled)
}
