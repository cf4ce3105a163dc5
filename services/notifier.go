package services

import (
	"encoding/json"
	"fmt"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
	"gorm.io/gorm"
)

// Notifier dispatches customer-facing messages. All methods are
// best-effort: failures are logged, never propagated, and never roll
// back the operation that triggered them.
type Notifier interface {
	ReservationConfirmed(r *models.Reservation)
	ReservationCancelled(r *models.Reservation)
	OrderConfirmed(o *models.Order, pointsEarned int64, tier string)
}

type notificationEvent struct {
	Event     string `json:"event"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// QueueNotifier publishes notification events to the broker and keeps
// a stored copy for the staff notification list.
type QueueNotifier struct {
	db        *gorm.DB
	publisher QueuePublisher
}

func NewQueueNotifier(db *gorm.DB, publisher QueuePublisher) *QueueNotifier {
	return &QueueNotifier{db: db, publisher: publisher}
}

func (n *QueueNotifier) ReservationConfirmed(r *models.Reservation) {
	n.dispatch(notificationEvent{
		Event:     "reservation_confirmed",
		Recipient: r.Email,
		Subject:   "Your reservation is confirmed",
		Message: fmt.Sprintf("Reservation for %d guest(s) on %s at %s. Confirmation code: %s",
			r.Guests, r.Date, r.Time, r.ConfirmationCode),
	})
}

func (n *QueueNotifier) ReservationCancelled(r *models.Reservation) {
	n.dispatch(notificationEvent{
		Event:     "reservation_cancelled",
		Recipient: r.Email,
		Subject:   "Your reservation was cancelled",
		Message: fmt.Sprintf("Reservation %s on %s at %s has been cancelled.",
			r.ConfirmationCode, r.Date, r.Time),
	})
}

func (n *QueueNotifier) OrderConfirmed(o *models.Order, pointsEarned int64, tier string) {
	n.dispatch(notificationEvent{
		Event:     "order_confirmed",
		Recipient: o.Customer.Email,
		Subject:   "Order confirmed",
		Message: fmt.Sprintf("Order %s confirmed, total %s. You earned %d points (%s tier).",
			o.OrderRef, utils.FormatCurrency(o.TotalAmount), pointsEarned, tier),
	})
}

func (n *QueueNotifier) dispatch(event notificationEvent) {
	// Stored copy first so staff can see the message even if the
	// broker is down.
	title := event.Subject
	record := models.Notification{
		Recipient: event.Recipient,
		Title:     &title,
		Message:   event.Message,
		Channel:   "email",
	}
	if err := n.db.Create(&record).Error; err != nil {
		utils.ErrorLogger.Printf("failed to store notification: %v", err)
	}

	if n.publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		utils.ErrorLogger.Printf("failed to encode notification event: %v", err)
		return
	}
	if err := n.publisher.Publish(QueueNotifications, body); err != nil {
		utils.ErrorLogger.Printf("failed to publish notification event: %v", err)
	}
}
