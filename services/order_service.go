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
	ErrMissingCustomer     = errors.New("customer id is required")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrEmptyItems          = errors.New("order must contain at least one item")
	ErrInvalidTotal        = errors.New("order total must be greater than zero")
	ErrMissingPaymentProof = errors.New("payment proof is required")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrOrderNotFound       = errors.New("order not found")
)

// OrderItemInput is one line of the cart at checkout.
type OrderItemInput struct {
	MenuID   *uint   `json:"menu_id,omitempty"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

// OrderResult is returned to the caller so it can display points and
// tier immediately without a second fetch.
type OrderResult struct {
	Order        models.Order `json:"order"`
	PointsEarned int64        `json:"points_earned"`
	UserTier     string       `json:"user_tier"`
}

// OrderService finalizes paid orders: persistence, point award and
// tier recomputation in one transaction, then best-effort logging and
// notification.
type OrderService struct {
	db       *gorm.DB
	verifier PaymentVerifier
	notifier Notifier
	activity *ActivityLogger
}

func NewOrderService(db *gorm.DB, verifier PaymentVerifier, notifier Notifier, activity *ActivityLogger) *OrderService {
	return &OrderService{
		db:       db,
		verifier: verifier,
		notifier: notifier,
		activity: activity,
	}
}

// Finalize persists a paid order and awards loyalty points. Payment
// must have been verified upstream; paymentProof is the processor
// reference. All validation happens before anything is persisted.
func (s *OrderService) Finalize(customerID uint, items []OrderItemInput, total float64, paymentProof string) (*OrderResult, error) {
	if customerID == 0 {
		return nil, ErrMissingCustomer
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if total <= 0 {
		return nil, ErrInvalidTotal
	}
	if paymentProof == "" {
		return nil, ErrMissingPaymentProof
	}
	if s.verifier != nil {
		if err := s.verifier.VerifyProof(paymentProof); err != nil {
			return nil, err
		}
	}

	pointsEarned := PointsForTotal(total)

	var order models.Order
	var tier string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		order = models.Order{
			OrderRef:     utils.GenerateOrderRef(time.Now()),
			CustomerID:   customerID,
			Status:       models.OrderStatusConfirmed,
			TotalAmount:  total,
			PointsEarned: pointsEarned,
			PaymentRef:   paymentProof,
		}
		for _, item := range items {
			order.OrderItems = append(order.OrderItems, models.OrderItem{
				MenuID:   item.MenuID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Notes:    item.Notes,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Atomic increment; concurrent orders by the same customer
		// must not lose updates.
		if err := tx.Model(&models.Customer{}).Where("id = ?", customerID).
			UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", pointsEarned)).Error; err != nil {
			return err
		}

		// Tier is derived from the post-increment total, so a
		// threshold crossed by this very order takes effect now.
		if err := tx.First(&customer, customerID).Error; err != nil {
			return err
		}
		tier = ComputeTier(customer.LoyaltyPoints)
		if customer.Tier != tier {
			if err := tx.Model(&models.Customer{}).Where("id = ?", customerID).
				UpdateColumn("tier", tier).Error; err != nil {
				return err
			}
		}

		order.Customer = customer
		order.Customer.Tier = tier
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record(order.Customer.Name, "order_finalized",
			fmt.Sprintf("order %s total %s, %d points earned, tier %s",
				order.OrderRef, utils.FormatCurrency(total), pointsEarned, tier))
	}
	if s.notifier != nil {
		s.notifier.OrderConfirmed(&order, pointsEarned, tier)
	}

	return &OrderResult{Order: order, PointsEarned: pointsEarned, UserTier: tier}, nil
}

// UpdateStatus moves an order one step forward through its lifecycle.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !order.CanMoveTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	order.Status = status
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Record("staff", "order_status_updated",
			fmt.Sprintf("order %s moved to %s", order.OrderRef, status))
	}

	return &order, nil
}
