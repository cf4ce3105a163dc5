package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := setupServiceDB(t)
	payments := NewPaymentService(db)
	svc := NewOrderService(db, payments, &recordingNotifier{}, NewActivityLogger(db, nil))
	return svc, db
}

func seedCustomer(t *testing.T, db *gorm.DB, points int64) models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:          "Test Customer",
		Email:         "customer@example.com",
		LoyaltyPoints: points,
		Tier:          ComputeTier(points),
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer
}

func seedSuccessfulPayment(t *testing.T, db *gorm.DB, ref string, customerID uint, amount float64) {
	t.Helper()
	payments := NewPaymentService(db)
	if _, err := payments.RecordCallback(ref, customerID, amount, PaymentStatusSuccess, "card"); err != nil {
		t.Fatalf("failed to seed payment: %v", err)
	}
}

func cartItems() []OrderItemInput {
	return []OrderItemInput{
		{Name: "Margherita Pizza", Quantity: 2, Price: 30},
		{Name: "Lemonade", Quantity: 4, Price: 10},
	}
}

func TestFinalizeOrderValidation(t *testing.T) {
	svc, db := newOrderService(t)
	customer := seedCustomer(t, db, 0)
	seedSuccessfulPayment(t, db, "PAY-1", customer.ID, 100)

	tests := []struct {
		name       string
		customerID uint
		items      []OrderItemInput
		total      float64
		proof      string
		wantErr    error
	}{
		{"missing customer", 0, cartItems(), 100, "PAY-1", ErrMissingCustomer},
		{"empty items", customer.ID, nil, 100, "PAY-1", ErrEmptyItems},
		{"zero total", customer.ID, cartItems(), 0, "PAY-1", ErrInvalidTotal},
		{"negative total", customer.ID, cartItems(), -5, "PAY-1", ErrInvalidTotal},
		{"missing proof", customer.ID, cartItems(), 100, "", ErrMissingPaymentProof},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Finalize(tt.customerID, tt.items, tt.total, tt.proof)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Nothing was persisted by any rejected attempt.
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)

	var unchanged models.Customer
	db.First(&unchanged, customer.ID)
	assert.Equal(t, int64(0), unchanged.LoyaltyPoints)
}

func TestFinalizeOrderRequiresVerifiedPayment(t *testing.T) {
	svc, db := newOrderService(t)
	customer := seedCustomer(t, db, 0)

	_, err := svc.Finalize(customer.ID, cartItems(), 100, "PAY-UNKNOWN")
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	payments := NewPaymentService(db)
	_, err = payments.RecordCallback("PAY-PENDING", customer.ID, 100, PaymentStatusPending, "card")
	assert.NoError(t, err)

	_, err = svc.Finalize(customer.ID, cartItems(), 100, "PAY-PENDING")
	assert.ErrorIs(t, err, ErrPaymentNotVerified)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestFinalizeOrderAwardsPointsAndTier(t *testing.T) {
	svc, db := newOrderService(t)
	customer := seedCustomer(t, db, 0)
	seedSuccessfulPayment(t, db, "PAY-100", customer.ID, 100)

	result, err := svc.Finalize(customer.ID, cartItems(), 100.00, "PAY-100")
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), result.PointsEarned)
	assert.Equal(t, models.TierSilver, result.UserTier)
	assert.Equal(t, models.OrderStatusConfirmed, result.Order.Status)
	assert.NotEmpty(t, result.Order.OrderRef)
	assert.Len(t, result.Order.OrderItems, 2)

	var stored models.Customer
	assert.NoError(t, db.First(&stored, customer.ID).Error)
	assert.Equal(t, int64(1000), stored.LoyaltyPoints)
	assert.Equal(t, models.TierSilver, stored.Tier)
}

func TestFinalizeOrderTierFlipsWithoutLag(t *testing.T) {
	svc, db := newOrderService(t)
	// One point short of Gold.
	customer := seedCustomer(t, db, 1499)
	seedSuccessfulPayment(t, db, "PAY-SMALL", customer.ID, 0.10)

	result, err := svc.Finalize(customer.ID, []OrderItemInput{{Name: "Mint", Quantity: 1, Price: 0.10}}, 0.10, "PAY-SMALL")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.PointsEarned)
	// The threshold crossed by this very order takes effect now, not
	// on the next one.
	assert.Equal(t, models.TierGold, result.UserTier)

	var stored models.Customer
	assert.NoError(t, db.First(&stored, customer.ID).Error)
	assert.Equal(t, int64(1500), stored.LoyaltyPoints)
	assert.Equal(t, models.TierGold, stored.Tier)
}

func TestFinalizeOrderUnknownCustomer(t *testing.T) {
	svc, db := newOrderService(t)
	seedSuccessfulPayment(t, db, "PAY-X", 999, 50)

	_, err := svc.Finalize(999, cartItems(), 50, "PAY-X")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestUpdateOrderStatusForwardOnly(t *testing.T) {
	svc, db := newOrderService(t)
	customer := seedCustomer(t, db, 0)
	seedSuccessfulPayment(t, db, "PAY-FLOW", customer.ID, 60)

	result, err := svc.Finalize(customer.ID, cartItems(), 60, "PAY-FLOW")
	assert.NoError(t, err)
	orderID := result.Order.ID

	// Confirmed -> Preparing -> Ready is the legal path.
	order, err := svc.UpdateStatus(orderID, models.OrderStatusPreparing)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, order.Status)

	// Skipping ahead or moving backwards is rejected.
	_, err = svc.UpdateStatus(orderID, models.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.UpdateStatus(orderID, models.OrderStatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	order, err = svc.UpdateStatus(orderID, models.OrderStatusReady)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusReady, order.Status)
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	svc, _ := newOrderService(t)
	_, err := svc.UpdateStatus(12345, models.OrderStatusPreparing)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
