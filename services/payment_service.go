package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"gorm.io/gorm"
)

// Payment statuses as reported by the external processor.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusSuccess  = "success"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPaymentNotVerified = errors.New("payment has not been verified")
)

// PaymentVerifier checks proof of a completed charge. Order
// finalization only consumes the proof; charging happens upstream.
type PaymentVerifier interface {
	VerifyProof(referenceID string) error
}

// PaymentService records processor callbacks and verifies proofs
// against them.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// RecordCallback upserts the payment row for a processor callback.
func (s *PaymentService) RecordCallback(referenceID string, customerID uint, amount float64, status, method string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Where("reference_id = ?", referenceID).First(&payment).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		payment = models.Payment{
			ReferenceID:   referenceID,
			CustomerID:    customerID,
			Amount:        amount,
			PaymentMethod: method,
		}
	}

	payment.Status = status
	if status == PaymentStatusSuccess && payment.PaymentTime == nil {
		now := time.Now()
		payment.PaymentTime = &now
	}

	if err := s.db.Save(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return &payment, nil
}

// VerifyProof accepts a reference id and requires a successful charge
// behind it.
func (s *PaymentService) VerifyProof(referenceID string) error {
	var payment models.Payment
	if err := s.db.Where("reference_id = ?", referenceID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}
	if payment.Status != PaymentStatusSuccess {
		return ErrPaymentNotVerified
	}
	return nil
}
