package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/services"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
)

type PaymentController struct {
	DB       *gorm.DB
	Payments *services.PaymentService
}

func NewPaymentController(db *gorm.DB, payments *services.PaymentService) *PaymentController {
	return &PaymentController{DB: db, Payments: payments}
}

// HandlePaymentCallback -> the external processor reports a charge
func (pc *PaymentController) HandlePaymentCallback(c *gin.Context) {
	type reqBody struct {
		ReferenceID string  `json:"reference_id" binding:"required"`
		CustomerID  uint    `json:"customer_id" binding:"required"`
		Amount      float64 `json:"amount" binding:"required"`
		Status      string  `json:"status" binding:"required"`
		Method      string  `json:"method"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch req.Status {
	case services.PaymentStatusPending, services.PaymentStatusSuccess,
		services.PaymentStatusFailed, services.PaymentStatusRefunded:
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown payment status"))
		return
	}

	method := req.Method
	if method == "" {
		method = "card"
	}

	payment, err := pc.Payments.RecordCallback(req.ReferenceID, req.CustomerID, req.Amount, req.Status, method)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Payment callback: ref=%s status=%s", req.ReferenceID, req.Status)

	utils.RespondJSON(c, http.StatusOK, "Payment recorded", payment)
}

// GetPayments -> staff listing
func (pc *PaymentController) GetPayments(c *gin.Context) {
	var payments []models.Payment
	if err := pc.DB.Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}
