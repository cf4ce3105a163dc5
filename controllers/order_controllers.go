package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/events"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/services"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
)

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB, orders *services.OrderService) *OrderController {
	return &OrderController{DB: db, Orders: orders}
}

// FinalizeOrder -> persist a paid order, award points, return tier
func (oc *OrderController) FinalizeOrder(c *gin.Context) {
	type reqBody struct {
		CustomerID   uint                      `json:"customer_id"`
		Items        []services.OrderItemInput `json:"items"`
		Total        float64                   `json:"total"`
		PaymentProof string                    `json:"payment_proof"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := oc.Orders.Finalize(req.CustomerID, req.Items, req.Total, req.PaymentProof)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCustomer),
			errors.Is(err, services.ErrEmptyItems),
			errors.Is(err, services.ErrInvalidTotal),
			errors.Is(err, services.ErrMissingPaymentProof):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, services.ErrCustomerNotFound),
			errors.Is(err, services.ErrPaymentNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrPaymentNotVerified):
			utils.RespondError(c, http.StatusPaymentRequired, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	events.BroadcastOrderUpdate(result.Order)
	events.BroadcastLoyaltyUpdate(result.Order.CustomerID, result.Order.Customer.LoyaltyPoints, result.UserTier)

	utils.RespondJSON(c, http.StatusCreated, "Order confirmed", result)
}

// GetAllOrders -> list orders with items
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("OrderItems")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> one order with items
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	idStr := c.Param("order_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("OrderItems").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrOrderNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> staff/rider move the order forward
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	idStr := c.Param("order_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrInvalidTransition):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	events.BroadcastOrderUpdate(*order)

	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// AssignRider -> attach a rider to a delivery order
func (oc *OrderController) AssignRider(c *gin.Context) {
	idStr := c.Param("order_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		RiderID uint `json:"rider_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var rider models.User
	if err := oc.DB.First(&rider, req.RiderID).Error; err != nil || rider.Role != models.RoleRider {
		utils.RespondError(c, http.StatusNotFound, errors.New("rider not found"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrOrderNotFound)
		return
	}

	order.RiderID = &req.RiderID
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastOrderUpdate(order)

	utils.RespondJSON(c, http.StatusOK, "Rider assigned", order)
}

// QuoteDiscount -> preview tier/promo discount for a cart subtotal
func (oc *OrderController) QuoteDiscount(c *gin.Context) {
	type reqBody struct {
		Subtotal   float64 `json:"subtotal"`
		CustomerID uint    `json:"customer_id"`
		PromoCode  string  `json:"promo_code"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tier := models.TierBronze
	if req.CustomerID != 0 {
		var customer models.Customer
		if err := oc.DB.First(&customer, req.CustomerID).Error; err == nil {
			tier = customer.Tier
		}
	}

	var promoPercent *float64
	if req.PromoCode != "" {
		var promo models.PromoCode
		if err := oc.DB.Where("code = ?", req.PromoCode).First(&promo).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("promo code not found"))
			return
		}
		if !promo.Usable(time.Now()) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("promo code is inactive or expired"))
			return
		}
		promoPercent = &promo.DiscountPercent
	}

	result := services.ResolveDiscount(req.Subtotal, tier, promoPercent)
	utils.RespondJSON(c, http.StatusOK, "Discount quote", gin.H{
		"tier":            tier,
		"discount_amount": result.DiscountAmount,
		"final_total":     result.FinalTotal,
	})
}
