package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/controllers"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/services"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	payments := services.NewPaymentService(db)
	notifier := services.NewQueueNotifier(db, nil)
	activity := services.NewActivityLogger(db, nil)
	orders := services.NewOrderService(db, payments, notifier, activity)

	orderCtrl := controllers.NewOrderController(db, orders)
	paymentCtrl := controllers.NewPaymentController(db, payments)

	router := gin.Default()
	router.POST("/orders", orderCtrl.FinalizeOrder)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	router.POST("/orders/quote", orderCtrl.QuoteDiscount)
	router.POST("/payments/callback", paymentCtrl.HandlePaymentCallback)
	return router
}

func seedTestCustomer(t *testing.T, db *gorm.DB, points int64) models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:          "Order Tester",
		Email:         "orders@example.com",
		LoyaltyPoints: points,
		Tier:          services.ComputeTier(points),
	}
	assert.NoError(t, db.Create(&customer).Error)
	return customer
}

func TestFinalizeOrderViaHTTP(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)
	customer := seedTestCustomer(t, db, 0)

	// Processor reports the charge first.
	w := postJSON(t, router, "/payments/callback", map[string]interface{}{
		"reference_id": "PAY-HTTP-1",
		"customer_id":  customer.ID,
		"amount":       100.0,
		"status":       "success",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"name": "Pasta Carbonara", "quantity": 2, "price": 35.0},
			{"name": "Tiramisu", "quantity": 2, "price": 15.0},
		},
		"total":         100.0,
		"payment_proof": "PAY-HTTP-1",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1000), data["points_earned"])
	assert.Equal(t, models.TierSilver, data["user_tier"])

	order := data["order"].(map[string]interface{})
	assert.Equal(t, models.OrderStatusConfirmed, order["status"])
}

func TestFinalizeOrderEmptyItems(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)
	customer := seedTestCustomer(t, db, 0)

	w := postJSON(t, router, "/orders", map[string]interface{}{
		"customer_id":   customer.ID,
		"items":         []map[string]interface{}{},
		"total":         50.0,
		"payment_proof": "PAY-NONE",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Rejected before anything was persisted.
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestFinalizeOrderUnverifiedPayment(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)
	customer := seedTestCustomer(t, db, 0)

	w := postJSON(t, router, "/orders", map[string]interface{}{
		"customer_id": customer.ID,
		"items": []map[string]interface{}{
			{"name": "Pasta", "quantity": 1, "price": 20.0},
		},
		"total":         20.0,
		"payment_proof": "PAY-MISSING",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuoteDiscountBestOf(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)
	customer := seedTestCustomer(t, db, 2000) // Gold

	assert.NoError(t, db.Create(&models.PromoCode{
		Code:            "WEAK15",
		DiscountPercent: 15,
		ExpiresAt:       time.Now().Add(24 * time.Hour),
		Active:          true,
	}).Error)

	// Gold tier (20%) beats the 15% promo; the two never stack.
	w := postJSON(t, router, "/orders/quote", map[string]interface{}{
		"subtotal":    100.0,
		"customer_id": customer.ID,
		"promo_code":  "WEAK15",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.TierGold, data["tier"])
	assert.InDelta(t, 20.0, data["discount_amount"].(float64), 0.001)
	assert.InDelta(t, 80.0, data["final_total"].(float64), 0.001)
}

func TestQuoteDiscountExpiredPromo(t *testing.T) {
	db := setupTestDB(t)
	router := setupOrderRouter(db)

	assert.NoError(t, db.Create(&models.PromoCode{
		Code:            "EXPIRED",
		DiscountPercent: 30,
		ExpiresAt:       time.Now().Add(-time.Hour),
		Active:          true,
	}).Error)

	w := postJSON(t, router, "/orders/quote", map[string]interface{}{
		"subtotal":   100.0,
		"promo_code": "EXPIRED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
