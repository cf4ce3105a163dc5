package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/controllers"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
)

func setupPromoRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	promoCtrl := controllers.NewPromoController(db)

	router := gin.Default()
	router.GET("/promos/:code/validate", promoCtrl.ValidatePromo)
	router.POST("/promos", promoCtrl.CreatePromo)
	return router
}

func TestValidatePromo(t *testing.T) {
	db := setupTestDB(t)
	router := setupPromoRouter(db)

	assert.NoError(t, db.Create(&models.PromoCode{
		Code:            "SUMMER20",
		DiscountPercent: 20,
		ExpiresAt:       time.Now().Add(48 * time.Hour),
		Active:          true,
	}).Error)
	assert.NoError(t, db.Create(&models.PromoCode{
		Code:            "DISABLED",
		DiscountPercent: 10,
		ExpiresAt:       time.Now().Add(48 * time.Hour),
		Active:          false,
	}).Error)

	req, _ := http.NewRequest("GET", "/promos/SUMMER20/validate", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(20), data["discount_percent"])

	req, _ = http.NewRequest("GET", "/promos/DISABLED/validate", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req, _ = http.NewRequest("GET", "/promos/NOSUCH/validate", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePromoValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupPromoRouter(db)

	w := postJSON(t, router, "/promos", map[string]interface{}{
		"code":             "TOOMUCH",
		"discount_percent": 150,
		"expires_at":       time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/promos", map[string]interface{}{
		"code":             "VALID10",
		"discount_percent": 10,
		"expires_at":       time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}
