package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/controllers"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/middlewares"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userCtrl := controllers.NewUserController(db)

	router := gin.Default()
	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)

	auth := router.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/profile", userCtrl.GetProfile)
	return router
}

func TestRegisterLoginProfile(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	w := postJSON(t, router, "/register", map[string]interface{}{
		"name":     "Sam Staff",
		"email":    "sam@savoria.test",
		"password": "secret123",
		"role":     "staff",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/login", map[string]interface{}{
		"email":    "sam@savoria.test",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var loginResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	data := loginResp["data"].(map[string]interface{})
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	assert.Equal(t, "staff", data["user_role"])

	req, _ := http.NewRequest("GET", "/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var profileResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &profileResp))
	profile := profileResp["data"].(map[string]interface{})
	assert.Equal(t, "sam@savoria.test", profile["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	w := postJSON(t, router, "/register", map[string]interface{}{
		"name":     "Sam Staff",
		"email":    "sam2@savoria.test",
		"password": "secret123",
		"role":     "staff",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/login", map[string]interface{}{
		"email":    "sam2@savoria.test",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	w := postJSON(t, router, "/register", map[string]interface{}{
		"name":     "Sam",
		"email":    "sam3@savoria.test",
		"password": "secret123",
		"role":     "chef",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileWithoutToken(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	req, _ := http.NewRequest("GET", "/admin/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
