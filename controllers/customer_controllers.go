package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/services"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers -> staff listing with points and tier
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// CreateCustomer -> register a loyalty account
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	type reqBody struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Tier:  models.TierBronze,
	}

	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New customer registered: %s (ID=%d)", customer.Email, customer.ID)

	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// GetCustomerByID -> profile with order history
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer id"))
		return
	}

	var customer models.Customer
	if err := cc.DB.Preload("Orders").Preload("Orders.OrderItems").First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrCustomerNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// GetLoyaltyStatus -> points, tier and the distance to the next one
func (cc *CustomerController) GetLoyaltyStatus(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer id"))
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrCustomerNotFound)
		return
	}

	tier := services.ComputeTier(customer.LoyaltyPoints)

	var pointsToNext int64
	switch tier {
	case models.TierBronze:
		pointsToNext = services.TierSilverThreshold - customer.LoyaltyPoints
	case models.TierSilver:
		pointsToNext = services.TierGoldThreshold - customer.LoyaltyPoints
	}

	utils.RespondJSON(c, http.StatusOK, "Loyalty status", gin.H{
		"customer_id":    customer.ID,
		"loyalty_points": customer.LoyaltyPoints,
		"tier":           tier,
		"tier_discount":  services.TierDiscountPercent(tier),
		"points_to_next": pointsToNext,
	})
}

// UpdateCustomer -> staff edit contact details
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid customer id"))
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrCustomerNotFound)
		return
	}

	type updateReq struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}

	if err := cc.DB.Save(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}
