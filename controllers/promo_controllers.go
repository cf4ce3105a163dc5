package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
)

type PromoController struct {
	DB *gorm.DB
}

func NewPromoController(db *gorm.DB) *PromoController {
	return &PromoController{DB: db}
}

// ValidatePromo -> public check before checkout
func (pc *PromoController) ValidatePromo(c *gin.Context) {
	code := c.Param("code")

	var promo models.PromoCode
	if err := pc.DB.Where("code = ?", code).First(&promo).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("promo code not found"))
		return
	}

	if !promo.Usable(time.Now()) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("promo code is inactive or expired"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Promo code valid", gin.H{
		"code":             promo.Code,
		"discount_percent": promo.DiscountPercent,
		"expires_at":       promo.ExpiresAt,
	})
}

// GetAllPromos -> admin listing
func (pc *PromoController) GetAllPromos(c *gin.Context) {
	var promos []models.PromoCode
	if err := pc.DB.Find(&promos).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of promo codes", promos)
}

// CreatePromo
func (pc *PromoController) CreatePromo(c *gin.Context) {
	type reqBody struct {
		Code            string    `json:"code" binding:"required"`
		DiscountPercent float64   `json:"discount_percent" binding:"required"`
		ExpiresAt       time.Time `json:"expires_at" binding:"required"`
		Active          *bool     `json:"active"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.DiscountPercent <= 0 || req.DiscountPercent > 100 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("discount percent must be between 0 and 100"))
		return
	}

	promo := models.PromoCode{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		ExpiresAt:       req.ExpiresAt,
		Active:          true,
	}
	if req.Active != nil {
		promo.Active = *req.Active
	}

	if err := pc.DB.Create(&promo).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Promo code created", promo)
}

// UpdatePromo -> toggle active flag or change expiry
func (pc *PromoController) UpdatePromo(c *gin.Context) {
	idStr := c.Param("promo_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid promo id"))
		return
	}

	var promo models.PromoCode
	if err := pc.DB.First(&promo, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("promo code not found"))
		return
	}

	type updateReq struct {
		DiscountPercent *float64   `json:"discount_percent"`
		ExpiresAt       *time.Time `json:"expires_at"`
		Active          *bool      `json:"active"`
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.DiscountPercent != nil {
		promo.DiscountPercent = *req.DiscountPercent
	}
	if req.ExpiresAt != nil {
		promo.ExpiresAt = *req.ExpiresAt
	}
	if req.Active != nil {
		promo.Active = *req.Active
	}

	if err := pc.DB.Save(&promo).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Promo code updated", promo)
}

// DeletePromo
func (pc *PromoController) DeletePromo(c *gin.Context) {
	idStr := c.Param("promo_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid promo id"))
		return
	}

	if err := pc.DB.Delete(&models.PromoCode{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Promo code deleted", gin.H{"promo_id": id})
}
