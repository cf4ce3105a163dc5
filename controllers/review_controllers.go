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

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

// SubmitReview -> one review per delivered order; flips FeedbackGiven
func (rc *ReviewController) SubmitReview(c *gin.Context) {
	type reqBody struct {
		CustomerID uint   `json:"customer_id" binding:"required"`
		OrderID    uint   `json:"order_id" binding:"required"`
		Rating     int    `json:"rating" binding:"required"`
		Comment    string `json:"comment"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("rating must be between 1 and 5"))
		return
	}

	var order models.Order
	if err := rc.DB.First(&order, req.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrOrderNotFound)
		return
	}
	if order.CustomerID != req.CustomerID {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}
	if order.FeedbackGiven {
		utils.RespondError(c, http.StatusConflict, errors.New("feedback already submitted for this order"))
		return
	}

	review := models.Review{
		CustomerID: req.CustomerID,
		OrderID:    req.OrderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			UpdateColumn("feedback_given", true).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Review submitted", review)
}

// GetAllReviews -> staff listing
func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := rc.DB.Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reviews", reviews)
}
