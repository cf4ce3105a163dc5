package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/events"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/services"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
)

type AdminController struct {
	DB       *gorm.DB
	Settings *services.SettingsService
}

func NewAdminController(db *gorm.DB, settings *services.SettingsService) *AdminController {
	return &AdminController{DB: db, Settings: settings}
}

// GetDashboardStats -> today's orders, revenue, reservations, tiers
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	startOfDay, _ := time.ParseInLocation("2006-01-02", today, time.Local)

	var orderCount int64
	var revenue float64
	ac.DB.Model(&models.Order{}).Where("created_at >= ?", startOfDay).Count(&orderCount)
	ac.DB.Model(&models.Order{}).Where("created_at >= ?", startOfDay).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue)

	var reservationCount int64
	ac.DB.Model(&models.Reservation{}).
		Where("date = ? AND status IN ?", today,
			[]string{models.ReservationStatusPending, models.ReservationStatusConfirmed}).
		Count(&reservationCount)

	tierCounts := map[string]int64{}
	for _, tier := range []string{models.TierBronze, models.TierSilver, models.TierGold} {
		var n int64
		ac.DB.Model(&models.Customer{}).Where("tier = ?", tier).Count(&n)
		tierCounts[tier] = n
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"orders_today":       orderCount,
		"revenue_today":      revenue,
		"reservations_today": reservationCount,
		"customers_by_tier":  tierCounts,
	})
}

// GetSettings
func (ac *AdminController) GetSettings(c *gin.Context) {
	setting, err := ac.Settings.Get()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings", setting)
}

// UpdateSettings -> edit capacity/deposit, invalidates the cache
func (ac *AdminController) UpdateSettings(c *gin.Context) {
	setting, err := ac.Settings.Get()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type updateReq struct {
		MaxTableCapacity        *int     `json:"max_table_capacity"`
		DepositAmount           *float64 `json:"deposit_amount"`
		CancellationWindowHours *int     `json:"cancellation_window_hours"`
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated := *setting
	if req.MaxTableCapacity != nil {
		updated.MaxTableCapacity = *req.MaxTableCapacity
	}
	if req.DepositAmount != nil {
		updated.DepositAmount = *req.DepositAmount
	}
	if req.CancellationWindowHours != nil {
		updated.CancellationWindowHours = *req.CancellationWindowHours
	}

	if err := ac.Settings.Update(&updated); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastStaffNotification("Restaurant settings updated")

	utils.RespondJSON(c, http.StatusOK, "Settings updated", updated)
}

// GetActivityLogs -> newest first
func (ac *AdminController) GetActivityLogs(c *gin.Context) {
	var logs []models.ActivityLog
	if err := ac.DB.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Activity logs", logs)
}

// GetNotifications -> stored notification copies
func (ac *AdminController) GetNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := ac.DB.Order("created_at DESC").Limit(200).Find(&notifications).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notifications", notifications)
}
