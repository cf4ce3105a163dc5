package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/events"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/services"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
)

type ReservationController struct {
	DB           *gorm.DB
	Reservations *services.ReservationService
	Availability *services.AvailabilityService
}

func NewReservationController(db *gorm.DB, reservations *services.ReservationService, availability *services.AvailabilityService) *ReservationController {
	return &ReservationController{
		DB:           db,
		Reservations: reservations,
		Availability: availability,
	}
}

// CheckAvailability -> remaining capacity for a date+time slot
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	timeSlot := c.Query("time")
	if date == "" || timeSlot == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date and time are required"))
		return
	}

	var excludeID *uint
	if raw := c.Query("exclude_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid exclude_id"))
			return
		}
		u := uint(id)
		excludeID = &u
	}

	slot, err := rc.Availability.CheckSlot(date, timeSlot, excludeID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Slot availability", slot)
}

// CreateReservation -> book a table, returns the confirmation code
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	type reqBody struct {
		Name       string `json:"name" binding:"required"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Date       string `json:"date" binding:"required"`
		Time       string `json:"time" binding:"required"`
		Guests     int    `json:"guests"`
		Notes      string `json:"notes"`
		CustomerID *uint  `json:"customer_id"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Reservations.Create(services.ReservationRequest{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Date:       req.Date,
		Time:       req.Time,
		Guests:     req.Guests,
		Notes:      req.Notes,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		var capErr *services.CapacityError
		switch {
		case errors.Is(err, services.ErrPastDate),
			errors.Is(err, services.ErrInvalidPartySize),
			errors.Is(err, services.ErrInvalidDate):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.As(err, &capErr):
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	events.BroadcastReservationUpdate(*reservation)

	utils.RespondJSON(c, http.StatusCreated, "Reservation confirmed", gin.H{
		"reservation":       reservation,
		"confirmation_code": reservation.ConfirmationCode,
	})
}

// CancelReservation -> customer cancels by confirmation code
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	code := c.Param("code")

	reservation, err := rc.Reservations.Cancel(code)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastReservationUpdate(*reservation)

	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", reservation)
}

// GetAllReservations -> staff listing, optionally filtered by date
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	query := rc.DB.Model(&models.Reservation{})
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := query.Order("date, time").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// UpdateReservation -> staff set status and/or assign a table
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	idStr := c.Param("reservation_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid reservation id"))
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrReservationNotFound)
		return
	}

	type updateReq struct {
		Status  *string `json:"status"`
		TableID *uint   `json:"table_id"`
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Status != nil {
		switch *req.Status {
		case models.ReservationStatusPending,
			models.ReservationStatusConfirmed,
			models.ReservationStatusCancelled,
			models.ReservationStatusCompleted:
			reservation.Status = *req.Status
		default:
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown reservation status"))
			return
		}
	}
	if req.TableID != nil {
		var table models.Table
		if err := rc.DB.First(&table, *req.TableID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
			return
		}
		reservation.TableID = req.TableID
	}

	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastReservationUpdate(reservation)

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}
