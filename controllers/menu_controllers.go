package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OsandaMadugalle/savoria-bistro-sub000/models"
	"github.com/OsandaMadugalle/savoria-bistro-sub000/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenus -> full catalogue
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu
	if err := mc.DB.Preload("Category").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenuByCategory -> catalogue filtered by category id
func (mc *MenuController) GetMenuByCategory(c *gin.Context) {
	categoryID := c.Query("category_id")
	if categoryID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category_id is required"))
		return
	}

	var menus []models.Menu
	if err := mc.DB.Preload("Category").Where("category_id = ?", categoryID).Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menus by category", menus)
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var menu models.Menu
	if err := mc.DB.Preload("Category").First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// CreateMenu (staff/admin)
func (mc *MenuController) CreateMenu(c *gin.Context) {
	type reqBody struct {
		CategoryID  uint    `json:"category_id" binding:"required"`
		Name        string  `json:"name" binding:"required"`
		Price       float64 `json:"price" binding:"required"`
		Description string  `json:"description"`
		ImageUrl    *string `json:"image_url"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.MenuCategory
	if err := mc.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	menu := models.Menu{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Price:       req.Price,
		Available:   true,
		Description: req.Description,
		ImageUrl:    req.ImageUrl,
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu (staff/admin)
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type updateReq struct {
		Name        *string  `json:"name"`
		Price       *float64 `json:"price"`
		Available   *bool    `json:"available"`
		Description *string  `json:"description"`
		ImageUrl    *string  `json:"image_url"`
	}
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		menu.Name = *req.Name
	}
	if req.Price != nil {
		menu.Price = *req.Price
	}
	if req.Available != nil {
		menu.Available = *req.Available
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.ImageUrl != nil {
		menu.ImageUrl = req.ImageUrl
	}

	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// DeleteMenu (staff/admin)
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	idStr := c.Param("menu_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu id"))
		return
	}

	if err := mc.DB.Delete(&models.Menu{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": id})
}
