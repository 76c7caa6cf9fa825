package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sabhaku_backend/internals/features/sabha/sevas/model"
	helper "sabhaku_backend/internals/helpers"
)

type SevaController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewSevaController(db *gorm.DB) *SevaController {
	return &SevaController{DB: db, validate: validator.New()}
}

type sevaRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// POST /sevas
func (ctrl *SevaController) CreateSeva(c *fiber.Ctx) error {
	var req sevaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.SevaModel{Name: strings.TrimSpace(req.Name), Description: req.Description}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating seva")
	}
	return helper.JsonCreated(c, "Seva created successfully", m)
}

// GET /sevas
func (ctrl *SevaController) GetAllSevas(c *fiber.Ctx) error {
	var sevas []model.SevaModel
	if err := ctrl.DB.Find(&sevas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching sevas")
	}
	return helper.JsonList(c, "Sevas fetched successfully", sevas, len(sevas), nil)
}

// GET /sevas/:id
func (ctrl *SevaController) GetSevaByID(c *fiber.Ctx) error {
	m, err := ctrl.load(c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Seva fetched successfully", m)
}

// PATCH /sevas/:id
func (ctrl *SevaController) UpdateSeva(c *fiber.Ctx) error {
	m, err := ctrl.load(c.Params("id"))
	if err != nil {
		return err
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if req.Name != nil {
		m.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		m.Description = *req.Description
	}

	if err := ctrl.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating seva")
	}
	return helper.JsonOK(c, "Seva updated successfully", m)
}

// DELETE /sevas/:id
func (ctrl *SevaController) DeleteSeva(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid seva id")
	}
	res := ctrl.DB.Where("seva_id = ?", id).Delete(&model.SevaModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting seva")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Seva not found")
	}
	return helper.JsonOK(c, "Seva deleted", nil)
}

func (ctrl *SevaController) load(param string) (*model.SevaModel, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid seva id")
	}
	var m model.SevaModel
	if err := ctrl.DB.Where("seva_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Seva not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error fetching seva")
	}
	return &m, nil
}
