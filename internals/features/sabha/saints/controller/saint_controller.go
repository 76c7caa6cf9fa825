package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sabhaku_backend/internals/features/sabha/saints/model"
	helper "sabhaku_backend/internals/helpers"
)

type SaintController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewSaintController(db *gorm.DB) *SaintController {
	return &SaintController{DB: db, validate: validator.New()}
}

type saintRequest struct {
	Tag      string `json:"tag"  validate:"required"`
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

// POST /saints
func (ctrl *SaintController) CreateSaint(c *fiber.Ctx) error {
	var req saintRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.SaintModel{
		Tag:      strings.TrimSpace(req.Tag),
		Name:     strings.TrimSpace(req.Name),
		PhotoURL: req.PhotoURL,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating saint")
	}
	return helper.JsonCreated(c, "Saint created successfully", m)
}

// GET /saints
func (ctrl *SaintController) GetAllSaints(c *fiber.Ctx) error {
	var saints []model.SaintModel
	if err := ctrl.DB.Order("saint_tag ASC, saint_name ASC").Find(&saints).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching saints")
	}
	return helper.JsonList(c, "Saints fetched successfully", saints, len(saints), nil)
}

// GET /saints/:id
func (ctrl *SaintController) GetSaintByID(c *fiber.Ctx) error {
	m, err := ctrl.load(c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Saint fetched successfully", m)
}

// PATCH /saints/:id
func (ctrl *SaintController) UpdateSaint(c *fiber.Ctx) error {
	m, err := ctrl.load(c.Params("id"))
	if err != nil {
		return err
	}

	var req struct {
		Tag      *string `json:"tag"`
		Name     *string `json:"name"`
		PhotoURL *string `json:"photo_url" validate:"omitempty,url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if req.Tag != nil {
		m.Tag = strings.TrimSpace(*req.Tag)
	}
	if req.Name != nil {
		m.Name = strings.TrimSpace(*req.Name)
	}
	if req.PhotoURL != nil {
		m.PhotoURL = *req.PhotoURL
	}

	if err := ctrl.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating saint")
	}
	return helper.JsonOK(c, "Saint updated successfully", m)
}

// DELETE /saints/:id
func (ctrl *SaintController) DeleteSaint(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid saint id")
	}
	res := ctrl.DB.Where("saint_id = ?", id).Delete(&model.SaintModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting saint")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Saint not found")
	}
	return helper.JsonOK(c, "Saint deleted", nil)
}

func (ctrl *SaintController) load(param string) (*model.SaintModel, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid saint id")
	}
	var m model.SaintModel
	if err := ctrl.DB.Where("saint_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Saint not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error fetching saint")
	}
	return &m, nil
}
