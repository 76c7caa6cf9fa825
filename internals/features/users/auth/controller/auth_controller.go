package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sabhaku_backend/internals/configs"
	"sabhaku_backend/internals/features/users/auth/model"
	helper "sabhaku_backend/internals/helpers"
	authmw "sabhaku_backend/internals/middlewares/auth"
)

const tokenTTL = 30 * 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, validate: validator.New()}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=6"`
}

/* ===================== REGISTER ===================== */
// POST /auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := ctrl.DB.Model(&model.AdminModel{}).Where("admin_username = ?", req.Username).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error registering admin")
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusConflict, "Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error registering admin")
	}

	admin := model.AdminModel{Username: req.Username, PasswordHash: string(hash)}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error registering admin")
	}

	token, err := generateToken(admin.AdminID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error issuing token")
	}

	return helper.JsonCreated(c, "Admin registered successfully", fiber.Map{
		"id":       admin.AdminID,
		"username": admin.Username,
		"token":    token,
	})
}

/* ===================== LOGIN ===================== */
// POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide username and password")
	}

	var admin model.AdminModel
	if err := ctrl.DB.Where("admin_username = ?", req.Username).Take(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error logging in")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, err := generateToken(admin.AdminID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error issuing token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"id":       admin.AdminID,
		"username": admin.Username,
		"token":    token,
	})
}

/* ===================== PROFILE ===================== */
// GET /auth/profile (authenticated)
func (ctrl *AuthController) GetProfile(c *fiber.Ctx) error {
	adminID, err := authmw.AdminIDFromLocals(c)
	if err != nil {
		return err
	}

	var admin model.AdminModel
	if err := ctrl.DB.Where("admin_id = ?", adminID).Take(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Admin not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching profile")
	}

	return helper.JsonOK(c, "Profile fetched successfully", admin)
}

func generateToken(adminID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   adminID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
