package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "sabhaku_backend/internals/features/users/auth/controller"
	"sabhaku_backend/internals/middlewares"
	authmw "sabhaku_backend/internals/middlewares/auth"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	group := r.Group("/auth")
	group.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	group.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	group.Get("/profile", authmw.AuthMiddleware(), ctrl.GetProfile)
}
