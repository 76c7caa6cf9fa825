package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sevaCtrl "sabhaku_backend/internals/features/sabha/sevas/controller"
)

func SevaRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sevaCtrl.NewSevaController(db)

	group := r.Group("/sevas")
	group.Post("/", ctrl.CreateSeva)
	group.Get("/", ctrl.GetAllSevas)
	group.Get("/:id", ctrl.GetSevaByID)
	group.Patch("/:id", ctrl.UpdateSeva)
	group.Delete("/:id", ctrl.DeleteSeva)
}
