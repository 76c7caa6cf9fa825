package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	saintCtrl "sabhaku_backend/internals/features/sabha/saints/controller"
)

func SaintRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := saintCtrl.NewSaintController(db)

	group := r.Group("/saints")
	group.Post("/", ctrl.CreateSaint)
	group.Get("/", ctrl.GetAllSaints)
	group.Get("/:id", ctrl.GetSaintByID)
	group.Patch("/:id", ctrl.UpdateSaint)
	group.Delete("/:id", ctrl.DeleteSaint)
}
