package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventCtrl "sabhaku_backend/internals/features/sabha/events/controller"
)

func EventRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eventCtrl.NewEventController(db)

	group := r.Group("/events")
	group.Post("/", ctrl.CreateEvent)
	group.Get("/", ctrl.GetEvents)
	group.Get("/:id", ctrl.GetEventByID)
}
