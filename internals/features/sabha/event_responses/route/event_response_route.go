package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	respCtrl "sabhaku_backend/internals/features/sabha/event_responses/controller"
)

func EventResponseRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := respCtrl.NewEventResponseController(db)

	group := r.Group("/event-responses")
	group.Post("/", ctrl.SubmitEventResponse)
}
