package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sabhaCtrl "sabhaku_backend/internals/features/sabha/sabhas/controller"
)

func SabhaRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sabhaCtrl.NewSabhaController(db)

	group := r.Group("/sabhas")
	group.Post("/", ctrl.CreateSabha)
	group.Get("/", ctrl.ListSabhas)
	group.Get("/:id", ctrl.GetSabhaByID)
	group.Patch("/:id", ctrl.UpdateSabha)
	group.Delete("/:id", ctrl.DeleteSabha)

	group.Post("/:id/attendance", ctrl.MarkAttendance)
	group.Post("/:id/attendance/bulk", ctrl.MarkBulkAttendance)
	group.Get("/:id/report", ctrl.GetSabhaReport)

	r.Get("/members/:member_id/attendance-history", ctrl.GetMemberHistory)
}
