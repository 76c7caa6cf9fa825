package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberCtrl "sabhaku_backend/internals/features/members/members/controller"
)

func MemberRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := memberCtrl.NewMemberController(db)

	group := r.Group("/members")
	group.Post("/", ctrl.CreateMember)
	group.Post("/import", ctrl.ImportMembersFromJSON)
	group.Get("/", ctrl.GetAllMembers)
	group.Get("/:id", ctrl.GetMemberByID)
	group.Patch("/:id", ctrl.UpdateMember)
	group.Delete("/:id", ctrl.DeleteMember)
}
