package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventResponseRoute "sabhaku_backend/internals/features/sabha/event_responses/route"
	eventRoute "sabhaku_backend/internals/features/sabha/events/route"
	sabhaRoute "sabhaku_backend/internals/features/sabha/sabhas/route"
	saintRoute "sabhaku_backend/internals/features/sabha/saints/route"
	sevaRoute "sabhaku_backend/internals/features/sabha/sevas/route"
	memberRoute "sabhaku_backend/internals/features/members/members/route"
	authRoute "sabhaku_backend/internals/features/users/auth/route"
	authmw "sabhaku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	public := app.Group("/api")
	authRoute.AuthRoutes(public, db)
	eventRoute.EventRoutes(public, db)
	eventResponseRoute.EventResponseRoutes(public, db)

	// ===================== PRIVATE (admin) =====================
	log.Println("[INFO] Setting up PRIVATE routes...")
	private := app.Group("/api/a", authmw.AuthMiddleware())
	sabhaRoute.SabhaRoutes(private, db)
	memberRoute.MemberRoutes(private, db)
	saintRoute.SaintRoutes(private, db)
	sevaRoute.SevaRoutes(private, db)
}
