package database

import (
	"log"

	eventResponseModel "sabhaku_backend/internals/features/sabha/event_responses/model"
	eventModel "sabhaku_backend/internals/features/sabha/events/model"
	sabhaModel "sabhaku_backend/internals/features/sabha/sabhas/model"
	saintModel "sabhaku_backend/internals/features/sabha/saints/model"
	sevaModel "sabhaku_backend/internals/features/sabha/sevas/model"
	memberModel "sabhaku_backend/internals/features/members/members/model"
	counterModel "sabhaku_backend/internals/features/utils/counter/model"
	adminModel "sabhaku_backend/internals/features/users/auth/model"
)

// MigrateDB keeps the schema aligned with the registered models.
func MigrateDB() {
	err := DB.AutoMigrate(
		&counterModel.CounterModel{},
		&adminModel.AdminModel{},
		&memberModel.MemberModel{},
		&sabhaModel.SabhaModel{},
		&eventModel.EventModel{},
		&eventResponseModel.EventResponseModel{},
		&saintModel.SaintModel{},
		&sevaModel.SevaModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] auto-migrate failed: %v", err)
	}
	log.Println("[INFO] DB migrated.")
}
