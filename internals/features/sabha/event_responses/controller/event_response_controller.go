package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventModel "sabhaku_backend/internals/features/sabha/events/model"
	"sabhaku_backend/internals/features/sabha/event_responses/dto"
	"sabhaku_backend/internals/features/sabha/event_responses/model"
	"sabhaku_backend/internals/features/sabha/event_responses/service"
	helper "sabhaku_backend/internals/helpers"
)

type EventResponseController struct {
	DB *gorm.DB
}

func NewEventResponseController(db *gorm.DB) *EventResponseController {
	return &EventResponseController{DB: db}
}

/* ===================== SUBMIT ===================== */
// POST /event-responses
// A repeat submission for the same (event, member) overwrites the stored
// answers instead of creating a second response.
func (ctrl *EventResponseController) SubmitEventResponse(c *fiber.Ctx) error {
	var req dto.SubmitEventResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	if req.EventID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "event_id is required")
	}

	var event eventModel.EventModel
	if err := ctrl.DB.Where("event_id = ?", *req.EventID).Take(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching event")
	}

	name := strings.TrimSpace(req.Name)
	mobile := strings.TrimSpace(req.Mobile)

	switch {
	case req.MemberID != nil:
		var n int64
		if err := ctrl.DB.Table("members").Where("member_id = ?", *req.MemberID).Count(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error resolving member")
		}
		if n == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Member not found")
		}
	case req.IsNew:
		if name == "" && mobile == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Provide name or mobile for new responder")
		}
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Provide member_id or set is_new=true")
	}

	answers := service.NormalizeBoolArray(req.Answers, service.AnswerCount)

	// Overwrite in place for a repeat (event, member) submission.
	if req.MemberID != nil {
		var existing model.EventResponseModel
		err := ctrl.DB.
			Where("event_response_event_id = ? AND event_response_member_id = ?", event.EventID, *req.MemberID).
			Take(&existing).Error
		if err == nil {
			existing.Answers = answers
			if err := ctrl.DB.Save(&existing).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Error updating response")
			}
			return helper.JsonOK(c, "Response updated", existing)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Error checking existing response")
		}
	}

	resp := model.EventResponseModel{
		EventResponseEventID: event.EventID,
		EventResponseSabhaID: event.EventSabhaID,
		EventResponseMember:  req.MemberID,
		Answers:              answers,
	}
	if req.MemberID == nil && req.IsNew {
		resp.IsNew = true
		resp.Name = name
		resp.Mobile = mobile
	}

	if err := ctrl.DB.Create(&resp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error saving response")
	}
	return helper.JsonCreated(c, "Response recorded", resp)
}
