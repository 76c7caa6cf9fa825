package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sabhaku_backend/internals/features/sabha/events/dto"
	"sabhaku_backend/internals/features/sabha/events/model"
	helper "sabhaku_backend/internals/helpers"
)

type EventController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, validate: validator.New()}
}

// GetOrCreateEvent returns the event matching (sabha, trimmed name, date)
// exactly, creating it when the combination has not been seen yet.
func GetOrCreateEvent(db *gorm.DB, sabhaID uuid.UUID, name string, date time.Time) (*model.EventModel, error) {
	name = strings.TrimSpace(name)

	var found model.EventModel
	err := db.Where("event_sabha_id = ? AND event_name = ? AND event_date = ?", sabhaID, name, date).
		Take(&found).Error
	if err == nil {
		return &found, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := model.EventModel{
		EventSabhaID: sabhaID,
		EventName:    name,
		EventDate:    date,
	}
	if err := db.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

/* ===================== CREATE (find-or-create) ===================== */
// POST /events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date := helper.ParseDateLenient(req.Date)
	if date == nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid event date")
	}

	event, err := GetOrCreateEvent(ctrl.DB, req.SabhaID, req.Name, *date)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating event")
	}

	return helper.JsonCreated(c, "Event ready", dto.NewEventResponse(*event, nil))
}

/* ===================== LIST ===================== */
// GET /events?sabha_id=
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.EventModel{})
	if v := strings.TrimSpace(c.Query("sabha_id")); v != "" {
		sabhaID, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid sabha id")
		}
		q = q.Where("event_sabha_id = ?", sabhaID)
	}

	var events []model.EventModel
	if err := q.Order("event_date DESC").Find(&events).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching events")
	}

	sabhas, err := ctrl.sabhaSummaries(events)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching events")
	}

	out := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		var summary *dto.SabhaSummary
		if s, ok := sabhas[ev.EventSabhaID]; ok {
			sCopy := s
			summary = &sCopy
		}
		out = append(out, dto.NewEventResponse(ev, summary))
	}
	return helper.JsonList(c, "Events fetched successfully", out, len(out), nil)
}

/* ===================== DETAIL ===================== */
// GET /events/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.Where("event_id = ?", id).Take(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching event")
	}

	return helper.JsonOK(c, "Event fetched successfully", dto.NewEventResponse(event, nil))
}

type sabhaRow struct {
	SabhaID   uuid.UUID `gorm:"column:sabha_id"`
	SabhaNo   string    `gorm:"column:sabha_no"`
	SabhaType string    `gorm:"column:sabha_type"`
	SabhaDate time.Time `gorm:"column:sabha_date"`
}

func (ctrl *EventController) sabhaSummaries(events []model.EventModel) (map[uuid.UUID]dto.SabhaSummary, error) {
	out := make(map[uuid.UUID]dto.SabhaSummary)
	if len(events) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.EventSabhaID)
	}

	var rows []sabhaRow
	if err := ctrl.DB.Table("sabhas").
		Select("sabha_id, sabha_no, sabha_type, sabha_date").
		Where("sabha_id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.SabhaID] = dto.SabhaSummary{
			SabhaID:   row.SabhaID,
			SabhaNo:   row.SabhaNo,
			SabhaType: row.SabhaType,
			SabhaDate: row.SabhaDate,
		}
	}
	return out, nil
}
