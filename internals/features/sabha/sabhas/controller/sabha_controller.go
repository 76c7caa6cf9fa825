package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sabhaku_backend/internals/features/sabha/sabhas/dto"
	"sabhaku_backend/internals/features/sabha/sabhas/model"
	"sabhaku_backend/internals/features/sabha/sabhas/service"
	counter "sabhaku_backend/internals/features/utils/counter/service"
	helper "sabhaku_backend/internals/helpers"
)

type SabhaController struct {
	DB       *gorm.DB
	Service  *service.SabhaService
	validate *validator.Validate
}

func NewSabhaController(db *gorm.DB) *SabhaController {
	return &SabhaController{
		DB:       db,
		Service:  service.NewSabhaService(counter.NewCounterService(db)),
		validate: validator.New(),
	}
}

/* ===================== CREATE ===================== */
// POST /sabhas
func (ctrl *SabhaController) CreateSabha(c *fiber.Ctx) error {
	var req dto.CreateSabhaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.prepare(m); err != nil {
		return err
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating sabha")
	}

	return ctrl.respondExpanded(c, fiber.StatusCreated, "Sabha created successfully", m)
}

/* ===================== LIST ===================== */
// GET /sabhas
func (ctrl *SabhaController) ListSabhas(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SabhaModel{})
	if v := strings.TrimSpace(c.Query("sabha_type")); v != "" {
		q = q.Where("sabha_type = ?", v)
	}
	if v := strings.TrimSpace(c.Query("area")); v != "" {
		q = q.Where("sabha_area = ?", v)
	}
	if v := strings.TrimSpace(c.Query("is_cancelled")); v != "" {
		q = q.Where("sabha_is_cancelled = ?", v == "true")
	}
	if t := helper.ParseDateLenient(c.Query("start_date")); t != nil {
		q = q.Where("sabha_date >= ?", *t)
	}
	if t := helper.ParseDateLenient(c.Query("end_date")); t != nil {
		q = q.Where("sabha_date <= ?", *t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching sabhas")
	}

	var sabhas []model.SabhaModel
	if err := q.Order("sabha_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&sabhas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching sabhas")
	}

	memberIDs := make([]uuid.UUID, 0)
	for _, sb := range sabhas {
		for _, att := range sb.Attendance {
			memberIDs = append(memberIDs, att.MemberID)
		}
	}
	summaries, err := ctrl.memberSummaries(memberIDs)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error expanding attendance")
	}

	out := make([]dto.SabhaResponse, 0, len(sabhas))
	for _, sb := range sabhas {
		out = append(out, dto.NewSabhaResponse(sb, summaries))
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Sabhas fetched successfully", out, len(out), pagination)
}

/* ===================== DETAIL ===================== */
// GET /sabhas/:id
func (ctrl *SabhaController) GetSabhaByID(c *fiber.Ctx) error {
	m, err := ctrl.loadSabha(c.Params("id"))
	if err != nil {
		return err
	}
	return ctrl.respondExpanded(c, fiber.StatusOK, "Sabha fetched successfully", m)
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /sabhas/:id
func (ctrl *SabhaController) UpdateSabha(c *fiber.Ctx) error {
	m, err := ctrl.loadSabha(c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.UpdateSabhaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Apply(m)
	if err := ctrl.prepare(m); err != nil {
		return err
	}
	if err := ctrl.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating sabha")
	}

	return ctrl.respondExpanded(c, fiber.StatusOK, "Sabha updated successfully", m)
}

/* ===================== DELETE ===================== */
// DELETE /sabhas/:id
// Dependent events and responses are intentionally left in place.
func (ctrl *SabhaController) DeleteSabha(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid sabha id")
	}

	res := ctrl.DB.Where("sabha_id = ?", id).Delete(&model.SabhaModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting sabha")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sabha not found")
	}

	return helper.JsonOK(c, "Sabha deleted successfully", nil)
}

/* ===================== ATTENDANCE (single) ===================== */
// POST /sabhas/:id/attendance
func (ctrl *SabhaController) MarkAttendance(c *fiber.Ctx) error {
	m, err := ctrl.loadSabha(c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	exists, err := ctrl.memberExists(req.MemberID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error resolving member")
	}
	if !exists {
		return fiber.NewError(fiber.StatusNotFound, "Member not found")
	}

	service.UpsertMark(&m.Attendance, req.MemberID, req.IsPresent, time.Now())
	if err := ctrl.prepare(m); err != nil {
		return err
	}
	if err := ctrl.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error marking attendance")
	}

	return ctrl.respondExpanded(c, fiber.StatusOK, "Attendance marked successfully", m)
}

/* ===================== ATTENDANCE (bulk) ===================== */
// POST /sabhas/:id/attendance/bulk
// Best-effort batch: items whose member does not resolve are skipped.
func (ctrl *SabhaController) MarkBulkAttendance(c *fiber.Ctx) error {
	m, err := ctrl.loadSabha(c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.MarkBulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ids := make([]uuid.UUID, 0, len(req.AttendanceList))
	items := make([]service.BulkMark, 0, len(req.AttendanceList))
	for _, item := range req.AttendanceList {
		ids = append(ids, item.MemberID)
		items = append(items, service.BulkMark{MemberID: item.MemberID, IsPresent: item.IsPresent})
	}

	known, err := ctrl.knownMemberIDs(ids)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error resolving members")
	}

	applied := service.ApplyBulk(&m.Attendance, items, func(id uuid.UUID) bool {
		_, ok := known[id]
		return ok
	}, time.Now())

	if err := ctrl.prepare(m); err != nil {
		return err
	}
	if err := ctrl.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error marking bulk attendance")
	}

	msg := fmt.Sprintf("Bulk attendance marked successfully (%d of %d applied)", applied, len(items))
	return ctrl.respondExpanded(c, fiber.StatusOK, msg, m)
}

/* ===================== REPORT ===================== */
// GET /sabhas/:id/report
func (ctrl *SabhaController) GetSabhaReport(c *fiber.Ctx) error {
	m, err := ctrl.loadSabha(c.Params("id"))
	if err != nil {
		return err
	}

	summaries, err := ctrl.attendanceSummaries(m)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error generating attendance report")
	}
	return helper.JsonOK(c, "Attendance report generated", dto.NewSabhaReportResponse(*m, summaries))
}

/* ===================== MEMBER HISTORY ===================== */
// GET /members/:member_id/attendance-history
func (ctrl *SabhaController) GetMemberHistory(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid member id")
	}

	summaries, err := ctrl.memberSummaries([]uuid.UUID{memberID})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching member")
	}
	summary, ok := summaries[memberID]
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Member not found")
	}

	var sabhas []model.SabhaModel
	needle := fmt.Sprintf(`[{"member_id":%q}]`, memberID.String())
	if err := ctrl.DB.
		Where("sabha_attendance @> ?::jsonb", needle).
		Order("sabha_date DESC").
		Find(&sabhas).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching attendance history")
	}

	history, stats := service.BuildMemberHistory(sabhas, memberID)
	return helper.JsonOK(c, "Attendance history fetched successfully", fiber.Map{
		"member":     summary,
		"statistics": stats,
		"history":    history,
	})
}

/* ===================== internals ===================== */

// prepare runs the persistence invariants and maps their failures to statuses.
func (ctrl *SabhaController) prepare(m *model.SabhaModel) error {
	if err := ctrl.Service.Prepare(m); err != nil {
		if errors.Is(err, service.ErrEndBeforeStart) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return nil
}

func (ctrl *SabhaController) loadSabha(param string) (*model.SabhaModel, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid sabha id")
	}
	var m model.SabhaModel
	if err := ctrl.DB.Where("sabha_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sabha not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error fetching sabha")
	}
	return &m, nil
}

func (ctrl *SabhaController) respondExpanded(c *fiber.Ctx, code int, msg string, m *model.SabhaModel) error {
	summaries, err := ctrl.attendanceSummaries(m)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error expanding attendance")
	}
	return helper.JsonWithCode(c, code, msg, dto.NewSabhaResponse(*m, summaries))
}

func (ctrl *SabhaController) attendanceSummaries(m *model.SabhaModel) (map[uuid.UUID]dto.MemberSummary, error) {
	ids := make([]uuid.UUID, 0, len(m.Attendance))
	for _, att := range m.Attendance {
		ids = append(ids, att.MemberID)
	}
	return ctrl.memberSummaries(ids)
}

type memberRow struct {
	MemberID       uuid.UUID `gorm:"column:member_id"`
	FirstName      string    `gorm:"column:member_first_name"`
	LastName       string    `gorm:"column:member_last_name"`
	SmkNo          string    `gorm:"column:member_smk_no"`
	HajriNumber    string    `gorm:"column:member_hajri_number"`
	PersonalMobile string    `gorm:"column:member_personal_mobile"`
	MobileNumber   string    `gorm:"column:member_mobile_number"`
}

func (ctrl *SabhaController) memberSummaries(ids []uuid.UUID) (map[uuid.UUID]dto.MemberSummary, error) {
	out := make(map[uuid.UUID]dto.MemberSummary)
	if len(ids) == 0 {
		return out, nil
	}

	var rows []memberRow
	if err := ctrl.DB.Table("members").
		Select("member_id, member_first_name, member_last_name, member_smk_no, member_hajri_number, member_personal_mobile, member_mobile_number").
		Where("member_id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		mobile := row.PersonalMobile
		if mobile == "" {
			mobile = row.MobileNumber
		}
		out[row.MemberID] = dto.MemberSummary{
			MemberID:    row.MemberID,
			Name:        strings.TrimSpace(row.FirstName + " " + row.LastName),
			SmkNo:       row.SmkNo,
			HajriNumber: row.HajriNumber,
			Mobile:      mobile,
		}
	}
	return out, nil
}

func (ctrl *SabhaController) memberExists(id uuid.UUID) (bool, error) {
	var n int64
	if err := ctrl.DB.Table("members").Where("member_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (ctrl *SabhaController) knownMemberIDs(ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	out := make(map[uuid.UUID]struct{})
	if len(ids) == 0 {
		return out, nil
	}
	var found []uuid.UUID
	if err := ctrl.DB.Table("members").
		Where("member_id IN ?", ids).
		Pluck("member_id", &found).Error; err != nil {
		return nil, err
	}
	for _, id := range found {
		out[id] = struct{}{}
	}
	return out, nil
}
