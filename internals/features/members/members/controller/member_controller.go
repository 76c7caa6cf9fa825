package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sabhaku_backend/internals/features/members/members/dto"
	"sabhaku_backend/internals/features/members/members/model"
	"sabhaku_backend/internals/features/members/members/service"
	counter "sabhaku_backend/internals/features/utils/counter/service"
	helper "sabhaku_backend/internals/helpers"
	"sabhaku_backend/internals/helpers/oss"
)

const photoFolder = "members/photos"

type MemberController struct {
	DB       *gorm.DB
	Service  *service.MemberService
	validate *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{
		DB:       db,
		Service:  service.NewMemberService(counter.NewCounterService(db)),
		validate: validator.New(),
	}
}

/* ===================== CREATE ===================== */
// POST /members  (JSON or multipart with a "photo" file)
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		req.Skills = json.RawMessage(c.FormValue("skills"))
		req.Hobbies = json.RawMessage(c.FormValue("hobbies"))
		req.SevaRoles = json.RawMessage(c.FormValue("seva_roles"))
	}

	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	variant, err := req.RoleVariant()
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := ctrl.validate.Struct(variant); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()

	if m.Role == model.RoleKishor && m.HajriNumber == "" {
		hajri, err := ctrl.Service.NextHajriNumber()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error generating hajri number")
		}
		m.HajriNumber = hajri
	}

	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		url, key, err := oss.UploadImageWebP(fh, photoFolder)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error uploading photo")
		}
		m.PhotoURL = url
		m.PhotoObjectKey = key
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating member")
	}

	return helper.JsonCreated(c, "Member created successfully", dto.NewMemberResponse(*m))
}

/* ===================== LIST ===================== */
// GET /members
func (ctrl *MemberController) GetAllMembers(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.MemberModel{})
	if v := strings.TrimSpace(c.Query("role")); v != "" {
		q = q.Where("member_role = ?", v)
	}

	var members []model.MemberModel
	if err := q.Order("member_created_at DESC").Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching members")
	}

	out := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, dto.NewMemberResponse(m))
	}
	return helper.JsonList(c, "Members fetched successfully", out, len(out), nil)
}

/* ===================== DETAIL ===================== */
// GET /members/:id
func (ctrl *MemberController) GetMemberByID(c *fiber.Ctx) error {
	m, err := ctrl.loadMember(c.Params("id"))
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Member fetched successfully", dto.NewMemberResponse(*m))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /members/:id
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	m, err := ctrl.loadMember(c.Params("id"))
	if err != nil {
		return err
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		req.Skills = json.RawMessage(c.FormValue("skills"))
		req.Hobbies = json.RawMessage(c.FormValue("hobbies"))
		req.SevaRoles = json.RawMessage(c.FormValue("seva_roles"))
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Replacing the photo removes the previous object.
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		url, key, err := oss.UploadImageWebP(fh, photoFolder)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error uploading photo")
		}
		if m.PhotoObjectKey != "" {
			if err := oss.DeleteObject(m.PhotoObjectKey); err != nil {
				log.Printf("[WARN] delete old member photo %s: %v", m.PhotoObjectKey, err)
			}
		}
		m.PhotoURL = url
		m.PhotoObjectKey = key
	}

	req.Apply(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error updating member")
	}

	return helper.JsonOK(c, "Member updated successfully", dto.NewMemberResponse(*m))
}

/* ===================== DELETE ===================== */
// DELETE /members/:id
func (ctrl *MemberController) DeleteMember(c *fiber.Ctx) error {
	m, err := ctrl.loadMember(c.Params("id"))
	if err != nil {
		return err
	}

	if m.PhotoObjectKey != "" {
		if err := oss.DeleteObject(m.PhotoObjectKey); err != nil {
			log.Printf("[WARN] delete member photo %s: %v", m.PhotoObjectKey, err)
		}
	}

	if err := ctrl.DB.Where("member_id = ?", m.MemberID).Delete(&model.MemberModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting member")
	}
	return helper.JsonOK(c, "Member deleted successfully", nil)
}

/* ===================== BULK IMPORT ===================== */
// POST /members/import
// Best-effort batch: rows that fail validation or insertion are skipped.
func (ctrl *MemberController) ImportMembersFromJSON(c *fiber.Ctx) error {
	var rows []dto.CreateMemberRequest
	if err := json.Unmarshal(c.Body(), &rows); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body must be a JSON array of members")
	}

	imported := make([]dto.MemberResponse, 0, len(rows))
	skipped := 0
	for i := range rows {
		req := rows[i]
		if err := ctrl.validate.Struct(req); err != nil {
			skipped++
			continue
		}
		variant, err := req.RoleVariant()
		if err != nil {
			skipped++
			continue
		}
		if err := ctrl.validate.Struct(variant); err != nil {
			skipped++
			continue
		}

		m := req.ToModel()
		if m.Role == model.RoleKishor && m.HajriNumber == "" {
			hajri, err := ctrl.Service.NextHajriNumber()
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Error generating hajri number")
			}
			m.HajriNumber = hajri
		}
		if err := ctrl.DB.Create(m).Error; err != nil {
			log.Printf("[WARN] import member row %d: %v", i, err)
			skipped++
			continue
		}
		imported = append(imported, dto.NewMemberResponse(*m))
	}

	msg := fmt.Sprintf("Members imported successfully (%d imported, %d skipped)", len(imported), skipped)
	return helper.JsonList(c, msg, imported, len(imported), nil)
}

/* ===================== internals ===================== */

func (ctrl *MemberController) loadMember(param string) (*model.MemberModel, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid member id")
	}
	var m model.MemberModel
	if err := ctrl.DB.Where("member_id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Member not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Error fetching member")
	}
	return &m, nil
}
