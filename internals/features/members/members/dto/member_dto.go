package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sabhaku_backend/internals/features/members/members/model"
	helper "sabhaku_backend/internals/helpers"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateMemberRequest struct {
	Role string `json:"role" form:"role" validate:"required,oneof=KISHOR POSHAK_LEADER SAHSANCHALAK MADADNISH SANCHALAK VAKTA"`

	SmkNo string `json:"smk_no" form:"smk_no" validate:"required"`

	// Auto-minted for kishors when empty.
	HajriNumber string `json:"hajri_number" form:"hajri_number"`

	FirstName  string `json:"first_name"  form:"first_name"`
	MiddleName string `json:"middle_name" form:"middle_name"`
	LastName   string `json:"last_name"   form:"last_name"`

	MobileNumber   string `json:"mobile_number"   form:"mobile_number"`
	PersonalMobile string `json:"personal_mobile" form:"personal_mobile"`
	HomeMobile     string `json:"home_mobile"     form:"home_mobile"`
	FatherMobile   string `json:"father_mobile"   form:"father_mobile"`

	Address          string `json:"address"           form:"address"`
	Pincode          string `json:"pincode"           form:"pincode"`
	NativePlace      string `json:"native_place"      form:"native_place"`
	FatherOccupation string `json:"father_occupation" form:"father_occupation"`

	DateOfBirth string `json:"date_of_birth" form:"date_of_birth"`
	SatsangDay  string `json:"satsang_day"   form:"satsang_day"`
	BloodGroup  string `json:"blood_group"   form:"blood_group"`

	CurrentStandard string `json:"current_standard" form:"current_standard"`
	SchoolName      string `json:"school_name"      form:"school_name"`

	// Accept plain arrays or string-encoded JSON arrays; multipart clients
	// send these as form values which the controller passes through raw.
	Skills    json.RawMessage `json:"skills"     form:"-"`
	Hobbies   json.RawMessage `json:"hobbies"    form:"-"`
	SevaRoles json.RawMessage `json:"seva_roles" form:"-"`

	DoesPooja         string `json:"does_pooja"          form:"does_pooja"          validate:"omitempty,oneof=YES NO SOMETIMES"`
	HasOutsideFriends string `json:"has_outside_friends" form:"has_outside_friends" validate:"omitempty,oneof=YES NO SOMETIMES"`
	SatsangAtHome     string `json:"satsang_at_home"     form:"satsang_at_home"     validate:"omitempty,oneof=YES NO SOMETIMES"`

	BalSabhaName            string `json:"bal_sabha_name"             form:"bal_sabha_name"`
	BalSabhaCoordinatorName string `json:"bal_sabha_coordinator_name" form:"bal_sabha_coordinator_name"`

	Sant1Name string `json:"sant1_name" form:"sant1_name"`
	Sant2Name string `json:"sant2_name" form:"sant2_name"`

	Haribhakta1Name   string `json:"haribhakta1_name"   form:"haribhakta1_name"`
	Haribhakta1Smk    string `json:"haribhakta1_smk"    form:"haribhakta1_smk"`
	Haribhakta1Mobile string `json:"haribhakta1_mobile" form:"haribhakta1_mobile"`
	Haribhakta2Name   string `json:"haribhakta2_name"   form:"haribhakta2_name"`
	Haribhakta2Smk    string `json:"haribhakta2_smk"    form:"haribhakta2_smk"`
	Haribhakta2Mobile string `json:"haribhakta2_mobile" form:"haribhakta2_mobile"`

	SabhaType string `json:"sabha_type" form:"sabha_type"`

	// Empty strings from form clients mean "not set".
	PoshakLeaderID string `json:"poshak_leader_id" form:"poshak_leader_id"`
	FamilyLeaderID string `json:"family_leader_id" form:"family_leader_id"`

	GroupFlags map[string]interface{} `json:"group_flags" form:"-"`

	KishorStatus     string `json:"kishor_status"      form:"kishor_status" validate:"omitempty,oneof=ACTIVE INACTIVE LEFT"`
	SabhaJoiningDate string `json:"sabha_joining_date" form:"sabha_joining_date"`
}

/* =========================================================
 * ROLE VARIANTS
 *
 * The required-field rules are structural: each role maps to a closed
 * variant carrying only its applicable required fields, and the variant is
 * what gets validated — not runtime predicates on the role string.
 * ========================================================= */

type KishorVariant struct {
	FirstName        string `validate:"required"`
	MiddleName       string `validate:"required"`
	LastName         string `validate:"required"`
	PersonalMobile   string `validate:"required"`
	Address          string `validate:"required"`
	DateOfBirth      string `validate:"required"`
	BloodGroup       string `validate:"required"`
	CurrentStandard  string `validate:"required"`
	SchoolName       string `validate:"required"`
	SabhaType        string `validate:"required"`
	KishorStatus     string `validate:"required,oneof=ACTIVE INACTIVE LEFT"`
	SabhaJoiningDate string `validate:"required"`
}

type LeadershipVariant struct {
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	MobileNumber string `validate:"required"`
	Address      string `validate:"required"`
	DateOfBirth  string `validate:"required"`
	SabhaType    string `validate:"required"`
}

type VaktaVariant struct {
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	MobileNumber string `validate:"required"`
}

// RoleVariant builds the validation variant for the request's role.
func (r *CreateMemberRequest) RoleVariant() (interface{}, error) {
	switch r.Role {
	case model.RoleKishor:
		return KishorVariant{
			FirstName:        r.FirstName,
			MiddleName:       r.MiddleName,
			LastName:         r.LastName,
			PersonalMobile:   r.PersonalMobile,
			Address:          r.Address,
			DateOfBirth:      r.DateOfBirth,
			BloodGroup:       r.BloodGroup,
			CurrentStandard:  r.CurrentStandard,
			SchoolName:       r.SchoolName,
			SabhaType:        r.SabhaType,
			KishorStatus:     r.KishorStatus,
			SabhaJoiningDate: r.SabhaJoiningDate,
		}, nil
	case model.RolePoshakLeader, model.RoleSahSanchalak, model.RoleMadadnish, model.RoleSanchalak:
		return LeadershipVariant{
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			MobileNumber: r.MobileNumber,
			Address:      r.Address,
			DateOfBirth:  r.DateOfBirth,
			SabhaType:    r.SabhaType,
		}, nil
	case model.RoleVakta:
		return VaktaVariant{
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			MobileNumber: r.MobileNumber,
		}, nil
	}
	return nil, fmt.Errorf("unknown role %q", r.Role)
}

func (r *CreateMemberRequest) ToModel() *model.MemberModel {
	m := &model.MemberModel{
		Role:                    r.Role,
		SmkNo:                   r.SmkNo,
		HajriNumber:             r.HajriNumber,
		FirstName:               r.FirstName,
		MiddleName:              r.MiddleName,
		LastName:                r.LastName,
		MobileNumber:            r.MobileNumber,
		PersonalMobile:          r.PersonalMobile,
		HomeMobile:              r.HomeMobile,
		FatherMobile:            r.FatherMobile,
		Address:                 r.Address,
		Pincode:                 r.Pincode,
		NativePlace:             r.NativePlace,
		FatherOccupation:        r.FatherOccupation,
		DateOfBirth:             r.DateOfBirth,
		SatsangDay:              r.SatsangDay,
		BloodGroup:              r.BloodGroup,
		CurrentStandard:         r.CurrentStandard,
		SchoolName:              r.SchoolName,
		Skills:                  SafeParseArrayField(r.Skills),
		Hobbies:                 SafeParseArrayField(r.Hobbies),
		SevaRoles:               SafeParseArrayField(r.SevaRoles),
		DoesPooja:               r.DoesPooja,
		HasOutsideFriends:       r.HasOutsideFriends,
		SatsangAtHome:           r.SatsangAtHome,
		BalSabhaName:            r.BalSabhaName,
		BalSabhaCoordinatorName: r.BalSabhaCoordinatorName,
		Sant1Name:               r.Sant1Name,
		Sant2Name:               r.Sant2Name,
		Haribhakta1Name:         r.Haribhakta1Name,
		Haribhakta1Smk:          r.Haribhakta1Smk,
		Haribhakta1Mobile:       r.Haribhakta1Mobile,
		Haribhakta2Name:         r.Haribhakta2Name,
		Haribhakta2Smk:          r.Haribhakta2Smk,
		Haribhakta2Mobile:       r.Haribhakta2Mobile,
		SabhaType:               r.SabhaType,
		KishorStatus:            r.KishorStatus,
		SabhaJoiningDate:        r.SabhaJoiningDate,
	}
	m.PoshakLeaderID = parseOptionalUUID(r.PoshakLeaderID)
	m.FamilyLeaderID = parseOptionalUUID(r.FamilyLeaderID)
	if r.GroupFlags != nil {
		m.GroupFlags = datatypes.JSONMap(r.GroupFlags)
	}
	return m
}

// UpdateMemberRequest is a shallow merge: only supplied fields replace the
// stored ones.
type UpdateMemberRequest struct {
	Role *string `json:"role" form:"role" validate:"omitempty,oneof=KISHOR POSHAK_LEADER SAHSANCHALAK MADADNISH SANCHALAK VAKTA"`

	SmkNo       *string `json:"smk_no"       form:"smk_no"`
	HajriNumber *string `json:"hajri_number" form:"hajri_number"`

	FirstName  *string `json:"first_name"  form:"first_name"`
	MiddleName *string `json:"middle_name" form:"middle_name"`
	LastName   *string `json:"last_name"   form:"last_name"`

	MobileNumber   *string `json:"mobile_number"   form:"mobile_number"`
	PersonalMobile *string `json:"personal_mobile" form:"personal_mobile"`
	HomeMobile     *string `json:"home_mobile"     form:"home_mobile"`
	FatherMobile   *string `json:"father_mobile"   form:"father_mobile"`

	Address          *string `json:"address"           form:"address"`
	Pincode          *string `json:"pincode"           form:"pincode"`
	NativePlace      *string `json:"native_place"      form:"native_place"`
	FatherOccupation *string `json:"father_occupation" form:"father_occupation"`

	DateOfBirth *string `json:"date_of_birth" form:"date_of_birth"`
	SatsangDay  *string `json:"satsang_day"   form:"satsang_day"`
	BloodGroup  *string `json:"blood_group"   form:"blood_group"`

	CurrentStandard *string `json:"current_standard" form:"current_standard"`
	SchoolName      *string `json:"school_name"      form:"school_name"`

	Skills    json.RawMessage `json:"skills"     form:"-"`
	Hobbies   json.RawMessage `json:"hobbies"    form:"-"`
	SevaRoles json.RawMessage `json:"seva_roles" form:"-"`

	DoesPooja         *string `json:"does_pooja"          form:"does_pooja"          validate:"omitempty,oneof=YES NO SOMETIMES ''"`
	HasOutsideFriends *string `json:"has_outside_friends" form:"has_outside_friends" validate:"omitempty,oneof=YES NO SOMETIMES ''"`
	SatsangAtHome     *string `json:"satsang_at_home"     form:"satsang_at_home"     validate:"omitempty,oneof=YES NO SOMETIMES ''"`

	BalSabhaName            *string `json:"bal_sabha_name"             form:"bal_sabha_name"`
	BalSabhaCoordinatorName *string `json:"bal_sabha_coordinator_name" form:"bal_sabha_coordinator_name"`

	Sant1Name *string `json:"sant1_name" form:"sant1_name"`
	Sant2Name *string `json:"sant2_name" form:"sant2_name"`

	Haribhakta1Name   *string `json:"haribhakta1_name"   form:"haribhakta1_name"`
	Haribhakta1Smk    *string `json:"haribhakta1_smk"    form:"haribhakta1_smk"`
	Haribhakta1Mobile *string `json:"haribhakta1_mobile" form:"haribhakta1_mobile"`
	Haribhakta2Name   *string `json:"haribhakta2_name"   form:"haribhakta2_name"`
	Haribhakta2Smk    *string `json:"haribhakta2_smk"    form:"haribhakta2_smk"`
	Haribhakta2Mobile *string `json:"haribhakta2_mobile" form:"haribhakta2_mobile"`

	SabhaType *string `json:"sabha_type" form:"sabha_type"`

	PoshakLeaderID *string `json:"poshak_leader_id" form:"poshak_leader_id"`
	FamilyLeaderID *string `json:"family_leader_id" form:"family_leader_id"`

	GroupFlags map[string]interface{} `json:"group_flags" form:"-"`

	KishorStatus     *string `json:"kishor_status"      form:"kishor_status" validate:"omitempty,oneof=ACTIVE INACTIVE LEFT ''"`
	SabhaJoiningDate *string `json:"sabha_joining_date" form:"sabha_joining_date"`
}

func (r *UpdateMemberRequest) Apply(m *model.MemberModel) {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setStr(&m.Role, r.Role)
	setStr(&m.SmkNo, r.SmkNo)
	setStr(&m.HajriNumber, r.HajriNumber)
	setStr(&m.FirstName, r.FirstName)
	setStr(&m.MiddleName, r.MiddleName)
	setStr(&m.LastName, r.LastName)
	setStr(&m.MobileNumber, r.MobileNumber)
	setStr(&m.PersonalMobile, r.PersonalMobile)
	setStr(&m.HomeMobile, r.HomeMobile)
	setStr(&m.FatherMobile, r.FatherMobile)
	setStr(&m.Address, r.Address)
	setStr(&m.Pincode, r.Pincode)
	setStr(&m.NativePlace, r.NativePlace)
	setStr(&m.FatherOccupation, r.FatherOccupation)
	setStr(&m.DateOfBirth, r.DateOfBirth)
	setStr(&m.SatsangDay, r.SatsangDay)
	setStr(&m.BloodGroup, r.BloodGroup)
	setStr(&m.CurrentStandard, r.CurrentStandard)
	setStr(&m.SchoolName, r.SchoolName)
	setStr(&m.DoesPooja, r.DoesPooja)
	setStr(&m.HasOutsideFriends, r.HasOutsideFriends)
	setStr(&m.SatsangAtHome, r.SatsangAtHome)
	setStr(&m.BalSabhaName, r.BalSabhaName)
	setStr(&m.BalSabhaCoordinatorName, r.BalSabhaCoordinatorName)
	setStr(&m.Sant1Name, r.Sant1Name)
	setStr(&m.Sant2Name, r.Sant2Name)
	setStr(&m.Haribhakta1Name, r.Haribhakta1Name)
	setStr(&m.Haribhakta1Smk, r.Haribhakta1Smk)
	setStr(&m.Haribhakta1Mobile, r.Haribhakta1Mobile)
	setStr(&m.Haribhakta2Name, r.Haribhakta2Name)
	setStr(&m.Haribhakta2Smk, r.Haribhakta2Smk)
	setStr(&m.Haribhakta2Mobile, r.Haribhakta2Mobile)
	setStr(&m.SabhaType, r.SabhaType)
	setStr(&m.KishorStatus, r.KishorStatus)
	setStr(&m.SabhaJoiningDate, r.SabhaJoiningDate)

	if len(r.Skills) > 0 {
		m.Skills = SafeParseArrayField(r.Skills)
	}
	if len(r.Hobbies) > 0 {
		m.Hobbies = SafeParseArrayField(r.Hobbies)
	}
	if len(r.SevaRoles) > 0 {
		m.SevaRoles = SafeParseArrayField(r.SevaRoles)
	}
	if r.PoshakLeaderID != nil {
		m.PoshakLeaderID = parseOptionalUUID(*r.PoshakLeaderID)
	}
	if r.FamilyLeaderID != nil {
		m.FamilyLeaderID = parseOptionalUUID(*r.FamilyLeaderID)
	}
	if r.GroupFlags != nil {
		m.GroupFlags = datatypes.JSONMap(r.GroupFlags)
	}
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type MemberResponse struct {
	model.MemberModel
	Age *int `json:"age,omitempty"`
}

// NewMemberResponse derives the age from the stored date of birth. The age is
// never persisted.
func NewMemberResponse(m model.MemberModel) MemberResponse {
	return MemberResponse{MemberModel: m, Age: deriveAge(m.DateOfBirth, time.Now())}
}

func deriveAge(dateOfBirth string, now time.Time) *int {
	dob := helper.ParseDateLenient(dateOfBirth)
	if dob == nil {
		return nil
	}
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return nil
	}
	return &age
}

/* =========================================================
 * HELPERS
 * ========================================================= */

// SafeParseArrayField accepts a JSON array or a string-encoded JSON array
// (as sent by multipart clients); anything malformed becomes an empty list.
func SafeParseArrayField(raw json.RawMessage) []string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []string{}
	}

	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return []string{}
		}
		trimmed = strings.TrimSpace(inner)
		if trimmed == "" {
			return []string{}
		}
	}

	var out []string
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return []string{}
	}
	return out
}

func parseOptionalUUID(s string) *uuid.UUID {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
