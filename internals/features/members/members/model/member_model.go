package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Member roles form a closed set; each role has its own required-field
// variant (see dto.RoleVariant).
const (
	RoleKishor       = "KISHOR"
	RolePoshakLeader = "POSHAK_LEADER"
	RoleSahSanchalak = "SAHSANCHALAK"
	RoleMadadnish    = "MADADNISH"
	RoleSanchalak    = "SANCHALAK"
	RoleVakta        = "VAKTA"
)

func KnownRole(role string) bool {
	switch role {
	case RoleKishor, RolePoshakLeader, RoleSahSanchalak, RoleMadadnish, RoleSanchalak, RoleVakta:
		return true
	}
	return false
}

type MemberModel struct {
	MemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`

	Role string `gorm:"not null;index;column:member_role" json:"member_role"`

	PhotoURL       string `gorm:"column:member_photo_url"        json:"member_photo_url,omitempty"`
	PhotoObjectKey string `gorm:"column:member_photo_object_key" json:"member_photo_object_key,omitempty"`

	SmkNo string `gorm:"not null;column:member_smk_no" json:"member_smk_no"`

	// Role-scoped badge number, minted from the hajri counter for kishors.
	HajriNumber string `gorm:"index;column:member_hajri_number" json:"member_hajri_number,omitempty"`

	FirstName  string `gorm:"column:member_first_name"  json:"member_first_name,omitempty"`
	MiddleName string `gorm:"column:member_middle_name" json:"member_middle_name,omitempty"`
	LastName   string `gorm:"column:member_last_name"   json:"member_last_name,omitempty"`

	MobileNumber   string `gorm:"column:member_mobile_number"   json:"member_mobile_number,omitempty"`
	PersonalMobile string `gorm:"column:member_personal_mobile" json:"member_personal_mobile,omitempty"`
	HomeMobile     string `gorm:"column:member_home_mobile"     json:"member_home_mobile,omitempty"`
	FatherMobile   string `gorm:"column:member_father_mobile"   json:"member_father_mobile,omitempty"`

	Address          string `gorm:"column:member_address"           json:"member_address,omitempty"`
	Pincode          string `gorm:"column:member_pincode"           json:"member_pincode,omitempty"`
	NativePlace      string `gorm:"column:member_native_place"      json:"member_native_place,omitempty"`
	FatherOccupation string `gorm:"column:member_father_occupation" json:"member_father_occupation,omitempty"`

	// Kept as the client-supplied string; age is derived in the response DTO.
	DateOfBirth string `gorm:"column:member_date_of_birth" json:"member_date_of_birth,omitempty"`
	SatsangDay  string `gorm:"column:member_satsang_day"   json:"member_satsang_day,omitempty"`
	BloodGroup  string `gorm:"column:member_blood_group"   json:"member_blood_group,omitempty"`

	CurrentStandard string `gorm:"column:member_current_standard" json:"member_current_standard,omitempty"`
	SchoolName      string `gorm:"column:member_school_name"      json:"member_school_name,omitempty"`

	Skills    pq.StringArray `gorm:"type:text[];column:member_skills"     json:"member_skills,omitempty"`
	Hobbies   pq.StringArray `gorm:"type:text[];column:member_hobbies"    json:"member_hobbies,omitempty"`
	SevaRoles pq.StringArray `gorm:"type:text[];column:member_seva_roles" json:"member_seva_roles,omitempty"`

	DoesPooja         string `gorm:"column:member_does_pooja"          json:"member_does_pooja,omitempty"`
	HasOutsideFriends string `gorm:"column:member_has_outside_friends" json:"member_has_outside_friends,omitempty"`
	SatsangAtHome     string `gorm:"column:member_satsang_at_home"     json:"member_satsang_at_home,omitempty"`

	BalSabhaName            string `gorm:"column:member_bal_sabha_name"             json:"member_bal_sabha_name,omitempty"`
	BalSabhaCoordinatorName string `gorm:"column:member_bal_sabha_coordinator_name" json:"member_bal_sabha_coordinator_name,omitempty"`

	Sant1Name string `gorm:"column:member_sant1_name" json:"member_sant1_name,omitempty"`
	Sant2Name string `gorm:"column:member_sant2_name" json:"member_sant2_name,omitempty"`

	Haribhakta1Name   string `gorm:"column:member_haribhakta1_name"   json:"member_haribhakta1_name,omitempty"`
	Haribhakta1Smk    string `gorm:"column:member_haribhakta1_smk"    json:"member_haribhakta1_smk,omitempty"`
	Haribhakta1Mobile string `gorm:"column:member_haribhakta1_mobile" json:"member_haribhakta1_mobile,omitempty"`
	Haribhakta2Name   string `gorm:"column:member_haribhakta2_name"   json:"member_haribhakta2_name,omitempty"`
	Haribhakta2Smk    string `gorm:"column:member_haribhakta2_smk"    json:"member_haribhakta2_smk,omitempty"`
	Haribhakta2Mobile string `gorm:"column:member_haribhakta2_mobile" json:"member_haribhakta2_mobile,omitempty"`

	SabhaType string `gorm:"column:member_sabha_type" json:"member_sabha_type,omitempty"`

	PoshakLeaderID *uuid.UUID `gorm:"type:uuid;column:member_poshak_leader_id" json:"member_poshak_leader_id,omitempty"`
	FamilyLeaderID *uuid.UUID `gorm:"type:uuid;column:member_family_leader_id" json:"member_family_leader_id,omitempty"`

	// WhatsApp group membership flags.
	GroupFlags datatypes.JSONMap `gorm:"column:member_group_flags" json:"member_group_flags,omitempty"`

	KishorStatus     string `gorm:"column:member_kishor_status"      json:"member_kishor_status,omitempty"`
	SabhaJoiningDate string `gorm:"column:member_sabha_joining_date" json:"member_sabha_joining_date,omitempty"`

	CreatedAt time.Time  `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	UpdatedAt *time.Time `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }
