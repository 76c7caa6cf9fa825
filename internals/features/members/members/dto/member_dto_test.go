package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sabhaku_backend/internals/features/members/members/model"
)

func fullKishorRequest() CreateMemberRequest {
	return CreateMemberRequest{
		Role:             model.RoleKishor,
		SmkNo:            "SMK-100",
		FirstName:        "Dev",
		MiddleName:       "Kumar",
		LastName:         "Patel",
		PersonalMobile:   "9000000001",
		Address:          "12, Sarjan Society",
		DateOfBirth:      "2010-06-15",
		BloodGroup:       "B+",
		CurrentStandard:  "10",
		SchoolName:       "City High School",
		SabhaType:        "Teen assembly",
		KishorStatus:     "ACTIVE",
		SabhaJoiningDate: "2024-01-01",
	}
}

func TestRoleVariantKishor(t *testing.T) {
	validate := validator.New()

	req := fullKishorRequest()
	variant, err := req.RoleVariant()
	require.NoError(t, err)
	assert.NoError(t, validate.Struct(variant))

	// Dropping a kishor-required field fails validation.
	req.SchoolName = ""
	variant, err = req.RoleVariant()
	require.NoError(t, err)
	assert.Error(t, validate.Struct(variant))
}

func TestRoleVariantLeadership(t *testing.T) {
	validate := validator.New()

	req := CreateMemberRequest{
		Role:         model.RoleSanchalak,
		SmkNo:        "SMK-200",
		FirstName:    "Ramesh",
		LastName:     "Shah",
		MobileNumber: "9000000002",
		Address:      "4, Rivanta Residency",
		DateOfBirth:  "1985-03-02",
		SabhaType:    "Teen assembly",
	}
	variant, err := req.RoleVariant()
	require.NoError(t, err)
	require.IsType(t, LeadershipVariant{}, variant)
	assert.NoError(t, validate.Struct(variant))

	// Leadership roles do not need kishor-only fields like school name.
	req.MobileNumber = ""
	variant, err = req.RoleVariant()
	require.NoError(t, err)
	assert.Error(t, validate.Struct(variant))
}

func TestRoleVariantVakta(t *testing.T) {
	validate := validator.New()

	req := CreateMemberRequest{
		Role:         model.RoleVakta,
		SmkNo:        "SMK-300",
		FirstName:    "Hari",
		LastName:     "Joshi",
		MobileNumber: "9000000003",
	}
	variant, err := req.RoleVariant()
	require.NoError(t, err)
	require.IsType(t, VaktaVariant{}, variant)
	assert.NoError(t, validate.Struct(variant))
}

func TestRoleVariantUnknownRole(t *testing.T) {
	req := CreateMemberRequest{Role: "SOMETHING_ELSE"}
	_, err := req.RoleVariant()
	assert.Error(t, err)
}

func TestSafeParseArrayField(t *testing.T) {
	cases := []struct {
		name string
		raw  json.RawMessage
		want []string
	}{
		{"plain array", json.RawMessage(`["tabla","singing"]`), []string{"tabla", "singing"}},
		{"string-encoded array", json.RawMessage(`"[\"tabla\",\"singing\"]"`), []string{"tabla", "singing"}},
		{"empty input", nil, []string{}},
		{"null", json.RawMessage(`null`), []string{}},
		{"empty string", json.RawMessage(`""`), []string{}},
		{"malformed", json.RawMessage(`[`), []string{}},
		{"not an array", json.RawMessage(`{"a":1}`), []string{}},
		{"string of garbage", json.RawMessage(`"not an array"`), []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SafeParseArrayField(tc.raw))
		})
	}
}

func TestCreateMemberRequestToModel(t *testing.T) {
	leaderID := uuid.New()

	req := fullKishorRequest()
	req.Skills = json.RawMessage(`["tabla"]`)
	req.PoshakLeaderID = leaderID.String()
	req.FamilyLeaderID = "  "
	req.GroupFlags = map[string]interface{}{"group_a": true}

	m := req.ToModel()
	assert.Equal(t, model.RoleKishor, m.Role)
	assert.Equal(t, []string{"tabla"}, []string(m.Skills))
	require.NotNil(t, m.PoshakLeaderID)
	assert.Equal(t, leaderID, *m.PoshakLeaderID)
	assert.Nil(t, m.FamilyLeaderID, "blank id means unset")
	assert.Equal(t, true, m.GroupFlags["group_a"])
}

func TestUpdateMemberRequestApply(t *testing.T) {
	m := &model.MemberModel{
		Role:      model.RoleKishor,
		SmkNo:     "SMK-100",
		FirstName: "Dev",
		LastName:  "Patel",
		Address:   "Old address",
	}

	address := "New address"
	req := UpdateMemberRequest{
		Address: &address,
		Skills:  json.RawMessage(`["harmonium"]`),
	}
	req.Apply(m)

	assert.Equal(t, "New address", m.Address)
	assert.Equal(t, []string{"harmonium"}, []string(m.Skills))
	// Untouched fields survive.
	assert.Equal(t, "Dev", m.FirstName)
	assert.Equal(t, "SMK-100", m.SmkNo)
}

func TestDeriveAge(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	age := deriveAge("2010-06-15", now)
	require.NotNil(t, age)
	assert.Equal(t, 16, *age)

	// Birthday later this year: not yet counted.
	age = deriveAge("2010-12-25", now)
	require.NotNil(t, age)
	assert.Equal(t, 15, *age)

	assert.Nil(t, deriveAge("", now))
	assert.Nil(t, deriveAge("garbage", now))
	assert.Nil(t, deriveAge("2030-01-01", now), "future birth dates have no age")
}
