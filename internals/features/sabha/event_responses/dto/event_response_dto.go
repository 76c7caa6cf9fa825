package dto

import (
	"github.com/google/uuid"
)

// SubmitEventResponseRequest carries one of two responder identifications:
// a member id, or is_new with at least a name or mobile. Answers arrive as a
// raw JSON value and are normalized to a fixed-length boolean vector.
type SubmitEventResponseRequest struct {
	EventID  *uuid.UUID  `json:"event_id"`
	MemberID *uuid.UUID  `json:"member_id"`
	IsNew    bool        `json:"is_new"`
	Name     string      `json:"name"`
	Mobile   string      `json:"mobile"`
	Answers  interface{} `json:"answers"`
}
