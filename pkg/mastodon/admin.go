package mastodon

import (
	"encoding/json"
	"time"
)

// AdminAccount is the moderation view of an account, available to staff.
type AdminAccount struct {
	ID            string           `json:"id"`
	Username      string           `json:"username"`
	Domain        Optional[string] `json:"domain"`
	CreatedAt     time.Time        `json:"created_at"`
	Email         Optional[string] `json:"email"`
	IP            Optional[string] `json:"ip"`
	Role          Optional[string] `json:"role"`
	Confirmed     bool             `json:"confirmed"`
	Suspended     bool             `json:"suspended"`
	Silenced      bool             `json:"silenced"`
	Disabled      bool             `json:"disabled"`
	Approved      bool             `json:"approved"`
	Locale        Optional[string] `json:"locale"`
	InviteRequest Optional[string] `json:"invite_request"`
	Account       Account          `json:"account"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the admin account through the capability-aware decoder.
func (a *AdminAccount) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, a)
}

// AdminReport is the moderation view of a user report.
type AdminReport struct {
	ID                   string        `json:"id"`
	ActionTaken          bool          `json:"action_taken"`
	Comment              string        `json:"comment"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
	Account              *AdminAccount `json:"account"`
	TargetAccount        *AdminAccount `json:"target_account"`
	AssignedAccount      *AdminAccount `json:"assigned_account"`
	ActionTakenByAccount *AdminAccount `json:"action_taken_by_account"`
	Statuses             []Status      `json:"statuses"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the admin report through the capability-aware decoder.
func (r *AdminReport) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, r)
}
