package mastodon

import "encoding/json"

// Instance describes the server itself.
type Instance struct {
	URI         string `json:"uri"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Version     string `json:"version"`

	URLs           *InstanceURLs    `json:"urls"`
	Stats          *InstanceStats   `json:"stats"`
	Thumbnail      Optional[string] `json:"thumbnail"`
	ContactAccount *Account         `json:"contact_account"`

	Languages        []string       `json:"languages" flag:"instance-languages"`
	Registrations    Optional[bool] `json:"registrations" flag:"instance-registrations"`
	ApprovalRequired Optional[bool] `json:"approval_required" flag:"instance-approval-required"`
	InvitesEnabled   Optional[bool] `json:"invites_enabled" flag:"instance-invites-enabled"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the instance through the capability-aware decoder.
func (i *Instance) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, i)
}

// InstanceURLs holds the alternate endpoints the server advertises.
type InstanceURLs struct {
	StreamingAPI string `json:"streaming_api"`
}

// InstanceStats holds the public counters of the server.
type InstanceStats struct {
	UserCount   int64 `json:"user_count"`
	StatusCount int64 `json:"status_count"`
	DomainCount int64 `json:"domain_count"`
}

// Activity is one week of instance usage, counts encoded as strings.
type Activity struct {
	Week          string `json:"week"`
	Statuses      string `json:"statuses"`
	Logins        string `json:"logins"`
	Registrations string `json:"registrations"`
}
