package mastodon

import "encoding/json"

// Relationship describes how the authenticated user relates to another account.
type Relationship struct {
	ID             string `json:"id"`
	Following      bool   `json:"following"`
	FollowedBy     bool   `json:"followed_by"`
	Blocking       bool   `json:"blocking"`
	Muting         bool   `json:"muting"`
	Requested      bool   `json:"requested"`
	DomainBlocking bool   `json:"domain_blocking"`

	ShowingReblogs      Optional[bool]   `json:"showing_reblogs" flag:"relationship-showing-reblogs"`
	MutingNotifications Optional[bool]   `json:"muting_notifications" flag:"relationship-showing-reblogs"`
	Endorsed            Optional[bool]   `json:"endorsed" flag:"relationship-endorsed"`
	BlockedBy           Optional[bool]   `json:"blocked_by" flag:"relationship-blocked-by"`
	Note                Optional[string] `json:"note" flag:"relationship-note"`
	Notifying           Optional[bool]   `json:"notifying" flag:"relationship-notifying"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the relationship through the capability-aware decoder.
func (r *Relationship) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, r)
}
