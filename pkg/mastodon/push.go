package mastodon

import "encoding/json"

// PushSubscription is a registered Web Push endpoint.
type PushSubscription struct {
	ID        string      `json:"id"`
	Endpoint  string      `json:"endpoint"`
	ServerKey string      `json:"server_key"`
	Alerts    *PushAlerts `json:"alerts"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the subscription through the capability-aware decoder.
func (p *PushSubscription) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, p)
}

// PushAlerts selects which notification types are delivered over Web Push.
type PushAlerts struct {
	Follow    Optional[bool] `json:"follow"`
	Favourite Optional[bool] `json:"favourite"`
	Reblog    Optional[bool] `json:"reblog"`
	Mention   Optional[bool] `json:"mention"`
	Poll      Optional[bool] `json:"poll"`
}

// PushKeys carries the client's encryption material for a subscription.
type PushKeys struct {
	P256DH string `json:"p256dh"`
	Auth   string `json:"auth"`
}
