package mastodon

import (
	"encoding/json"
	"time"
)

// Notification tells the user something happened to them or their statuses.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	Account   Account          `json:"account"`

	// Status is set for mention, reblog, favourite, poll and status
	// notifications and absent for follows.
	Status *Status `json:"status"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the notification through the capability-aware decoder.
func (n *Notification) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, n)
}
