package mastodon

import "encoding/json"

// Conversation is a direct-message thread grouped by participants.
type Conversation struct {
	ID         string    `json:"id"`
	Accounts   []Account `json:"accounts"`
	Unread     bool      `json:"unread"`
	LastStatus *Status   `json:"last_status"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the conversation through the capability-aware decoder.
func (c *Conversation) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, c)
}
