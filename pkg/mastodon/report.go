package mastodon

import "encoding/json"

// Report is a complaint filed against an account.
type Report struct {
	ID          string `json:"id"`
	ActionTaken bool   `json:"action_taken"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the report through the capability-aware decoder.
func (r *Report) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, r)
}
