package mastodon

import (
	"encoding/json"
	"time"
)

// Filter is a keyword filter applied server-side to timelines.
type Filter struct {
	ID           string              `json:"id"`
	Phrase       string              `json:"phrase"`
	Context      []FilterContext     `json:"context"`
	ExpiresAt    Optional[time.Time] `json:"expires_at"`
	Irreversible bool                `json:"irreversible"`
	WholeWord    bool                `json:"whole_word"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the filter through the capability-aware decoder.
func (f *Filter) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, f)
}
