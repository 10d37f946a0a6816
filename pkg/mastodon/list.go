package mastodon

import "encoding/json"

// List is a user-curated group of followed accounts.
type List struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	RepliesPolicy Optional[RepliesPolicy] `json:"replies_policy" flag:"list-replies-policy"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the list through the capability-aware decoder.
func (l *List) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, l)
}
