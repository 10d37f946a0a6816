package mastodon

import (
	"encoding/json"
	"time"
)

// ScheduledStatus is a status queued for future publication.
type ScheduledStatus struct {
	ID               string       `json:"id"`
	ScheduledAt      time.Time    `json:"scheduled_at"`
	Params           StatusParams `json:"params"`
	MediaAttachments []Attachment `json:"media_attachments"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the scheduled status through the capability-aware decoder.
func (s *ScheduledStatus) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, s)
}

// StatusParams echoes back the parameters the status will be posted with.
type StatusParams struct {
	Text        string               `json:"text"`
	InReplyToID Optional[string]     `json:"in_reply_to_id"`
	MediaIDs    []string             `json:"media_ids"`
	Sensitive   Optional[bool]       `json:"sensitive"`
	SpoilerText Optional[string]     `json:"spoiler_text"`
	Visibility  Optional[Visibility] `json:"visibility"`
	ScheduledAt Optional[time.Time]  `json:"scheduled_at"`
}
