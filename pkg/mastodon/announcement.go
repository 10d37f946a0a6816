package mastodon

import (
	"encoding/json"
	"time"
)

// Announcement is a message from the instance administrators shown to
// every local user.
type Announcement struct {
	ID          string              `json:"id"`
	Content     string              `json:"content"`
	StartsAt    Optional[time.Time] `json:"starts_at"`
	EndsAt      Optional[time.Time] `json:"ends_at"`
	AllDay      bool                `json:"all_day"`
	PublishedAt time.Time           `json:"published_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Read        Optional[bool]      `json:"read"`

	Mentions  []AnnouncementAccount  `json:"mentions"`
	Tags      []Tag                  `json:"tags"`
	Emojis    []Emoji                `json:"emojis"`
	Reactions []AnnouncementReaction `json:"reactions"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the announcement through the capability-aware decoder.
func (a *Announcement) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, a)
}

// AnnouncementAccount is the slimmed account shape used in announcement
// mentions.
type AnnouncementAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	URL      string `json:"url"`
	Acct     string `json:"acct"`
}

// AnnouncementReaction is an emoji reaction tally on an announcement.
type AnnouncementReaction struct {
	Name      string           `json:"name"`
	Count     int64            `json:"count"`
	Me        Optional[bool]   `json:"me"`
	URL       Optional[string] `json:"url"`
	StaticURL Optional[string] `json:"static_url"`
}
