package mastodon

import (
	"encoding/json"
	"time"
)

// Account is a user of a Mastodon instance, local or federated.
type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Acct           string    `json:"acct"`
	URL            string    `json:"url"`
	DisplayName    string    `json:"display_name"`
	Note           string    `json:"note"`
	Avatar         string    `json:"avatar"`
	AvatarStatic   string    `json:"avatar_static"`
	Header         string    `json:"header"`
	HeaderStatic   string    `json:"header_static"`
	Locked         bool      `json:"locked"`
	CreatedAt      time.Time `json:"created_at"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	StatusesCount  int64     `json:"statuses_count"`

	// Moved points at the account this one migrated to, when set.
	Moved *Account `json:"moved" flag:"account-moved"`

	Emojis []Emoji         `json:"emojis" flag:"account-profile-fields"`
	Fields []MetadataField `json:"fields" flag:"account-profile-fields"`
	Bot    Optional[bool]  `json:"bot" flag:"account-profile-fields"`
	Source *Source         `json:"source" flag:"account-profile-fields"`

	LastStatusAt Optional[string] `json:"last_status_at" flag:"account-last-status-at"`
	Discoverable Optional[bool]   `json:"discoverable" flag:"account-discoverable"`

	Suspended     Optional[bool]      `json:"suspended" flag:"account-suspension"`
	MuteExpiresAt Optional[time.Time] `json:"mute_expires_at" flag:"account-mute-expires"`

	// Extra holds fields the target generation does not model.
	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the account through the capability-aware decoder.
func (a *Account) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, a)
}

// Source is the raw, unrendered form of the authenticated user's profile.
// It only appears on verify_credentials and update_credentials responses.
type Source struct {
	Note      string               `json:"note"`
	Privacy   Optional[Visibility] `json:"privacy"`
	Sensitive Optional[bool]       `json:"sensitive"`

	Fields   []MetadataField  `json:"fields" flag:"source-fields"`
	Language Optional[string] `json:"language" flag:"source-language"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the source through the capability-aware decoder.
func (s *Source) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, s)
}

// MetadataField is a name/value pair shown on a profile.
type MetadataField struct {
	Name       string              `json:"name"`
	Value      string              `json:"value"`
	VerifiedAt Optional[time.Time] `json:"verified_at"`
}
