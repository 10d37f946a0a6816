package mastodon

import (
	"encoding/json"
	"time"
)

// Poll is attached to a status and collects votes.
type Poll struct {
	ID          string              `json:"id"`
	ExpiresAt   Optional[time.Time] `json:"expires_at"`
	Expired     bool                `json:"expired"`
	Multiple    bool                `json:"multiple"`
	VotesCount  int64               `json:"votes_count"`
	VotersCount Optional[int64]     `json:"voters_count"`
	Voted       Optional[bool]      `json:"voted"`
	OwnVotes    []int               `json:"own_votes"`
	Options     []PollOption        `json:"options"`
	Emojis      []Emoji             `json:"emojis"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the poll through the capability-aware decoder.
func (p *Poll) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, p)
}

// PollOption is one choice of a poll. The vote count is hidden until the
// poll expires or the user has voted.
type PollOption struct {
	Title      string          `json:"title"`
	VotesCount Optional[int64] `json:"votes_count"`
}
