package mastodon

import (
	"encoding/json"
	"time"
)

// Status is a single post.
type Status struct {
	ID                 string           `json:"id"`
	URI                string           `json:"uri"`
	URL                Optional[string] `json:"url"`
	Account            Account          `json:"account"`
	InReplyToID        Optional[string] `json:"in_reply_to_id"`
	InReplyToAccountID Optional[string] `json:"in_reply_to_account_id"`
	Reblog             *Status          `json:"reblog"`
	Content            string           `json:"content"`
	CreatedAt          time.Time        `json:"created_at"`
	ReblogsCount       int64            `json:"reblogs_count"`
	FavouritesCount    int64            `json:"favourites_count"`
	Reblogged          Optional[bool]   `json:"reblogged"`
	Favourited         Optional[bool]   `json:"favourited"`
	Muted              Optional[bool]   `json:"muted"`
	Sensitive          bool             `json:"sensitive"`
	SpoilerText        string           `json:"spoiler_text"`
	Visibility         Visibility       `json:"visibility"`
	MediaAttachments   []Attachment     `json:"media_attachments"`
	Mentions           []Mention        `json:"mentions"`
	Tags               []Tag            `json:"tags"`
	Application        *Application     `json:"application"`
	Language           Optional[string] `json:"language"`

	Emojis       []Emoji         `json:"emojis" flag:"status-emojis"`
	Pinned       Optional[bool]  `json:"pinned" flag:"status-pinned"`
	RepliesCount Optional[int64] `json:"replies_count" flag:"status-replies-count"`
	Card         *Card           `json:"card" flag:"status-card"`
	Poll         *Poll           `json:"poll" flag:"status-poll"`
	Bookmarked   Optional[bool]  `json:"bookmarked" flag:"status-bookmarked"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the status through the capability-aware decoder.
func (s *Status) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, s)
}

// Context is the thread a status belongs to.
type Context struct {
	Ancestors   []Status `json:"ancestors"`
	Descendants []Status `json:"descendants"`
}

// Mention is a reference to another account inside a status.
type Mention struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	URL      string `json:"url"`
	Acct     string `json:"acct"`
}

// Tag is a hashtag used in a status or returned by search.
type Tag struct {
	Name string `json:"name"`
	URL  string `json:"url"`

	History []TagHistory `json:"history" flag:"tag-history"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the tag through the capability-aware decoder.
func (t *Tag) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, t)
}

// TagHistory is one day of usage numbers for a hashtag. The server sends
// the counts as strings.
type TagHistory struct {
	Day      string `json:"day"`
	Uses     string `json:"uses"`
	Accounts string `json:"accounts"`
}

// Application identifies the client that posted a status.
type Application struct {
	Name    string           `json:"name"`
	Website Optional[string] `json:"website"`

	VapidKey Optional[string] `json:"vapid_key" flag:"application-vapid-key"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the application through the capability-aware decoder.
func (a *Application) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, a)
}

// Emoji is a custom emoji defined by an instance.
type Emoji struct {
	Shortcode       string `json:"shortcode"`
	URL             string `json:"url"`
	StaticURL       string `json:"static_url"`
	VisibleInPicker bool   `json:"visible_in_picker"`

	Category Optional[string] `json:"category" flag:"emoji-category"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the emoji through the capability-aware decoder.
func (e *Emoji) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, e)
}
