package mastodon

import "encoding/json"

// Attachment is a media file attached to a status.
type Attachment struct {
	ID         string           `json:"id"`
	Type       MediaType        `json:"type"`
	URL        string           `json:"url"`
	PreviewURL string           `json:"preview_url"`
	RemoteURL  Optional[string] `json:"remote_url"`
	Meta       *AttachmentMeta  `json:"meta"`

	TextURL     Optional[string] `json:"text_url" flag:"attachment-text-url"`
	Description Optional[string] `json:"description" flag:"attachment-description"`
	Blurhash    Optional[string] `json:"blurhash" flag:"attachment-blurhash"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the attachment through the capability-aware decoder.
func (a *Attachment) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, a)
}

// AttachmentMeta carries the size details of an attachment. The server
// only fills in the parts that apply to the media type.
type AttachmentMeta struct {
	Original *MediaDetails `json:"original"`
	Small    *MediaDetails `json:"small"`

	Focus *Focus `json:"focus" flag:"attachment-focus"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the meta block through the capability-aware decoder.
func (m *AttachmentMeta) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, m)
}

// MediaDetails describes one rendition of an attachment.
type MediaDetails struct {
	Width    Optional[int64]   `json:"width"`
	Height   Optional[int64]   `json:"height"`
	Size     Optional[string]  `json:"size"`
	Aspect   Optional[float64] `json:"aspect"`
	Duration Optional[float64] `json:"duration"`
	Bitrate  Optional[int64]   `json:"bitrate"`
}

// Focus is the preferred crop point of an image, each axis in [-1, 1].
type Focus struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
