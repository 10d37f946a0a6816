package mastodon

import "encoding/json"

// Card is a rich preview generated for the first link in a status.
type Card struct {
	URL         string           `json:"url"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Image       Optional[string] `json:"image"`

	Type         CardType         `json:"type" flag:"card-details"`
	AuthorName   Optional[string] `json:"author_name" flag:"card-details"`
	AuthorURL    Optional[string] `json:"author_url" flag:"card-details"`
	ProviderName Optional[string] `json:"provider_name" flag:"card-details"`
	ProviderURL  Optional[string] `json:"provider_url" flag:"card-details"`
	HTML         Optional[string] `json:"html" flag:"card-details"`
	Width        Optional[int64]  `json:"width" flag:"card-details"`
	Height       Optional[int64]  `json:"height" flag:"card-details"`

	EmbedURL Optional[string] `json:"embed_url" flag:"card-embed-url"`
	Blurhash Optional[string] `json:"blurhash" flag:"card-blurhash"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the card through the capability-aware decoder.
func (c *Card) UnmarshalJSON(data []byte) error {
	return DecodeEntity(data, c)
}
