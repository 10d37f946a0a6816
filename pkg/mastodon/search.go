package mastodon

// SearchResult is the response of the v1 search endpoint. Hashtags are
// plain strings at this generation.
type SearchResult struct {
	Accounts []Account `json:"accounts"`
	Statuses []Status  `json:"statuses"`
	Hashtags []string  `json:"hashtags"`
}

// SearchResultV2 is the response of the v2 search endpoint, where
// hashtags are full Tag entities.
type SearchResultV2 struct {
	Accounts []Account `json:"accounts"`
	Statuses []Status  `json:"statuses"`
	Hashtags []Tag     `json:"hashtags"`
}
