package mastodon

import (
	"net/url"
	"strconv"
)

// RangeFilter selects a window of a reverse-chronological collection.
// The zero value selects the newest items with the server default limit.
type RangeFilter struct {
	// MaxID returns results older than this ID.
	MaxID string
	// SinceID returns results newer than this ID.
	SinceID string
	// MinID returns results immediately newer than this ID.
	MinID string
	// Limit caps the number of results. Zero keeps the server default.
	Limit int
}

// ToValues converts the filter to query parameters.
func (f RangeFilter) ToValues() url.Values {
	values := url.Values{}
	if f.MaxID != "" {
		values.Set("max_id", f.MaxID)
	}
	if f.SinceID != "" {
		values.Set("since_id", f.SinceID)
	}
	if f.MinID != "" {
		values.Set("min_id", f.MinID)
	}
	if f.Limit > 0 {
		values.Set("limit", strconv.Itoa(f.Limit))
	}
	return values
}

// StatusesFilter narrows an account's statuses listing.
type StatusesFilter struct {
	RangeFilter

	OnlyMedia      bool
	ExcludeReplies bool
	ExcludeReblogs bool
	Pinned         bool
	Tagged         string
}

// ToValues converts the filter to query parameters.
func (f StatusesFilter) ToValues() url.Values {
	values := f.RangeFilter.ToValues()
	if f.OnlyMedia {
		values.Set("only_media", "true")
	}
	if f.ExcludeReplies {
		values.Set("exclude_replies", "true")
	}
	if f.ExcludeReblogs {
		values.Set("exclude_reblogs", "true")
	}
	if f.Pinned {
		values.Set("pinned", "true")
	}
	if f.Tagged != "" {
		values.Set("tagged", f.Tagged)
	}
	return values
}

// TimelineFilter narrows a public or hashtag timeline.
type TimelineFilter struct {
	RangeFilter

	Local     bool
	Remote    bool
	OnlyMedia bool
}

// ToValues converts the filter to query parameters.
func (f TimelineFilter) ToValues() url.Values {
	values := f.RangeFilter.ToValues()
	if f.Local {
		values.Set("local", "true")
	}
	if f.Remote {
		values.Set("remote", "true")
	}
	if f.OnlyMedia {
		values.Set("only_media", "true")
	}
	return values
}

// NotificationsFilter narrows the notifications listing.
type NotificationsFilter struct {
	RangeFilter

	ExcludeTypes []NotificationType
	AccountID    string
}

// ToValues converts the filter to query parameters.
func (f NotificationsFilter) ToValues() url.Values {
	values := f.RangeFilter.ToValues()
	for _, t := range f.ExcludeTypes {
		values.Add("exclude_types[]", string(t))
	}
	if f.AccountID != "" {
		values.Set("account_id", f.AccountID)
	}
	return values
}

// SearchFilter narrows a search.
type SearchFilter struct {
	// Resolve asks the server to fetch unknown remote content.
	Resolve bool
	// Limit caps results per category. Zero keeps the server default.
	Limit int
	// AccountID restricts statuses to one author (v2 only).
	AccountID string
	// Type restricts to one category: accounts, hashtags or statuses (v2 only).
	Type string
}

func (f SearchFilter) toValues(q string) url.Values {
	values := url.Values{}
	values.Set("q", q)
	if f.Resolve {
		values.Set("resolve", "true")
	}
	if f.Limit > 0 {
		values.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.AccountID != "" {
		values.Set("account_id", f.AccountID)
	}
	if f.Type != "" {
		values.Set("type", f.Type)
	}
	return values
}

// DirectoryFilter narrows the profile directory listing.
type DirectoryFilter struct {
	// Offset skips the given number of results.
	Offset int
	// Limit caps the number of results. Zero keeps the server default.
	Limit int
	// Order is "active" or "new".
	Order string
	// Local restricts to local accounts.
	Local bool
}

// ToValues converts the filter to query parameters.
func (f DirectoryFilter) ToValues() url.Values {
	values := url.Values{}
	if f.Offset > 0 {
		values.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.Limit > 0 {
		values.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Order != "" {
		values.Set("order", f.Order)
	}
	if f.Local {
		values.Set("local", "true")
	}
	return values
}

// AdminAccountsFilter narrows the moderation accounts listing.
type AdminAccountsFilter struct {
	RangeFilter

	Local     bool
	Remote    bool
	Active    bool
	Pending   bool
	Suspended bool
	Username  string
	ByDomain  string
}

// ToValues converts the filter to query parameters.
func (f AdminAccountsFilter) ToValues() url.Values {
	values := f.RangeFilter.ToValues()
	if f.Local {
		values.Set("local", "true")
	}
	if f.Remote {
		values.Set("remote", "true")
	}
	if f.Active {
		values.Set("active", "true")
	}
	if f.Pending {
		values.Set("pending", "true")
	}
	if f.Suspended {
		values.Set("suspended", "true")
	}
	if f.Username != "" {
		values.Set("username", f.Username)
	}
	if f.ByDomain != "" {
		values.Set("by_domain", f.ByDomain)
	}
	return values
}
