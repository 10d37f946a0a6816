package mastodon

import "github.com/fedigo-io/mastodon-client/pkg/generation"

// String-typed enums preserve whatever the server sent, so a value from a
// generation newer than the target never fails decoding. Known reports
// whether the value belongs to the surface of the compiled target; an
// unrecognized value keeps its raw form and simply answers false.

// Visibility is the audience of a status.
type Visibility string

// Visibility values.
const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
	VisibilityDirect   Visibility = "direct"
)

// Known reports whether the value is part of the target generation's surface.
func (v Visibility) Known() bool {
	switch v {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate, VisibilityDirect:
		return true
	default:
		return false
	}
}

// MediaType is the kind of a media attachment.
type MediaType string

// MediaType values.
const (
	MediaTypeImage   MediaType = "image"
	MediaTypeVideo   MediaType = "video"
	MediaTypeGifv    MediaType = "gifv"
	MediaTypeAudio   MediaType = "audio"
	MediaTypeUnknown MediaType = "unknown"
)

// Known reports whether the value is part of the target generation's surface.
func (m MediaType) Known() bool {
	switch m {
	case MediaTypeImage, MediaTypeVideo, MediaTypeGifv, MediaTypeUnknown:
		return true
	case MediaTypeAudio:
		return generation.Active(generation.FlagMediaTypeAudio)
	default:
		return false
	}
}

// NotificationType classifies a notification.
type NotificationType string

// NotificationType values.
const (
	NotificationFollow        NotificationType = "follow"
	NotificationMention       NotificationType = "mention"
	NotificationReblog        NotificationType = "reblog"
	NotificationFavourite     NotificationType = "favourite"
	NotificationPoll          NotificationType = "poll"
	NotificationFollowRequest NotificationType = "follow_request"
	NotificationStatus        NotificationType = "status"
)

// Known reports whether the value is part of the target generation's surface.
func (n NotificationType) Known() bool {
	switch n {
	case NotificationFollow, NotificationMention, NotificationReblog, NotificationFavourite:
		return true
	case NotificationPoll:
		return generation.Active(generation.FlagNotificationPoll)
	case NotificationFollowRequest:
		return generation.Active(generation.FlagNotificationFollowRequest)
	case NotificationStatus:
		return generation.Active(generation.FlagNotificationStatus)
	default:
		return false
	}
}

// CardType is the layout of a preview card.
type CardType string

// CardType values.
const (
	CardTypeLink  CardType = "link"
	CardTypePhoto CardType = "photo"
	CardTypeVideo CardType = "video"
	CardTypeRich  CardType = "rich"
)

// Known reports whether the value is part of the target generation's surface.
func (c CardType) Known() bool {
	switch c {
	case CardTypeLink, CardTypePhoto, CardTypeVideo, CardTypeRich:
		return generation.Active(generation.FlagCardDetails)
	default:
		return false
	}
}

// FilterContext is a context a keyword filter applies to.
type FilterContext string

// FilterContext values.
const (
	FilterContextHome          FilterContext = "home"
	FilterContextNotifications FilterContext = "notifications"
	FilterContextPublic        FilterContext = "public"
	FilterContextThread        FilterContext = "thread"
)

// Known reports whether the value is part of the target generation's surface.
func (f FilterContext) Known() bool {
	switch f {
	case FilterContextHome, FilterContextNotifications, FilterContextPublic, FilterContextThread:
		return generation.Active(generation.FlagFilters)
	default:
		return false
	}
}

// RepliesPolicy controls which replies show in a list timeline.
type RepliesPolicy string

// RepliesPolicy values.
const (
	RepliesPolicyFollowed RepliesPolicy = "followed"
	RepliesPolicyList     RepliesPolicy = "list"
	RepliesPolicyNone     RepliesPolicy = "none"
)

// Known reports whether the value is part of the target generation's surface.
func (r RepliesPolicy) Known() bool {
	switch r {
	case RepliesPolicyFollowed, RepliesPolicyList, RepliesPolicyNone:
		return generation.Active(generation.FlagListRepliesPolicy)
	default:
		return false
	}
}
