package generation

// Flag names one atomic capability: an entity field (or group of fields that
// arrived together), an enum variant, or an endpoint. The matrix below ties
// each flag to the generation that introduced it and, where the server later
// dropped it, the generation that retired it.
//
// Assignments follow the Mastodon API changelog. The mechanism does not care
// about the concrete values; tests only rely on relative ordering.
type Flag string

// Entity field flags.
const (
	FlagAccountMoved           Flag = "account-moved"
	FlagAccountProfileFields   Flag = "account-profile-fields"
	FlagAccountLastStatusAt    Flag = "account-last-status-at"
	FlagAccountDiscoverable    Flag = "account-discoverable"
	FlagAccountSuspension      Flag = "account-suspension"
	FlagSourceFields           Flag = "source-fields"
	FlagSourceLanguage         Flag = "source-language"
	FlagAttachmentDescription  Flag = "attachment-description"
	FlagAttachmentFocus        Flag = "attachment-focus"
	FlagAttachmentBlurhash     Flag = "attachment-blurhash"
	FlagAttachmentTextURL      Flag = "attachment-text-url"
	FlagCardDetails            Flag = "card-details"
	FlagCardEmbedURL           Flag = "card-embed-url"
	FlagCardBlurhash           Flag = "card-blurhash"
	FlagStatusEmojis           Flag = "status-emojis"
	FlagStatusPinned           Flag = "status-pinned"
	FlagStatusRepliesCount     Flag = "status-replies-count"
	FlagStatusCard             Flag = "status-card"
	FlagStatusPoll             Flag = "status-poll"
	FlagStatusBookmarked       Flag = "status-bookmarked"
	FlagInstanceLanguages      Flag = "instance-languages"
	FlagInstanceRegistrations  Flag = "instance-registrations"
	FlagInstanceApprovalGate   Flag = "instance-approval-required"
	FlagInstanceInvitesEnabled Flag = "instance-invites-enabled"
	FlagRelationshipReblogs    Flag = "relationship-showing-reblogs"
	FlagRelationshipEndorsed   Flag = "relationship-endorsed"
	FlagRelationshipBlockedBy  Flag = "relationship-blocked-by"
	FlagRelationshipNote       Flag = "relationship-note"
	FlagRelationshipNotifying  Flag = "relationship-notifying"
	FlagApplicationVapidKey    Flag = "application-vapid-key"
	FlagEmojiCategory          Flag = "emoji-category"
	FlagTagHistory             Flag = "tag-history"
	FlagListRepliesPolicy      Flag = "list-replies-policy"
	FlagAccountMuteExpires     Flag = "account-mute-expires"
)

// Enum variant flags.
const (
	FlagMediaTypeAudio            Flag = "media-type-audio"
	FlagNotificationPoll          Flag = "notification-poll"
	FlagNotificationFollowRequest Flag = "notification-follow-request"
	FlagNotificationStatus        Flag = "notification-status"
)

// Endpoint flags.
const (
	FlagCustomEmojis        Flag = "custom-emojis"
	FlagLists               Flag = "lists"
	FlagFilters             Flag = "filters"
	FlagPushSubscriptions   Flag = "push-subscriptions"
	FlagSearchV1            Flag = "search-v1"
	FlagSearchV2            Flag = "search-v2"
	FlagConversations       Flag = "conversations"
	FlagEndorsements        Flag = "endorsements"
	FlagNotificationDismiss Flag = "notification-dismiss"
	FlagPolls               Flag = "polls"
	FlagScheduledStatuses   Flag = "scheduled-statuses"
	FlagAdmin               Flag = "admin"
	FlagDirectory           Flag = "directory"
	FlagBookmarks           Flag = "bookmarks"
	FlagAnnouncements       Flag = "announcements"
	FlagStatusCardEndpoint  Flag = "status-card-endpoint"
)

// delta is one generation's contribution to the matrix: the flags it
// introduces and the flags it retires. Resolution is cumulative from the
// oldest generation up to the target.
type delta struct {
	introduces []Flag
	retires    []Flag
}

// matrix holds the capability delta of every tracked generation. The baseline
// generation introduces the flags for surfaces that were later retired, so
// that retirement has something to remove.
var matrix = map[Generation]delta{
	V1_0_0: {introduces: []Flag{
		FlagSearchV1,
		FlagStatusCardEndpoint,
		FlagAttachmentTextURL,
	}},
	V1_3_0: {introduces: []Flag{
		FlagCardDetails,
	}},
	V2_0_0: {introduces: []Flag{
		FlagCustomEmojis,
		FlagStatusEmojis,
		FlagStatusPinned,
		FlagAttachmentDescription,
	}},
	V2_1_0: {introduces: []Flag{
		FlagLists,
		FlagAccountMoved,
		FlagCardEmbedURL,
		FlagRelationshipReblogs,
	}},
	V2_3_0: {introduces: []Flag{
		FlagAttachmentFocus,
		FlagInstanceLanguages,
	}},
	V2_4_0: {introduces: []Flag{
		FlagFilters,
		FlagPushSubscriptions,
		FlagAccountProfileFields,
		FlagSourceFields,
	}},
	V2_4_2: {introduces: []Flag{
		FlagSearchV2,
		FlagSourceLanguage,
		FlagTagHistory,
	}},
	V2_6_0: {introduces: []Flag{
		FlagConversations,
		FlagEndorsements,
		FlagNotificationDismiss,
		FlagStatusRepliesCount,
		FlagStatusCard,
		FlagRelationshipEndorsed,
	}},
	V2_8_0: {introduces: []Flag{
		FlagPolls,
		FlagScheduledStatuses,
		FlagStatusPoll,
		FlagNotificationPoll,
		FlagApplicationVapidKey,
		FlagInstanceRegistrations,
		FlagRelationshipBlockedBy,
	}},
	V2_8_1: {introduces: []Flag{
		FlagAttachmentBlurhash,
	}},
	V2_9_1: {introduces: []Flag{
		FlagAdmin,
		FlagMediaTypeAudio,
		FlagInstanceApprovalGate,
	}},
	V3_0_0: {
		introduces: []Flag{
			FlagDirectory,
			FlagAccountLastStatusAt,
			FlagEmojiCategory,
		},
		retires: []Flag{
			FlagSearchV1,
			FlagStatusCardEndpoint,
			FlagAttachmentTextURL,
		},
	},
	V3_1_0: {introduces: []Flag{
		FlagBookmarks,
		FlagAnnouncements,
		FlagStatusBookmarked,
		FlagAccountDiscoverable,
		FlagNotificationFollowRequest,
	}},
	V3_2_0: {introduces: []Flag{
		FlagCardBlurhash,
		FlagInstanceInvitesEnabled,
		FlagRelationshipNote,
	}},
	V3_3_0: {introduces: []Flag{
		FlagAccountSuspension,
		FlagAccountMuteExpires,
		FlagNotificationStatus,
		FlagListRepliesPolicy,
		FlagRelationshipNotifying,
	}},
}
