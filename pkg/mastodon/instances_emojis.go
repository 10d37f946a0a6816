//go:build !mastodon_1_0_0 && !mastodon_1_3_0

package mastodon

import "context"

// CustomEmojis lists the emojis defined by this instance.
func (i *InstanceClient) CustomEmojis(ctx context.Context) ([]Emoji, error) {
	return getList[Emoji](ctx, i.client, "/api/v1/custom_emojis", nil)
}
