package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedigo-io/mastodon-client/internal/auth"
)

func TestStaticToken(t *testing.T) {
	t.Parallel()

	token, err := auth.StaticToken("secret").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret", token)
}

func TestStaticToken_EmptyMeansUnauthenticated(t *testing.T) {
	t.Parallel()

	token, err := auth.StaticToken("").Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}
