package google_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xy-planning-network/connect/google"
)

func TestNewCodeClient(t *testing.T) {
	t.Run("Bad-Id", func(t *testing.T) {
		// Act
		cc, err := google.NewCodeClient(google.ClientConfig{ClientID: "bad-id"})

		// Assert
		require.ErrorIs(t, err, google.ErrClientIDSuffix)
		require.Nil(t, cc)
	})

	t.Run("Default-Scopes", func(t *testing.T) {
		// Act
		cc, err := google.NewCodeClient(google.ClientConfig{ClientID: testClientID})

		// Assert
		require.NoError(t, err)
		require.Equal(t, testClientID, cc.ClientID())
		require.Equal(t, google.DefaultScopes(), cc.Scopes())
	})
}

func TestCodeClientRequestCode(t *testing.T) {
	// Arrange
	cc, err := google.NewCodeClient(google.ClientConfig{
		ClientID:    testClientID,
		RedirectURL: "https://example.com/auth/google/callback",
		Scopes:      []string{"openid", "email"},
	})
	require.NoError(t, err)

	// Act
	raw := cc.RequestCode("some-state")

	// Assert
	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "accounts.google.com", u.Host)

	q := u.Query()
	require.Equal(t, testClientID, q.Get("client_id"))
	require.Equal(t, "code", q.Get("response_type"))
	require.Equal(t, "some-state", q.Get("state"))
	require.Equal(t, "https://example.com/auth/google/callback", q.Get("redirect_uri"))
	require.Equal(t, "openid email", q.Get("scope"))
	require.Equal(t, "offline", q.Get("access_type"))
	require.Equal(t, "consent", q.Get("prompt"))
	require.Equal(t, "true", q.Get("include_granted_scopes"))
	require.False(t, strings.Contains(raw, "client_secret"))
}
