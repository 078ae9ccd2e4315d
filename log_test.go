package connect_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/connect"
)

func TestMask(t *testing.T) {
	for _, tc := range []struct {
		name string
		vals url.Values
		keys []string
		want url.Values
	}{
		{"zero", url.Values{}, nil, url.Values{}},
		{
			"mismatch",
			url.Values{"code": []string{"4/0Ab"}},
			[]string{"cdoe"},
			url.Values{"code": []string{"4/0Ab"}},
		},
		{
			"match",
			url.Values{"code": []string{"4/0Ab"}, "scope": []string{"email"}},
			connect.MaskedKeys,
			url.Values{"code": []string{connect.LogMaskVal}, "scope": []string{"email"}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual := connect.Mask(tc.vals, tc.keys...)

			// Assert
			require.Equal(t, tc.want, actual)
		})
	}

	t.Run("copies", func(t *testing.T) {
		// Arrange
		vals := url.Values{"code": []string{"4/0Ab"}}

		// Act
		connect.Mask(vals, "code")

		// Assert
		require.Equal(t, "4/0Ab", vals.Get("code"))
	})
}

func TestMaskRequest(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=4/secret-code&state=abc&scope=email", nil)

	// Act
	actual := connect.MaskRequest(r)

	// Assert
	require.Equal(t, "/auth/google/callback", actual.URL.Path)
	require.Equal(t, connect.LogMaskVal, actual.URL.Query().Get("code"))
	require.Equal(t, connect.LogMaskVal, actual.URL.Query().Get("state"))
	require.Equal(t, "email", actual.URL.Query().Get("scope"))
	require.NotContains(t, actual.RequestURI, "secret-code")
	require.Equal(t, "4/secret-code", r.URL.Query().Get("code"))
}
