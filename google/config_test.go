package google_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/google"
)

const testClientID = "414232145280-example.apps.googleusercontent.com"

func TestValidateClientID(t *testing.T) {
	tcs := []struct {
		name     string
		id       string
		expected error
	}{
		{"Valid", testClientID, nil},
		{"Empty", "", google.ErrMissingClientID},
		{"Blank", "   ", google.ErrMissingClientID},
		{"Placeholder", "YOUR_CLIENT_ID.apps.googleusercontent.com", google.ErrPlaceholderClientID},
		{"Placeholder-Google", "YOUR_GOOGLE_CLIENT_ID", google.ErrPlaceholderClientID},
		{"Placeholder-Here", "CLIENT_ID_HERE.apps.googleusercontent.com", google.ErrPlaceholderClientID},
		{"Bad-Id", "bad-id", google.ErrClientIDSuffix},
		{"Wrong-Domain", "123.apps.example.com", google.ErrClientIDSuffix},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			err := google.ValidateClientID(tc.id)

			// Assert
			if tc.expected == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tc.expected)
			require.ErrorIs(t, err, connect.ErrBadConfig)
		})
	}
}

func TestDefaultScopes(t *testing.T) {
	require.Equal(t, []string{
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
		"https://mail.google.com/",
		"https://www.googleapis.com/auth/calendar.events",
	}, google.DefaultScopes())
}
