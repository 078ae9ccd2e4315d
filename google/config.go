package google

import (
	"fmt"
	"strings"

	calendar "google.golang.org/api/calendar/v3"
	gmail "google.golang.org/api/gmail/v1"
	oauth2api "google.golang.org/api/oauth2/v2"
)

// ClientIDSuffix is the domain every web client id issued by Google Cloud ends with.
const ClientIDSuffix = ".apps.googleusercontent.com"

// placeholders are values left in configuration templates that were never filled in.
var placeholders = []string{
	"YOUR_CLIENT_ID",
	"YOUR_GOOGLE_CLIENT_ID",
	"CLIENT_ID_HERE",
}

// DefaultScopes are requested when ClientConfig.Scopes is empty:
// the user's email and profile, full Gmail access and read/write access to calendar events.
func DefaultScopes() []string {
	return []string{
		oauth2api.UserinfoEmailScope,
		oauth2api.UserinfoProfileScope,
		gmail.MailGoogleComScope,
		calendar.CalendarEventsScope,
	}
}

// A ClientConfig holds what is needed to send a user to Google's consent screen.
type ClientConfig struct {
	ClientID string

	// ClientSecret is optional: building the consent URL does not need it.
	ClientSecret string

	// RedirectURL is where Google sends the user back to, e.g. https://example.com/auth/google/callback.
	RedirectURL string

	Scopes []string
}

// Validate checks the ClientConfig can build a CodeClient.
func (c ClientConfig) Validate() error {
	return ValidateClientID(c.ClientID)
}

// ValidateClientID asserts id is set, is not a placeholder and belongs to Google's client id domain.
//
// Every error returned wraps connect.ErrBadConfig.
func ValidateClientID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingClientID
	}

	for _, p := range placeholders {
		if strings.Contains(id, p) {
			return fmt.Errorf("%w: contains %s", ErrPlaceholderClientID, p)
		}
	}

	if !strings.HasSuffix(id, ClientIDSuffix) {
		return ErrClientIDSuffix
	}

	return nil
}
