package google

import (
	"fmt"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

// A CodeClient requests authorization codes from Google.
type CodeClient struct {
	cfg *oauth2.Config
}

// NewCodeClient validates cfg and constructs a *CodeClient.
//
// Validation failures wrap connect.ErrBadConfig.
// A panic while constructing is recovered and returned as ErrInit.
func NewCodeClient(cfg ClientConfig) (cc *CodeClient, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			cc, err = nil, fmt.Errorf("%w: %v", ErrInit, r)
		}
	}()

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes()
	}

	return &CodeClient{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     googleoauth.Endpoint,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
		},
	}, nil
}

// ClientID returns the client id the consent screen is requested for.
func (c *CodeClient) ClientID() string { return c.cfg.ClientID }

// Scopes returns the scopes requested.
func (c *CodeClient) Scopes() []string { return append([]string(nil), c.cfg.Scopes...) }

// RequestCode builds the URL of Google's consent screen.
//
// Offline access and an explicit consent prompt are always requested
// so the backend receives a refresh token on every exchange.
func (c *CodeClient) RequestCode(state string) string {
	return c.cfg.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
}
