package google

import (
	"fmt"
	"net/url"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/http/req"
)

// OutcomeKind categorizes what Google sent back to the callback URL.
type OutcomeKind string

const (
	OutcomeCode         OutcomeKind = "code"
	OutcomeCancelled    OutcomeKind = "cancelled"
	OutcomePopupBlocked OutcomeKind = "popup_blocked"
	OutcomeError        OutcomeKind = "error"
	OutcomeNoCode       OutcomeKind = "no_code"
)

var _ connect.Enumerable = OutcomeKind("")

func (k OutcomeKind) String() string { return string(k) }

func (k OutcomeKind) Valid() error {
	switch k {
	case OutcomeCode, OutcomeCancelled, OutcomePopupBlocked, OutcomeError, OutcomeNoCode:
		return nil
	default:
		return fmt.Errorf("%w: OutcomeKind %q", connect.ErrNotValid, string(k))
	}
}

// An Outcome is the result of one consent flow.
//
// Code is only set for OutcomeCode.
type Outcome struct {
	Kind        OutcomeKind
	Code        string
	Err         string
	Description string
}

// Message renders the Outcome as text for the user.
// Message is empty for OutcomeCode.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeCancelled:
		return "The Google sign-in window was closed before completing."
	case OutcomePopupBlocked:
		return "Failed to open the Google sign-in window. Check for active pop-up blockers."
	case OutcomeNoCode:
		return "Could not obtain the authorization code from Google."
	case OutcomeError:
		switch {
		case o.Err != "":
			return fmt.Sprintf("Authentication error (%s). Please try again.", o.Err)
		case o.Description != "":
			return "Authentication error: " + o.Description
		default:
			return "Error during Google authentication. Please try again."
		}
	default:
		return ""
	}
}

// callbackParams are the query params Google redirects back with.
type callbackParams struct {
	Code        string `schema:"code" validate:"omitempty,max=1024,printascii"`
	Error       string `schema:"error" validate:"omitempty,max=256,printascii"`
	Description string `schema:"error_description" validate:"max=1024"`
}

var parser = req.NewParser()

// ParseCallback interprets the query params of a request to the redirect URL.
//
// Params that fail validation are reported as OutcomeError with Err "invalid_request".
func ParseCallback(vals url.Values) Outcome {
	var p callbackParams
	if err := parser.ParseQueryParams(vals, &p); err != nil {
		return Outcome{Kind: OutcomeError, Err: "invalid_request"}
	}

	switch p.Error {
	case "":
	case "access_denied", "popup_closed":
		return Outcome{Kind: OutcomeCancelled, Err: p.Error, Description: p.Description}
	case "popup_failed_to_open", "popup_blocked":
		return Outcome{Kind: OutcomePopupBlocked, Err: p.Error, Description: p.Description}
	default:
		return Outcome{Kind: OutcomeError, Err: p.Error, Description: p.Description}
	}

	if p.Code != "" {
		return Outcome{Kind: OutcomeCode, Code: p.Code}
	}

	if p.Description != "" {
		return Outcome{Kind: OutcomeError, Description: p.Description}
	}

	return Outcome{Kind: OutcomeNoCode}
}
