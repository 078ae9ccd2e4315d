package connect

import (
	"fmt"
	"strings"
)

// An Environment is a different context in which a connect app operates.
type Environment string

const (
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Review      Environment = "REVIEW"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Development, Production, Review, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) IsProduction() bool  { return e == Production }
func (e Environment) IsReview() bool      { return e == Review }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsTesting() bool     { return e == Testing }

// SecureCookies asserts whether cookies set in the Environment
// must only travel over HTTPS.
func (e Environment) SecureCookies() bool {
	return !(e.IsDevelopment() || e.IsTesting())
}

// UnmarshalText reads an Environment case-insensitively,
// so env parsers can decode ENVIRONMENT straight into one.
func (e *Environment) UnmarshalText(text []byte) error {
	env := Environment(strings.ToUpper(strings.TrimSpace(string(text))))
	if err := env.Valid(); err != nil {
		return fmt.Errorf("%w: environment %q", err, text)
	}

	*e = env
	return nil
}
