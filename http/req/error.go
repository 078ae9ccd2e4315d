package req

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/connect"
)

// A ValidationError describes a query param whose value breaks the rule set on its field.
type ValidationError struct {
	Field string
	Got   any
	Rule  string
}

func (e ValidationError) String() string {
	return fmt.Sprintf("field=%q rule=%q got=%q", e.Field, e.Rule, fmt.Sprint(e.Got))
}

// ValidationErrors collects every ValidationError found in one request.
//
// ValidationErrors wraps connect.ErrNotValid.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, e := range v {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.String())
	}

	return b.String()
}

func (ValidationErrors) Unwrap() error { return connect.ErrNotValid }
