package req

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

// A Parser decodes request payloads into structs and validates them.
type Parser struct {
	dec *schema.Decoder
	validator
}

// NewParser constructs a *Parser ignoring unknown query params.
func NewParser() *Parser {
	return &Parser{
		dec:       newQueryParamDecoder(),
		validator: newValidator(),
	}
}

// ParseQueryParams decodes into a pointer to a struct the query param data in *http.Request.URL.Query.
// If successful, ParseQueryParams runs validation against the contents,
// returning ValidationErrors, which wrap connect.ErrNotValid, if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.dec.Decode(structPtr, params); err != nil {
		return fmt.Errorf("connect/http/req: failed decoding request query params: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("connect/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
