package resp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	html "html/template"
	"net/http"
	"net/url"
	"path"
	"sync"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/http/session"
	"github.com/xy-planning-network/connect/http/template"
	"github.com/xy-planning-network/connect/logger"
)

const responderFrames = 1

// Responder maintains reusable pieces for responding to HTTP requests.
// It exposes many common methods for writing structured data as an HTTP response.
// These are the forms of response Responder can execute:
//
//	Html
//	Json
//	Redirect
//
// A single Responder suffices for the application.
//
// When handling a specific HTTP request, calling code supplies additional data, structure,
// and so forth through Fn functions.
type Responder struct {
	logger logger.Logger

	// Initialized template parser
	parser template.Parser

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	// Error message to use for "contact us" style client-side error messages,
	// i.e., those set in a session.Flash
	contactErrMsg string

	// Root URL the responder is listening on, also used when in an error state
	rootUrl *url.URL

	templates struct {
		// Root template to render when an error occurs
		// and no other response can be formed
		err string

		// Root template every page renders within
		layout string
	}
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	if d.parser != nil {
		d.parser.AddFn(template.Nonce())
		d.parser.AddFn(template.RootUrl(d.rootUrl))
	}

	return d
}

// Err wraps http.Error(), logging the error causing the failure state.
//
// Use in exceptional circumstances when no Redirect or Html can occur.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := doer.do(w, r, append(opts, Err(err))...)
	if nested != nil {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	var msg string
	if err != nil {
		msg = err.Error()
	}

	code := http.StatusInternalServerError
	if rr != nil && rr.code != 0 {
		code = rr.code
	}

	http.Error(w, msg, code)
}

// Html composes together HTML templates set in *Responder
// and configured by Layout, Tmpls and other such calls.
//
// Templates render with this data:
//
//	{
//		Data    any
//		Flashes []session.Flash
//	}
func (doer *Responder) Html(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return doer.handleHtmlError(w, r, err)
	}

	if doer.parser == nil {
		return doer.handleHtmlError(w, r, fmt.Errorf("%w: no parser configured", ErrBadConfig))
	}

	if len(rr.tmpls) == 0 {
		return doer.handleHtmlError(w, r, fmt.Errorf("%w: no templates to render", ErrMissingData))
	}

	tmpl, err := doer.parser.Parse(rr.tmpls...)
	if err != nil {
		return doer.handleHtmlError(w, r, fmt.Errorf("cannot parse: %w", err))
	}

	rd := struct {
		Data    any
		Flashes []session.Flash
	}{Data: rr.data}

	s, err := doer.Session(r.Context())
	if err != nil && !errors.Is(err, ErrNotFound) {
		return doer.handleHtmlError(w, r, fmt.Errorf("can't retrieve session: %w", err))
	}

	rd.Flashes = s.Flashes(w, r)

	wrote, err := doer.render(w, rr.code, tmpl, path.Base(rr.tmpls[0]), rd)
	if err != nil && !wrote {
		return doer.handleHtmlError(w, r, err)
	}

	return err
}

type jsonSchema struct {
	D any `json:"data,omitempty"`
}

// Json responds with data in JSON format, collating it from Data() and setting appropriate headers.
//
// The JSON schema looks like this:
//
//	{
//		"data": {}
//	}
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(jsonSchema{D: rr.data}); err != nil {
		doer.Err(w, r, err)
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// Redirect calls http.Redirect, given Url() set the redirect destination.
// If Url() is not passed in opts, then ToRoot() sets the redirect destination.
//
// The default response status code is 302.
//
// If Code() set the status code to something other than standard redirect 3xx statuses,
// Redirect overwrites the status code with an appropriate 3xx status code.
func (doer *Responder) Redirect(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, append([]Fn{ToRoot()}, opts...)...)
	if err != nil {
		return err
	}

	if rr.url == nil {
		return fmt.Errorf("%w: cannot redirect, no resp.url", ErrMissingData)
	}

	switch {
	case rr.code >= http.StatusMultipleChoices && rr.code <= http.StatusPermanentRedirect:
	case rr.code >= http.StatusBadRequest && rr.code < http.StatusInternalServerError:
		rr.code = http.StatusSeeOther
	case rr.code >= http.StatusInternalServerError:
		rr.code = http.StatusTemporaryRedirect
	default:
		rr.code = http.StatusFound
	}

	http.Redirect(w, r, rr.url.String(), rr.code)
	return nil
}

// Session retrieves the session set in the context as a session.Session.
//
// If the context.Context has no value for connect.SessionKey, ErrNotFound returns.
func (doer Responder) Session(ctx context.Context) (session.Session, error) {
	val := ctx.Value(connect.SessionKey)
	if val == nil {
		return session.Session{}, fmt.Errorf("%w: no session found with %q", ErrNotFound, connect.SessionKey)
	}

	s, ok := val.(session.Session)
	if !ok {
		return session.Session{}, fmt.Errorf("%w: is not session.Session, is %T", ErrInvalid, val)
	}

	return s, nil
}

// do applies opts to a fresh *Response.
//
// An Fn may depend on one that comes after it;
// failing Fns are retried until a pass fixes none of them, and their errors then return together.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{w: w, r: r}

	pending := opts
	for {
		if r.Context().Err() != nil {
			return nil, fmt.Errorf("%w", ErrDone)
		}

		var failed []Fn
		var errs []error
		for _, opt := range pending {
			if err := opt(*doer, resp); err != nil {
				failed = append(failed, opt)
				errs = append(errs, err)
			}
		}

		switch {
		case len(failed) == 0:
			return resp, nil
		case len(failed) == len(pending):
			return resp, joinErrs(errs)
		}

		pending = failed
	}
}

// joinErrs wraps the first error, appending the text of the rest.
func joinErrs(errs []error) error {
	err := errs[0]
	for _, nested := range errs[1:] {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	return err
}

// render executes the named template of tmpl into a pooled buffer,
// then writes the headers, code and the buffer to w.
// Nothing reaches w when execution fails; wrote reports whether anything did.
func (doer *Responder) render(w http.ResponseWriter, code int, tmpl *html.Template, name string, data any) (wrote bool, err error) {
	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := tmpl.ExecuteTemplate(b, name, data); err != nil {
		return false, err
	}

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	if code != 0 {
		w.WriteHeader(code)
	}

	_, err = b.WriteTo(w)
	return true, err
}

// handleHtmlError logs err and renders the error template in its place.
func (doer *Responder) handleHtmlError(w http.ResponseWriter, r *http.Request, err error) error {
	doer.logger.Error(err.Error(), newLogContext(r, err, nil))

	if doer.templates.err == "" || doer.parser == nil {
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("%w: no error template provided, encountered while handling: %s", ErrBadConfig, err)
	}

	tmpl, nested := doer.parser.Parse(doer.templates.err)
	if nested != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("%w: %s", nested, err)
	}

	contact := doer.contactErrMsg
	if contact == "" {
		contact = session.DefaultErrMsg
	}

	data := map[string]any{"Contact": contact}
	if wrote, nested := doer.render(w, http.StatusInternalServerError, tmpl, path.Base(doer.templates.err), data); nested != nil {
		if !wrote {
			w.WriteHeader(http.StatusInternalServerError)
		}
		return fmt.Errorf("%w: %s", nested, err)
	}

	return err
}
