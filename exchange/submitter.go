package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/xy-planning-network/connect"
	"github.com/xy-planning-network/connect/logger"
)

// maxBodySize caps how much of a backend answer is read.
const maxBodySize = 1 << 20

const placeholderURL = "YOUR_BACKEND_URL"

// ValidateURL asserts raw is set, is not a placeholder and is an absolute http(s) URL.
//
// Every error returned wraps connect.ErrBadConfig.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrMissingURL
	}

	if strings.Contains(raw, placeholderURL) {
		return ErrPlaceholderURL
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// A Result is a 2xx answer from the backend.
type Result struct {
	// DisplayName names the connected account.
	DisplayName string
	Status      int
}

// A Submitter POSTs authorization codes to the backend exchange URL.
type Submitter struct {
	client *http.Client
	logger logger.Logger
	url    string
}

// NewSubmitter constructs a *Submitter after validating rawURL with ValidateURL.
//
// http.DefaultClient is used unless WithClient says otherwise.
func NewSubmitter(rawURL string, opts ...SubmitterOptFn) (*Submitter, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	s := &Submitter{url: rawURL}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = http.DefaultClient
	}

	if s.logger == nil {
		s.logger = logger.New()
	}

	return s, nil
}

// URL returns the backend exchange URL.
func (s *Submitter) URL() string { return s.url }

// Submit sends code to the backend exactly once; it never retries.
//
// A non-2xx answer returns a *ResponseError,
// a failure to get any answer a *TransportError.
func (s *Submitter) Submit(ctx context.Context, code string) (Result, error) {
	payload, err := json.Marshal(map[string]string{"code": code})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", connect.ErrUnexpected, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, &TransportError{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logData := map[string]any{"url": s.url, "code": connect.LogMaskVal}
	s.logger.Info("sending authorization code to backend", &logger.LogContext{Data: logData})

	res, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("backend unreachable", &logger.LogContext{Data: logData, Error: err})
		return Result{}, &TransportError{Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return Result{}, &TransportError{Err: err}
	}

	logData["status"] = res.StatusCode

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		re := &ResponseError{
			Status:  res.StatusCode,
			Message: ErrorMessage(res.StatusCode, statusText(res), body),
		}
		s.logger.Error("backend rejected authorization code", &logger.LogContext{Data: logData, Error: re})
		return Result{}, re
	}

	s.logger.Info("backend accepted authorization code", &logger.LogContext{Data: logData})
	return Result{DisplayName: DisplayName(body), Status: res.StatusCode}, nil
}

// statusText returns the reason phrase the backend sent along with the status code.
func statusText(res *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if text == "" {
		return http.StatusText(res.StatusCode)
	}

	return text
}
