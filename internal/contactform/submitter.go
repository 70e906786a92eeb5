package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/validation"
)

// DefaultTimeout bounds a single submission round trip.
const DefaultTimeout = 15 * time.Second

const (
	successText = "Thank you! Your message has been sent."
	errorText   = "Something went wrong. Please try again."
	invalidText = "Please fix the highlighted fields."
)

// ErrInFlight is returned when Submit is called while another submission
// from the same Submitter has not finished.
var ErrInFlight = errors.New("contactform: submission already in progress")

// Status is the outcome a form UI renders.
type Status int

const (
	StatusInvalid Status = iota + 1
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome describes the result of a submission attempt.
type Outcome struct {
	Status      Status
	Message     string
	FieldErrors FieldErrors
	// Issues are the server-side validation issues, when the server rejected the form.
	Issues    []validation.Issue
	Contact   *model.ContactMessage
	Simulated bool
}

// NetworkError means the request never reached the server or the response
// never arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "contactform: network: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx answer from the API.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("contactform: server responded %d: %s", e.StatusCode, e.Message)
}

// Config configures a Submitter.
type Config struct {
	// BaseURL is the API origin, e.g. "https://example.com".
	BaseURL string
	// Timeout bounds each submission; DefaultTimeout when zero.
	Timeout time.Duration
	// Simulate skips the network and reports success. Development only.
	Simulate bool
	// HTTPClient overrides the default client; its Timeout is left untouched.
	HTTPClient *http.Client
}

// Submitter posts forms to POST /api/contact.
type Submitter struct {
	client   *http.Client
	endpoint string
	simulate bool
	inFlight atomic.Bool
}

// NewSubmitter validates cfg and builds a Submitter.
func NewSubmitter(cfg Config) (*Submitter, error) {
	if cfg.BaseURL == "" && !cfg.Simulate {
		return nil, errors.New("contactform: BaseURL is required")
	}
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Submitter{
		client:   client,
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/api/contact",
		simulate: cfg.Simulate,
	}, nil
}

// InFlight reports whether a submission is currently running. A UI uses it
// to disable the submit button.
func (s *Submitter) InFlight() bool {
	return s.inFlight.Load()
}

// Submit checks f locally and, if it passes, sends it. On success f is
// cleared; on any failure f is left as typed so the visitor can retry.
// The returned Outcome is always populated; err explains non-success cases.
func (s *Submitter) Submit(ctx context.Context, f *Form) (Outcome, error) {
	if fe := f.Validate(); fe != nil {
		return Outcome{Status: StatusInvalid, Message: invalidText, FieldErrors: fe}, nil
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return Outcome{Status: StatusError, Message: errorText}, ErrInFlight
	}
	defer s.inFlight.Store(false)

	if s.simulate {
		slog.DebugContext(ctx, "simulated contact submission", "email", f.Email)
		f.Reset()
		return Outcome{Status: StatusSuccess, Message: successText, Simulated: true}, nil
	}

	contact, err := s.post(ctx, f)
	if err != nil {
		out := Outcome{Status: StatusError, Message: errorText}
		var rej *rejectedError
		if errors.As(err, &rej) {
			out.Issues = rej.issues
			out.FieldErrors = fieldErrorsFrom(rej.issues)
			err = rej.ServerError
		}
		return out, err
	}

	f.Reset()
	return Outcome{Status: StatusSuccess, Message: successText, Contact: contact}, nil
}

type apiResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Contact *model.ContactMessage `json:"contact"`
	Errors  []validation.Issue    `json:"errors"`
}

// rejectedError carries server validation issues alongside the ServerError.
type rejectedError struct {
	*ServerError
	issues []validation.Issue
}

func (s *Submitter) post(ctx context.Context, f *Form) (*model.ContactMessage, error) {
	body, err := json.Marshal(f.payload())
	if err != nil {
		return nil, fmt.Errorf("contactform: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("contactform: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	var parsed apiResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &ServerError{StatusCode: resp.StatusCode, Message: parsed.Message}
		if se.Message == "" {
			se.Message = http.StatusText(resp.StatusCode)
		}
		if len(parsed.Errors) > 0 {
			return nil, &rejectedError{ServerError: se, issues: parsed.Errors}
		}
		return nil, se
	}
	if decodeErr != nil {
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: "unreadable response"}
	}
	if !parsed.Success {
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: parsed.Message}
	}
	return parsed.Contact, nil
}

func fieldErrorsFrom(issues []validation.Issue) FieldErrors {
	fe := FieldErrors{}
	for _, is := range issues {
		if len(is.Path) == 0 {
			continue
		}
		if _, ok := fe[is.Path[0]]; !ok {
			fe[is.Path[0]] = is.Message
		}
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}
