// Package validation is the single gate between untyped request bodies and
// typed domain input. Nothing downstream of ParseContact re-reads raw input.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/folio/backend/internal/model"
)

// Issue codes. They follow the shape the frontend already renders.
const (
	CodeInvalidType   = "invalid_type"
	CodeTooSmall      = "too_small"
	CodeInvalidString = "invalid_string"
	CodeHoneypot      = "honeypot"
	CodeInvalidJSON   = "invalid_json"
)

// HoneypotField is the hidden form field bots tend to fill in.
const HoneypotField = "bot-field"

// contactFields lists the accepted keys in the order issues are reported.
var contactFields = []string{"name", "email", "message"}

var fieldMessages = map[string]string{
	"name":    "Name is required",
	"email":   "Invalid email address",
	"message": "Message is required",
}

var contactValidate *validator.Validate

func init() {
	contactValidate = validator.New(validator.WithRequiredStructEnabled())
	contactValidate.RegisterTagNameFunc(jsonFieldName)
	_ = contactValidate.RegisterValidation("email_tld", validateEmailTLD)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// validateEmailTLD requires a dotted domain. The built-in email tag also
// accepts a trailing dot, which no mailbox uses.
func validateEmailTLD(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	at := strings.LastIndexByte(s, '@')
	if at < 0 {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

// IsEmail reports whether s is an address the contact form accepts.
func IsEmail(s string) bool {
	return contactValidate.Var(s, "email,email_tld") == nil
}

// Issue describes one violated field.
type Issue struct {
	Code     string   `json:"code"`
	Path     []string `json:"path"`
	Message  string   `json:"message"`
	Expected string   `json:"expected,omitempty"`
	Received string   `json:"received,omitempty"`
}

// ValidationError enumerates every field a submission got wrong.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, strings.Join(is.Path, ".")+": "+is.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the names of the fields with at least one issue.
func (e *ValidationError) Fields() []string {
	var out []string
	seen := map[string]bool{}
	for _, is := range e.Issues {
		if len(is.Path) == 0 || seen[is.Path[0]] {
			continue
		}
		seen[is.Path[0]] = true
		out = append(out, is.Path[0])
	}
	return out
}

// InvalidJSON builds the error returned when the body is not a JSON object.
func InvalidJSON(detail string) *ValidationError {
	return &ValidationError{Issues: []Issue{{
		Code:    CodeInvalidJSON,
		Path:    []string{},
		Message: "Request body must be a JSON object: " + detail,
	}}}
}

// ParseContact validates an untyped submission and returns the trimmed
// name, email and message. Unknown keys are dropped.
func ParseContact(raw map[string]any) (model.ContactInput, error) {
	var in model.ContactInput
	issues := map[string]Issue{}

	values := map[string]*string{
		"name":    &in.Name,
		"email":   &in.Email,
		"message": &in.Message,
	}
	for _, field := range contactFields {
		v, ok := raw[field]
		if !ok || v == nil {
			issues[field] = Issue{
				Code:     CodeInvalidType,
				Path:     []string{field},
				Message:  "Required",
				Expected: "string",
				Received: "undefined",
			}
			continue
		}
		s, ok := v.(string)
		if !ok {
			issues[field] = Issue{
				Code:     CodeInvalidType,
				Path:     []string{field},
				Message:  fmt.Sprintf("Expected string, received %s", typeName(v)),
				Expected: "string",
				Received: typeName(v),
			}
			continue
		}
		*values[field] = strings.TrimSpace(s)
	}

	if err := contactValidate.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return model.ContactInput{}, err
		}
		for _, fe := range verrs {
			field := fe.Field()
			if _, done := issues[field]; done {
				continue
			}
			issues[field] = issueFor(field, fe.Tag())
		}
	}

	var out []Issue
	for _, field := range contactFields {
		if is, ok := issues[field]; ok {
			out = append(out, is)
		}
	}
	if honeypotFilled(raw[HoneypotField]) {
		out = append(out, Issue{
			Code:    CodeHoneypot,
			Path:    []string{HoneypotField},
			Message: "Submission rejected",
		})
	}
	if len(out) > 0 {
		return model.ContactInput{}, &ValidationError{Issues: out}
	}
	return in, nil
}

func issueFor(field, tag string) Issue {
	code := CodeTooSmall
	if field == "email" {
		code = CodeInvalidString
	}
	is := Issue{Code: code, Path: []string{field}, Message: fieldMessages[field]}
	switch tag {
	case "required", "email", "email_tld":
	default:
		is.Message = fmt.Sprintf("%s failed %q", field, tag)
	}
	return is
}

// honeypotFilled reports whether the hidden field carries anything other
// than null or blank text.
func honeypotFilled(v any) bool {
	switch hp := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(hp) != ""
	default:
		return true
	}
}

// typeName names a decoded JSON value the way a JS client would.
func typeName(v any) string {
	switch v.(type) {
	case float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
