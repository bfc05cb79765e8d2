package errors

import (
	"bytes"
	"fmt"
	"text/template"
)

type Code string

func (c Code) New(msg string) *Error {
	return &Error{
		Code:    c,
		Message: msg,
		Details: make(map[string]any),
	}
}

func WithPrefix(prefix string) func() Code {
	counter := int64(0)
	return func() Code {
		counter++
		return Code(fmt.Sprintf("%s_%04d", prefix, counter))
	}
}

type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Cause   error          `json:"-"`
}

func (e *Error) Error() string {
	t, err := template.New("error").Parse(e.Message)
	if err != nil {
		return e.format(e.Message)
	}

	var output bytes.Buffer
	if err = t.Execute(&output, e.Details); err != nil {
		return e.format(e.Message)
	}

	return e.format(output.String())
}

func (e *Error) format(msg string) string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// WithDetail returns a copy so that the package-level error values stay
// untouched and can be matched with Is across call sites.
func (e *Error) WithDetail(key string, value any) *Error {
	clone := e.clone()
	clone.Details[key] = value
	return clone
}

func (e *Error) WithCause(err error) *Error {
	clone := e.clone()
	clone.Cause = err
	return clone
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func (e *Error) clone() *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}
