package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestCodeNew(t *testing.T) {
	code := Code("TEST_0001")
	err := code.New("something broke")

	if err.Code != code {
		t.Errorf("expected code %s, got %s", code, err.Code)
	}
	if !strings.Contains(err.Error(), "something broke") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestWithPrefix(t *testing.T) {
	newCode := WithPrefix("APP")

	first := newCode()
	second := newCode()

	if first != "APP_0001" {
		t.Errorf("expected APP_0001, got %s", first)
	}
	if second != "APP_0002" {
		t.Errorf("expected APP_0002, got %s", second)
	}
}

func TestErrorTemplateRendering(t *testing.T) {
	base := Code("TPL_0001").New("setting {{.key}} has value {{.value}}")

	err := base.WithDetail("key", "AppSettings:Foo").WithDetail("value", "bar")

	msg := err.Error()
	if !strings.Contains(msg, "AppSettings:Foo") {
		t.Errorf("expected key in message, got %s", msg)
	}
	if !strings.Contains(msg, "bar") {
		t.Errorf("expected value in message, got %s", msg)
	}
}

func TestWithDetailDoesNotMutateOriginal(t *testing.T) {
	base := Code("IMM_0001").New("value is {{.value}}")

	first := base.WithDetail("value", "one")
	second := base.WithDetail("value", "two")

	if len(base.Details) != 0 {
		t.Errorf("base error details mutated: %v", base.Details)
	}
	if !strings.Contains(first.Error(), "one") {
		t.Errorf("first error lost its detail: %s", first.Error())
	}
	if !strings.Contains(second.Error(), "two") {
		t.Errorf("second error lost its detail: %s", second.Error())
	}
}

func TestIsMatchesByCode(t *testing.T) {
	base := Code("MATCH_0001").New("base message")
	derived := base.WithDetail("key", "x").WithCause(fmt.Errorf("io failure"))

	if !Is(derived, base) {
		t.Error("expected derived error to match its base by code")
	}
	if Is(derived, Code("MATCH_0002").New("other")) {
		t.Error("expected no match across different codes")
	}
	if Is(nil, nil) {
		t.Error("expected Is(nil, nil) = false")
	}
}

func TestWithCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Code("CAUSE_0001").New("load failed").WithCause(cause)

	if Unwrap(err) != cause {
		t.Errorf("expected cause %v, got %v", cause, Unwrap(err))
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected cause in message, got %s", err.Error())
	}
}

func TestGetErrorCode(t *testing.T) {
	err := Code("GET_0001").New("msg").WithDetail("k", "v")

	if GetErrorCode(err) != "GET_0001" {
		t.Errorf("expected GET_0001, got %s", GetErrorCode(err))
	}
	if GetErrorCode(fmt.Errorf("plain")) != "" {
		t.Error("expected empty code for plain error")
	}
}
