// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-14
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: Added chain depth and code propagation cases

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", trace[0].Function)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("substr failed").WithCode(CodeValueOutOfRange),
			message:  "query failed",
			wantMsg:  "query failed: substr failed",
			wantCode: CodeValueOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped error")
			}
		})
	}
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+3; i++ {
		err = Wrap(err, "layer")
	}

	mdwErr := err.(*Error)
	if mdwErr.Details()["truncated"] != true {
		t.Errorf("deep chain should be truncated, details = %v", mdwErr.Details())
	}
	if !strings.Contains(mdwErr.Error(), "root") {
		t.Errorf("truncated error should mention the root cause: %q", mdwErr.Error())
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	err := New("bad position").WithCode(CodeValueOutOfRange)
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}

	err = New("bad config").WithSeverity(SeverityCritical).WithCode(CodeInvalidConfig)
	if err.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", err.Severity())
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("pos", 3).WithDetails(map[string]interface{}{"size": 2})

	details := err.Details()
	details["pos"] = 99

	if err.Details()["pos"] != 3 {
		t.Error("Details() must return a copy")
	}
	if err.Details()["size"] != 2 {
		t.Errorf("size detail = %v, want 2", err.Details()["size"])
	}
}

func TestHasCode(t *testing.T) {
	inner := New("inner").WithCode(CodeValueOutOfRange)
	outer := Wrap(inner, "outer").WithCode(CodeInvalidInput)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct code", inner, CodeValueOutOfRange, true},
		{"code in chain", outer, CodeValueOutOfRange, true},
		{"outer code", outer, CodeInvalidInput, true},
		{"missing code", inner, CodeNotFound, false},
		{"standard error", errors.New("plain"), CodeUnknown, false},
		{"nil error", nil, CodeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on standard error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity on standard error should be SeverityMedium")
	}

	err := New("x").WithCode(CodeInvalidConfig)
	if GetCode(err) != CodeInvalidConfig {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetSeverity(err) != SeverityHigh {
		t.Errorf("GetSeverity() = %v", GetSeverity(err))
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeValueOutOfRange, "validation"},
		{CodeInvalidConfig, "configuration"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s should be valid", tt.code)
		}
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := New("position out of range").
		WithCode(CodeValueOutOfRange).
		WithOperation("substr").
		WithDetail("value", 7).
		WithDetail("max", 3)

	s := err.String()
	for _, want := range []string{"Code: VALUE_OUT_OF_RANGE", "Operation: substr", "Details: {max=3, value=7}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(raw, &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	if decoded["code"] != "VALUE_OUT_OF_RANGE" || decoded["severity"] != "low" || decoded["operation"] != "substr" {
		t.Errorf("unexpected JSON document: %s", raw)
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrap(b *testing.B) {
	base := New("base").WithCode(CodeValueOutOfRange)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base, "wrapped")
	}
}
