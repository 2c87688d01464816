package fetch

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := NewValidationError("host must not be empty")
	if !strings.Contains(err.Error(), "validation") {
		t.Errorf("expected code in message, got %q", err.Error())
	}

	statusErr := ClassifyStatusCode(503, nil)
	if !strings.Contains(statusErr.Error(), "503") {
		t.Errorf("expected status in message, got %q", statusErr.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewConnectionError(cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestClassifyStatusCode(t *testing.T) {
	cases := []struct {
		status    int
		wantCode  ErrorCode
		wantNil   bool
		retryable bool
	}{
		{200, 0, true, false},
		{204, 0, true, false},
		{299, 0, true, false},
		{401, ErrCodeAuth, false, false},
		{403, ErrCodeAuth, false, false},
		{404, ErrCodeNotFound, false, false},
		{422, ErrCodeValidation, false, false},
		{429, ErrCodeRateLimit, false, true},
		{500, ErrCodeServer, false, true},
		{503, ErrCodeServer, false, true},
	}

	for _, tc := range cases {
		err := ClassifyStatusCode(tc.status, []byte("body"))
		if tc.wantNil {
			if err != nil {
				t.Errorf("status %d: expected nil, got %v", tc.status, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("status %d: expected error", tc.status)
			continue
		}
		if err.Code != tc.wantCode {
			t.Errorf("status %d: expected %s, got %s", tc.status, tc.wantCode, err.Code)
		}
		if err.Retryable != tc.retryable {
			t.Errorf("status %d: expected retryable=%v", tc.status, tc.retryable)
		}
		if string(err.Body) != "body" {
			t.Errorf("status %d: body not carried", tc.status)
		}
	}
}

func TestPredicates(t *testing.T) {
	if !IsTimeout(NewTimeoutError(errors.New("deadline"))) {
		t.Error("expected IsTimeout")
	}
	if !IsConnection(NewConnectionError(errors.New("refused"))) {
		t.Error("expected IsConnection")
	}
	if !IsValidation(NewValidationError("bad")) {
		t.Error("expected IsValidation")
	}
	if !IsRetryable(NewTimeoutError(errors.New("deadline"))) {
		t.Error("expected timeout to be retryable")
	}
	if IsRetryable(NewValidationError("bad")) {
		t.Error("validation must not be retryable")
	}
	if IsTimeout(errors.New("plain")) {
		t.Error("plain errors must not match")
	}
}
