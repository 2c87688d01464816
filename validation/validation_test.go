package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/fetchkit/errors"
)

type sample struct {
	Name    string `mapstructure:"name" validate:"required"`
	Timeout int    `mapstructure:"timeout" validate:"min=0"`
}

func TestValidate_OK(t *testing.T) {
	if err := Validate(&sample{Name: "fetch"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	err := Validate(&sample{Timeout: -1})
	if err == nil {
		t.Fatal("expected error")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeValidation {
		t.Errorf("expected validation code, got %s", appErr.Code)
	}
	for _, want := range []string{"name: is required", "timeout: must be at least 0"} {
		if !strings.Contains(appErr.Message, want) {
			t.Errorf("message missing %q: %s", want, appErr.Message)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("EnableH2C"); got != "enable_h2_c" {
		t.Errorf("unexpected snake case: %s", got)
	}
	if got := toSnakeCase("Timeout"); got != "timeout" {
		t.Errorf("unexpected snake case: %s", got)
	}
}
