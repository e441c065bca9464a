package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestGetType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"not found", NotFoundf("system %d not found", 4), ErrorTypeNotFound},
		{"validation", Validation("bad class"), ErrorTypeValidation},
		{"wrapped validation", WrapValidation("bad seed", errors.New("strconv")), ErrorTypeValidation},
		{"forbidden", Forbidden("admin access required"), ErrorTypeForbidden},
		{"rate limited", TooManyRequests("slow down"), ErrorTypeTooManyRequests},
		{"plain error", errors.New("boom"), ErrorTypeInternal},
		{"fmt wrapped", fmt.Errorf("outer: %w", Unauthorized("no token")), ErrorTypeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetType(tt.err); got != tt.want {
				t.Errorf("GetType() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAppErrorMessageAndUnwrap(t *testing.T) {
	err := WrapInternal("failed to save system", sql.ErrConnDone)
	if err.Error() != "failed to save system: "+sql.ErrConnDone.Error() {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("wrapped error should unwrap to sql.ErrConnDone")
	}

	plain := Validation("class is required")
	if plain.Error() != "class is required" {
		t.Fatalf("unexpected message: %q", plain.Error())
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("explorer not found"))
	if !Is(err, ErrorTypeNotFound) {
		t.Fatalf("Is should see through fmt wrapping")
	}
	if Is(err, ErrorTypeValidation) {
		t.Fatalf("Is matched the wrong type")
	}
	if Is(errors.New("plain"), ErrorTypeInternal) {
		t.Fatalf("plain errors are not AppErrors")
	}
}

func TestPublicMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation keeps cause", WrapValidation("seed must be an unsigned integer", errors.New("invalid syntax")), "seed must be an unsigned integer: invalid syntax"},
		{"internal hides cause", WrapInternal("failed to save system", sql.ErrConnDone), "failed to save system"},
		{"external hides cause", WrapExternal("failed to store oauth state", errors.New("dial tcp: refused")), "failed to store oauth state"},
		{"wrapped app error", fmt.Errorf("handler: %w", NotFound("system not found")), "system not found"},
		{"plain error", errors.New("pq: connection reset"), "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PublicMessage(tt.err); got != tt.want {
				t.Errorf("PublicMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
