package errors

import (
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrNotFound, ExitUser),
			want: "resource not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(Wrap(ErrInvalidConfig, "loading config"), ExitUser),
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
		{
			name: "success code with error",
			err:  NewExitError(New("unexpected"), ExitSuccess),
			want: "unexpected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrWrongContext, ExitUser),
			wantTarget: ErrWrongContext,
			wantIs:     true,
		},
		{
			name:       "unwrap through wrapped error",
			err:        NewExitError(Wrapf(ErrNotFound, "icon %q", "1:2"), ExitUser),
			wantTarget: ErrNotFound,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrNotFound, ExitUser),
			wantTarget: ErrInvalidConfig,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitUser),
			wantTarget: ErrNotFound,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestExitError_As(t *testing.T) {
	err := fmt.Errorf("command failed: %w", NewSystemError(ErrNotFound, "check the path"))

	var target *ExitError
	if !As(err, &target) {
		t.Fatal("As() should find ExitError through fmt wrapping")
	}
	if target.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", target.Code, ExitSystem)
	}
	if target.Suggestion != "check the path" {
		t.Errorf("Suggestion = %q, want %q", target.Suggestion, "check the path")
	}
}

func TestNewConstructors(t *testing.T) {
	t.Run("NewExitErrorWithSuggestion", func(t *testing.T) {
		err := New("oops")
		e := NewExitErrorWithSuggestion(err, 123, "try this")
		if e.Err != err {
			t.Errorf("Err = %v, want %v", e.Err, err)
		}
		if e.Code != 123 {
			t.Errorf("Code = %d, want 123", e.Code)
		}
	})

	t.Run("NewUserError", func(t *testing.T) {
		e := NewUserError(New("user error"), "check input")
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "check input" {
			t.Errorf("Suggestion = %q, want 'check input'", e.Suggestion)
		}
	})

	t.Run("NewConfigError", func(t *testing.T) {
		e := NewConfigError(New("config error"))
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "Run: iconaudit config show" {
			t.Errorf("Suggestion = %q, want 'Run: iconaudit config show'", e.Suggestion)
		}
	})
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrWrongContext, "open the Icons page")
	if !Is(err, ErrWrongContext) {
		t.Error("hinted error should still match its sentinel")
	}
	hints := GetAllHints(err)
	if len(hints) != 1 || hints[0] != "open the Icons page" {
		t.Errorf("GetAllHints() = %v, want [open the Icons page]", hints)
	}
}
