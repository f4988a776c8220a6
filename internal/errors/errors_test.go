package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeAPI,
				Message: "Ticket not found",
				Status:  http.StatusNotFound,
			},
			want: "Ticket not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeNetwork,
				Message: "request failed",
				Cause:   errors.New("connection refused"),
			},
			want: "request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Network(cause, "request failed")

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through AppError")
	}
}

func TestAPI(t *testing.T) {
	err := API(http.StatusForbidden, "Not authorized to update this ticket")
	if err.Code != ErrCodeAPI {
		t.Errorf("API().Code = %v, want %v", err.Code, ErrCodeAPI)
	}
	if err.Status != http.StatusForbidden {
		t.Errorf("API().Status = %v, want %v", err.Status, http.StatusForbidden)
	}
	if !IsAPI(err) || IsNetwork(err) {
		t.Error("API error misclassified")
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "msg") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestPredicates_ThroughWrapping(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"network", Network(errors.New("eof"), "x"), IsNetwork},
		{"api", API(http.StatusBadRequest, "x"), IsAPI},
		{"validation", Validation("x"), IsValidation},
		{"forbidden", Forbidden("x"), IsForbidden},
		{"unauthenticated", Unauthenticated("x"), IsUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			if !tt.check(wrapped) {
				t.Errorf("predicate failed for wrapped %s error", tt.name)
			}
		})
	}
}

func TestGetters(t *testing.T) {
	err := fmt.Errorf("update: %w", API(http.StatusNotFound, "Ticket not found"))

	if got := GetCode(err); got != ErrCodeAPI {
		t.Errorf("GetCode() = %v", got)
	}
	if got := GetStatus(err); got != http.StatusNotFound {
		t.Errorf("GetStatus() = %v", got)
	}
	if got := Detail(err); got != "Ticket not found" {
		t.Errorf("Detail() = %q", got)
	}
	if got := Detail(errors.New("plain")); got != "plain" {
		t.Errorf("Detail(plain) = %q", got)
	}
	if got := GetField(ValidationField("title", "title is required")); got != "title" {
		t.Errorf("GetField() = %q", got)
	}
	if GetCode(errors.New("plain")) != "" || GetStatus(nil) != 0 {
		t.Error("non-AppError should yield zero values")
	}
}
