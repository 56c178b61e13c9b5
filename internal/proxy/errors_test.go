package proxy

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUnreachableWrapping(t *testing.T) {
	cause := fmt.Errorf("dial tcp 127.0.0.1:1: connect: connection refused")
	err := unreachable(cause)

	if !errors.Is(err, ErrUnreachable) {
		t.Error("expected errors.Is(err, ErrUnreachable)")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected transport detail in message, got %q", err.Error())
	}
}

func TestBadStatusError_Message(t *testing.T) {
	err := &BadStatusError{Code: 503, Body: "maintenance"}
	want := "proxy returned 503: maintenance"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestBadStatusError_Unauthorized(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{401, true},
		{403, true},
		{404, false},
		{500, false},
	}
	for _, tt := range tests {
		err := &BadStatusError{Code: tt.code}
		if got := err.Unauthorized(); got != tt.want {
			t.Errorf("code %d: expected Unauthorized()=%v, got %v", tt.code, tt.want, got)
		}
	}
}

func TestMalformedBodyError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &MalformedBodyError{Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected MalformedBodyError to unwrap its cause")
	}
	if !strings.Contains(err.Error(), "malformed proxy response") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
