package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestClientKeyPrefersUser(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), ContextUserID, "42"))
	r.Header.Set("X-Forwarded-For", "10.0.0.1")

	if got := clientKey(r); got != "uid:42" {
		t.Errorf("clientKey = %q, want %q", got, "uid:42")
	}
}

func TestClientKeyForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")

	if got := clientKey(r); got != "ip:10.0.0.1" {
		t.Errorf("clientKey = %q, want %q", got, "ip:10.0.0.1")
	}
}

func TestClientKeyRemoteAddrFallback(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.7:1234"

	if got := clientKey(r); got != "ip:192.0.2.7:1234" {
		t.Errorf("clientKey = %q, want %q", got, "ip:192.0.2.7:1234")
	}
}
