package security

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("request over the limit should be denied")
	}
	// Other clients have their own bucket.
	if !rl.Allow("5.6.7.8") {
		t.Error("separate client should not share the bucket")
	}
}

func TestRateLimiterRefill(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("1.2.3.4") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("second request should be denied")
	}
	time.Sleep(15 * time.Millisecond)
	if !rl.Allow("1.2.3.4") {
		t.Error("bucket should refill after the window")
	}
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:5000"
	if got := GetClientIP(r); got != "10.0.0.1:5000" {
		t.Errorf("GetClientIP = %q, want RemoteAddr", got)
	}

	r.Header.Set("X-Real-IP", "9.9.9.9")
	if got := GetClientIP(r); got != "9.9.9.9" {
		t.Errorf("GetClientIP = %q, want X-Real-IP", got)
	}

	r.Header.Set("X-Forwarded-For", "8.8.8.8")
	if got := GetClientIP(r); got != "8.8.8.8" {
		t.Errorf("GetClientIP = %q, want X-Forwarded-For", got)
	}
}
