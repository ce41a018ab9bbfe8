package otp

import (
	"strconv"
	"testing"
	"time"
)

func TestGenerateCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := GenerateCode()
		if len(code) != 4 {
			t.Fatalf("code %q is not 4 digits", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric", code)
		}
		if n < 1000 || n > 9999 {
			t.Fatalf("code %d out of range [1000, 9999]", n)
		}
	}
}

func TestFreshBoundary(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if !Fresh(issued, issued.Add(300*time.Second)) {
		t.Error("code at exactly 300s should still be fresh")
	}
	if Fresh(issued, issued.Add(301*time.Second)) {
		t.Error("code at 301s should be stale")
	}
}
