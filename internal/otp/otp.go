// Package otp issues and verifies short numeric one-time codes and keeps
// the signup staging entries they guard. All state lives in an injected
// key-value store with TTL; there are no process-wide singletons.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// TTL is the fixed validity window for every issued code and staging entry.
const TTL = 300 * time.Second

// Codes are four digits with a non-zero leading digit: [1000, 9999].
const (
	codeMin  = 1000
	codeSpan = 9000
)

// GenerateCode draws a uniform four-digit numeric code.
func GenerateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%d", codeMin+n.Int64())
}

// Fresh reports whether a code issued at issuedAt is still inside the
// validity window at now.
func Fresh(issuedAt, now time.Time) bool {
	return now.Sub(issuedAt) <= TTL
}
