package id

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewContractNumber returns a time-based token like CT-20260828-a1b2c3.
// Uniqueness across concurrent callers comes from the random suffix;
// the unique index on contracts.contract_number is the real guarantee.
func NewContractNumber(t time.Time) string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return "CT-" + t.UTC().Format("20060102") + "-" + hex.EncodeToString(b)
}
