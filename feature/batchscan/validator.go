package batchscan

import (
	"regexp"
	"strings"
	"time"
)

// Source identifies what triggered a scan submission. The controller treats
// all sources identically; the value is only recorded for history metadata.
type Source string

const (
	SourceManual Source = "manual"
	SourceAuto   Source = "auto"
	SourceQR     Source = "qr"
)

// Rejection reasons returned by Validate.
const (
	ReasonEmptyCode     = "empty code"
	ReasonFormatError   = "format error"
	ReasonDuplicateScan = "duplicate scan"
)

// codePattern is the LPO number shape: prefix, 4-digit year, 6-digit
// sequence, e.g. LPO-2024-001234. Matching is done on the normalized
// (trimmed, upper-cased) code.
var codePattern = regexp.MustCompile(`^LPO-\d{4}-\d{6}$`)

// Outcome is the result of validating a single scan.
type Outcome struct {
	// Code is the normalized scanned code.
	Code string `json:"code"`

	// Accepted reports whether the code passed validation.
	Accepted bool `json:"accepted"`

	// Reason is set iff the code was rejected.
	Reason string `json:"reason,omitempty"`

	// Timestamp is when the scan was validated.
	Timestamp time.Time `json:"timestamp"`
}

// Normalize trims surrounding whitespace and upper-cases a scanned code.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Validate checks a scanned code against the LPO format rule and the current
// session's accepted set. It is a pure function of (code, seen): inserting an
// accepted code into the session is the caller's responsibility.
//
// A blank code is rejected before the format check; duplicate detection is
// scoped to the given set only, never to persisted history.
func Validate(raw string, seen map[string]struct{}) Outcome {
	now := time.Now()
	code := Normalize(raw)

	if code == "" {
		return Outcome{Code: code, Accepted: false, Reason: ReasonEmptyCode, Timestamp: now}
	}
	if !codePattern.MatchString(code) {
		return Outcome{Code: code, Accepted: false, Reason: ReasonFormatError, Timestamp: now}
	}
	if _, dup := seen[code]; dup {
		return Outcome{Code: code, Accepted: false, Reason: ReasonDuplicateScan, Timestamp: now}
	}

	return Outcome{Code: code, Accepted: true, Timestamp: now}
}
