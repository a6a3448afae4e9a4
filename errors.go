// errors.go: Error codes for argonaut operations
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package argonaut

import "github.com/agilira/go-errors"

// Error codes carried by every failure surfaced from this package.
const (
	// ErrCodeIllegalDefinition marks malformed definition grammar: wrong
	// field count, bad name prefixes, unparseable boolean tokens.
	ErrCodeIllegalDefinition = "ARGONAUT_ILLEGAL_DEFINITION"

	// ErrCodeIllegalArgument marks runtime parse and validation failures:
	// unknown flags, missing or flag-shaped values, missing mandatory
	// flags, values outside a permitted set, lookups of undefined keys.
	ErrCodeIllegalArgument = "ARGONAUT_ILLEGAL_ARGUMENT"

	// ErrCodeUsage marks API misuse, such as querying values before Parse.
	ErrCodeUsage = "ARGONAUT_USAGE_ERROR"
)

// ErrorCode extracts the argonaut error code from err.
// Returns an empty string for nil errors and errors without a code.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	if coder, ok := err.(errors.ErrorCoder); ok {
		return string(coder.ErrorCode())
	}
	return ""
}
