// parser_test.go - Unit tests for the registry, token scan and lookups
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package argonaut

import (
	"fmt"
	"strings"
	"testing"
)

// newTestParser builds the canonical two-flag registry used across tests:
// a mandatory enum-constrained action flag and an optional verbose switch.
func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p := New()
	for _, text := range []string{
		"-a,--action,true,create|update|delete,true",
		"-v,--verbose,false",
	} {
		if err := p.Define(text); err != nil {
			t.Fatalf("Failed to define %q: %v", text, err)
		}
	}
	return p
}

func TestDefineRejectsBadGrammar(t *testing.T) {
	p := New()
	err := p.Define("-a,--action")
	assertCode(t, err, ErrCodeIllegalDefinition)
	if len(p.Definitions()) != 0 {
		t.Error("Failed Define should not register anything")
	}
}

func TestParseHappyPath(t *testing.T) {
	p := newTestParser(t)
	if err := p.Parse([]string{"prog", "-v", "-a", "create"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	value, supplied, err := p.Value("-a")
	if err != nil {
		t.Fatalf("Value lookup failed: %v", err)
	}
	if !supplied || value != "create" {
		t.Errorf("Expected ('create', true), got (%q, %t)", value, supplied)
	}

	verbose, err := p.IsSupplied("-v")
	if err != nil {
		t.Fatalf("IsSupplied failed: %v", err)
	}
	if !verbose {
		t.Error("Expected -v to be supplied")
	}
}

func TestLookupVisibleThroughBothNames(t *testing.T) {
	p := newTestParser(t)
	if err := p.Parse([]string{"prog", "-a", "update", "-v"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Both indexes reference the same definition object.
	short, _, err := p.Value("-a")
	if err != nil {
		t.Fatalf("Short lookup failed: %v", err)
	}
	long, _, err := p.Value("--action")
	if err != nil {
		t.Fatalf("Long lookup failed: %v", err)
	}
	if short != long || short != "update" {
		t.Errorf("Expected same value through both keys, got %q / %q", short, long)
	}

	supplied, err := p.IsSupplied("--verbose")
	if err != nil {
		t.Fatalf("IsSupplied failed: %v", err)
	}
	if !supplied {
		t.Error("Expected --verbose supplied via long name")
	}
}

func TestLookupIsIdempotent(t *testing.T) {
	p := newTestParser(t)
	if err := p.Parse([]string{"prog", "-a", "delete"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		value, supplied, err := p.Value("--action")
		if err != nil || !supplied || value != "delete" {
			t.Fatalf("Lookup %d changed result: (%q, %t, %v)", i, value, supplied, err)
		}
	}
}

func TestParseUnknownFlag(t *testing.T) {
	p := newTestParser(t)
	err := p.Parse([]string{"prog", "--foo", "bar", "-v"})
	assertCode(t, err, ErrCodeIllegalArgument)
	if !strings.Contains(err.Error(), "--foo not defined") {
		t.Errorf("Expected '--foo not defined', got: %v", err)
	}
}

func TestParseBareTokenNotDefined(t *testing.T) {
	p := newTestParser(t)
	err := p.Parse([]string{"prog", "bare"})
	assertCode(t, err, ErrCodeIllegalArgument)
	if !strings.Contains(err.Error(), "bare not defined") {
		t.Errorf("Expected 'bare not defined', got: %v", err)
	}
}

func TestParseMissingValue(t *testing.T) {
	p := newTestParser(t)
	err := p.Parse([]string{"prog", "-a"})
	assertCode(t, err, ErrCodeIllegalArgument)
	if !strings.Contains(err.Error(), "Argument value not supplied for: -a") {
		t.Errorf("Expected missing-value message, got: %v", err)
	}
}

func TestParseFlagShapedValue(t *testing.T) {
	// A value may never look like a flag, even a defined one.
	p := newTestParser(t)
	err := p.Parse([]string{"prog", "-a", "-v"})
	assertCode(t, err, ErrCodeIllegalArgument)
	if !strings.Contains(err.Error(), "Wrong argument value '-v' for argument -a") {
		t.Errorf("Expected wrong-value message, got: %v", err)
	}
}

func TestParseEnumViolation(t *testing.T) {
	// 'drop' does not start with '-', so the scan accepts it as the value;
	// validation rejects it afterwards.
	p := newTestParser(t)
	err := p.Parse([]string{"prog", "-v", "--action", "drop"})
	assertCode(t, err, ErrCodeIllegalArgument)
	if !strings.Contains(err.Error(), "value (drop) is not permit") {
		t.Errorf("Expected enum violation, got: %v", err)
	}
	for _, member := range []string{"create", "update", "delete"} {
		if !strings.Contains(err.Error(), member) {
			t.Errorf("Enum violation should list %q: %v", member, err)
		}
	}
}

func TestParseMandatoryMissing(t *testing.T) {
	p := newTestParser(t)
	err := p.Parse([]string{"prog", "-v"})
	assertCode(t, err, ErrCodeIllegalArgument)
	if !strings.Contains(err.Error(), "-a|--action") {
		t.Errorf("Mandatory error should name the definition: %v", err)
	}
}

func TestParseNoValueFlagNeverConsumes(t *testing.T) {
	p := New()
	if err := p.Define("-v,--verbose,false"); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	// 'stray' must be scanned as its own token, not swallowed by -v.
	err := p.Parse([]string{"prog", "-v", "stray"})
	assertCode(t, err, ErrCodeIllegalArgument)
	if !strings.Contains(err.Error(), "stray not defined") {
		t.Errorf("Expected 'stray not defined', got: %v", err)
	}

	supplied, err := p.IsSupplied("-v")
	if err != nil {
		t.Fatalf("IsSupplied failed: %v", err)
	}
	if !supplied {
		t.Error("-v was scanned before the failure and should be supplied")
	}
	value, _, err := p.Value("-v")
	if err != nil || value != "" {
		t.Errorf("No-value flag should record empty string, got (%q, %v)", value, err)
	}
}

func TestParseRepeatedFlagOverwrites(t *testing.T) {
	p := newTestParser(t)
	if err := p.Parse([]string{"prog", "-a", "create", "--action", "delete"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	value, _, err := p.Value("-a")
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if value != "delete" {
		t.Errorf("Expected last value 'delete', got %q", value)
	}
}

func TestParseSkipsOptionalUnsuppliedEnumFlag(t *testing.T) {
	p := New()
	if err := p.Define("-f,--format,true,json|yaml"); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	// Optional, enum-constrained, never supplied: validation must skip it.
	if err := p.Parse([]string{"prog"}); err != nil {
		t.Errorf("Parse should succeed with nothing supplied: %v", err)
	}
}

func TestParseEmptyVector(t *testing.T) {
	p := New()
	if err := p.Define("-v,--verbose,false"); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if err := p.Parse(nil); err != nil {
		t.Errorf("Parse of empty vector should succeed: %v", err)
	}
}

func TestValueBeforeParse(t *testing.T) {
	p := newTestParser(t)
	_, _, err := p.Value("-a")
	assertCode(t, err, ErrCodeUsage)
	if !strings.Contains(err.Error(), "Command line arguments hasn't been parsed.") {
		t.Errorf("Expected usage message, got: %v", err)
	}

	// IsSupplied propagates the same failure.
	_, err = p.IsSupplied("-a")
	assertCode(t, err, ErrCodeUsage)
}

func TestValueUnknownKey(t *testing.T) {
	p := newTestParser(t)
	if err := p.Parse([]string{"prog", "-a", "create"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	_, _, err := p.Value("--nope")
	assertCode(t, err, ErrCodeIllegalArgument)
	if !strings.Contains(err.Error(), "Argument --nope not defined") {
		t.Errorf("Expected lookup error, got: %v", err)
	}
	_, err = p.IsSupplied("--nope")
	assertCode(t, err, ErrCodeIllegalArgument)
}

func TestParseFailureStillMarksParsed(t *testing.T) {
	p := newTestParser(t)
	if err := p.Parse([]string{"prog", "--foo"}); err == nil {
		t.Fatal("Expected parse failure")
	}
	// Lookups must work for error reporting even after a failed parse.
	supplied, err := p.IsSupplied("-v")
	if err != nil {
		t.Fatalf("Lookup after failed parse should work: %v", err)
	}
	if supplied {
		t.Error("-v was never scanned and should not be supplied")
	}
}

func TestRegistryCollisionLastWriteWins(t *testing.T) {
	// Colliding keys replace independently per index; the registry raises
	// no error and the two maps may diverge.
	p := New()
	if err := p.Define("-a,--action,true"); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if err := p.Define("-a,--apply,false"); err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	if err := p.Parse([]string{"prog", "-a", "--action", "x"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// "-a" now resolves to the no-value apply definition.
	value, supplied, err := p.Value("-a")
	if err != nil || !supplied || value != "" {
		t.Errorf("Expected -a to be the no-value definition, got (%q, %t, %v)", value, supplied, err)
	}
	// "--action" still resolves to the original definition.
	value, supplied, err = p.Value("--action")
	if err != nil || !supplied || value != "x" {
		t.Errorf("Expected --action to keep its own entry, got (%q, %t, %v)", value, supplied, err)
	}
}

func TestFormatDefinitions(t *testing.T) {
	p := newTestParser(t)
	dump := p.FormatDefinitions()

	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 dump lines, got %d: %q", len(lines), dump)
	}
	if !strings.Contains(dump, "-v,--verbose,false,") {
		t.Errorf("Dump missing verbose line: %q", dump)
	}
	if !strings.Contains(dump, "-a,--action,true,") {
		t.Errorf("Dump missing action line: %q", dump)
	}
}

func TestErrorCodeHelper(t *testing.T) {
	if code := ErrorCode(nil); code != "" {
		t.Errorf("Expected empty code for nil, got %q", code)
	}
	if code := ErrorCode(fmt.Errorf("plain")); code != "" {
		t.Errorf("Expected empty code for plain error, got %q", code)
	}
	p := New()
	err := p.Define("broken")
	if code := ErrorCode(err); code != ErrCodeIllegalDefinition {
		t.Errorf("Expected %s, got %q", ErrCodeIllegalDefinition, code)
	}
}
