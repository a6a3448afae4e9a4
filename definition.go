// definition.go: Argument definition grammar and validation
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package argonaut

import (
	"fmt"
	"strings"

	"github.com/agilira/go-errors"
)

// Fields are trimmed of ASCII space and tab only, not general whitespace.
const fieldCutset = " \t"

// Definition declares one recognized command-line flag: a short/long name
// pair, whether the flag consumes the following token as its value, an
// optional set of permitted values and whether the flag is mandatory.
// It also records the runtime state populated by Parser.Parse: the
// supplied value, kept distinct from "never supplied".
//
// The zero value is not usable; build definitions with ParseDefinition.
type Definition struct {
	shortName  string
	longName   string
	hasValue   bool
	enumValues map[string]struct{}
	mandatory  bool

	value    string
	supplied bool
}

// ParseDefinition parses one compact definition line:
//
//	shortName,longName,hasValue[,enumValues][,isMandatory]
//
// The line is split on commas into at most 5 segments and each field is
// trimmed of spaces and tabs. The short name must start with a single '-',
// the long name with '--'. hasValue and isMandatory follow the boolean
// grammar (TRUE/Y/YES/T, FALSE/N/NO/F, case-insensitive). enumValues is a
// pipe-separated set; a blank or absent field means unconstrained.
// isMandatory defaults to false.
//
// Any violation fails with ErrCodeIllegalDefinition.
func ParseDefinition(text string) (*Definition, error) {
	fields := strings.SplitN(text, ",", 5)
	if len(fields) < 3 {
		return nil, errors.New(ErrCodeIllegalDefinition,
			fmt.Sprintf("definition needs 3 to 5 fields, got %d: %s", len(fields), text))
	}
	for i, f := range fields {
		fields[i] = strings.Trim(f, fieldCutset)
	}

	def := &Definition{
		shortName:  fields[0],
		longName:   fields[1],
		enumValues: make(map[string]struct{}),
	}
	if !strings.HasPrefix(def.shortName, "-") || strings.HasPrefix(def.shortName, "--") {
		return nil, errors.New(ErrCodeIllegalDefinition,
			"short name must start with a single '-': "+def.shortName)
	}
	if !strings.HasPrefix(def.longName, "--") {
		return nil, errors.New(ErrCodeIllegalDefinition,
			"long name must start with '--': "+def.longName)
	}

	hasValue, err := parseBoolToken(fields[2])
	if err != nil {
		return nil, err
	}
	def.hasValue = hasValue

	if len(fields) > 3 && fields[3] != "" {
		for _, member := range strings.Split(fields[3], "|") {
			def.enumValues[strings.Trim(member, fieldCutset)] = struct{}{}
		}
	}

	if len(fields) > 4 {
		mandatory, err := parseBoolToken(fields[4])
		if err != nil {
			return nil, err
		}
		def.mandatory = mandatory
	}

	return def, nil
}

// parseBoolToken parses the boolean grammar shared by the hasValue and
// isMandatory fields. Anything outside the accepted tokens fails with
// ErrCodeIllegalDefinition carrying the offending token.
func parseBoolToken(token string) (bool, error) {
	switch strings.ToUpper(token) {
	case "TRUE", "Y", "YES", "T":
		return true, nil
	case "FALSE", "N", "NO", "F":
		return false, nil
	}
	return false, errors.New(ErrCodeIllegalDefinition, "not a boolean token: "+token)
}

// Name returns the canonical identity used in error messages:
// "<shortName>|<longName>".
func (d *Definition) Name() string { return d.shortName + "|" + d.longName }

// ShortName returns the single-dash name, e.g. "-a".
func (d *Definition) ShortName() string { return d.shortName }

// LongName returns the double-dash name, e.g. "--action".
func (d *Definition) LongName() string { return d.longName }

// HasValue reports whether the flag consumes the following token.
func (d *Definition) HasValue() bool { return d.hasValue }

// IsMandatory reports whether the flag must be supplied.
func (d *Definition) IsMandatory() bool { return d.mandatory }

// IsEnumConstrained reports whether the supplied value must belong to a
// fixed permitted set.
func (d *Definition) IsEnumConstrained() bool { return len(d.enumValues) > 0 }

// IsSupplied reports whether a value was recorded during parsing. No-value
// flags record the empty string, which still counts as supplied.
func (d *Definition) IsSupplied() bool { return d.supplied }

// Value returns the recorded value and whether one was recorded at all.
func (d *Definition) Value() (string, bool) { return d.value, d.supplied }

// EnumValuesString joins the permitted values with '|'. Only membership is
// contractual; the order is unspecified.
func (d *Definition) EnumValuesString() string {
	members := make([]string, 0, len(d.enumValues))
	for member := range d.enumValues {
		members = append(members, member)
	}
	return strings.Join(members, "|")
}

// String renders the definition in the compact dump form used by
// Parser.FormatDefinitions.
func (d *Definition) String() string {
	return fmt.Sprintf("%s,%s,%t,%s", d.shortName, d.longName, d.hasValue, d.EnumValuesString())
}

// setValue records a supplied value, overwriting any earlier one.
func (d *Definition) setValue(value string) {
	d.value = value
	d.supplied = true
}

// Validate checks the recorded runtime state against the declaration.
// Three checks run in order, each failing with ErrCodeIllegalArgument:
// a no-value flag that recorded a value while enum-constrained (the enum
// condition is part of the historical contract), a mandatory flag never
// supplied, and a supplied value outside the permitted set.
func (d *Definition) Validate() error {
	if !d.hasValue && d.supplied && d.IsEnumConstrained() {
		return errors.New(ErrCodeIllegalArgument, fmt.Sprintf(
			"%s can not carry a value, but is constrained to: %s", d.Name(), d.EnumValuesString()))
	}
	if d.mandatory && !d.supplied {
		return errors.New(ErrCodeIllegalArgument, d.Name()+" is mandatory")
	}
	if d.IsEnumConstrained() && d.supplied {
		if _, ok := d.enumValues[d.value]; !ok {
			return errors.New(ErrCodeIllegalArgument, fmt.Sprintf(
				"%s value (%s) is not permit, it can be: %s", d.Name(), d.value, d.EnumValuesString()))
		}
	}
	return nil
}
