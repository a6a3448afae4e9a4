// parser.go: Argument registry, token scan and post-parse lookups
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

// Parser owns a registry of Definitions indexed by both short and long
// name and scans a raw argument vector against it. Both indexes reference
// the same Definition instance, so a value recorded through one key is
// visible through the other.
//
// Definitions registered later silently replace earlier entries under a
// colliding key; the registry performs no uniqueness enforcement.
//
// A Parser is not safe for concurrent use. Callers needing concurrency
// must serialize externally or use independent instances.
type Parser struct {
	byShort map[string]*Definition
	byLong  map[string]*Definition
	tracer  func(TraceEvent)
	parsed  bool
}

// New creates an empty Parser.
func New() *Parser {
	return &Parser{
		byShort: make(map[string]*Definition),
		byLong:  make(map[string]*Definition),
	}
}

// Define parses one compact definition line (see ParseDefinition) and
// registers the result.
func (p *Parser) Define(text string) error {
	def, err := ParseDefinition(text)
	if err != nil {
		return err
	}
	p.Add(def)
	return nil
}

// Add registers an already-built definition under both of its names.
func (p *Parser) Add(def *Definition) {
	p.byShort[def.shortName] = def
	p.byLong[def.longName] = def
	p.trace(TraceDefine, def.Name(), "")
}

// lookup resolves a key against the short-name index first, then the
// long-name index.
func (p *Parser) lookup(key string) (*Definition, bool) {
	if def, ok := p.byShort[key]; ok {
		return def, true
	}
	def, ok := p.byLong[key]
	return def, ok
}

// Definitions returns the registered definitions in unspecified order.
func (p *Parser) Definitions() []*Definition {
	defs := make([]*Definition, 0, len(p.byShort))
	for _, def := range p.byShort {
		defs = append(defs, def)
	}
	return defs
}

// Parse scans argv against the registered definitions. argv is the full
// process vector: argv[0] is the program name and is discarded before
// scanning. The scan is a single left-to-right pass with one token of
// lookahead and no backtracking; the first failure aborts with
// ErrCodeIllegalArgument.
//
// Every token must resolve to a registered flag. A flag declared with a
// value consumes the following token, which may not itself start with
// '-'; a repeated flag overwrites its earlier value. A no-value flag
// records the empty string to mark itself supplied.
//
// After a clean scan every definition that is supplied or mandatory is
// validated (see Definition.Validate); definitions that are neither are
// skipped entirely. When several definitions would fail, which one is
// reported first is unspecified.
//
// Parse marks the parser as parsed before scanning, even when it later
// fails, so post-parse lookups stay usable for error reporting.
func (p *Parser) Parse(argv []string) error {
	p.parsed = true
	if len(argv) > 0 {
		argv = argv[1:]
	}

	for i := 0; i < len(argv); i++ {
		token := argv[i]
		if !strings.HasPrefix(token, "-") {
			return errors.New(ErrCodeIllegalArgument, token+" not defined")
		}
		def, ok := p.lookup(token)
		if !ok {
			return errors.New(ErrCodeIllegalArgument, token+" not defined")
		}

		if !def.hasValue {
			def.setValue("")
			p.trace(TraceMatch, token, "")
			continue
		}

		if i+1 >= len(argv) {
			return errors.New(ErrCodeIllegalArgument, "Argument value not supplied for: "+token)
		}
		next := argv[i+1]
		if strings.HasPrefix(next, "-") {
			// A value may never look like a flag.
			return errors.New(ErrCodeIllegalArgument,
				fmt.Sprintf("Wrong argument value '%s' for argument %s", next, token))
		}
		def.setValue(next)
		p.trace(TraceMatch, token, next)
		i++
	}

	for _, def := range p.byShort {
		if !def.supplied && !def.mandatory {
			continue
		}
		if err := def.Validate(); err != nil {
			p.trace(TraceInvalid, def.Name(), err.Error())
			return err
		}
	}
	return nil
}

// Value returns the recorded value for the flag registered under key
// (short or long name) and whether the flag was supplied at all.
//
// Calling Value before Parse fails with ErrCodeUsage; an unknown key
// fails with ErrCodeIllegalArgument.
func (p *Parser) Value(key string) (string, bool, error) {
	if !p.parsed {
		return "", false, errors.New(ErrCodeUsage, "Command line arguments hasn't been parsed.")
	}
	def, ok := p.lookup(key)
	if !ok {
		return "", false, errors.New(ErrCodeIllegalArgument, "Argument "+key+" not defined")
	}
	value, supplied := def.Value()
	return value, supplied, nil
}

// IsSupplied reports whether the flag registered under key was present on
// the parsed command line. Errors from Value propagate unchanged.
func (p *Parser) IsSupplied(key string) (bool, error) {
	_, supplied, err := p.Value(key)
	return supplied, err
}

// FormatDefinitions renders every registered definition, one per line, in
// the compact form "short,long,hasValue,enumJoined". Line order is
// unspecified.
func (p *Parser) FormatDefinitions() string {
	var b strings.Builder
	for _, def := range p.byShort {
		b.WriteString(def.String())
		b.WriteByte('\n')
	}
	return b.String()
}
