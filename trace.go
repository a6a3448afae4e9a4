// trace.go: Opt-in tracing of definition and parse activity
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package argonaut

import (
	"time"

	"github.com/agilira/go-timecache"
)

// TraceKind classifies a TraceEvent.
type TraceKind int

const (
	// TraceDefine is emitted when a definition is registered.
	TraceDefine TraceKind = iota
	// TraceMatch is emitted when a token matches a definition during Parse.
	TraceMatch
	// TraceInvalid is emitted when post-parse validation rejects a definition.
	TraceInvalid
)

func (k TraceKind) String() string {
	switch k {
	case TraceDefine:
		return "define"
	case TraceMatch:
		return "match"
	case TraceInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// TraceEvent is one observation of parser activity. Timestamps come from
// go-timecache, so tracing adds no time syscalls to the parse path.
type TraceEvent struct {
	Time   time.Time
	Kind   TraceKind
	Token  string // matched token or definition name
	Detail string // consumed value or validation message
}

// SetTracer installs fn as the trace sink. A nil fn disables tracing,
// which is the default; a disabled tracer costs a single nil check.
// The core never logs on its own.
func (p *Parser) SetTracer(fn func(TraceEvent)) {
	p.tracer = fn
}

func (p *Parser) trace(kind TraceKind, token, detail string) {
	if p.tracer == nil {
		return
	}
	p.tracer(TraceEvent{
		Time:   timecache.CachedTime(),
		Kind:   kind,
		Token:  token,
		Detail: detail,
	})
}
