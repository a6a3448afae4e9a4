// doc.go: Package documentation for argonaut
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// Package argonaut provides declarative command-line argument definition,
// parsing and validation.
//
// Flags are declared with a compact one-line grammar naming a short/long
// name pair, whether the flag consumes a value token, an optional set of
// permitted values and whether the flag is mandatory:
//
//	parser := argonaut.New()
//	parser.Define("-a,--action,true,create|update|delete,true")
//	parser.Define("-v,--verbose,false")
//
//	if err := parser.Parse(os.Args); err != nil {
//	    // unknown flag, missing value, missing mandatory flag,
//	    // or value outside the permitted set
//	}
//
//	action, _, err := parser.Value("--action")
//	verbose, err := parser.IsSupplied("-v")
//
// Definitions can also be loaded from a file, either plain text with one
// compact line per definition or a YAML document (see LoadDefinitions).
//
// Parsing is a single left-to-right scan with one token of lookahead and
// no backtracking. This is intentionally not a POSIX getopt: combined
// short flags (-xvf), --long=value syntax and repeated multi-valued flags
// are not supported.
//
// All failures carry a go-errors code: ErrCodeIllegalDefinition for
// malformed definition grammar, ErrCodeIllegalArgument for parse and
// validation failures, ErrCodeUsage for querying results before Parse.
// The package never logs and never terminates the process.
//
// A Parser instance is not safe for concurrent use.
package argonaut
