// Command handlers for the argonaut CLI
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/agilira/argonaut"
	"github.com/agilira/go-errors"
	"github.com/agilira/orpheus/pkg/orpheus"
)

// handleCheck lints a definitions file and reports the first error.
func (m *Manager) handleCheck(ctx *orpheus.Context) error {
	path := ctx.GetArg(0)
	if path == "" {
		return errors.New(argonaut.ErrCodeUsage, "usage: check <definitions-file>")
	}

	defs, err := argonaut.LoadDefinitions(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d definitions OK\n", path, len(defs))
	return nil
}

// handleEval parses the --args tokens against a definitions file and
// prints every supplied flag with its value.
func (m *Manager) handleEval(ctx *orpheus.Context) error {
	path := ctx.GetArg(0)
	if path == "" {
		return errors.New(argonaut.ErrCodeUsage, `usage: eval <definitions-file> --args "<tokens>"`)
	}

	parser := argonaut.New()
	if ctx.GetFlagBool("trace") {
		parser.SetTracer(printTraceEvent)
	}
	if err := parser.DefineFromFile(path); err != nil {
		return err
	}

	// Rebuild an argv with a program-name slot, as Parse expects.
	argv := append([]string{"argonaut"}, strings.Fields(ctx.GetFlagString("args"))...)

	if err := parser.Parse(argv); err != nil {
		return err
	}

	for _, def := range parser.Definitions() {
		if !def.IsSupplied() {
			continue
		}
		if def.HasValue() {
			value, _ := def.Value()
			fmt.Printf("%s = %s\n", def.Name(), value)
		} else {
			fmt.Printf("%s supplied\n", def.Name())
		}
	}
	return nil
}

// handleDump prints the registry in compact form, one definition per line.
func (m *Manager) handleDump(ctx *orpheus.Context) error {
	path := ctx.GetArg(0)
	if path == "" {
		return errors.New(argonaut.ErrCodeUsage, "usage: dump <definitions-file>")
	}

	parser := argonaut.New()
	if err := parser.DefineFromFile(path); err != nil {
		return err
	}

	fmt.Print(parser.FormatDefinitions())
	return nil
}

func printTraceEvent(ev argonaut.TraceEvent) {
	fmt.Printf("[%s] %-7s %s %s\n",
		ev.Time.Format(time.RFC3339Nano), ev.Kind, ev.Token, ev.Detail)
}
