// Package cli provides the command-line interface for argonaut definition files.
//
// Built on the Orpheus framework in the same shape as the other AGILira
// CLIs: a Manager owning the app, one handler per command.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/agilira/orpheus/pkg/orpheus"
)

// Manager wires the argonaut commands into an Orpheus app.
type Manager struct {
	app *orpheus.App
}

// NewManager creates the CLI manager with all commands registered.
func NewManager() *Manager {
	app := orpheus.New("argonaut").
		SetDescription("Declarative command-line argument parsing and validation").
		SetVersion("1.0.0")

	m := &Manager{app: app}
	m.setupCommands()
	return m
}

// Run executes the CLI with the provided arguments (program name excluded).
func (m *Manager) Run(args []string) error {
	return m.app.Run(args)
}

func (m *Manager) setupCommands() {
	// check <definitions-file>
	checkCmd := orpheus.NewCommand("check", "Validate a definitions file")
	checkCmd.SetHandler(m.handleCheck)
	m.app.AddCommand(checkCmd)

	// eval <definitions-file> --args "-v -a create" [--trace]
	evalCmd := orpheus.NewCommand("eval", "Parse tokens against a definitions file")
	evalCmd.SetHandler(m.handleEval)
	evalCmd.AddFlag("args", "a", "", "Tokens to parse, space separated")
	evalCmd.AddBoolFlag("trace", "t", false, "Print trace events while parsing")
	m.app.AddCommand(evalCmd)

	// dump <definitions-file>
	dumpCmd := orpheus.NewCommand("dump", "Print the registered definitions, one per line")
	dumpCmd.SetHandler(m.handleDump)
	m.app.AddCommand(dumpCmd)
}
