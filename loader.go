// loader.go: Loading argument definitions from files
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package argonaut

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agilira/go-errors"
	"go.yaml.in/yaml/v3"
)

// definitionFile is the YAML layout: an "arguments" list whose items are
// either compact grammar strings or structured mappings.
type definitionFile struct {
	Arguments []yaml.Node `yaml:"arguments"`
}

type definitionSpec struct {
	Short     string   `yaml:"short"`
	Long      string   `yaml:"long"`
	Value     bool     `yaml:"value"`
	Enum      []string `yaml:"enum"`
	Mandatory bool     `yaml:"mandatory"`
}

// definition funnels a structured entry through the compact grammar so
// both file forms enforce identical rules.
func (s definitionSpec) definition() (*Definition, error) {
	line := fmt.Sprintf("%s,%s,%t,%s,%t",
		s.Short, s.Long, s.Value, strings.Join(s.Enum, "|"), s.Mandatory)
	return ParseDefinition(line)
}

// LoadDefinitions reads argument definitions from path.
//
// Files ending in .yml or .yaml use the YAML layout:
//
//	arguments:
//	  - "-v,--verbose,false"
//	  - short: -a
//	    long: --action
//	    value: true
//	    enum: [create, update, delete]
//	    mandatory: true
//
// Any other extension is treated as plain text with one compact
// definition per line; blank lines and lines starting with '#' are
// skipped.
func LoadDefinitions(path string) ([]*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, ErrCodeIllegalDefinition, "failed to read definitions file").
			WithContext("path", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return parseYAMLDefinitions(data)
	}
	return parseTextDefinitions(data)
}

func parseTextDefinitions(data []byte) ([]*Definition, error) {
	var defs []*Definition
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.Trim(line, fieldCutset+"\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		def, err := ParseDefinition(line)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func parseYAMLDefinitions(data []byte) ([]*Definition, error) {
	var file definitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, ErrCodeIllegalDefinition, "malformed YAML definitions file")
	}

	defs := make([]*Definition, 0, len(file.Arguments))
	for i := range file.Arguments {
		node := &file.Arguments[i]

		var def *Definition
		var err error
		switch node.Kind {
		case yaml.ScalarNode:
			def, err = ParseDefinition(node.Value)
		case yaml.MappingNode:
			var spec definitionSpec
			if decodeErr := node.Decode(&spec); decodeErr != nil {
				err = errors.Wrap(decodeErr, ErrCodeIllegalDefinition,
					fmt.Sprintf("malformed argument entry %d", i))
			} else {
				def, err = spec.definition()
			}
		default:
			err = errors.New(ErrCodeIllegalDefinition,
				fmt.Sprintf("argument entry %d must be a string or a mapping", i))
		}
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// DefineFromFile loads a definitions file and registers every entry.
func (p *Parser) DefineFromFile(path string) error {
	defs, err := LoadDefinitions(path)
	if err != nil {
		return err
	}
	for _, def := range defs {
		p.Add(def)
	}
	return nil
}
