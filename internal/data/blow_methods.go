package data

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed blowmethods.yaml
var blowMethodsYAML []byte

// BlowMethod is the static definition of one attack delivery method.
// Loaded once at startup and immutable afterwards.
type BlowMethod struct {
	Name   string `yaml:"name"`
	ActMsg string `yaml:"act_msg"`
	Phys   bool   `yaml:"phys"`
}

type blowMethodFile struct {
	Methods []BlowMethod `yaml:"methods"`
}

// BlowMethodTable — global registry of blow methods, keyed by
// upper-cased name.
var BlowMethodTable map[string]*BlowMethod

// LoadBlowMethods builds BlowMethodTable from the embedded table.
func LoadBlowMethods() error {
	var file blowMethodFile
	if err := yaml.Unmarshal(blowMethodsYAML, &file); err != nil {
		return fmt.Errorf("parsing blow methods: %w", err)
	}

	table := make(map[string]*BlowMethod, len(file.Methods))
	for i := range file.Methods {
		m := &file.Methods[i]
		key := strings.ToUpper(m.Name)
		if _, dup := table[key]; dup {
			return fmt.Errorf("duplicate blow method %q", m.Name)
		}
		table[key] = m
	}
	BlowMethodTable = table

	slog.Info("loaded blow methods", "count", len(BlowMethodTable))
	return nil
}

// GetBlowMethod returns the method definition for a name, matched
// case-insensitively. Returns nil if not found.
func GetBlowMethod(name string) *BlowMethod {
	if BlowMethodTable == nil {
		return nil
	}
	return BlowMethodTable[strings.ToUpper(name)]
}
