/*
Package script loads and replays diagram editing scripts.

A script declares elements and diagrams by name followed by the steps
a user would take in an editor, e.g. in TOML

	name = "orders"

	[[element]]
	name = "Order"
	kind = "class"

	[[diagram]]
	name = "overview"

	[[step]]
	op = "drop"
	element = "Order"

Files ending in .yaml or .yml are read as YAML with the same keys.
*/
package script

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the script file, the format is chosen by extension.
// The script name defaults to the file name without extension.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes data in the given format; toml, yaml or yml. Unknown
// keys are errors.
func Parse(data []byte, format string) (*Script, error) {
	var s Script
	switch format {
	case "toml":
		meta, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, err
		}
		if keys := meta.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("unknown keys %v", keys)
		}
		if meta.IsDefined("name") {
			s.Name = strings.TrimSpace(s.Name)
		}

	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%q: %w", format, ErrFormat)
	}
	return &s, nil
}

// Script is the decoded form of a script file.
type Script struct {
	Name     string        `toml:"name" yaml:"name"`
	Elements []ElementDecl `toml:"element" yaml:"elements"`
	Diagrams []DiagramDecl `toml:"diagram" yaml:"diagrams"`
	Steps    []Step        `toml:"step" yaml:"steps"`
}

// ElementDecl declares one model element. All references are by
// element name. Which references are used depends on Kind.
type ElementDecl struct {
	Name  string `toml:"name" yaml:"name"`
	Kind  string `toml:"kind" yaml:"kind"`
	Owner string `toml:"owner" yaml:"owner"`

	Client   string `toml:"client" yaml:"client"`     // dependency
	Supplier string `toml:"supplier" yaml:"supplier"` // dependency
	Specific string `toml:"specific" yaml:"specific"` // generalization
	General  string `toml:"general" yaml:"general"`   // generalization

	// Ends of an association or extension, metaclass first for
	// extensions.
	Ends []string `toml:"ends" yaml:"ends"`

	Send    string `toml:"send" yaml:"send"`       // message
	Receive string `toml:"receive" yaml:"receive"` // message
	Action  string `toml:"action" yaml:"action"`   // pin
}

// DiagramDecl declares a diagram element owned by package Owner if
// given.
type DiagramDecl struct {
	Name  string `toml:"name" yaml:"name"`
	Owner string `toml:"owner" yaml:"owner"`
}

// Step is one editing gesture. Items created by a step are labeled
// As, or the element name for drops, and later steps refer to them
// by label.
type Step struct {
	Op string `toml:"op" yaml:"op"`

	// Diagram defaults to the first declared diagram.
	Diagram string `toml:"diagram" yaml:"diagram"`
	As      string `toml:"as" yaml:"as"`

	// drop
	Element string  `toml:"element" yaml:"element"`
	Into    string  `toml:"into" yaml:"into"`
	X       float64 `toml:"x" yaml:"x"`
	Y       float64 `toml:"y" yaml:"y"`

	// contain, link
	Kind string `toml:"kind" yaml:"kind"`
	Head string `toml:"head" yaml:"head"`
	Tail string `toml:"tail" yaml:"tail"`

	// connect, disconnect, remove
	Line string `toml:"line" yaml:"line"`
	End  string `toml:"end" yaml:"end"`
	To   string `toml:"to" yaml:"to"`
	Item string `toml:"item" yaml:"item"`
}

func (s Step) String() string {
	return s.Op
}

var (
	ErrFormat     = fmt.Errorf("unsupported format")
	ErrDuplicate  = fmt.Errorf("duplicate name")
	ErrUnknown    = fmt.Errorf("unknown name")
	ErrBadStep    = fmt.Errorf("bad step")
	ErrIncomplete = fmt.Errorf("incomplete declaration")
)
