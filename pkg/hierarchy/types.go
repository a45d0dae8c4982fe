package hierarchy

import (
	"fmt"
	"strings"

	"github.com/oneconcern/vaultmon/pkg/storage"
)

// Source tells where a resolved value comes from
type Source string

// Sources of resolved values, by decreasing precedence
const (
	SourceNone     Source = ""
	SourceOverride Source = "override"
	SourceMarker   Source = "marker"
	SourcePath     Source = "path"
	SourceDefault  Source = "default"
)

// Marker is a marker document found in an ancestor directory of a document
type Marker struct {
	Depth int    `json:"depth" yaml:"depth"`
	Level Level  `json:"level" yaml:"level"`
	Value string `json:"value" yaml:"value"`
	Key   string `json:"key" yaml:"key"`
}

// Value is a resolved attribute
type Value struct {
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Source Source `json:"source,omitempty" yaml:"source,omitempty"`

	// From is the key of the marker, or the path segment, which provided the value
	From string `json:"from,omitempty" yaml:"from,omitempty"`
}

// Resolved value?
func (v Value) Resolved() bool {
	return v.Source != SourceNone
}

func (v Value) String() string {
	if !v.Resolved() {
		return "<unresolved>"
	}
	if v.From == "" {
		return fmt.Sprintf("%s (%s)", v.Value, v.Source)
	}
	return fmt.Sprintf("%s (%s: %s)", v.Value, v.Source, v.From)
}

// Info is the hierarchy resolved for a document
type Info struct {
	Program Value `json:"program" yaml:"program"`
	Course  Value `json:"course" yaml:"course"`
	Class   Value `json:"class" yaml:"class"`
}

// Get the value resolved for a level
func (i Info) Get(l Level) Value {
	switch l {
	case Program:
		return i.Program
	case Course:
		return i.Course
	case Class:
		return i.Class
	default:
		return Value{}
	}
}

func (i *Info) set(l Level, v Value) {
	switch l {
	case Program:
		i.Program = v
	case Course:
		i.Course = v
	case Class:
		i.Class = v
	}
}

func (i Info) String() string {
	parts := make([]string, 0, len(Fields))
	for _, l := range Fields {
		v := i.Get(l)
		if v.Resolved() {
			parts = append(parts, fmt.Sprintf("%s=%q", l, v.Value))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Context holds the parameters of a resolution
type Context struct {
	// VaultRoot is the key of the directory bounding the ancestor walk. Defaults to the store root.
	VaultRoot string

	// ProgramOverride, when set, is the program of every document, regardless of markers
	ProgramOverride string
}

// WithProgram returns a copy of the context overriding the program
func (c Context) WithProgram(program string) Context {
	c.ProgramOverride = program
	return c
}

// Root key of the vault
func (c Context) Root() (string, error) {
	if c.VaultRoot == "" {
		return storage.Root, nil
	}
	return storage.CleanKey(c.VaultRoot)
}
