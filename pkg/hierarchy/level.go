package hierarchy

import (
	"strings"

	"github.com/oneconcern/vaultmon/pkg/frontmatter"
)

// Level is a level of the vault hierarchy a marker document may declare
type Level string

// Levels known to the vault
const (
	Program   Level = "program"
	Course    Level = "course"
	Class     Level = "class"
	CaseStudy Level = "case-study"
	Module    Level = "module"
	Lesson    Level = "lesson"
)

const (
	// MarkerField is the header field declaring a marker: its value is "<level>-index"
	MarkerField = "type"

	markerSuffix = "-index"
)

// Fields are the levels resolved for every document, in the order they are written to headers
var Fields = []Level{Program, Course, Class}

var knownLevels = map[Level]struct{}{
	Program:   {},
	Course:    {},
	Class:     {},
	CaseStudy: {},
	Module:    {},
	Lesson:    {},
}

// Known level?
func (l Level) Known() bool {
	_, ok := knownLevels[l]
	return ok
}

// Field is the header field holding the value inherited at this level
func (l Level) Field() string {
	return string(l)
}

// MarkerValue is the value of the marker field declaring this level
func (l Level) MarkerValue() string {
	return string(l) + markerSuffix
}

// MarkerLevel tells if a header declares a marker, and at which level
func MarkerLevel(h *frontmatter.Header) (Level, bool) {
	v, ok := h.String(MarkerField)
	if !ok {
		return "", false
	}
	v = strings.ToLower(strings.TrimSpace(v))
	if !strings.HasSuffix(v, markerSuffix) {
		return "", false
	}
	l := Level(strings.TrimSuffix(v, markerSuffix))
	if !l.Known() {
		return "", false
	}
	return l, true
}

// IsMarker tells if a header declares any marker level
func IsMarker(h *frontmatter.Header) bool {
	_, ok := MarkerLevel(h)
	return ok
}
