package hierarchy

import (
	"testing"

	"github.com/oneconcern/vaultmon/pkg/frontmatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	assert.Equal(t, Outermost, DefaultPolicy.Strategy(Program))
	assert.Equal(t, Nearest, DefaultPolicy.Strategy(Course))
	assert.Equal(t, Nearest, DefaultPolicy.Strategy(Class))
	assert.Equal(t, Nearest, DefaultPolicy.Strategy(Lesson), "unlisted levels use the nearest marker")
	assert.Equal(t, "outermost", Outermost.String())
}

func TestPolicySelect(t *testing.T) {
	markers := []Marker{
		{Depth: 0, Level: Course, Value: "near-1"},
		{Depth: 0, Level: Course, Value: "near-2"},
		{Depth: 1, Level: Program, Value: "inner"},
		{Depth: 2, Level: Course, Value: "far"},
		{Depth: 3, Level: Program, Value: "outer-1"},
		{Depth: 3, Level: Program, Value: "outer-2"},
	}

	m, ok := DefaultPolicy.Select(Program, markers)
	require.True(t, ok)
	assert.Equal(t, "outer-1", m.Value, "ties keep directory order")

	m, ok = DefaultPolicy.Select(Course, markers)
	require.True(t, ok)
	assert.Equal(t, "near-1", m.Value)

	_, ok = DefaultPolicy.Select(Class, markers)
	assert.False(t, ok)

	m, ok = Policy{Program: Nearest}.Select(Program, markers)
	require.True(t, ok)
	assert.Equal(t, "inner", m.Value)
}

func TestMarkerLevel(t *testing.T) {
	for _, toPin := range []struct {
		text     string
		level    Level
		isMarker bool
	}{
		{text: "---\ntype: program-index\n---\n", level: Program, isMarker: true},
		{text: "---\ntype: Course-Index\ntitle: x\n---\n", level: Course, isMarker: true},
		{text: "---\ntype: class-index\n---\n", level: Class, isMarker: true},
		{text: "---\ntype: case-study-index\n---\n", level: CaseStudy, isMarker: true},
		{text: "---\ntype: lesson-index\n---\n", level: Lesson, isMarker: true},
		{text: "---\ntype: lecture\n---\n"},
		{text: "---\ntype: semester-index\n---\n"},
		{text: "---\ntype:\n- program-index\n---\n"},
		{text: "---\ntitle: program-index\n---\n"},
		{text: "no header"},
	} {
		fixture := toPin
		doc := frontmatter.Parse([]byte(fixture.text))
		l, ok := MarkerLevel(doc.Header)
		assert.Equalf(t, fixture.isMarker, ok, "text %q", fixture.text)
		assert.Equal(t, fixture.level, l)
		assert.Equal(t, fixture.isMarker, IsMarker(doc.Header))
	}
}

func TestExtensions(t *testing.T) {
	exts := NormalizeExtensions([]string{"md", " .MARKDOWN ", ""})
	assert.Equal(t, []string{".md", ".markdown"}, exts)
	assert.True(t, HasExtension("Note.MD", exts))
	assert.True(t, HasExtension("note.markdown", exts))
	assert.False(t, HasExtension("note.txt", exts))
}
