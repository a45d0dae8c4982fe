package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v2"
)

func observedCodec() (*Codec, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return New(Logger(zap.New(core))), logs
}

func TestParse(t *testing.T) {
	for _, toPin := range []struct {
		name      string
		text      string
		expected  yaml.MapSlice
		body      string
		hasHeader bool
		recovered bool
		bom       bool
	}{
		{
			name:      "well formed",
			text:      "---\ntitle: Note\nprogram: MBA\n---\n# Note\n\nbody\n",
			expected:  yaml.MapSlice{{Key: "title", Value: "Note"}, {Key: "program", Value: "MBA"}},
			body:      "# Note\n\nbody\n",
			hasHeader: true,
		},
		{
			name:     "no header",
			text:     "# Note\n\n---\ntitle: not a header\n---\n",
			expected: yaml.MapSlice{},
			body:     "# Note\n\n---\ntitle: not a header\n---\n",
		},
		{
			name:      "empty header",
			text:      "---\n---\nbody",
			expected:  yaml.MapSlice{},
			body:      "body",
			hasHeader: true,
		},
		{
			name:      "crlf",
			text:      "---\r\ntitle: Note\r\n---\r\nbody\r\n",
			expected:  yaml.MapSlice{{Key: "title", Value: "Note"}},
			body:      "body\r\n",
			hasHeader: true,
		},
		{
			name:      "closing delimiter at end of file",
			text:      "---\ntitle: Note\n---",
			expected:  yaml.MapSlice{{Key: "title", Value: "Note"}},
			body:      "",
			hasHeader: true,
		},
		{
			name: "lists and nested values",
			text: "---\ntitle: Note\ntags:\n- finance\n- mba\nmeta:\n  week: 3\n---\n",
			expected: yaml.MapSlice{
				{Key: "title", Value: "Note"},
				{Key: "tags", Value: []interface{}{"finance", "mba"}},
				{Key: "meta", Value: yaml.MapSlice{{Key: "week", Value: 3}}},
			},
			body:      "",
			hasHeader: true,
		},
		{
			name:      "duplicate keys",
			text:      "---\ntitle: A\nstatus: draft\ntitle: B\n---\nbody\n",
			expected:  yaml.MapSlice{{Key: "title", Value: "B"}, {Key: "status", Value: "draft"}},
			body:      "body\n",
			hasHeader: true,
			recovered: true,
		},
		{
			name: "duplicate keys with quotes and lists",
			text: "---\ntitle: \"A: first\"\ntags:\n  - one\ntitle: 'B'\ntags: [two, three]\nempty:\n---\n",
			expected: yaml.MapSlice{
				{Key: "title", Value: "B"},
				{Key: "tags", Value: []interface{}{"two", "three"}},
				{Key: "empty", Value: nil},
			},
			body:      "",
			hasHeader: true,
			recovered: true,
		},
		{
			name:      "duplicate list keys",
			text:      "---\naliases:\n- a\naliases:\n- b\n- c\n---\n",
			expected:  yaml.MapSlice{{Key: "aliases", Value: []interface{}{"b", "c"}}},
			body:      "",
			hasHeader: true,
			recovered: true,
		},
		{
			name: "duplicate keys with block scalars and nested values",
			text: "---\ntitle: A\ntitle: B\nsummary: >-\n  long summary\n  second line\nnotes: |-\n  first\n\n  second\nmeta:\n  a: 1\n  tags:\n    - x\n---\nbody\n",
			expected: yaml.MapSlice{
				{Key: "title", Value: "B"},
				{Key: "summary", Value: "long summary second line"},
				{Key: "notes", Value: "first\n\nsecond"},
				{Key: "meta", Value: yaml.MapSlice{{Key: "a", Value: 1}, {Key: "tags", Value: []interface{}{"x"}}}},
			},
			body:      "body\n",
			hasHeader: true,
			recovered: true,
		},
		{
			name: "repeated nested value",
			text: "---\nmeta:\n  a: 1\nstatus: draft\nmeta:\n  b: 2\n---\n",
			expected: yaml.MapSlice{
				{Key: "meta", Value: yaml.MapSlice{{Key: "b", Value: 2}}},
				{Key: "status", Value: "draft"},
			},
			body:      "",
			hasHeader: true,
			recovered: true,
		},
		{
			name:      "invalid entry among repeated keys",
			text:      "---\ntitle: A\ntitle: B: C\nlink: [[Note]\n---\n",
			expected:  yaml.MapSlice{{Key: "title", Value: "B: C"}, {Key: "link", Value: "[[Note]"}},
			body:      "",
			hasHeader: true,
			recovered: true,
		},
		{
			name:      "byte order mark",
			text:      "\ufeff---\ntitle: Note\nstatus: x\n---\nbody\n",
			expected:  yaml.MapSlice{{Key: "title", Value: "Note"}, {Key: "status", Value: "x"}},
			body:      "body\n",
			hasHeader: true,
			bom:       true,
		},
		{
			name:     "byte order mark without header",
			text:     "\ufeff# Note\n",
			expected: yaml.MapSlice{},
			body:     "# Note\n",
			bom:      true,
		},
	} {
		fixture := toPin
		t.Run(fixture.name, func(t *testing.T) {
			doc := Parse([]byte(fixture.text))
			require.NotNil(t, doc.Header)
			assert.Equal(t, fixture.expected, doc.Header.MapSlice())
			assert.Equal(t, fixture.body, string(doc.Body))
			assert.Equal(t, fixture.hasHeader, doc.HasHeader)
			assert.Equal(t, fixture.recovered, doc.Recovered)
			assert.Equal(t, fixture.bom, doc.BOM)
		})
	}
}

func TestParseDuplicateKeyWarns(t *testing.T) {
	codec, logs := observedCodec()

	doc := codec.Parse([]byte("---\ntitle: A\ntitle: B\n---\n"))
	v, ok := doc.Header.String("title")
	require.True(t, ok)
	assert.Equal(t, "B", v)
	assert.True(t, doc.Recovered)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "recovered field by field")
}

func TestParseUnrecoverable(t *testing.T) {
	codec, logs := observedCodec()

	for _, text := range []string{
		"---\ntitle: never closed\n",
		"---\njust some words\n[and more\n---\nbody\n",
		"---",
	} {
		doc := codec.Parse([]byte(text))
		assert.Equal(t, 0, doc.Header.Len())
		assert.False(t, doc.HasHeader)
		assert.Equal(t, text, string(doc.Body))
	}
	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestSerializeRoundTrip(t *testing.T) {
	h := NewHeader()
	h.Set("title", "Note: with a colon")
	h.Set("program", "Custom MBA")
	h.Set("class", "01")
	h.Set("published", "true")
	h.Set("week", 3)
	h.Set("tags", []interface{}{"a", "b"})
	h.Set("empty", nil)
	h.Set("nested", yaml.MapSlice{{Key: "k", Value: "v"}})

	b, err := Serialize(h)
	require.NoError(t, err)
	require.True(t, len(b) > 8)
	assert.Equal(t, "---\n", string(b[:4]))
	assert.Equal(t, "---\n", string(b[len(b)-4:]))

	doc := Parse(b)
	assert.False(t, doc.Recovered)
	assert.Equal(t, h.MapSlice(), doc.Header.MapSlice())

	// a recovered header round-trips as well
	recovered := Parse([]byte("---\nclass: 01\nclass: '02'\nflag: yes\n---\n"))
	require.True(t, recovered.Recovered)
	b, err = Serialize(recovered.Header)
	require.NoError(t, err)
	assert.Equal(t, recovered.Header.MapSlice(), Parse(b).Header.MapSlice())
}

func TestRewrite(t *testing.T) {
	codec := New()

	doc := codec.Parse([]byte("\ufeff---\ntitle: Note\n---\nbody\n"))
	require.True(t, doc.BOM)
	h := doc.Header.Clone()
	h.Set("program", "MBA")
	out, err := codec.Rewrite(doc, h)
	require.NoError(t, err)
	assert.Equal(t, "\ufeff---\ntitle: Note\nprogram: MBA\n---\nbody\n", string(out))

	plain := codec.Parse([]byte("body\n"))
	out, err = codec.Rewrite(plain, plain.Header)
	require.NoError(t, err)
	assert.Equal(t, "---\n---\nbody\n", string(out))
}

func TestCompose(t *testing.T) {
	doc := Parse([]byte("---\ntitle: Note\n---\n\nSome *body*.\n"))
	doc.Header.Set("program", "MBA")

	out, err := New().Compose(doc.Header, doc.Body)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Note\nprogram: MBA\n---\n\nSome *body*.\n", string(out))

	out, err = New().Compose(NewHeader(), []byte("body"))
	require.NoError(t, err)
	assert.Equal(t, "---\n---\nbody", string(out))
}
