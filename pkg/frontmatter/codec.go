package frontmatter

import (
	"bytes"
	"strings"

	"github.com/oneconcern/vaultmon/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// Delimiter opens and closes a frontmatter block
const Delimiter = "---"

// BOM is the UTF-8 byte order mark some editors write at the start of files
const BOM = "\ufeff"

var (
	// ErrDuplicateKeys is reported when a block declares the same field more than once
	ErrDuplicateKeys = errors.New("duplicate keys in frontmatter")

	// ErrSerialize is returned when a header cannot be rendered as yaml
	ErrSerialize = errors.New("cannot serialize frontmatter")
)

// Document is a parsed document: its header and its body, verbatim.
type Document struct {
	Header *Header
	Body   []byte

	// HasHeader is true when the document starts with a terminated frontmatter block
	HasHeader bool

	// Recovered is true when the block was not valid yaml and fields were recovered one by one
	Recovered bool

	// BOM is true when the text started with a byte order mark. It is not part of the body.
	BOM bool
}

// Option is a functor to build a codec with some options
type Option func(*Codec)

// Logger sets the sink for parse warnings
func Logger(l *zap.Logger) Option {
	return func(c *Codec) {
		if l != nil {
			c.logger = l
		}
	}
}

// Codec reads and writes frontmatter blocks.
//
// A codec has no state besides its logger: it is safe for concurrent use.
type Codec struct {
	logger *zap.Logger
}

// New codec
func New(opts ...Option) *Codec {
	c := &Codec{logger: zap.NewNop()}
	for _, apply := range opts {
		apply(c)
	}
	return c
}

// With returns a codec logging with some extra fields, e.g. the path of the parsed document
func (c *Codec) With(fields ...zap.Field) *Codec {
	return &Codec{logger: c.logger.With(fields...)}
}

// Parse splits a document into header and body.
//
// Parse never fails. A block which is not a valid yaml mapping (most commonly because
// some field is repeated) is recovered field by field, the last occurrence of a field
// winning. When nothing can be recovered, the header is empty and the body is the
// whole text. A leading byte order mark is ignored.
func (c *Codec) Parse(text []byte) Document {
	content := bytes.TrimPrefix(text, []byte(BOM))
	doc := c.parse(content)
	doc.BOM = len(content) < len(text)
	return doc
}

func (c *Codec) parse(text []byte) Document {
	block, body, found, terminated := split(text)
	if !found {
		return Document{Header: NewHeader(), Body: text}
	}
	if !terminated {
		c.logger.Warn("unterminated frontmatter block, document handled as having no header")
		return Document{Header: NewHeader(), Body: text}
	}

	h, err := strict(block)
	if err == nil {
		return Document{Header: h, Body: body, HasHeader: true}
	}

	recovered, ok := tolerant(block)
	if !ok {
		c.logger.Warn("malformed frontmatter, no field could be recovered", zap.Error(err))
		return Document{Header: NewHeader(), Body: text}
	}
	c.logger.Warn("malformed frontmatter, header recovered field by field",
		zap.Error(err),
		zap.Int("fields", recovered.Len()),
	)
	return Document{Header: recovered, Body: body, HasHeader: true, Recovered: true}
}

// Serialize renders a header as a delimited frontmatter block
func (c *Codec) Serialize(h *Header) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Delimiter + "\n")
	if h.Len() > 0 {
		b, err := yaml.Marshal(h.MapSlice())
		if err != nil {
			return nil, ErrSerialize.Wrap(err)
		}
		buf.Write(b)
	}
	buf.WriteString(Delimiter + "\n")
	return buf.Bytes(), nil
}

// Compose renders a full document from a header and a body
func (c *Codec) Compose(h *Header, body []byte) ([]byte, error) {
	head, err := c.Serialize(h)
	if err != nil {
		return nil, err
	}
	return append(head, body...), nil
}

// Rewrite renders a parsed document with a new header, restoring its byte order mark
func (c *Codec) Rewrite(doc Document, h *Header) ([]byte, error) {
	out, err := c.Compose(h, doc.Body)
	if err != nil || !doc.BOM {
		return out, err
	}
	return append([]byte(BOM), out...), nil
}

var defaultCodec = New()

// Parse a document with a codec that does not log
func Parse(text []byte) Document {
	return defaultCodec.Parse(text)
}

// Serialize a header with a codec that does not log
func Serialize(h *Header) ([]byte, error) {
	return defaultCodec.Serialize(h)
}

func strict(block []byte) (*Header, error) {
	var fields map[string]interface{}
	if err := yaml.UnmarshalStrict(block, &fields); err != nil {
		return nil, err
	}
	var items yaml.MapSlice
	if err := yaml.Unmarshal(block, &items); err != nil {
		return nil, err
	}
	h := HeaderFrom(items)
	if h.Len() != len(items) {
		return nil, ErrDuplicateKeys
	}
	return h, nil
}

// split locates the frontmatter block. found is true when the first line is a
// delimiter, terminated when a closing delimiter follows.
func split(text []byte) (block, body []byte, found, terminated bool) {
	first, rest := cutLine(text)
	if !isDelimiter(first) || rest == nil {
		return nil, text, isDelimiter(first), false
	}
	start := len(text) - len(rest)
	for cur := start; cur < len(text); {
		line, next := cutLine(text[cur:])
		end := len(text) - len(next)
		if isDelimiter(line) {
			return text[start:cur], text[end:], true, true
		}
		cur = end
	}
	return nil, text, true, false
}

// cutLine returns the first line of b, without its line feed, and what follows it.
// rest is nil when b holds no line feed.
func cutLine(b []byte) (line, rest []byte) {
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return b, nil
	}
	return b[:i], b[i+1:]
}

func isDelimiter(line []byte) bool {
	return strings.TrimRight(string(line), "\r") == Delimiter
}
