package document

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Separator splits contents into lines.
const Separator = "\n"

type options struct {
	engine   Engine
	readOnly bool
	contents string
}

// Option configures a Document at creation time.
type Option func(*options)

// WithEngine sets the tokenization engine. A nil engine keeps Plaintext.
func WithEngine(e Engine) Option {
	return func(o *options) {
		if e != nil {
			o.engine = e
		}
	}
}

// WithReadOnly marks the document as read-only. The flag is advisory: the
// document itself still accepts SetContents.
func WithReadOnly(ro bool) Option {
	return func(o *options) { o.readOnly = ro }
}

func WithContents(s string) Option {
	return func(o *options) { o.contents = s }
}

// Document owns text contents, the lines derived from them, and the cached
// result of the last tokenization.
//
// A Document is not safe for concurrent use.
type Document struct {
	id       string
	readOnly bool
	engine   Engine

	contents string
	lines    []string
	lineLens []int

	tokens     []Token
	lineTokens [][]Token
	tokenized  bool
	stale      bool
}

// New creates a document. An empty id is replaced with a random UUID.
func New(id string, opts ...Option) *Document {
	o := options{engine: Plaintext}
	for _, opt := range opts {
		opt(&o)
	}
	if id == "" {
		id = uuid.NewString()
	}
	d := &Document{
		id:       id,
		readOnly: o.readOnly,
		engine:   o.engine,
	}
	d.SetContents(o.contents)
	return d
}

func (d *Document) ID() string { return d.id }

func (d *Document) ReadOnly() bool { return d.readOnly }

func (d *Document) Engine() Engine { return d.engine }

func (d *Document) Contents() string { return d.contents }

// SetContents replaces the text and recomputes the lines. Cached tokens are
// kept but marked stale; call Tokenize or EnsureTokens to refresh them.
func (d *Document) SetContents(s string) {
	d.contents = s
	d.lines = strings.Split(s, Separator)
	d.lineLens = make([]int, len(d.lines))
	for i, line := range d.lines {
		d.lineLens[i] = utf8.RuneCountInString(line)
	}
	d.stale = true
}

// Lines returns the lines of the current contents. The slice is shared with
// the document and must not be modified.
func (d *Document) Lines() []string { return d.lines }

func (d *Document) LineCount() int { return len(d.lines) }

// Line returns line i, or "" when i is out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// LineLen returns the rune length of line i, or 0 when i is out of range.
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= len(d.lineLens) {
		return 0
	}
	return d.lineLens[i]
}

// Len returns the rune length of the whole document.
func (d *Document) Len() int {
	return d.Offset(len(d.lines)-1, d.LineLen(len(d.lines)-1))
}

// Tokenize runs the engine over every line, caches the results, and returns
// the concatenation in line order. It always recomputes.
func (d *Document) Tokenize() []Token {
	all := make([]Token, 0, len(d.lines))
	perLine := make([][]Token, len(d.lines))
	for i, line := range d.lines {
		toks := d.engine.Tokenize(line)
		perLine[i] = toks
		all = append(all, toks...)
	}
	d.tokens = all
	d.lineTokens = perLine
	d.tokenized = true
	d.stale = false
	return all
}

// Tokens returns the result of the last Tokenize. ok is false when the
// document was never tokenized. The result is not refreshed when contents
// change; see Stale.
func (d *Document) Tokens() (tokens []Token, ok bool) {
	if !d.tokenized {
		return nil, false
	}
	return d.tokens, true
}

// Stale reports whether the cached tokens do not reflect the current contents.
func (d *Document) Stale() bool { return !d.tokenized || d.stale }

// EnsureTokens tokenizes only when the cache is stale.
func (d *Document) EnsureTokens() []Token {
	if d.Stale() {
		return d.Tokenize()
	}
	return d.tokens
}

// LineTokens returns the cached tokens of line i.
func (d *Document) LineTokens(i int) []Token {
	if !d.tokenized || i < 0 || i >= len(d.lineTokens) {
		return nil
	}
	return d.lineTokens[i]
}

// Offset converts (row, col) into a global rune index. Both coordinates are
// clamped into the document.
func (d *Document) Offset(row, col int) int {
	row = clampInt(row, 0, len(d.lines)-1)
	col = clampInt(col, 0, d.lineLens[row])
	off := 0
	for i := 0; i < row; i++ {
		off += d.lineLens[i] + 1
	}
	return off + col
}

// Position converts a global rune index into (row, col). An index equal to a
// line's length addresses the end of that line, so every index belongs to
// exactly one line. Out-of-range indices clamp.
func (d *Document) Position(index int) (row, col int) {
	if index < 0 {
		return 0, 0
	}
	start := 0
	for i, n := range d.lineLens {
		if index <= start+n {
			return i, index - start
		}
		start += n + 1
	}
	last := len(d.lines) - 1
	return last, d.lineLens[last]
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
