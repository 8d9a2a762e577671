package document

// KindWord is the only kind produced by Plaintext.
const KindWord = 0

// Token is a classified span within one line: [Start, End) in runes.
type Token struct {
	Kind  int
	Start int
	End   int
}

func (t Token) Len() int { return t.End - t.Start }

// Engine turns a single line into tokens. Implementations must be pure:
// the same line always yields the same tokens, ranges are strictly
// increasing, non-overlapping, within the line, and never empty.
type Engine interface {
	// Types maps token kinds to human-readable names.
	Types() map[int]string
	Tokenize(line string) []Token
}

// EngineFunc adapts a plain function into an Engine with the given kind names.
type EngineFunc struct {
	Names map[int]string
	Fn    func(line string) []Token
}

func NewEngine(names map[int]string, fn func(line string) []Token) EngineFunc {
	return EngineFunc{Names: names, Fn: fn}
}

func (e EngineFunc) Types() map[int]string { return e.Names }

func (e EngineFunc) Tokenize(line string) []Token {
	if e.Fn == nil || line == "" {
		return nil
	}
	return e.Fn(line)
}

// TypeName returns the name e gives to kind, or "Unknown".
func TypeName(e Engine, kind int) string {
	if e == nil {
		return "Unknown"
	}
	if name, ok := e.Types()[kind]; ok {
		return name
	}
	return "Unknown"
}

// Plaintext classifies every maximal run of word runes ([A-Za-z0-9_]) as a
// KindWord token and skips everything else.
var Plaintext Engine = plaintextEngine{}

type plaintextEngine struct{}

func (plaintextEngine) Types() map[int]string {
	return map[int]string{KindWord: "Word"}
}

func (plaintextEngine) Tokenize(line string) []Token {
	if line == "" {
		return nil
	}
	runes := []rune(line)

	var tokens []Token
	i := 0
	for i < len(runes) {
		if !IsWordRune(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && IsWordRune(runes[i]) {
			i++
		}
		tokens = append(tokens, Token{Kind: KindWord, Start: start, End: i})
	}
	return tokens
}

// IsWordRune reports whether r belongs to the ASCII word class [A-Za-z0-9_].
func IsWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	default:
		return r == '_'
	}
}
