package pattern

import (
	"strconv"
	"strings"

	"github.com/slugkit/slugkit-generator/dictionary"
	"github.com/slugkit/slugkit-generator/errors"
)

// Default special-char and emoji bounds used when the DSL omits them;
// the grammar (§4.2) allows `{special}` and `{emoji}` bare, with no
// documented default, so a single fixed word-sized default is used for
// both bounds.
const (
	defaultSpecialLength = 8
	defaultEmojiCount    = 1
)

// Length ceilings from §3.
const (
	maxDecLength     = 18
	maxHexLength     = 16
	maxRomanLength   = 15
	maxSpecialLength = 12
	maxEmojiCount    = 6
)

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func isTagRune(r rune) bool {
	return isIdentCont(r)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// scanner walks a rune slice, tracking a 1-based column for error
// reporting.
type scanner struct {
	src []rune
	pos int
}

func newScanner(s string) *scanner {
	return &scanner{src: []rune(s)}
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(offset int) rune {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

func (s *scanner) next() rune {
	r := s.peek()
	s.pos++
	return r
}

func (s *scanner) column() int { return s.pos + 1 }

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.peek()) {
		s.pos++
	}
}

func (s *scanner) readIdent() string {
	start := s.pos
	if s.eof() || !isIdentStart(s.peek()) {
		return ""
	}
	s.pos++
	for !s.eof() && isIdentCont(s.peek()) {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

func (s *scanner) readTag() string {
	start := s.pos
	for !s.eof() && isTagRune(s.peek()) {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

func (s *scanner) readUint() (int, bool) {
	start := s.pos
	for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(string(s.src[start:s.pos]))
	if err != nil {
		return 0, false
	}
	return n, true
}

// readCharSeq reads a run of non-whitespace characters, used for option
// values.
func (s *scanner) readCharSeq() string {
	start := s.pos
	for !s.eof() && !isSpace(s.peek()) && s.peek() != '}' && s.peek() != ']' {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

// parseTags reads a sequence of "+tag"/"-tag" terms.
func parseTags(s *scanner) (include, exclude []string, err error) {
	for {
		s.skipSpace()
		switch s.peek() {
		case '+':
			s.next()
			tag := s.readTag()
			if tag == "" {
				return nil, nil, errors.NewPatternSyntaxError(s.column(), "expected tag name after '+'")
			}
			include = append(include, tag)
		case '-':
			s.next()
			tag := s.readTag()
			if tag == "" {
				return nil, nil, errors.NewPatternSyntaxError(s.column(), "expected tag name after '-'")
			}
			exclude = append(exclude, tag)
		default:
			return include, exclude, nil
		}
	}
}

var sizeOps = []struct {
	token string
	op    dictionary.SizeOp
}{
	{"==", dictionary.SizeEQ},
	{"!=", dictionary.SizeNE},
	{">=", dictionary.SizeGE},
	{"<=", dictionary.SizeLE},
	{">", dictionary.SizeGT},
	{"<", dictionary.SizeLT},
}

// parseSizeLimit reads an optional size-limit predicate.
func parseSizeLimit(s *scanner) (*dictionary.SizeLimit, error) {
	s.skipSpace()
	for _, cand := range sizeOps {
		if matchLiteral(s, cand.token) {
			s.skipSpace()
			n, ok := s.readUint()
			if !ok {
				return nil, errors.NewPatternSyntaxError(s.column(), "expected a number after %q", cand.token)
			}
			return &dictionary.SizeLimit{Op: cand.op, Value: n}, nil
		}
	}
	return nil, nil
}

func matchLiteral(s *scanner, lit string) bool {
	runes := []rune(lit)
	for i, r := range runes {
		if s.peekAt(i) != r {
			return false
		}
	}
	s.pos += len(runes)
	return true
}

// parseOptions reads a sequence of "ident=value" terms.
func parseOptions(s *scanner) (map[string]string, error) {
	var opts map[string]string
	for {
		s.skipSpace()
		start := s.pos
		name := s.readIdent()
		if name == "" {
			return opts, nil
		}
		s.skipSpace()
		if s.peek() != '=' {
			// Not an option after all; rewind and let the caller decide.
			s.pos = start
			return opts, nil
		}
		s.next()
		value := s.readCharSeq()
		if value == "" {
			return nil, errors.NewPatternSyntaxError(s.column(), "expected a value after %q=", name)
		}
		if opts == nil {
			opts = make(map[string]string)
		}
		opts[name] = value
	}
}

// Parse lexes and parses source into a Pattern. It returns a
// [errors.GeneratorError] (concretely a *errors.PatternSyntaxError) on
// any malformed input.
func Parse(source string) (*Pattern, error) {
	s := newScanner(source)

	var (
		chunks       []string
		placeholders []Placeholder
		cur          strings.Builder
		global       *GlobalSettings
	)

	for !s.eof() {
		r := s.peek()

		switch r {
		case '\\':
			next := s.peekAt(1)
			if strings.ContainsRune(`\{}[]`, next) {
				cur.WriteRune(next)
				s.pos += 2
				continue
			}
			cur.WriteRune(r)
			s.next()

		case '{':
			startCol := s.column()
			s.next()
			content, ok := readUntil(s, '}')
			if !ok {
				return nil, errors.NewPatternSyntaxError(startCol, "unterminated placeholder")
			}
			ph, err := parsePlaceholder(content, startCol)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, cur.String())
			cur.Reset()
			placeholders = append(placeholders, ph)

		case '[':
			startCol := s.column()
			s.next()
			content, ok := readUntil(s, ']')
			if !ok {
				return nil, errors.NewPatternSyntaxError(startCol, "unterminated global settings section")
			}
			s.skipSpace()
			if !s.eof() {
				return nil, errors.NewPatternSyntaxError(startCol, "global settings section must be the final content of the pattern")
			}
			g, err := parseGlobal(content, startCol)
			if err != nil {
				return nil, err
			}
			global = g

		default:
			cur.WriteRune(r)
			s.next()
		}
	}

	chunks = append(chunks, cur.String())

	p := &Pattern{
		source:       source,
		Chunks:       chunks,
		Placeholders: placeholders,
		Global:       global,
	}

	if global != nil {
		applyGlobal(p, global)
	}

	return p, nil
}

// readUntil consumes runes up to (and including) the matching close
// delimiter, returning the content before it. It returns ok=false if the
// scanner runs out of input first.
func readUntil(s *scanner, closeDelim rune) (string, bool) {
	start := s.pos
	for !s.eof() {
		if s.peek() == closeDelim {
			content := string(s.src[start:s.pos])
			s.next()
			return content, true
		}
		s.next()
	}
	return "", false
}

// parsePlaceholder parses the content between '{' and '}'. startCol
// points at the opening brace, for error reporting.
func parsePlaceholder(content string, startCol int) (Placeholder, error) {
	s := newScanner(content)
	s.skipSpace()

	ident := s.readIdent()

	switch ident {
	case "number", "num":
		return parseNumber(s, startCol)
	case "special", "spec":
		return parseSpecial(s, startCol)
	case "emoji":
		return parseEmoji(s, startCol)
	case "":
		return Placeholder{}, errors.NewPatternSyntaxError(startCol, "empty placeholder")
	default:
		return parseSelector(s, ident, startCol)
	}
}

func parseSelector(s *scanner, kind string, startCol int) (Placeholder, error) {
	language := ""
	if s.peek() == '@' {
		s.next()
		language = s.readIdent()
		if language == "" {
			return Placeholder{}, errors.NewPatternSyntaxError(startCol, "expected language name after '@'")
		}
	}

	var (
		include, exclude []string
		size             *dictionary.SizeLimit
		opts             map[string]string
		err              error
	)

	s.skipSpace()
	if s.peek() == ':' {
		s.next()
		include, exclude, err = parseTags(s)
		if err != nil {
			return Placeholder{}, err
		}
		size, err = parseSizeLimit(s)
		if err != nil {
			return Placeholder{}, err
		}
		opts, err = parseOptions(s)
		if err != nil {
			return Placeholder{}, err
		}
	}

	if len(opts) > 0 {
		return Placeholder{}, errors.NewPatternSyntaxError(startCol, "selector %q does not accept options", kind)
	}

	sel, err := dictionary.NewSelector(kind, language, include, exclude, size, nil)
	if err != nil {
		return Placeholder{}, err
	}

	return Placeholder{Kind: KindSelector, Selector: sel}, nil
}

func parseNumber(s *scanner, startCol int) (Placeholder, error) {
	s.skipSpace()
	if s.peek() != ':' {
		return Placeholder{}, errors.NewPatternSyntaxError(startCol, "expected ':' after 'number'")
	}
	s.next()
	s.skipSpace()

	length, ok := s.readUint()
	if !ok {
		return Placeholder{}, errors.NewPatternSyntaxError(startCol, "expected a length after 'number:'")
	}

	base := BaseDec

	switch {
	case matchLiteral(s, ",dec"), matchLiteral(s, "d"):
		base = BaseDec
	case matchLiteral(s, ",hex"):
		base = BaseHex
	case matchLiteral(s, ",HEX"):
		base = BaseHexUpper
	case matchLiteral(s, ",roman"):
		base = BaseRoman
	case matchLiteral(s, ",ROMAN"):
		base = BaseRomanUpper
	case matchLiteral(s, "x"):
		base = BaseHex
	case matchLiteral(s, "X"):
		base = BaseHexUpper
	case matchLiteral(s, "r"):
		base = BaseRoman
	case matchLiteral(s, "R"):
		base = BaseRomanUpper
	}

	switch base {
	case BaseDec:
		if length > maxDecLength {
			return Placeholder{}, errors.NewPatternSyntaxError(startCol, "number length %d exceeds the decimal maximum of %d", length, maxDecLength)
		}
	case BaseHex, BaseHexUpper:
		if length > maxHexLength {
			return Placeholder{}, errors.NewPatternSyntaxError(startCol, "number length %d exceeds the hex maximum of %d", length, maxHexLength)
		}
	case BaseRoman, BaseRomanUpper:
		if length > maxRomanLength {
			return Placeholder{}, errors.NewPatternSyntaxError(startCol, "number length %d exceeds the roman maximum of %d", length, maxRomanLength)
		}
	}

	return Placeholder{Kind: KindNumber, Number: NumberGen{MaxLength: length, Base: base}}, nil
}

func parseSpecial(s *scanner, startCol int) (Placeholder, error) {
	minLength, maxLength := defaultSpecialLength, defaultSpecialLength

	s.skipSpace()
	if s.peek() == ':' {
		s.next()
		s.skipSpace()

		first, ok := s.readUint()
		if !ok {
			return Placeholder{}, errors.NewPatternSyntaxError(startCol, "expected a length after 'special:'")
		}
		minLength, maxLength = first, first

		if s.peek() == '-' {
			s.next()
			second, ok := s.readUint()
			if !ok {
				return Placeholder{}, errors.NewPatternSyntaxError(startCol, "expected a length after '-'")
			}
			maxLength = second
		}
	}

	if maxLength < 1 {
		return Placeholder{}, errors.NewPatternSyntaxError(startCol, "special length must be at least 1")
	}
	if minLength > maxLength {
		return Placeholder{}, errors.NewPatternSyntaxError(startCol, "special min length %d exceeds max length %d", minLength, maxLength)
	}
	if maxLength > maxSpecialLength {
		return Placeholder{}, errors.NewPatternSyntaxError(startCol, "special length %d exceeds the maximum of %d", maxLength, maxSpecialLength)
	}

	return Placeholder{Kind: KindSpecial, Special: SpecialCharGen{MinLength: minLength, MaxLength: maxLength}}, nil
}

func parseEmoji(s *scanner, startCol int) (Placeholder, error) {
	gen := EmojiGen{MinCount: defaultEmojiCount, MaxCount: defaultEmojiCount}

	s.skipSpace()
	if s.peek() == ':' {
		s.next()

		include, exclude, err := parseTags(s)
		if err != nil {
			return Placeholder{}, err
		}
		gen.IncludeTags, gen.ExcludeTags = include, exclude

		opts, err := parseOptions(s)
		if err != nil {
			return Placeholder{}, err
		}

		if v, ok := opts["count"]; ok {
			min, max, err := parseCountRange(v)
			if err != nil {
				return Placeholder{}, errors.NewPatternSyntaxError(startCol, "invalid emoji count %q: %v", v, err)
			}
			gen.MinCount, gen.MaxCount = min, max
		}
		if v, ok := opts["unique"]; ok {
			gen.Unique = v == "true" || v == "yes"
		}
		if v, ok := opts["tone"]; ok {
			gen.Tone = v
		}
		if v, ok := opts["gender"]; ok {
			gen.Gender = v
		}
	}

	if gen.MaxCount < 1 {
		return Placeholder{}, errors.NewPatternSyntaxError(startCol, "emoji max_count must be at least 1")
	}
	if gen.MaxCount > maxEmojiCount {
		return Placeholder{}, errors.NewPatternSyntaxError(startCol, "emoji max_count %d exceeds the maximum of %d", gen.MaxCount, maxEmojiCount)
	}
	if gen.Unique && gen.MinCount == 1 && gen.MaxCount == 1 {
		return Placeholder{}, errors.NewPatternSyntaxError(startCol, "emoji unique=true requires min_count or max_count greater than 1")
	}

	return Placeholder{Kind: KindEmoji, Emoji: gen}, nil
}

func parseCountRange(s string) (int, int, error) {
	if i := strings.IndexByte(s, '-'); i >= 0 {
		min, err := strconv.Atoi(s[:i])
		if err != nil {
			return 0, 0, err
		}
		max, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return 0, 0, err
		}
		return min, max, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, err
	}
	return n, n, nil
}

// parseGlobal parses the content of a trailing `[...]` section.
func parseGlobal(content string, startCol int) (*GlobalSettings, error) {
	s := newScanner(content)
	s.skipSpace()

	g := &GlobalSettings{}

	if s.peek() == '@' {
		s.next()
		g.Language = s.readIdent()
		if g.Language == "" {
			return nil, errors.NewPatternSyntaxError(startCol, "expected language name after '@'")
		}
	}

	include, exclude, err := parseTags(s)
	if err != nil {
		return nil, err
	}
	g.IncludeTags, g.ExcludeTags = include, exclude

	size, err := parseSizeLimit(s)
	if err != nil {
		return nil, err
	}
	g.SizeLimit = size

	return g, nil
}

// applyGlobal applies g to every selector placeholder in p that is
// missing the corresponding aspect: language, tags (added without
// conflicting with what's already present), and size limit.
func applyGlobal(p *Pattern, g *GlobalSettings) {
	for i := range p.Placeholders {
		ph := &p.Placeholders[i]
		if ph.Kind != KindSelector {
			continue
		}

		sel := ph.Selector
		if sel.Language == "" && g.Language != "" {
			sel.Language = g.Language
		}
		if sel.SizeLimit == nil && g.SizeLimit != nil {
			sel.SizeLimit = g.SizeLimit
		}
		for _, tag := range g.IncludeTags {
			if !containsStr(sel.ExcludeTags, tag) && !containsStr(sel.IncludeTags, tag) {
				sel.IncludeTags = append(sel.IncludeTags, tag)
			}
		}
		for _, tag := range g.ExcludeTags {
			if !containsStr(sel.IncludeTags, tag) && !containsStr(sel.ExcludeTags, tag) {
				sel.ExcludeTags = append(sel.ExcludeTags, tag)
			}
		}

		ph.Selector = sel
	}
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
