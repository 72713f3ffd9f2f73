package cowjson

import (
	"fmt"
	"strconv"
)

// Position is a source location.
type Position struct {
	Offset int // byte offset from the start of the input
	Row    int // 1-based line
	Column int // bytes consumed since the last newline
}

// String returns the position as "row:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// ParseError reports a structural grammar violation. The whole parse is
// aborted; no partial tree is returned.
type ParseError struct {
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cowjson: %s at %s (offset %d)", e.Message, e.Pos, e.Pos.Offset)
}

// Parser is a single forward recursive-descent pass over a Text. Every
// string value it produces is a zero-copy slice of the source buffer.
type Parser struct {
	src Text
	pos int
	row int
	col int
}

// NewParser creates a parser over src. The source must stay alive for the
// duration of the parse; string leaves of the result keep aliasing it
// afterwards.
func NewParser(src Text) *Parser {
	return &Parser{src: src, row: 1}
}

// Parse is a convenience wrapper: copy input into a fresh Text and parse
// one document from it.
func Parse(input []byte) (*Node, error) {
	return NewParser(NewText(input)).Parse()
}

// ParseString is Parse for a string input.
func ParseString(input string) (*Node, error) {
	return NewParser(NewTextString(input)).Parse()
}

// Parse resets the position state and parses exactly one value starting at
// offset 0. Bytes after the value are never examined; trailing garbage is
// accepted.
func (p *Parser) Parse() (*Node, error) {
	p.pos, p.row, p.col = 0, 1, 0
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return NewNode(v), nil
}

// advance consumes k bytes, tracking row and column for diagnostics.
func (p *Parser) advance(k int) {
	for i := 0; i < k; i++ {
		if p.src.At(p.pos) == '\n' {
			p.row++
			p.col = 0
		} else {
			p.col++
		}
		p.pos++
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < p.src.Len() && isSpace(p.src.At(p.pos)) {
		p.advance(1)
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (p *Parser) position() Position {
	return Position{Offset: p.pos, Row: p.row, Column: p.col}
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Pos:     p.position(),
	}
}

// parseValue dispatches on the lookahead byte.
func (p *Parser) parseValue() (*Value, error) {
	p.skipWhitespace()
	if p.pos >= p.src.Len() {
		return nil, p.errorf("unexpected end of input")
	}

	switch p.src.At(p.pos) {
	case 'n':
		return p.parseLiteral("null", Null())
	case 't':
		return p.parseLiteral("true", Bool(true))
	case 'f':
		return p.parseLiteral("false", Bool(false))
	case '"':
		return p.parseString()
	case '[':
		return p.parseArray()
	case '{':
		return p.parseObject()
	default:
		return p.parseNumber()
	}
}

// parseLiteral matches the exact literal bytes.
func (p *Parser) parseLiteral(lit string, v *Value) (*Value, error) {
	for i := 0; i < len(lit); i++ {
		if p.pos+i >= p.src.Len() || p.src.At(p.pos+i) != lit[i] {
			return nil, p.errorf("illegal token %q", p.src.At(p.pos))
		}
	}
	p.advance(len(lit))
	return v, nil
}

// parseString takes the bytes between the opening quote and the very next
// quote as a zero-copy slice of the source. No escape processing.
func (p *Parser) parseString() (*Value, error) {
	p.advance(1) // opening quote
	end := p.src.IndexByte('"', p.pos)
	if end < 0 {
		return nil, p.errorf("expected '\"' to terminate string")
	}
	str := p.src.Slice(p.pos, end-p.pos)
	p.advance(end + 1 - p.pos)
	return Str(str), nil
}

// parseNumber scans digits, '.' and 'e'. The token is a float if it
// contains '.' or 'e', else an integer. There is no sign or exponent-sign
// handling: "-1" and "1e-2" are rejected.
func (p *Parser) parseNumber() (*Value, error) {
	start := p.pos
	end := p.pos
	isFloat := false
	for end < p.src.Len() {
		c := p.src.At(end)
		if c == '.' || c == 'e' {
			isFloat = true
		} else if !isDigit(c) {
			break
		}
		end++
	}
	if end == start {
		return nil, p.errorf("illegal token %q", p.src.At(p.pos))
	}

	tok := string(p.src.Bytes()[start:end])
	p.advance(end - start)

	if isFloat {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, p.errorf("invalid number %q", tok)
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, p.errorf("invalid number %q", tok)
	}
	return Int(i), nil
}

// parseArray consumes '[' and elements until ']'. A comma after an element
// is optional; its omission is tolerated, not rejected. When present it
// must immediately follow the element.
func (p *Parser) parseArray() (*Value, error) {
	p.advance(1) // '['
	arr := Array()
	p.skipWhitespace()
	for p.pos < p.src.Len() && p.src.At(p.pos) != ']' {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if p.pos < p.src.Len() && p.src.At(p.pos) == ',' {
			p.advance(1)
		}
		p.skipWhitespace()
		arr.arrVal = append(arr.arrVal, NewNode(v))
	}
	if p.pos >= p.src.Len() {
		return nil, p.errorf("unterminated array")
	}
	p.advance(1) // ']'
	return arr, nil
}

// parseObject consumes '{' and key:value entries until '}'. Keys must be
// strings, the ':' must immediately follow the key, and an entry with an
// existing key overwrites it.
func (p *Parser) parseObject() (*Value, error) {
	p.advance(1) // '{'
	obj := Object()
	p.skipWhitespace()
	for p.pos < p.src.Len() && p.src.At(p.pos) != '}' {
		key, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if key.Kind() != KindStr {
			return nil, p.errorf("object key must be a string")
		}

		if p.pos < p.src.Len() && p.src.At(p.pos) == ':' {
			p.advance(1)
		} else {
			return nil, p.errorf("expected ':' after object key")
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if p.pos < p.src.Len() && p.src.At(p.pos) == ',' {
			p.advance(1)
		}
		p.skipWhitespace()
		obj.setMember(key.strVal, NewNode(v))
	}
	if p.pos >= p.src.Len() {
		return nil, p.errorf("unterminated object")
	}
	p.advance(1) // '}'
	return obj, nil
}
