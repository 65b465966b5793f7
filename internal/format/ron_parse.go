package format

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// unmarshalRON parses RON into generic values and hands them to
// encoding/json, so out is filled using the same field rules marshalRON
// writes with.
func unmarshalRON(data []byte, out any) error {
	p := &ronParser{src: data}
	if err := p.skipAttributes(); err != nil {
		return err
	}
	v, err := p.value()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return p.errorf("unexpected trailing input")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

type ronParser struct {
	src []byte
	pos int
}

func (p *ronParser) errorf(format string, args ...any) error {
	line, col := 1, 1
	for _, b := range p.src[:min(p.pos, len(p.src))] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return fmt.Errorf("ron %d:%d: %s", line, col, fmt.Sprintf(format, args...))
}

func (p *ronParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *ronParser) peekAt(offset int) byte {
	if p.pos+offset >= len(p.src) {
		return 0
	}
	return p.src[p.pos+offset]
}

func (p *ronParser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

// skipSpace consumes whitespace, line comments and nested block comments.
func (p *ronParser) skipSpace() {
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '/' && p.peekAt(1) == '/':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.peekAt(1) == '*':
			p.pos += 2
			depth := 1
			for p.pos < len(p.src) && depth > 0 {
				switch {
				case p.peek() == '/' && p.peekAt(1) == '*':
					depth++
					p.pos += 2
				case p.peek() == '*' && p.peekAt(1) == '/':
					depth--
					p.pos += 2
				default:
					p.pos++
				}
			}
		default:
			return
		}
	}
}

// skipAttributes drops leading `#![enable(...)]` lines.
func (p *ronParser) skipAttributes() error {
	for {
		p.skipSpace()
		if p.peek() != '#' || p.peekAt(1) != '!' {
			return nil
		}
		end := strings.IndexByte(string(p.src[p.pos:]), ']')
		if end < 0 {
			return p.errorf("unterminated attribute")
		}
		p.pos += end + 1
	}
}

func (p *ronParser) value() (any, error) {
	p.skipSpace()
	c := p.peek()
	switch {
	case p.pos >= len(p.src):
		return nil, p.errorf("unexpected end of input")
	case c == '(':
		p.pos++
		return p.parenBody(false)
	case c == '[':
		p.pos++
		return p.list()
	case c == '{':
		p.pos++
		return p.mapValue()
	case c == '"':
		return p.quoted()
	case c == '\'':
		return p.char()
	case c == 'r' && (p.peekAt(1) == '"' || p.peekAt(1) == '#'):
		return p.rawString()
	case c == 'b' && p.peekAt(1) == '"':
		p.pos++
		return p.quoted()
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.number()
	case isIdentStart(c):
		return p.identValue()
	}
	return nil, p.errorf("unexpected character %q", c)
}

func (p *ronParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *ronParser) identValue() (any, error) {
	name := p.ident()
	switch name {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "None":
		return nil, nil
	case "inf", "NaN":
		return nil, p.errorf("non-finite float %s cannot be decoded", name)
	}

	p.skipSpace()
	if p.peek() != '(' {
		// Unit structs and unit enum variants decode to their name.
		return name, nil
	}
	p.pos++
	if name == "Some" {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
		}
		return v, p.expect(')')
	}
	return p.parenBody(true)
}

// parenBody parses what follows an opening parenthesis: either named fields
// or a tuple. A named single-element tuple is a newtype and unwraps to its
// element.
func (p *ronParser) parenBody(named bool) (any, error) {
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return map[string]any{}, nil
	}

	if p.atFieldName() {
		fields := map[string]any{}
		for {
			p.skipSpace()
			if p.peek() == ')' {
				p.pos++
				return fields, nil
			}
			key := p.ident()
			if key == "" {
				return nil, p.errorf("expected field name")
			}
			if err := p.expect(':'); err != nil {
				return nil, err
			}
			v, err := p.value()
			if err != nil {
				return nil, err
			}
			fields[key] = v
			if done, err := p.separator(')'); err != nil || done {
				return fields, err
			}
		}
	}

	items, err := p.sequence(')')
	if err != nil {
		return nil, err
	}
	if named && len(items) == 1 {
		return items[0], nil
	}
	return items, nil
}

// atFieldName reports whether the input continues with `ident :`.
func (p *ronParser) atFieldName() bool {
	save := p.pos
	defer func() { p.pos = save }()
	if !isIdentStart(p.peek()) {
		return false
	}
	p.ident()
	p.skipSpace()
	return p.peek() == ':' && p.peekAt(1) != ':'
}

// separator consumes a comma or the closing delimiter. It reports true once
// the delimiter is reached.
func (p *ronParser) separator(closing byte) (bool, error) {
	p.skipSpace()
	switch p.peek() {
	case ',':
		p.pos++
		return false, nil
	case closing:
		p.pos++
		return true, nil
	}
	return false, p.errorf("expected ',' or %q", closing)
}

func (p *ronParser) sequence(closing byte) ([]any, error) {
	items := []any{}
	for {
		p.skipSpace()
		if p.peek() == closing {
			p.pos++
			return items, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		if done, err := p.separator(closing); err != nil || done {
			return items, err
		}
	}
}

func (p *ronParser) list() (any, error) {
	return p.sequence(']')
}

func (p *ronParser) mapValue() (any, error) {
	m := map[string]any{}
	for {
		p.skipSpace()
		if p.peek() == '}' {
			p.pos++
			return m, nil
		}
		k, err := p.value()
		if err != nil {
			return nil, err
		}
		key, err := p.mapKey(k)
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		m[key] = v
		if done, err := p.separator('}'); err != nil || done {
			return m, err
		}
	}
}

func (p *ronParser) mapKey(k any) (string, error) {
	switch key := k.(type) {
	case string:
		return key, nil
	case json.Number:
		return key.String(), nil
	case bool:
		return strconv.FormatBool(key), nil
	}
	return "", p.errorf("unsupported map key %T", k)
}

func (p *ronParser) quoted() (any, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for {
		if p.pos >= len(p.src) {
			return nil, p.errorf("unterminated string")
		}
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return sb.String(), nil
		case '\\':
			p.pos++
			r, err := p.escape()
			if err != nil {
				return nil, err
			}
			sb.WriteRune(r)
		default:
			r, size := utf8.DecodeRune(p.src[p.pos:])
			sb.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *ronParser) char() (any, error) {
	p.pos++
	var r rune
	if p.peek() == '\\' {
		p.pos++
		esc, err := p.escape()
		if err != nil {
			return nil, err
		}
		r = esc
	} else {
		dec, size := utf8.DecodeRune(p.src[p.pos:])
		r = dec
		p.pos += size
	}
	if p.peek() != '\'' {
		return nil, p.errorf("unterminated char")
	}
	p.pos++
	return string(r), nil
}

func (p *ronParser) escape() (rune, error) {
	c := p.peek()
	p.pos++
	switch c {
	case '"', '\'', '\\', '/':
		return rune(c), nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case '0':
		return 0, nil
	case 'x':
		return p.hexRune(2)
	case 'u':
		if p.peek() == '{' {
			end := strings.IndexByte(string(p.src[p.pos:]), '}')
			if end < 0 {
				return 0, p.errorf("unterminated unicode escape")
			}
			digits := string(p.src[p.pos+1 : p.pos+end])
			p.pos += end + 1
			n, err := strconv.ParseUint(digits, 16, 32)
			if err != nil {
				return 0, p.errorf("invalid unicode escape %q", digits)
			}
			return rune(n), nil
		}
		return p.hexRune(4)
	}
	return 0, p.errorf("unknown escape \\%c", c)
}

func (p *ronParser) hexRune(n int) (rune, error) {
	if p.pos+n > len(p.src) {
		return 0, p.errorf("truncated escape")
	}
	digits := string(p.src[p.pos : p.pos+n])
	p.pos += n
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, p.errorf("invalid escape %q", digits)
	}
	return rune(v), nil
}

func (p *ronParser) rawString() (any, error) {
	p.pos++ // r
	hashes := 0
	for p.peek() == '#' {
		hashes++
		p.pos++
	}
	if p.peek() != '"' {
		return nil, p.errorf("expected '\"' in raw string")
	}
	p.pos++
	terminator := "\"" + strings.Repeat("#", hashes)
	end := strings.Index(string(p.src[p.pos:]), terminator)
	if end < 0 {
		return nil, p.errorf("unterminated raw string")
	}
	s := string(p.src[p.pos : p.pos+end])
	p.pos += end + len(terminator)
	return s, nil
}

// number returns a json.Number normalized to something encoding/json
// accepts: no underscores, no leading plus, decimal integers.
func (p *ronParser) number() (any, error) {
	start := p.pos
	neg := false
	if c := p.peek(); c == '+' || c == '-' {
		neg = c == '-'
		p.pos++
	}
	if isIdentStart(p.peek()) {
		name := p.ident()
		return nil, p.errorf("non-finite float %s cannot be decoded", name)
	}

	if p.peek() == '0' {
		base := 0
		switch p.peekAt(1) {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			p.pos += 2
			digitsStart := p.pos
			for p.pos < len(p.src) && (isHexDigit(p.src[p.pos]) || p.src[p.pos] == '_') {
				p.pos++
			}
			return p.integer(string(p.src[digitsStart:p.pos]), base, neg)
		}
	}

	isFloat := false
scan:
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case isDigit(c) || c == '_':
		case c == '.':
			isFloat = true
		case c == 'e' || c == 'E':
			isFloat = true
			if n := p.peekAt(1); n == '+' || n == '-' {
				p.pos++
			}
		default:
			break scan
		}
		p.pos++
	}
	text := strings.ReplaceAll(string(p.src[start:p.pos]), "_", "")
	text = strings.TrimPrefix(text, "+")
	if !isFloat {
		return p.integer(strings.TrimPrefix(text, "-"), 10, neg)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorf("invalid number %q", text)
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

func (p *ronParser) integer(digits string, base int, neg bool) (any, error) {
	digits = strings.ReplaceAll(digits, "_", "")
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, p.errorf("invalid integer %q", digits)
	}
	if neg {
		n.Neg(n)
	}
	return json.Number(n.String()), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c < utf8.RuneSelf && unicode.IsLetter(rune(c)))
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
