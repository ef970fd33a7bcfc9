// Package lexer tokenizes HAML source one line at a time.
package lexer

import (
	"strings"
	"unicode"

	"github.com/elioetibr/haml-go/pkg/stream"
)

// Lexer turns a character stream into a flat token sequence. It never
// fails: malformed constructs degrade to PlainText.
type Lexer struct {
	in     *stream.Stream
	tokens []Token
	line   int
}

// Lex tokenizes the entire stream and returns the token sequence,
// always terminated by exactly one Eof token.
func Lex(s *stream.Stream) []Token {
	l := &Lexer{in: s, line: 1}
	for {
		if l.lexLine() {
			break
		}
	}
	return l.tokens
}

func (l *Lexer) emit(k Kind, text string) {
	l.tokens = append(l.tokens, Token{Kind: k, Line: l.line, Text: text})
}

func (l *Lexer) emitIndent(c rune, n int) {
	l.tokens = append(l.tokens, Token{Kind: Indent, Line: l.line, IndentChar: c, IndentCount: n})
}

// lexLine consumes one line's worth of tokens and reports whether the
// stream has been fully drained (Eof emitted).
func (l *Lexer) lexLine() bool {
	lineStart := len(l.tokens)
	l.handleIndentRun()
	if !l.handleEscape() {
		if !l.handleComment() {
			l.handleStructural()
			l.handleSelfClosing()
			l.handleAssign()
			l.handlePlainText()
		}
	}
	return l.finishLine(lineStart)
}

// handleIndentRun implements the leading-indentation recipe: runs of a
// single whitespace kind alternate, each emitting its own Indent token,
// until neither a space run nor a tab run can be consumed.
func (l *Lexer) handleIndentRun() {
	for {
		spaces := l.consumeRun(' ')
		if spaces > 0 {
			l.emitIndent(' ', spaces)
		}
		tabs := l.consumeRun('\t')
		if tabs > 0 {
			l.emitIndent('\t', tabs)
		}
		if spaces == 0 && tabs == 0 {
			return
		}
	}
}

func (l *Lexer) consumeRun(want rune) int {
	n := 0
	for {
		c, ok := l.in.Get()
		if !ok {
			return n
		}
		if c != want {
			l.in.Unget(c)
			return n
		}
		n++
	}
}

// handleEscape implements the backslash escape: the remainder of the
// line is lexed as plain text with no structural recognition.
func (l *Lexer) handleEscape() bool {
	c, ok := l.in.Get()
	if !ok {
		l.in.UngetEOF()
		return false
	}
	if c != '\\' {
		l.in.Unget(c)
		return false
	}
	l.handlePlainText()
	return true
}

// handleComment recognises the '/' (HtmlComment) and '-#' (HamlComment)
// line prefixes, consuming the remainder of the line as plain text.
func (l *Lexer) handleComment() bool {
	c, ok := l.in.Get()
	if !ok {
		l.in.UngetEOF()
		return false
	}
	switch c {
	case '/':
		l.emit(HtmlComment, "")
		l.handlePlainText()
		return true
	case '-':
		c2, ok2 := l.in.Get()
		if ok2 && c2 == '#' {
			l.emit(HamlComment, "")
			l.handlePlainText()
			return true
		}
		if ok2 {
			l.in.Unget(c2)
		} else {
			l.in.UngetEOF()
		}
		l.in.Unget('-')
		return false
	default:
		l.in.Unget(c)
		return false
	}
}

// handleStructural recognises %tag followed by any number of #id and
// .class suffixes, and hands off to doctype recognition on '!'.
func (l *Lexer) handleStructural() {
	c, ok := l.in.Get()
	if !ok {
		l.in.UngetEOF()
		return
	}
	if c == '%' {
		l.emit(Tag, l.readIdentifier())
	} else {
		l.in.Unget(c)
	}

	for {
		c, ok := l.in.Get()
		if !ok {
			l.in.UngetEOF()
			return
		}
		switch c {
		case '#':
			l.emit(Id, l.readIdentifier())
		case '.':
			l.emit(Class, l.readIdentifier())
		case '!':
			l.handleDoctype()
			return
		default:
			l.in.Unget(c)
			return
		}
	}
}

// handleDoctype is entered having already consumed one '!'. If two more
// '!' follow, a Doctype token is emitted; otherwise every consumed '!'
// is pushed back so it degrades to plain text.
func (l *Lexer) handleDoctype() {
	c1, ok1 := l.in.Get()
	if ok1 && c1 == '!' {
		c2, ok2 := l.in.Get()
		if ok2 && c2 == '!' {
			l.emit(Doctype, "")
			return
		}
		if ok2 {
			l.in.Unget(c2)
		}
		l.in.Unget(c1)
		l.in.Unget('!')
		return
	}
	if ok1 {
		l.in.Unget(c1)
	}
	l.in.Unget('!')
}

func (l *Lexer) handleSelfClosing() {
	c, ok := l.in.Get()
	if !ok {
		l.in.UngetEOF()
		return
	}
	if c == '/' {
		l.emit(ClosingEmpty, "")
		return
	}
	l.in.Unget(c)
}

func (l *Lexer) handleAssign() {
	c, ok := l.in.Get()
	if !ok {
		l.in.UngetEOF()
		return
	}
	if c == '=' {
		l.emit(Assign, "")
		return
	}
	l.in.Unget(c)
}

// handlePlainText consumes up to, but not including, the next newline
// and emits a PlainText token for the non-empty, trimmed residue.
func (l *Lexer) handlePlainText() {
	var sb strings.Builder
	for {
		c, ok := l.in.Get()
		if !ok {
			l.in.UngetEOF()
			break
		}
		if c == '\n' {
			l.in.Unget('\n')
			break
		}
		sb.WriteRune(c)
	}
	text := strings.Trim(sb.String(), " \t")
	if text != "" {
		l.emit(PlainText, text)
	}
}

// finishLine emits Eol (after blank-line normalisation) or Eof, and
// reports whether the stream has been fully consumed. A final line
// with no trailing newline still gets a synthetic Eol ahead of the
// Eof whenever it produced any tokens, so a missing trailing newline
// never drops the last line's content.
func (l *Lexer) finishLine(lineStart int) bool {
	c, ok := l.in.Get()
	if !ok {
		l.trimTrailingIndent()
		if len(l.tokens) > lineStart {
			l.tokens = append(l.tokens, Token{Kind: Eol, Line: l.line})
		}
		l.tokens = append(l.tokens, Token{Kind: Eof, Line: l.line})
		return true
	}
	if c != '\n' {
		// Defensive: should not happen given the per-line recipe above
		// always stops right before '\n' or Eof.
		l.in.Unget(c)
		return false
	}
	l.trimTrailingIndent()
	l.tokens = append(l.tokens, Token{Kind: Eol, Line: l.line})
	l.line++
	return false
}

// trimTrailingIndent implements blank-line normalisation: indentation
// tokens sitting at the tail of a line that produced nothing else are
// erased so a whitespace-only line yields a bare Eol.
func (l *Lexer) trimTrailingIndent() {
	n := len(l.tokens)
	for n > 0 && l.tokens[n-1].Kind == Indent {
		n--
	}
	l.tokens = l.tokens[:n]
}

func (l *Lexer) readIdentifier() string {
	var sb strings.Builder
	for {
		c, ok := l.in.Get()
		if !ok {
			l.in.UngetEOF()
			break
		}
		if isIdentChar(c) {
			sb.WriteRune(c)
			continue
		}
		l.in.Unget(c)
		break
	}
	return sb.String()
}

func isIdentChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '-' || c == '_'
}
