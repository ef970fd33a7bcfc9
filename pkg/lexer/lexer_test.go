package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elioetibr/haml-go/pkg/stream"
)

func lex(src string) []Token {
	return Lex(stream.New(strings.NewReader(src)))
}

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexSimpleTag(t *testing.T) {
	toks := lex("%p hi\n")
	assert.Equal(t, []Kind{Tag, PlainText, Eol, Eof}, kinds(toks))
	assert.Equal(t, "p", toks[0].Text)
	assert.Equal(t, "hi", toks[1].Text)
}

func TestLexIdAndClassChain(t *testing.T) {
	toks := lex("%div#main.a.b\n")
	assert.Equal(t, []Kind{Tag, Id, Class, Class, Eol, Eof}, kinds(toks))
	assert.Equal(t, "main", toks[1].Text)
	assert.Equal(t, "a", toks[2].Text)
	assert.Equal(t, "b", toks[3].Text)
}

func TestLexIndentEmitsOneTokenPerRun(t *testing.T) {
	toks := lex("%div\n  %p hi\n")
	assert.Equal(t, []Kind{Tag, Eol, Indent, Tag, PlainText, Eol, Eof}, kinds(toks))
	assert.Equal(t, ' ', toks[2].IndentChar)
	assert.Equal(t, 2, toks[2].IndentCount)
}

func TestLexMixedIndentEmitsTwoTokens(t *testing.T) {
	toks := lex(" \t%p hi\n")
	assert.Equal(t, []Kind{Indent, Indent, Tag, PlainText, Eol, Eof}, kinds(toks))
	assert.Equal(t, ' ', toks[0].IndentChar)
	assert.Equal(t, '\t', toks[1].IndentChar)
}

func TestLexBlankLineProducesOnlyEol(t *testing.T) {
	toks := lex("   \n")
	assert.Equal(t, []Kind{Eol, Eof}, kinds(toks))
}

func TestLexHtmlComment(t *testing.T) {
	toks := lex("/ a note\n")
	assert.Equal(t, []Kind{HtmlComment, PlainText, Eol, Eof}, kinds(toks))
	assert.Equal(t, "a note", toks[1].Text)
}

func TestLexHamlComment(t *testing.T) {
	toks := lex("-# secret\n")
	assert.Equal(t, []Kind{HamlComment, PlainText, Eol, Eof}, kinds(toks))
	assert.Equal(t, "secret", toks[1].Text)
}

func TestLexLoneDashIsNotAComment(t *testing.T) {
	toks := lex("- not a comment\n")
	assert.Equal(t, []Kind{PlainText, Eol, Eof}, kinds(toks))
	assert.Equal(t, "- not a comment", toks[0].Text)
}

func TestLexDoctype(t *testing.T) {
	toks := lex("!!!\n")
	assert.Equal(t, []Kind{Doctype, Eol, Eof}, kinds(toks))
}

func TestLexLoneBangDegradesToPlainText(t *testing.T) {
	toks := lex("!\n")
	assert.Equal(t, []Kind{PlainText, Eol, Eof}, kinds(toks))
	assert.Equal(t, "!", toks[0].Text)
}

func TestLexSelfClosingAndAssign(t *testing.T) {
	toks := lex("%br/\n")
	assert.Equal(t, []Kind{Tag, ClosingEmpty, Eol, Eof}, kinds(toks))

	toks = lex("%p=\n")
	assert.Equal(t, []Kind{Tag, Assign, Eol, Eof}, kinds(toks))
}

func TestLexEscapeStripsLeadingBackslash(t *testing.T) {
	toks := lex(`\%t.i#4 + plain text string` + "\n")
	assert.Equal(t, []Kind{PlainText, Eol, Eof}, kinds(toks))
	assert.Equal(t, "%t.i#4 + plain text string", toks[0].Text)
}

func TestLexNoTrailingNewlineStillEmitsEol(t *testing.T) {
	toks := lex("%p hi")
	assert.Equal(t, []Kind{Tag, PlainText, Eol, Eof}, kinds(toks))
}

func TestLexEmptyInputIsJustEof(t *testing.T) {
	toks := lex("")
	assert.Equal(t, []Kind{Eof}, kinds(toks))
}
