// Package parser enforces indentation discipline over a token stream
// and builds the document tree from it.
package parser

import (
	"github.com/elioetibr/haml-go/pkg/herrors"
	"github.com/elioetibr/haml-go/pkg/lexer"
	"github.com/elioetibr/haml-go/pkg/tree"
)

// Parser consumes a token sequence and builds a tree.Tree, enforcing
// the document's indentation discipline as it goes.
type Parser struct {
	tokens []lexer.Token
	pos    int

	tree *tree.Tree

	indentChar    rune
	indentUnitLen int
	curLevel      int
}

// Parse builds a document tree from tokens, or reports the first
// indentation or tag-shape violation encountered.
func Parse(tokens []lexer.Token) (*tree.Tree, error) {
	p := &Parser{tokens: tokens, tree: tree.New()}
	if err := p.checkIndentOnFirstLine(); err != nil {
		return nil, err
	}

	data := newCollector()
	for p.peek().Kind != lexer.Eof {
		tok := p.peek()
		switch tok.Kind {
		case lexer.Indent:
			if err := p.checkIndent(); err != nil {
				return nil, err
			}
		case lexer.Tag, lexer.Id, lexer.Class:
			if err := p.checkTag(data, tok); err != nil {
				return nil, err
			}
			p.advance()
			data.kind = collectorTag
		case lexer.PlainText:
			data.content = tok.Text
			p.advance()
		case lexer.HtmlComment:
			data.kind = collectorHtmlComment
			p.advance()
		case lexer.HamlComment:
			data.kind = collectorHamlComment
			p.advance()
		case lexer.Doctype:
			data.kind = collectorHeader
			p.advance()
		case lexer.Eol:
			if err := p.finalizeLine(data); err != nil {
				return nil, err
			}
			data = newCollector()
		default:
			// Assign and ClosingEmpty are recognised by the lexer but
			// not yet interpreted here.
			p.advance()
		}
	}
	return p.tree, nil
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekNext() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

// checkIndentOnFirstLine drops leading blank lines and rejects a
// document whose first real line is already indented.
func (p *Parser) checkIndentOnFirstLine() error {
	for p.peek().Kind == lexer.Eol {
		p.advance()
	}
	if p.peek().Kind == lexer.Indent {
		return herrors.IllegalIndentAtBeginErr(p.peek().Line)
	}
	return nil
}

// checkIndent validates the current Indent token against the running
// indentation unit and the previous line's level, then shifts it.
func (p *Parser) checkIndent() error {
	tok := p.peek()

	if p.indentUnitLen == 0 {
		p.indentChar = tok.IndentChar
		p.indentUnitLen = tok.IndentCount
	}

	if p.peekNext().Kind == lexer.Indent {
		return herrors.MixSpaceTabErr(tok.Line)
	}

	if tok.IndentChar != p.indentChar || tok.IndentCount%p.indentUnitLen != 0 {
		return herrors.InconsistentIndentErr(tok.Line, tok.IndentChar, p.indentChar, tok.IndentCount, p.indentUnitLen)
	}

	newLevel := tok.IndentCount / p.indentUnitLen
	valid := newLevel == p.curLevel || newLevel == p.curLevel+1 || newLevel < p.curLevel
	if !valid {
		return herrors.IndentJumpTooDeepErr(tok.Line, newLevel-p.curLevel)
	}
	p.curLevel = newLevel
	p.advance()
	return nil
}

// checkTag validates a Tag/Id/Class token and folds it into data.
func (p *Parser) checkTag(data *collector, tok lexer.Token) error {
	switch tok.Kind {
	case lexer.Tag:
		if tok.Text == "" {
			return herrors.InvalidTagErr(tok.Line)
		}
		data.tag = tok.Text
	case lexer.Id:
		if tok.Text == "" {
			return herrors.IllegalClassOrIdErr(tok.Line)
		}
		data.attrs["id"] = []string{tok.Text}
	case lexer.Class:
		if tok.Text == "" {
			return herrors.IllegalClassOrIdErr(tok.Line)
		}
		data.attrs["class"] = append(data.attrs["class"], tok.Text)
	}
	return nil
}

// finalizeLine shifts the Eol, validates nesting, inserts the line's
// item into the tree, and primes curLevel for the line that follows.
func (p *Parser) finalizeLine(data *collector) error {
	line := p.peek().Line
	p.advance()

	if err := p.checkIllegalNesting(data, line); err != nil {
		return err
	}

	p.insertInTree(data)

	next := p.peek()
	if next.Kind != lexer.Indent && next.Kind != lexer.Eol && next.Kind != lexer.Eof {
		p.curLevel = 0
	}
	return nil
}

// checkIllegalNesting rejects a line that both carries content and is
// immediately followed by a more deeply indented line: content and
// nested children are mutually exclusive.
func (p *Parser) checkIllegalNesting(data *collector, line int) error {
	next := p.peek()
	if next.Kind != lexer.Indent || data.content == "" {
		return nil
	}
	if next.IndentCount <= p.indentUnitLen*p.curLevel {
		return nil
	}
	if data.hasTagOrAttrs() {
		return herrors.IllegalNestingErr(line, data.tag)
	}
	if data.kind != collectorHamlComment && data.isPlainText() {
		return herrors.IllegalPlainTextNestingErr(line)
	}
	return nil
}

func (p *Parser) insertInTree(data *collector) {
	item := itemFor(data)
	if item == nil {
		return
	}
	p.tree.SetLevel(p.curLevel)
	p.tree.Insert(item)
}

func itemFor(data *collector) *tree.Item {
	switch data.kind {
	case collectorUnknown:
		if data.content != "" {
			return tree.PlainTextItem(data.content)
		}
		return nil
	case collectorTag:
		if data.isBlock() {
			tag := data.tag
			if tag == "" {
				tag = "div"
			}
			return tree.BlockItem(tag, data.attrs)
		}
		return tree.InlineItem(data.tag, data.attrs, data.content)
	case collectorHamlComment:
		return tree.HamlCommentItem()
	case collectorHtmlComment:
		return tree.HtmlCommentItem(data.content)
	case collectorHeader:
		return tree.HeaderItem()
	default:
		return nil
	}
}
