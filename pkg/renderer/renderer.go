// Package renderer walks a document tree and serializes it to HTML.
package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/elioetibr/haml-go/pkg/format"
	"github.com/elioetibr/haml-go/pkg/tree"
)

// Options configures how a tree is serialized.
type Options struct {
	// Format selects the output HTML dialect.
	Format format.Format
	// Indent is the number of spaces used per nesting level.
	Indent int
}

// DefaultOptions returns the renderer's default configuration: HTML5
// output indented two spaces per level.
func DefaultOptions() Options {
	return Options{Format: format.HTML5, Indent: 2}
}

// Renderer serializes a document tree to an io.Writer.
type Renderer struct {
	w       io.Writer
	options Options
}

// New returns a Renderer writing to w under options.
func New(w io.Writer, options Options) *Renderer {
	return &Renderer{w: w, options: options}
}

// Render depth-first serializes root's children to HTML.
func (r *Renderer) Render(root *tree.Item) error {
	for _, child := range root.Children() {
		if err := r.renderItem(child, 0); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderItem(item *tree.Item, depth int) error {
	switch item.Kind {
	case tree.Header:
		return r.writeLine(depth, format.Doctype(r.options.Format))
	case tree.PlainText:
		return r.writeLine(depth, item.Content)
	case tree.HamlComment:
		return nil
	case tree.HtmlComment:
		return r.renderHtmlComment(item, depth)
	case tree.Inline:
		return r.renderInline(item, depth)
	case tree.Block:
		return r.renderBlock(item, depth)
	default:
		return nil
	}
}

func (r *Renderer) renderHtmlComment(item *tree.Item, depth int) error {
	if len(item.Children()) == 0 {
		body := item.Content
		if body != "" {
			body = " " + body + " "
		}
		return r.writeLine(depth, fmt.Sprintf("<!--%s-->", body))
	}
	if err := r.writeLine(depth, "<!--"); err != nil {
		return err
	}
	for _, child := range item.Children() {
		if err := r.renderItem(child, depth+1); err != nil {
			return err
		}
	}
	return r.writeLine(depth, "-->")
}

// renderInline writes a tag whose content sits on the same line as its
// opening tag, e.g. "<p>hello</p>".
func (r *Renderer) renderInline(item *tree.Item, depth int) error {
	open := r.openTag(item)
	if format.IsVoid(item.Tag) {
		return r.writeLine(depth, open)
	}
	return r.writeLine(depth, fmt.Sprintf("%s%s</%s>", open, item.Content, item.Tag))
}

// renderBlock writes a tag with no same-line content. A childless
// block closes on the same line; one with children opens, recurses,
// and closes on its own line.
func (r *Renderer) renderBlock(item *tree.Item, depth int) error {
	open := r.openTag(item)
	if format.IsVoid(item.Tag) {
		return r.writeLine(depth, open)
	}
	if len(item.Children()) == 0 {
		return r.writeLine(depth, fmt.Sprintf("%s</%s>", open, item.Tag))
	}
	if err := r.writeLine(depth, open); err != nil {
		return err
	}
	for _, child := range item.Children() {
		if err := r.renderItem(child, depth+1); err != nil {
			return err
		}
	}
	return r.writeLine(depth, fmt.Sprintf("</%s>", item.Tag))
}

func (r *Renderer) openTag(item *tree.Item) string {
	quote := format.AttrQuote(r.options.Format)
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(item.Tag)
	for _, name := range sortedAttrNames(item.Attrs) {
		values := item.Attrs[name]
		sb.WriteByte(' ')
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteByte(quote)
		sb.WriteString(strings.Join(values, " "))
		sb.WriteByte(quote)
	}
	if format.IsVoid(item.Tag) {
		sb.WriteString(format.SelfCloseSuffix(r.options.Format))
	}
	sb.WriteByte('>')
	return sb.String()
}

func sortedAttrNames(attrs map[string][]string) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Renderer) writeLine(depth int, text string) error {
	indent := strings.Repeat(" ", depth*r.options.Indent)
	_, err := fmt.Fprintf(r.w, "%s%s\n", indent, text)
	return err
}
