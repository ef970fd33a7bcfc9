package parser

// collectorKind classifies what a line's tokens amounted to once its
// Eol is reached.
type collectorKind int

const (
	collectorUnknown collectorKind = iota
	collectorTag
	collectorHamlComment
	collectorHtmlComment
	collectorHeader
)

// collector accumulates one line's tag, attributes and content as its
// tokens are consumed.
type collector struct {
	kind    collectorKind
	tag     string
	attrs   map[string][]string
	content string
}

func newCollector() *collector {
	return &collector{attrs: map[string][]string{}}
}

func (c *collector) hasTagOrAttrs() bool {
	return c.tag != "" || len(c.attrs) > 0
}

func (c *collector) isBlock() bool {
	return c.hasTagOrAttrs() && c.content == ""
}

func (c *collector) isInline() bool {
	return c.hasTagOrAttrs() && c.content != ""
}

func (c *collector) isPlainText() bool {
	return !c.hasTagOrAttrs() && c.content != ""
}

func (c *collector) isEmpty() bool {
	return !c.hasTagOrAttrs() && c.content == ""
}
