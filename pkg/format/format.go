// Package format catalogues the output dialects the renderer can
// target: their doctype strings, attribute-quoting convention, and
// which tags render as self-closing void elements.
package format

// Format selects the HTML dialect the renderer emits.
type Format int

const (
	HTML5 Format = iota
	HTML4
	XHTML1Transitional
	XHTML1Strict
)

var doctypes = map[Format]string{
	HTML5:              "<!DOCTYPE html>",
	HTML4:              `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`,
	XHTML1Transitional: `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`,
	XHTML1Strict:       `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`,
}

// Doctype returns the doctype declaration text for f, falling back to
// the HTML5 doctype for an unrecognised value.
func Doctype(f Format) string {
	if d, ok := doctypes[f]; ok {
		return d
	}
	return doctypes[HTML5]
}

// IsXHTML reports whether f is one of the XHTML dialects, which close
// void elements with a trailing slash and require lower-case tags.
func IsXHTML(f Format) bool {
	return f == XHTML1Transitional || f == XHTML1Strict
}

var voidElements = map[string]bool{
	"meta": true, "img": true, "link": true, "br": true, "hr": true,
	"input": true, "area": true, "param": true, "col": true, "base": true,
}

// IsVoid reports whether tag is a void element that never carries a
// closing tag or body.
func IsVoid(tag string) bool {
	return voidElements[tag]
}

// SelfCloseSuffix returns the text appended before '>' when closing a
// void element under f: XHTML dialects self-close with " />"; the
// HTML dialects just close with ">".
func SelfCloseSuffix(f Format) string {
	if IsXHTML(f) {
		return " /"
	}
	return ""
}

// AttrQuote returns the quote character used around attribute values
// under f. XHTML requires double quotes; the HTML dialects use single
// quotes.
func AttrQuote(f Format) byte {
	if IsXHTML(f) {
		return '"'
	}
	return '\''
}
