// Package engine wires the stream, lexer, parser and renderer into a
// single compile step.
package engine

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/elioetibr/haml-go/pkg/lexer"
	"github.com/elioetibr/haml-go/pkg/parser"
	"github.com/elioetibr/haml-go/pkg/renderer"
	"github.com/elioetibr/haml-go/pkg/stream"
)

// Options configures a Compile call.
type Options struct {
	Render renderer.Options
	Logger *logrus.Logger
}

// DefaultOptions returns the engine's default configuration.
func DefaultOptions() Options {
	return Options{Render: renderer.DefaultOptions(), Logger: logrus.StandardLogger()}
}

// Compile reads HAML source from r, compiles it, and writes the
// resulting HTML to w. Indentation and tag-shape violations are
// returned as *herrors.Error; renderer I/O failures are wrapped.
func Compile(r io.Reader, w io.Writer, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	log.Debug("lexing")
	tokens := lexer.Lex(stream.New(r))

	log.Debug("parsing")
	doc, err := parser.Parse(tokens)
	if err != nil {
		log.WithField("error", err).Warn("parse aborted")
		return err
	}

	log.Debug("rendering")
	if err := renderer.New(w, opts.Render).Render(doc.Root()); err != nil {
		return errors.Wrap(err, "render")
	}
	return nil
}
