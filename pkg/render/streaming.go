package render

import (
	"io"
	"net/http"

	"github.com/gotml-dev/gotml/pkg/dom"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes content incrementally for faster time-to-first-byte.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to an
// http.ResponseWriter. If the writer implements http.Flusher, content
// is flushed after each document section.
func NewStreamingRenderer(w http.ResponseWriter, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderDocument renders a complete document with incremental
// flushing. A root <html> element is flushed after each top-level
// section (head first, for faster first paint); any other root is
// rendered whole and flushed once.
func (s *StreamingRenderer) RenderDocument(doc *dom.Node) error {
	if doc == nil {
		return nil
	}

	if doc.Kind != dom.KindElement || doc.Tag != "html" {
		if err := s.RenderToWriter(s.w, doc); err != nil {
			return err
		}
		s.flush()
		return nil
	}

	if _, err := io.WriteString(s.w, Doctype); err != nil {
		return err
	}
	if s.config.Pretty {
		io.WriteString(s.w, "\n")
	}

	if err := writeOpenTag(s.w, doc); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, ">"); err != nil {
		return err
	}
	if s.config.Pretty {
		io.WriteString(s.w, "\n")
	}

	for _, child := range doc.Children {
		if err := s.renderNode(s.w, child, 1, s.config.Pretty); err != nil {
			return err
		}
		s.flush()
	}

	if _, err := io.WriteString(s.w, "</html>"); err != nil {
		return err
	}
	if s.config.Pretty {
		io.WriteString(s.w, "\n")
	}
	s.flush()

	return nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer with flush counting. Useful for
// testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
