package xmlemit

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
)

// Writer writes a stream of events to an io.Writer as an XML document.
//
// Writers buffer aggressively: output is not guaranteed to hit the
// destination until Flush or Release is called. Structural errors
// (mismatched end elements, invalid comment or processing instruction
// content, misplaced declarations) fail the offending event before any
// of it is written, leaving the document output exactly as it was.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	sink     io.Writer
	emitter  emitter
	released bool
}

func newWriter(w io.Writer, options ...Option) *Writer {
	cfg := defaultConfig()
	for _, o := range options {
		o(&cfg)
	}
	size := cfg.InitialBufSize
	if size <= 0 {
		size = defaultBufSize
	}
	return &Writer{
		sink: w,
		emitter: emitter{
			p:      printer{Writer: bufio.NewWriterSize(w, size)},
			cfg:    cfg,
			indent: cfg.indentUnit(),
			names:  make([]Name, 0, initialDepth),
			flags:  make([]indentFlag, 1, initialDepth+1),
		},
	}
}

// Open opens a Writer using the UTF-8 encoding.
func Open(w io.Writer, options ...Option) *Writer {
	xw := newWriter(w, options...)
	xw.emitter.encoding = "UTF-8"
	return xw
}

// OpenEncoding opens a Writer using the supplied encoding. The encstr
// argument becomes the declaration's encoding="..." label; it is not
// validated against the encoder.
//
// This example opens a writer using the utf16-be encoding:
//
//	enc := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewEncoder()
//	w := xmlemit.OpenEncoding(b, "utf-16be", enc)
//
// You should still write UTF-8 strings to the writer - they are converted
// on the fly to the target encoding, and characters the target cannot
// represent are written as XML character references.
func OpenEncoding(w io.Writer, encstr string, encoder *encoding.Encoder, options ...Option) *Writer {
	enc := encoding.HTMLEscapeUnsupported(encoder).Writer(w)
	xw := newWriter(enc, options...)
	xw.emitter.encoding = encstr
	xw.sink = w
	return xw
}

// WriteEvent submits one or more events to the document in order,
// stopping at the first event that fails. Events after the failed one
// are not written.
func (w *Writer) WriteEvent(events ...Event) error {
	if w.released {
		return ErrReleased
	}
	for _, ev := range events {
		if err := w.writeEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeEvent(ev Event) error {
	switch ev := ev.(type) {
	case StartDocument:
		return w.emitter.startDocument(ev)

	case ProcInst:
		return w.emitter.procInst(ev.Target, ev.Content)

	case StartElement:
		w.emitter.nst.PushEmpty()
		w.emitter.nst.ExtendChecked(ev.Namespaces)
		return w.emitter.startElement(ev.Name, ev.Attrs)

	case EndElement:
		// The scope pops whether or not the name matched, keeping the
		// namespace stack in step with the element depth.
		err := w.emitter.endElement(ev.Name)
		w.emitter.nst.TryPop()
		return err

	case Comment:
		return w.emitter.comment(string(ev))

	case CData:
		return w.emitter.cdata(string(ev))

	case Characters:
		return w.emitter.characters(string(ev))

	default:
		return fmt.Errorf("xmlemit: unsupported event type %T", ev)
	}
}

// Depth returns the number of open elements.
func (w *Writer) Depth() int {
	return w.emitter.depth
}

// Flush drains the output buffer into the destination writer.
func (w *Writer) Flush() error {
	if w.released {
		return ErrReleased
	}
	return w.emitter.p.Flush()
}

// Inner returns the buffered writer wrapping the destination. Anything
// written to it bypasses escaping, indenting and the writer's
// bookkeeping entirely; it is an escape hatch for splicing raw,
// already well-formed markup into the document.
func (w *Writer) Inner() *bufio.Writer {
	return w.emitter.p.Writer
}

// Release flushes the buffer and detaches the writer from its
// destination, returning the destination along with the first error
// the flush raised. The destination is the io.Writer originally passed
// to Open or OpenEncoding, not any encoder wrapped around it. After
// Release the Writer is dead: all further calls fail with ErrReleased.
func (w *Writer) Release() (io.Writer, error) {
	if w.released {
		return nil, ErrReleased
	}
	err := w.emitter.p.Flush()
	w.released = true
	return w.sink, err
}
