package xmlemit

import (
	"bytes"
	"io"
	"runtime"
)

var memstats runtime.MemStats

func allocs() uint64 {
	runtime.ReadMemStats(&memstats)
	return memstats.Mallocs
}

type Null struct{}

func (w Null) Write(p []byte) (n int, err error) {
	return len(p), nil
}

type DodgyWriter struct {
	writer     io.Writer
	shouldFail func(b []byte) (fail bool, len int, err error)
}

func (d *DodgyWriter) Write(b []byte) (len int, err error) {
	if fail, len, err := d.shouldFail(b); fail {
		return len, err
	}
	return d.writer.Write(b)
}

func open(o ...Option) (*bytes.Buffer, *Writer) {
	b := &bytes.Buffer{}
	w := Open(b, o...)
	return b, w
}

func openNull(o ...Option) *Writer {
	return Open(Null{}, o...)
}

func str(b *bytes.Buffer, w *Writer) string {
	must(w.Flush())
	return b.String()
}

// doWrite serializes an event fragment without the document declaration
// getting in the way.
func doWrite(events ...Event) string {
	b, w := open(WithDocumentDeclaration(false))
	must(w.WriteEvent(events...))
	return str(b, w)
}

func doWriteErr(events ...Event) error {
	w := openNull(WithDocumentDeclaration(false))
	return w.WriteEvent(events...)
}
