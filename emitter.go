package xmlemit

import (
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/maps"
)

const initialDepth = 8

// emitter turns events into bytes. It tracks the open element stack,
// one indent flag per nesting level, and whether a start tag is still
// pending resolution into "<a>" or "<a/>". Validation always happens
// before the first byte of an event is written: a failed event leaves
// the output exactly as it was.
type emitter struct {
	p        printer
	cfg      Config
	encoding string
	indent   string

	nst   NamespaceStack
	names []Name
	flags []indentFlag
	depth int

	pending    bool
	wroteDecl  bool
	openedRoot bool
}

// resolvePending closes a start tag left open by a previous
// StartElement once it is known the element has content.
func (e *emitter) resolvePending() {
	if !e.pending {
		return
	}
	e.p.WriteByte('>')
	e.pending = false
}

func (e *emitter) startDocument(d StartDocument) error {
	if e.openedRoot {
		return ErrDeclarationAfterRoot
	}
	if e.wroteDecl {
		return ErrDeclarationAlreadyWritten
	}
	version := d.Version
	if version == "" {
		version = "1.0"
	}
	enc := d.Encoding
	if enc == "" {
		enc = e.encoding
	}
	e.beforeMarkup()
	e.p.WriteString("<?xml")
	e.p.writeAttr("version", version, e.cfg.PerformEscaping)
	e.p.writeAttr("encoding", enc, e.cfg.PerformEscaping)
	if d.Standalone != nil {
		v := "no"
		if *d.Standalone {
			v = "yes"
		}
		e.p.writeAttr("standalone", v, e.cfg.PerformEscaping)
	}
	e.p.WriteString("?>")
	e.afterMarkup()
	e.wroteDecl = true
	return e.p.cachedWriteError()
}

// startDocumentIfNeeded writes the automatic declaration ahead of the
// first output-producing event.
func (e *emitter) startDocumentIfNeeded() error {
	if !e.cfg.WriteDocumentDeclaration || e.wroteDecl {
		return nil
	}
	return e.startDocument(StartDocument{})
}

func (e *emitter) procInst(target, content string) error {
	if err := CheckProcInst(target, content); err != nil {
		return err
	}
	if err := e.startDocumentIfNeeded(); err != nil {
		return err
	}
	e.resolvePending()
	e.beforeMarkup()
	e.p.WriteString("<?")
	e.p.WriteString(target)
	if content != "" {
		e.p.WriteByte(' ')
		e.p.WriteString(content)
	}
	e.p.WriteString("?>")
	e.afterMarkup()
	return e.p.cachedWriteError()
}

func (e *emitter) startElement(name Name, attrs []Attr) error {
	if err := e.startDocumentIfNeeded(); err != nil {
		return err
	}
	e.resolvePending()
	e.beforeMarkup()
	e.p.WriteByte('<')
	e.p.WriteString(name.FullName())
	for _, a := range attrs {
		e.p.writeAttr(a.Name.FullName(), a.Value, e.cfg.PerformEscaping)
	}
	e.writeNamespaceAttrs()
	if e.cfg.NormalizeEmptyElements {
		e.pending = true
	} else {
		e.p.WriteByte('>')
	}
	e.afterMarkup()
	e.pushLevel()
	e.names = append(e.names, name)
	e.openedRoot = true
	return e.p.cachedWriteError()
}

// writeNamespaceAttrs declares the innermost scope's bindings, sorted
// by prefix. Attributes are written first, declarations after. The
// reserved xml and xmlns prefixes are never declared.
func (e *emitter) writeNamespaceAttrs() {
	scope := e.nst.Peek()
	if len(scope) == 0 {
		return
	}
	prefixes := maps.Keys(scope)
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		if prefix == PrefixXML || prefix == PrefixXMLNS {
			continue
		}
		uri := scope[prefix]
		if prefix == "" {
			if uri == "" {
				continue
			}
			e.p.writeAttr("xmlns", uri, e.cfg.PerformEscaping)
		} else {
			e.p.writeAttr("xmlns:"+prefix, uri, e.cfg.PerformEscaping)
		}
	}
}

func (e *emitter) endElement(name Name) error {
	if len(e.names) == 0 {
		return ErrNoOpenElement
	}
	open := e.names[len(e.names)-1]
	e.names = e.names[:len(e.names)-1]
	if !name.IsZero() && !name.Equal(open) {
		// Pop regardless so depth and scopes stay aligned with the
		// caller's stack.
		e.popLevel()
		return &EndMismatchError{Submitted: name, Open: open}
	}
	if e.pending {
		e.pending = false
		if e.cfg.PadSelfClosing {
			e.p.WriteString(" />")
		} else {
			e.p.WriteString("/>")
		}
		e.popLevel()
		e.afterMarkup()
		return e.p.cachedWriteError()
	}
	contents := e.flags[len(e.flags)-1]
	e.popLevel()
	e.beforeEndElement(contents)
	e.p.WriteString("</")
	e.p.WriteString(open.FullName())
	e.p.WriteByte('>')
	e.afterMarkup()
	return e.p.cachedWriteError()
}

func (e *emitter) comment(text string) error {
	if err := CheckComment(text); err != nil {
		return err
	}
	e.resolvePending()
	e.beforeMarkup()
	e.p.WriteString("<!--")
	if e.cfg.AutopadComments && !startsWithSpace(text) {
		e.p.WriteByte(' ')
	}
	e.p.WriteString(text)
	if e.cfg.AutopadComments && !endsWithSpace(text) {
		e.p.WriteByte(' ')
	}
	e.p.WriteString("-->")
	e.afterMarkup()
	return e.p.cachedWriteError()
}

func (e *emitter) cdata(text string) error {
	if e.cfg.CDataToCharacters {
		return e.characters(text)
	}
	if err := CheckCData(text); err != nil {
		return err
	}
	if err := e.startDocumentIfNeeded(); err != nil {
		return err
	}
	e.resolvePending()
	e.p.WriteString("<![CDATA[")
	e.p.WriteString(text)
	e.p.WriteString("]]>")
	e.afterText()
	return e.p.cachedWriteError()
}

func (e *emitter) characters(text string) error {
	if err := e.startDocumentIfNeeded(); err != nil {
		return err
	}
	e.resolvePending()
	if e.cfg.PerformEscaping {
		e.p.escapeText(text)
	} else {
		e.p.WriteString(text)
	}
	e.afterText()
	return e.p.cachedWriteError()
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r != utf8.RuneError && unicode.IsSpace(r)
}
