/*
Package xmlemit provides a fast, non-cached, forward-only way to generate
XML data, one event at a time.

The API is event driven in the style of StAX [1] rather than tree based:
the caller submits a flat stream of events (start document, start element,
characters, end element...) and the writer serializes each one as it
arrives. Nothing about the document is retained beyond the stack of open
element names and their namespace scopes, so memory use is flat no matter
how large the document grows.

	[1] https://en.wikipedia.org/wiki/StAX

It offers some advantages over Go's default encoding/xml package and some
tradeoffs. You get complete control over the prolog, processing
instructions, CDATA sections, comments and namespace declarations, and
the writer uses very little memory.


Creating

Open takes any io.Writer, along with a variable list of options:

	b := &bytes.Buffer{}
	w := xmlemit.Open(b)

Options are based on Dave Cheney's functional options pattern
(https://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis):

	w := xmlemit.Open(b, xmlemit.WithIndent())

Provided options are:
  - WithIndent()
  - WithIndentUnit(byte, int)
  - WithLineSeparator(string)
  - WithEscaping(bool)
  - WithDocumentDeclaration(bool)
  - WithNormalizeEmpty(bool)
  - WithCDataToCharacters(bool)
  - WithPadSelfClosing(bool)
  - WithAutopadComments(bool)
  - WithInitialBufSize(int)


Events

Events are plain values passed to WriteEvent, which accepts one or more
of them and stops at the first failure:

	ec := &xmlemit.ErrCollector{}
	defer ec.Panic()
	ec.Do(
		w.WriteEvent(
			xmlemit.StartDocument{},
			xmlemit.StartElement{Name: xmlemit.LocalName("foo"), Attrs: []xmlemit.Attr{
				xmlemit.NewAttr("a1", "val1"),
				xmlemit.NewAttr("a2", "val2"),
			}},
			xmlemit.Comment("hello"),
			xmlemit.StartElement{Name: xmlemit.LocalName("bar")},
			xmlemit.Characters("text"),
			xmlemit.EndElement{},
			xmlemit.EndElement{},
		),
		w.Flush(),
	)

A StartElement is held pending until the next event shows whether the
element has content: an immediate EndElement collapses it to a
self-closing tag, anything else resolves it to an open tag. EndElement
with a zero Name closes the innermost element unconditionally; giving it
a Name asserts which element the caller thinks it is closing, and the
writer fails with EndMismatchError when the assertion is wrong.


Namespaces

Names are qualified with QualifiedName or by filling in the Name struct.
Prefix bindings travel on the StartElement that introduces them and stay
in scope until that element ends:

	w.WriteEvent(xmlemit.StartElement{
		Name:       xmlemit.QualifiedName("a", "urn:ns", "n"),
		Namespaces: xmlemit.Namespace{"n": "urn:ns"},
	})

A binding already visible on an enclosing element is not declared again;
a binding that shadows an outer prefix with a different URI is. The xml
and xmlns prefixes are always in scope and are never declared.


Escaping

Character data escapes '&', '<' and '>'; attribute values additionally
escape '"' and "'". Nothing else is rewritten - the writer trusts its
input to be valid XML character data. WithEscaping(false) switches the
engine off entirely for callers that have already escaped their content.

Comment, CData and ProcInst content is never escaped. It is checked
instead: content that could terminate the construct early ("--", "]]>",
"?>") fails the event before anything is written.


Flushing

The Writer's output is buffered. Don't forget to flush, otherwise you'll
lose data. There are two ways:

	- Writer.Flush()
	- Writer.Release()

Release flushes, returns the destination io.Writer, and permanently
retires the Writer: every call after Release fails with ErrReleased.


Encodings

The writer emits UTF-8. OpenEncoding interposes a transcoder from
golang.org/x/text so the destination can receive any encoding that
package provides, with unrepresentable characters written as XML
character references. Release returns the original destination, not the
transcoder.
*/
package xmlemit
