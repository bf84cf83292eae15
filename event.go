package xmlemit

// Event is one item of an XML document stream, submitted to a Writer via
// WriteEvent. The set of events is closed: exactly the types in this file
// satisfy the interface.
type Event interface {
	kind() EventKind
}

// StartDocument writes the XML declaration. It is optional, but when
// present it must precede every other event, and at most one declaration
// is written per document whether submitted explicitly or emitted
// automatically (see WithDocumentDeclaration).
type StartDocument struct {
	// Version is placed into the version="..." pseudo-attribute.
	// Defaults to 1.0.
	Version string

	// Encoding overrides the writer's encoding label in the
	// encoding="..." pseudo-attribute. Defaults to the label the writer
	// was opened with.
	Encoding string

	// If nil, do not print 'standalone="..."'.
	Standalone *bool
}

// WithStandalone is a fluent convenience function for assigning a
// non-pointer bool to StartDocument.Standalone.
func (d StartDocument) WithStandalone(v bool) StartDocument { d.Standalone = &v; return d }

func (d StartDocument) kind() EventKind { return StartDocumentEvent }

// ProcInst writes a processing instruction: <?target content?>. The
// target "xml" is reserved for the document declaration, and the content
// may not contain the "?>" terminator.
type ProcInst struct {
	Target  string
	Content string
}

func (p ProcInst) kind() EventKind { return ProcInstEvent }

// StartElement opens an element. The tag is left pending until the next
// event decides whether it collapses to <name/> or stays open for
// content. Namespaces holds the prefix to URI bindings this element
// introduces; bindings already visible on an enclosing element are not
// declared again.
type StartElement struct {
	Name       Name
	Attrs      []Attr
	Namespaces Namespace
}

func (e StartElement) kind() EventKind { return StartElementEvent }

// EndElement closes the innermost open element. A zero Name closes it
// unconditionally; a non-zero Name must match the open element's
// namespace identity or the submission fails with EndMismatchError.
type EndElement struct {
	Name Name
}

func (e EndElement) kind() EventKind { return EndElementEvent }

// Comment writes <!--text-->. The text may not contain "--" or end with
// "-", and is never entity-escaped.
type Comment string

func (c Comment) kind() EventKind { return CommentEvent }

// CData writes <![CDATA[text]]> with the text verbatim. The text may not
// contain the "]]>" terminator unless the writer redirects CData through
// character escaping (see WithCDataToCharacters).
type CData string

func (c CData) kind() EventKind { return CDataEvent }

// Characters writes element text content through the escaping engine.
type Characters string

func (c Characters) kind() EventKind { return CharactersEvent }
