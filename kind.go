package xmlemit

import "fmt"

// EventKind identifies the variant of an Event.
type EventKind int

// Range of allowed EventKind values.
const (
	NoEvent EventKind = iota
	StartDocumentEvent
	ProcInstEvent
	StartElementEvent
	EndElementEvent
	CommentEvent
	CDataEvent
	CharactersEvent

	eventKindLength int = iota
)

var kindName = [eventKindLength]string{
	NoEvent:            "none",
	StartDocumentEvent: "startdocument",
	ProcInstEvent:      "procinst",
	StartElementEvent:  "startelement",
	EndElementEvent:    "endelement",
	CommentEvent:       "comment",
	CDataEvent:         "cdata",
	CharactersEvent:    "characters",
}

// Name returns a stable name for the EventKind. If the EventKind is
// invalid, the Name() will be empty. String() returns a human-readable
// representation for information purposes; if a stable string is
// required, use this instead.
func (k EventKind) Name() string {
	if int(k) < eventKindLength {
		return kindName[k]
	}
	return ""
}

// String returns a human-readable representation of the EventKind. If a
// stable string is required, use Name().
func (k EventKind) String() string {
	s := k.Name()
	if s == "" {
		s = "<unknown>"
	}
	return fmt.Sprintf("%s(%d)", s, k)
}
