package xmlemit

import "strings"

// Entity replacements for the five characters XML predefines. Quotes are
// only escaped in the attribute context.
var (
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escQuot = []byte("&quot;")
	escApos = []byte("&apos;")
)

// Escaping is per-byte: every character that needs a replacement is
// ASCII, so multi-byte UTF-8 sequences pass through untouched.
var textEscapes = [256][]byte{
	'&': escAmp,
	'<': escLt,
	'>': escGt,
}

var attrEscapes = [256][]byte{
	'&':  escAmp,
	'<':  escLt,
	'>':  escGt,
	'"':  escQuot,
	'\'': escApos,
}

// writeEscaped writes s with the given replacement table, copying
// unescaped runs straight into the output buffer. No intermediate copy of
// the whole string is ever built.
func (p printer) writeEscaped(s string, esc *[256][]byte) error {
	last := 0
	for i := 0; i < len(s); i++ {
		e := esc[s[i]]
		if e == nil {
			continue
		}
		p.WriteString(s[last:i])
		p.Write(e)
		last = i + 1
	}
	p.WriteString(s[last:])
	return p.cachedWriteError()
}

func (p printer) escapeText(s string) error {
	return p.writeEscaped(s, &textEscapes)
}

func (p printer) escapeAttr(s string) error {
	return p.writeEscaped(s, &attrEscapes)
}

func escapeToString(s string, esc *[256][]byte) string {
	for i := 0; i < len(s); i++ {
		if esc[s[i]] != nil {
			goto slow
		}
	}
	return s

slow:
	var b strings.Builder
	b.Grow(len(s) + 8)
	last := 0
	for i := 0; i < len(s); i++ {
		e := esc[s[i]]
		if e == nil {
			continue
		}
		b.WriteString(s[last:i])
		b.Write(e)
		last = i + 1
	}
	b.WriteString(s[last:])
	return b.String()
}

// EscapeText escapes s for use as element text content: '&', '<' and '>'
// become entity references, everything else passes through unchanged. If
// nothing needs escaping the input string is returned as is.
func EscapeText(s string) string {
	return escapeToString(s, &textEscapes)
}

// EscapeAttribute escapes s for use as an attribute value: the three text
// escapes plus '"' and "'". If nothing needs escaping the input string is
// returned as is.
func EscapeAttribute(s string) string {
	return escapeToString(s, &attrEscapes)
}
