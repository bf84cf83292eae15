package xmlemit

import (
	"fmt"
	"strings"
)

// Name identifies an element or attribute. Local is the only required
// part. URI carries the namespace identity; Prefix is the presentational
// form used in markup and is only meaningful alongside a URI.
type Name struct {
	Local  string
	URI    string
	Prefix string
}

// LocalName returns a Name with only a local part.
func LocalName(local string) Name {
	return Name{Local: local}
}

// PrefixedName returns a Name with a prefix and a local part but no
// namespace URI.
func PrefixedName(prefix, local string) Name {
	return Name{Local: local, Prefix: prefix}
}

// QualifiedName returns a fully qualified Name.
func QualifiedName(local, uri, prefix string) Name {
	return Name{Local: local, URI: uri, Prefix: prefix}
}

// ParseName builds a Name from any of the forms rendered by Name.String:
// "local", "prefix:local", "{uri}local" and "{uri}prefix:local".
func ParseName(s string) (Name, error) {
	var n Name
	rest := s
	if strings.HasPrefix(rest, "{") {
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return Name{}, fmt.Errorf("xmlemit: name %q is missing '}'", s)
		}
		n.URI = rest[1:end]
		rest = rest[end+1:]
	}
	if sep := strings.IndexByte(rest, ':'); sep >= 0 {
		n.Prefix, n.Local = rest[:sep], rest[sep+1:]
	} else {
		n.Local = rest
	}
	if n.Local == "" {
		return Name{}, fmt.Errorf("xmlemit: name %q has an empty local part", s)
	}
	return n, nil
}

// IsZero reports whether every part of the name is empty.
func (n Name) IsZero() bool {
	return n.Local == "" && n.URI == "" && n.Prefix == ""
}

// Equal reports whether two names share the same namespace identity.
// Prefixes are presentation only and do not participate.
func (n Name) Equal(o Name) bool {
	return n.URI == o.URI && n.Local == o.Local
}

// Compare orders names by (URI, Local). Prefixes do not participate.
func (n Name) Compare(o Name) int {
	if c := strings.Compare(n.URI, o.URI); c != 0 {
		return c
	}
	return strings.Compare(n.Local, o.Local)
}

// FullName returns the name as it appears in markup: "prefix:local", or
// just "local" when there is no prefix.
func (n Name) FullName() string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Local
	}
	return n.Local
}

// String returns the diagnostic form "{uri}prefix:local". Empty parts are
// omitted along with their delimiters.
func (n Name) String() string {
	var b strings.Builder
	b.Grow(len(n.URI) + len(n.Prefix) + len(n.Local) + 3)
	if n.URI != "" {
		b.WriteByte('{')
		b.WriteString(n.URI)
		b.WriteByte('}')
	}
	if n.Prefix != "" {
		b.WriteString(n.Prefix)
		b.WriteByte(':')
	}
	b.WriteString(n.Local)
	return b.String()
}
