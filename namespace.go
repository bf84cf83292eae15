package xmlemit

// Namespace URIs bound to the reserved prefixes in every document. They
// are always in scope and are never written as xmlns declarations.
const (
	NamespaceXML   = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS = "http://www.w3.org/2000/xmlns/"
)

// The reserved prefixes.
const (
	PrefixXML   = "xml"
	PrefixXMLNS = "xmlns"
)

// Namespace maps prefixes to URIs within one scope. The empty prefix is
// the default namespace.
type Namespace map[string]string

// Put binds prefix to uri unless the prefix is already bound in this
// scope. It reports whether the binding was inserted.
func (ns Namespace) Put(prefix, uri string) bool {
	if _, ok := ns[prefix]; ok {
		return false
	}
	ns[prefix] = uri
	return true
}

// Get returns the URI bound to prefix in this scope.
func (ns Namespace) Get(prefix string) (string, bool) {
	uri, ok := ns[prefix]
	return uri, ok
}

// Contains reports whether prefix is bound in this scope.
func (ns Namespace) Contains(prefix string) bool {
	_, ok := ns[prefix]
	return ok
}

// NamespaceStack tracks prefix bindings as nested scopes, innermost last.
// The writer pushes one scope per StartElement and pops one per
// EndElement, so the scope count always mirrors the number of open
// elements.
type NamespaceStack struct {
	scopes []Namespace
}

// PushEmpty begins a new innermost scope and returns it.
func (s *NamespaceStack) PushEmpty() Namespace {
	ns := Namespace{}
	s.scopes = append(s.scopes, ns)
	return ns
}

// TryPop discards the innermost scope, reporting whether a scope was
// removed. Popping an empty stack is a safe no-op.
func (s *NamespaceStack) TryPop() bool {
	if len(s.scopes) == 0 {
		return false
	}
	s.scopes[len(s.scopes)-1] = nil
	s.scopes = s.scopes[:len(s.scopes)-1]
	return true
}

// Put binds prefix to uri in the innermost scope, creating a scope if the
// stack is empty. The binding shadows any outer binding of the prefix.
func (s *NamespaceStack) Put(prefix, uri string) {
	if len(s.scopes) == 0 {
		s.PushEmpty()
	}
	s.scopes[len(s.scopes)-1][prefix] = uri
}

// PutChecked binds prefix to uri unless an identical binding is already
// visible, reporting whether a new binding was added. Only the currently
// visible binding counts: a matching binding shadowed by a nearer
// rebinding of the prefix does not suppress the new one.
func (s *NamespaceStack) PutChecked(prefix, uri string) bool {
	if cur, ok := s.Get(prefix); ok && cur == uri {
		return false
	}
	s.Put(prefix, uri)
	return true
}

// ExtendChecked applies PutChecked to every binding in ns.
func (s *NamespaceStack) ExtendChecked(ns Namespace) {
	for prefix, uri := range ns {
		s.PutChecked(prefix, uri)
	}
}

// Get resolves prefix against the innermost scope that binds it. The
// reserved xml and xmlns prefixes resolve without ever being declared.
func (s *NamespaceStack) Get(prefix string) (string, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if uri, ok := s.scopes[i][prefix]; ok {
			return uri, true
		}
	}
	switch prefix {
	case PrefixXML:
		return NamespaceXML, true
	case PrefixXMLNS:
		return NamespaceXMLNS, true
	}
	return "", false
}

// Len returns the number of scopes.
func (s *NamespaceStack) Len() int {
	return len(s.scopes)
}

// Peek returns the innermost scope, or nil if the stack is empty.
func (s *NamespaceStack) Peek() Namespace {
	if len(s.scopes) == 0 {
		return nil
	}
	return s.scopes[len(s.scopes)-1]
}
