package xmlemit

import (
	"strings"
	"testing"

	tt "github.com/6d7a/xmlemit/testtool"
)

func TestIndentDoc(t *testing.T) {
	result := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		"<a>",
		"  <b />",
		"</a>",
	}, "\n")
	b, w := open(WithIndent())
	must(w.WriteEvent(
		StartElement{Name: LocalName("a")},
		StartElement{Name: LocalName("b")},
		EndElement{},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))
}

func TestIndentNested(t *testing.T) {
	result := strings.Join([]string{
		"<a>",
		"  <b foo=\"bar\">",
		"    <c />",
		"    <c />",
		"  </b>",
		"</a>",
	}, "\n")
	b, w := open(WithIndent(), WithDocumentDeclaration(false))
	must(w.WriteEvent(
		StartElement{Name: LocalName("a")},
		StartElement{Name: LocalName("b"), Attrs: []Attr{NewAttr("foo", "bar")}},
		StartElement{Name: LocalName("c")},
		EndElement{},
		StartElement{Name: LocalName("c")},
		EndElement{},
		EndElement{},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))
}

// Elements holding text stay on one line, and an element that mixes
// text with markup stops indenting for good.
func TestIndentTextInline(t *testing.T) {
	result := strings.Join([]string{
		"<a>",
		"  <b>hello</b>",
		"</a>",
	}, "\n")
	b, w := open(WithIndent(), WithDocumentDeclaration(false))
	must(w.WriteEvent(
		StartElement{Name: LocalName("a")},
		StartElement{Name: LocalName("b")},
		Characters("hello"),
		EndElement{},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))
}

func TestIndentInlineAfterText(t *testing.T) {
	result := strings.Join([]string{
		"<a>",
		"  <b>Hi my name is <judge /></b>",
		"</a>",
	}, "\n")
	b, w := open(WithIndent(), WithDocumentDeclaration(false))
	must(w.WriteEvent(
		StartElement{Name: LocalName("a")},
		StartElement{Name: LocalName("b")},
		Characters("Hi my name is "),
		StartElement{Name: LocalName("judge")},
		EndElement{},
		EndElement{},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))
}

func TestIndentEmptyRoot(t *testing.T) {
	b, w := open(WithIndent(), WithDocumentDeclaration(false))
	must(w.WriteEvent(StartElement{Name: LocalName("a")}, EndElement{}))
	tt.Equals(t, "<a />", str(b, w))
}

func TestIndentEmptyPair(t *testing.T) {
	// An element with no content keeps its close tag inline even when
	// normalization is off.
	result := strings.Join([]string{
		"<a>",
		"  <b></b>",
		"</a>",
	}, "\n")
	b, w := open(WithIndent(), WithDocumentDeclaration(false), WithNormalizeEmpty(false))
	must(w.WriteEvent(
		StartElement{Name: LocalName("a")},
		StartElement{Name: LocalName("b")},
		EndElement{},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))
}

func TestIndentComment(t *testing.T) {
	result := strings.Join([]string{
		"<a>",
		"  <b>",
		"    <!--hi how are you-->",
		"  </b>",
		"</a>",
	}, "\n")
	b, w := open(WithIndent(), WithDocumentDeclaration(false))
	must(w.WriteEvent(
		StartElement{Name: LocalName("a")},
		StartElement{Name: LocalName("b")},
		Comment("hi how are you"),
		EndElement{},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))
}

// CDATA counts as text, not markup.
func TestIndentCData(t *testing.T) {
	result := strings.Join([]string{
		"<a>",
		"  <b><![CDATA[hi how are you]]></b>",
		"</a>",
	}, "\n")
	b, w := open(WithIndent(), WithDocumentDeclaration(false))
	must(w.WriteEvent(
		StartElement{Name: LocalName("a")},
		StartElement{Name: LocalName("b")},
		CData("hi how are you"),
		EndElement{},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))
}

func TestIndentProcInst(t *testing.T) {
	result := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		"<?pants on?>",
		"<a />",
	}, "\n")
	b, w := open(WithIndent())
	must(w.WriteEvent(
		ProcInst{Target: "pants", Content: "on"},
		StartElement{Name: LocalName("a")},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))
}

func TestIndentUnit(t *testing.T) {
	result := strings.Join([]string{
		"<a>",
		"\t<b />",
		"</a>",
	}, "\n")
	b, w := open(WithIndentUnit('\t', 1), WithDocumentDeclaration(false))
	must(w.WriteEvent(
		StartElement{Name: LocalName("a")},
		StartElement{Name: LocalName("b")},
		EndElement{},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))

	result = strings.Join([]string{
		"<a>",
		"    <b />",
		"</a>",
	}, "\n")
	b, w = open(WithIndentUnit(' ', 4), WithDocumentDeclaration(false))
	must(w.WriteEvent(
		StartElement{Name: LocalName("a")},
		StartElement{Name: LocalName("b")},
		EndElement{},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))
}

func TestIndentLineSeparator(t *testing.T) {
	result := strings.Join([]string{
		"<a>",
		"  <b />",
		"</a>",
	}, "\r\n")
	b, w := open(WithIndent(), WithLineSeparator("\r\n"), WithDocumentDeclaration(false))
	must(w.WriteEvent(
		StartElement{Name: LocalName("a")},
		StartElement{Name: LocalName("b")},
		EndElement{},
		EndElement{},
	))
	tt.Equals(t, result, str(b, w))
}
