package main

// this should do a better job of sanity checking the script - it's
// too hard in the C version to get it nice.

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	xe "github.com/6d7a/xmlemit"
)

const (
	eventCData    = "cdata"
	eventComment  = "comment"
	eventDocument = "document"
	eventEnd      = "end"
	eventPI       = "pi"
	eventStart    = "start"
	eventText     = "text"
)

var wsStrip = regexp.MustCompile(`[\n\r\t ]+`)

// Script represents a gotester script.
type Script struct {
	XMLName  xml.Name  `xml:"script"`
	Name     string    `xml:"name,attr"`
	Commands []Command `xml:"command"`

	Verbose bool `xml:"-"`
}

// Command represents a single event submission.
type Command struct {
	XMLName xml.Name   `xml:"command"`
	Event   string     `xml:"event,attr"`
	Name    string     `xml:"name,attr"`
	Content string     `xml:",chardata"`
	WS      string     `xml:"ws,attr"`
	Params  []xml.Attr `xml:",any,attr"`
}

// ErrUnknownParam represents an unknown parameter error.
type ErrUnknownParam struct {
	Event string
	Name  string
}

// NewErrUnknownParam makes an unknown param error.
func NewErrUnknownParam(command Command, name string) ErrUnknownParam {
	return ErrUnknownParam{command.Event, name}
}

// Error implements error.
func (e ErrUnknownParam) Error() string {
	return fmt.Sprintf("unknown param %s in command %s", e.Name, e.Event)
}

// CleanContent cleans content.
func (c Command) CleanContent() string {
	r := c.Content
	if c.WS == "strip" {
		r = wsStrip.ReplaceAllString(strings.TrimSpace(r), " ")
	}
	return r
}

// Run replays the script's commands against a writer.
func (s *Script) Run(w io.Writer, options ...xe.Option) error {
	r := &runner{writer: w, options: options, verbose: s.Verbose}
	for i, command := range s.Commands {
		if err := r.do(command); err != nil {
			return fmt.Errorf("command %d: %v", i+1, err)
		}
	}
	return r.flush()
}

type runner struct {
	writer  io.Writer
	xwriter *xe.Writer
	options []xe.Option
	verbose bool

	active bool
}

func (r *runner) activate(enc *string) error {
	ev := "UTF-8"
	if enc != nil {
		ev = strings.ToUpper(*enc)
	}
	if ev == "UTF-8" {
		r.xwriter = xe.Open(r.writer, r.options...)
	} else {
		var encoder *encoding.Encoder
		switch ev {
		case "ISO-8859-1":
			encoder = charmap.ISO8859_1.NewEncoder()
		case "WINDOWS-1252":
			encoder = charmap.Windows1252.NewEncoder()
		default:
			return fmt.Errorf("unsupported encoding %s", ev)
		}
		r.xwriter = xe.OpenEncoding(r.writer, ev, encoder, r.options...)
	}
	r.active = true
	return nil
}

func (r *runner) do(command Command) error {
	if command.Event != eventDocument && !r.active {
		if err := r.activate(nil); err != nil {
			return err
		}
	}

	ev, err := r.event(command)
	if err != nil {
		return err
	}
	if r.verbose {
		spew.Fdump(os.Stderr, ev)
	}
	return r.xwriter.WriteEvent(ev)
}

func (r *runner) event(command Command) (xe.Event, error) {
	switch command.Event {
	case eventDocument:
		doc := xe.StartDocument{}
		var encParam *string
		for _, p := range command.Params {
			switch p.Name.Local {
			case "version":
				doc.Version = p.Value
			case "encoding":
				v := p.Value
				encParam = &v
				doc.Encoding = p.Value
			case "standalone":
				l := strings.ToLower(p.Value)
				if l != "yes" && l != "no" && l != "true" && l != "false" {
					return nil, fmt.Errorf("invalid boolean value")
				}
				doc = doc.WithStandalone(l == "yes" || l == "true")
			default:
				return nil, NewErrUnknownParam(command, p.Name.Local)
			}
		}
		if !r.active {
			if err := r.activate(encParam); err != nil {
				return nil, err
			}
		}
		return doc, nil

	case eventStart:
		el := xe.StartElement{Name: xe.LocalName(command.Name)}
		for _, p := range command.Params {
			switch {
			case p.Name.Space == "xmlns":
				if el.Namespaces == nil {
					el.Namespaces = xe.Namespace{}
				}
				el.Namespaces[p.Name.Local] = p.Value
			case p.Name.Local == "xmlns":
				if el.Namespaces == nil {
					el.Namespaces = xe.Namespace{}
				}
				el.Namespaces[""] = p.Value
			case p.Name.Local == "uri":
				el.Name.URI = p.Value
			case p.Name.Local == "prefix":
				el.Name.Prefix = p.Value
			default:
				el.Attrs = append(el.Attrs, xe.NewAttr(p.Name.Local, p.Value))
			}
		}
		return el, nil

	case eventEnd:
		end := xe.EndElement{}
		if command.Name != "" {
			end.Name = xe.LocalName(command.Name)
		}
		for _, p := range command.Params {
			switch p.Name.Local {
			case "uri":
				end.Name.URI = p.Value
			case "prefix":
				end.Name.Prefix = p.Value
			default:
				return nil, NewErrUnknownParam(command, p.Name.Local)
			}
		}
		return end, nil

	case eventPI:
		if len(command.Params) > 0 {
			return nil, fmt.Errorf("unknown params for pi")
		}
		return xe.ProcInst{Target: command.Name, Content: command.CleanContent()}, nil

	case eventComment:
		if len(command.Params) > 0 {
			return nil, fmt.Errorf("unknown params for comment")
		}
		return xe.Comment(command.CleanContent()), nil

	case eventCData:
		if len(command.Params) > 0 {
			return nil, fmt.Errorf("unknown params for cdata")
		}
		return xe.CData(command.CleanContent()), nil

	case eventText:
		if len(command.Params) > 0 {
			return nil, fmt.Errorf("unknown params for text")
		}
		return xe.Characters(command.CleanContent()), nil

	default:
		spew.Dump(command)
		return nil, fmt.Errorf("unknown event %s", command.Event)
	}
}

func (r *runner) flush() error {
	if !r.active {
		return fmt.Errorf("no commands were run")
	}
	return r.xwriter.Flush()
}
