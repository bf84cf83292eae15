package xmlemit

import "strings"

const defaultBufSize = 2048

// Config carries the formatting behaviour of a Writer. A Config is
// fixed at Open time; mutating one after the writer is created has no
// effect on that writer.
type Config struct {
	// PerformIndent turns on pretty printing: a line separator and
	// depth-scaled indentation before markup events, with runs of
	// character data left untouched.
	PerformIndent bool

	// IndentChar is the byte repeated to build one unit of indentation.
	IndentChar byte

	// IndentSize is the number of IndentChar repeats per depth level.
	IndentSize int

	// LineSeparator is written before indentation when pretty printing.
	LineSeparator string

	// PerformEscaping applies the markup escapes to character data and
	// attribute values. Turning it off makes the caller responsible for
	// well-formedness.
	PerformEscaping bool

	// WriteDocumentDeclaration writes an XML declaration before the
	// first output-producing event if one has not been written
	// explicitly.
	WriteDocumentDeclaration bool

	// NormalizeEmptyElements collapses elements with no content into
	// self-closing tags. When off, every element is written as an open
	// and close tag pair.
	NormalizeEmptyElements bool

	// CDataToCharacters rewrites CData events as Characters events,
	// escaping their content instead of wrapping it in a CDATA section.
	CDataToCharacters bool

	// PadSelfClosing writes self-closing tags as "<a />" rather than
	// "<a/>".
	PadSelfClosing bool

	// AutopadComments pads comment content with single spaces where it
	// does not already start or end with whitespace.
	AutopadComments bool

	// InitialBufSize is the size of the output buffer. Values <= 0 fall
	// back to the default.
	InitialBufSize int
}

func defaultConfig() Config {
	return Config{
		PerformIndent:            false,
		IndentChar:               ' ',
		IndentSize:               2,
		LineSeparator:            "\n",
		PerformEscaping:          true,
		WriteDocumentDeclaration: true,
		NormalizeEmptyElements:   true,
		CDataToCharacters:        false,
		PadSelfClosing:           true,
		AutopadComments:          false,
		InitialBufSize:           defaultBufSize,
	}
}

func (c Config) indentUnit() string {
	return strings.Repeat(string(c.IndentChar), c.IndentSize)
}

// Option configures a Writer at Open time.
type Option func(*Config)

// WithIndent turns on pretty printing with the default unit of two
// spaces.
func WithIndent() Option {
	return func(c *Config) { c.PerformIndent = true }
}

// WithIndentUnit turns on pretty printing and sets the indent unit to
// size repeats of ch.
func WithIndentUnit(ch byte, size int) Option {
	return func(c *Config) {
		c.PerformIndent = true
		c.IndentChar = ch
		c.IndentSize = size
	}
}

// WithLineSeparator sets the separator written before indentation when
// pretty printing, for example "\r\n".
func WithLineSeparator(sep string) Option {
	return func(c *Config) { c.LineSeparator = sep }
}

// WithEscaping toggles escaping of character data and attribute values.
func WithEscaping(on bool) Option {
	return func(c *Config) { c.PerformEscaping = on }
}

// WithDocumentDeclaration toggles the automatic XML declaration.
func WithDocumentDeclaration(on bool) Option {
	return func(c *Config) { c.WriteDocumentDeclaration = on }
}

// WithNormalizeEmpty toggles collapsing of empty elements into
// self-closing tags.
func WithNormalizeEmpty(on bool) Option {
	return func(c *Config) { c.NormalizeEmptyElements = on }
}

// WithCDataToCharacters rewrites CData events as escaped character
// data.
func WithCDataToCharacters(on bool) Option {
	return func(c *Config) { c.CDataToCharacters = on }
}

// WithPadSelfClosing toggles the space before a self-closing tag's
// terminator.
func WithPadSelfClosing(on bool) Option {
	return func(c *Config) { c.PadSelfClosing = on }
}

// WithAutopadComments pads comment content with spaces where it does
// not already start or end with whitespace.
func WithAutopadComments(on bool) Option {
	return func(c *Config) { c.AutopadComments = on }
}

// WithInitialBufSize sets the size of the output buffer.
func WithInitialBufSize(size int) Option {
	return func(c *Config) { c.InitialBufSize = size }
}
