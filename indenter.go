package xmlemit

// indentFlag records what was last written at one nesting level. The
// flags steer pretty printing: markup after markup gets a fresh
// indented line, markup after text stays inline, and a close tag is
// indented only when the element held markup.
type indentFlag int

const (
	wroteNothing indentFlag = iota
	wroteMarkup
	wroteText
)

// beforeMarkup writes the line separator and indentation that precede
// a piece of markup. Nothing is written at the very start of the
// output, or when the current level already holds text.
func (e *emitter) beforeMarkup() {
	if !e.cfg.PerformIndent {
		return
	}
	top := e.flags[len(e.flags)-1]
	if top == wroteText {
		return
	}
	if e.depth > 0 || top == wroteMarkup {
		e.writeIndent()
	}
}

// beforeEndElement indents a close tag. contents is the popped flag of
// the level being closed: only elements that held markup get their
// close tag on its own line.
func (e *emitter) beforeEndElement(contents indentFlag) {
	if e.cfg.PerformIndent && contents == wroteMarkup {
		e.writeIndent()
	}
}

func (e *emitter) writeIndent() {
	e.p.WriteString(e.cfg.LineSeparator)
	for i := 0; i < e.depth; i++ {
		e.p.WriteString(e.indent)
	}
}

// afterMarkup marks the current level as holding markup. Text is
// sticky: once a level has text it stays inline.
func (e *emitter) afterMarkup() {
	if e.flags[len(e.flags)-1] == wroteNothing {
		e.flags[len(e.flags)-1] = wroteMarkup
	}
}

func (e *emitter) afterText() {
	e.flags[len(e.flags)-1] = wroteText
}

func (e *emitter) pushLevel() {
	e.flags = append(e.flags, wroteNothing)
	e.depth++
}

func (e *emitter) popLevel() {
	e.flags = e.flags[:len(e.flags)-1]
	e.depth--
}
