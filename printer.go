package xmlemit

import "bufio"

// printer wraps the output buffer. Write errors are sticky in
// bufio.Writer, so emit paths write without checking and collect the
// first failure at the end via cachedWriteError.
type printer struct {
	*bufio.Writer
}

// return the bufio Writer's cached write error
func (p printer) cachedWriteError() error {
	_, err := p.Write(nil)
	return err
}

func (p printer) writeAttr(name, value string, escape bool) error {
	p.WriteByte(' ')
	p.WriteString(name)
	p.WriteString(`="`)
	if escape {
		p.escapeAttr(value)
	} else {
		p.WriteString(value)
	}
	p.WriteByte('"')
	return p.cachedWriteError()
}
