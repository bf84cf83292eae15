package xmlemit

import "strconv"

// Attr is a single element attribute: a qualified name and a raw,
// unescaped value. Attributes are written in the order they are
// submitted; duplicate names within one element pass through unchanged.
type Attr struct {
	Name  Name
	Value string
}

// NewAttr returns an Attr with a local name.
func NewAttr(local, value string) Attr {
	return Attr{Name: LocalName(local), Value: value}
}

func (a Attr) Bool(v bool) Attr     { a.Value = strconv.FormatBool(v); return a }
func (a Attr) Int(v int) Attr       { a.Value = strconv.FormatInt(int64(v), 10); return a }
func (a Attr) Int8(v int8) Attr     { a.Value = strconv.FormatInt(int64(v), 10); return a }
func (a Attr) Int16(v int16) Attr   { a.Value = strconv.FormatInt(int64(v), 10); return a }
func (a Attr) Int32(v int32) Attr   { a.Value = strconv.FormatInt(int64(v), 10); return a }
func (a Attr) Int64(v int64) Attr   { a.Value = strconv.FormatInt(v, 10); return a }
func (a Attr) Uint(v uint) Attr     { a.Value = strconv.FormatUint(uint64(v), 10); return a }
func (a Attr) Uint8(v uint8) Attr   { a.Value = strconv.FormatUint(uint64(v), 10); return a }
func (a Attr) Uint16(v uint16) Attr { a.Value = strconv.FormatUint(uint64(v), 10); return a }
func (a Attr) Uint32(v uint32) Attr { a.Value = strconv.FormatUint(uint64(v), 10); return a }
func (a Attr) Uint64(v uint64) Attr { a.Value = strconv.FormatUint(v, 10); return a }
func (a Attr) Float32(v float32) Attr {
	a.Value = strconv.FormatFloat(float64(v), 'g', -1, 32)
	return a
}
func (a Attr) Float64(v float64) Attr { a.Value = strconv.FormatFloat(v, 'g', -1, 64); return a }

// String renders the diagnostic form NAME="value": the name in its
// {uri}prefix:local form, the value escaped for the attribute context.
func (a Attr) String() string {
	return a.Name.String() + `="` + EscapeAttribute(a.Value) + `"`
}
