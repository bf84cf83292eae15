package xmlemit

import (
	"errors"
	"fmt"
	"testing"

	tt "github.com/6d7a/xmlemit/testtool"
)

func TestCollectorSet(t *testing.T) {
	in := fmt.Errorf("yep")
	ec := &ErrCollector{}
	result := func() (err error) {
		defer ec.Set(&err)
		ec.Do(nil)
		ec.Do(in)
		return
	}()
	tt.Equals(t, ec, result)
	tt.Pattern(t, `error at .*errs_test\.go.* #1 - yep`, ec.Error())
}

func TestCollectorSetOK(t *testing.T) {
	ec := &ErrCollector{}
	result := func() (err error) {
		defer ec.Set(&err)
		ec.Do(nil)
		return
	}()
	tt.Equals(t, nil, result)
}

func TestCollectorSetMultiple(t *testing.T) {
	in := fmt.Errorf("yep")
	ec := &ErrCollector{}
	result := func() (err error) {
		defer ec.Set(&err)
		ec.Do(nil, nil, in)
		return
	}()
	tt.Equals(t, ec, result)
	tt.Pattern(t, `error at .*errs_test\.go.* #3 - yep`, ec.Error())
}

func TestCollectorPanic(t *testing.T) {
	in := fmt.Errorf("yep")
	ec := &ErrCollector{}
	result := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = r.(error)
			}
		}()
		func() {
			defer ec.Panic()
			ec.Do(nil, nil, in)
			return
		}()
		return
	}()
	tt.Equals(t, ec, result)
	tt.Pattern(t, `error at .*errs_test\.go.* #3 - yep`, ec.Error())
}

func TestCollectorUnwrap(t *testing.T) {
	in := fmt.Errorf("yep")
	ec := &ErrCollector{}
	result := func() (err error) {
		defer ec.Set(&err)
		ec.Do(in)
		return
	}()
	tt.Assert(t, errors.Is(result, in))
}

func TestCollectorSentinelThrough(t *testing.T) {
	ec := &ErrCollector{}
	result := func() (err error) {
		defer ec.Set(&err)
		w := openNull(WithDocumentDeclaration(false))
		ec.Do(
			w.WriteEvent(StartElement{Name: LocalName("elem")}),
			w.WriteEvent(Comment("--")),
		)
		return
	}()
	tt.Assert(t, errors.Is(result, ErrCommentContent))
}

func TestEndMismatchError(t *testing.T) {
	err := &EndMismatchError{
		Submitted: LocalName("b"),
		Open:      QualifiedName("a", "urn:u", "p"),
	}
	tt.Equals(t, `xmlemit: end element "b" does not match open element "{urn:u}p:a"`, err.Error())
	tt.Assert(t, errors.Is(err, ErrEndMismatch))
	tt.Assert(t, !errors.Is(err, ErrNoOpenElement))
}
