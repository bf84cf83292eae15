package xmlemit

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors returned by the writer. Structural errors leave the
// document in a well defined state: nothing is written to the output
// buffer for the failed event.
var (
	// ErrDeclarationAlreadyWritten is returned by a StartDocument event
	// when a declaration has already been written, whether explicitly or
	// automatically.
	ErrDeclarationAlreadyWritten = errors.New("xmlemit: document declaration has already been written")

	// ErrDeclarationAfterRoot is returned by a StartDocument event once
	// the root element has been opened.
	ErrDeclarationAfterRoot = errors.New("xmlemit: document declaration must come before the root element")

	// ErrReservedPITarget is returned by a ProcInst event whose target is
	// "xml" in any case combination.
	ErrReservedPITarget = errors.New("xmlemit: processing instruction target may not be 'xml'")

	// ErrPIContent is returned by a ProcInst event whose content contains
	// the terminator "?>".
	ErrPIContent = errors.New("xmlemit: processing instruction content may not contain '?>'")

	// ErrCommentContent is returned by a Comment event containing "--" or
	// ending with "-".
	ErrCommentContent = errors.New("xmlemit: comment may not contain '--' or end with '-'")

	// ErrCDataContent is returned by a CData event containing "]]>".
	ErrCDataContent = errors.New("xmlemit: cdata may not contain ']]>'")

	// ErrNoOpenElement is returned by an EndElement event when no element
	// is open.
	ErrNoOpenElement = errors.New("xmlemit: no open element to end")

	// ErrEndMismatch matches any *EndMismatchError via errors.Is.
	ErrEndMismatch = errors.New("xmlemit: end element name does not match open element")

	// ErrReleased is returned by a Writer whose buffer has been released.
	ErrReleased = errors.New("xmlemit: use of released writer")
)

// EndMismatchError is returned by an EndElement event that names an
// element other than the innermost open one. The innermost element is
// closed on the writer's books regardless so that depth and namespace
// scopes stay aligned with the caller's own stack, but nothing is
// written to the output.
type EndMismatchError struct {
	// Submitted is the name carried by the failing EndElement event.
	Submitted Name

	// Open is the name of the element that was open at the time.
	Open Name
}

func (e *EndMismatchError) Error() string {
	return fmt.Sprintf("xmlemit: end element %q does not match open element %q",
		e.Submitted.String(), e.Open.String())
}

// Is reports a match against the ErrEndMismatch sentinel.
func (e *EndMismatchError) Is(target error) bool {
	return target == ErrEndMismatch
}

/*
ErrCollector allows you to defer raising or accumulating an error
until after a series of procedural calls.

ErrCollector it is intended to help cut down on boilerplate like this:

	if err := w.WriteEvent(xmlemit.StartDocument{}); err != nil {
		return err
	}
	if err := w.WriteEvent(xmlemit.StartElement{Name: xmlemit.LocalName("elem")}); err != nil {
		return err
	}
	if err := w.WriteEvent(xmlemit.Characters("yep")); err != nil {
		return err
	}
	if err := w.WriteEvent(xmlemit.EndElement{}); err != nil {
		return err
	}

For any sufficiently complex procedural XML assembly, this is patently
ridiculous. ErrCollector allows you to assume that it's ok to keep writing
until the end of a controlled block, then fail with the first error that
occurred. In complex procedures, ErrCollector is far more succinct and mirrors
an idiom used internally in the library, which was itself cribbed from the
stdlib's xml package (see cachedWriteError).

For functions that return an error:

	func pants(w *xmlemit.Writer) (err error) {
		ec := &xmlemit.ErrCollector{}
		defer ec.Set(&err)
		ec.Do(
			w.WriteEvent(xmlemit.StartDocument{}),
			w.WriteEvent(xmlemit.StartElement{Name: xmlemit.LocalName("elem")}),
			w.WriteEvent(xmlemit.Characters("yep")),
			w.WriteEvent(xmlemit.EndElement{}),
		)
		return
	}

If you want to panic instead, just substitute `defer ec.Set(&err)` with `defer
ec.Panic()`

It is entirely the responsibility of the library's user to remember to call
either `ec.Set()` or `ec.Panic()`. If you don't, you'll be swallowing errors.
*/
type ErrCollector struct {
	File  string
	Line  int
	Index int
	Err   error
}

// Error implements the error interface.
func (e *ErrCollector) Error() string {
	return fmt.Sprintf("error at %s:%d #%d - %v", e.File, e.Line, e.Index, e.Err)
}

// Unwrap returns the collected error.
func (e *ErrCollector) Unwrap() error {
	return e.Err
}

// Panic causes the collector to panic if any error has been collected.
//
// This should be called in a defer:
//
//	func pants() {
//		ec := &xmlemit.ErrCollector{}
//		defer ec.Panic()
//		ec.Do(fmt.Errorf("this will panic at the end"))
//		fmt.Printf("This will print")
//	}
func (e *ErrCollector) Panic() {
	if e.Err != nil {
		panic(e)
	}
}

// Set assigns the collector's internal error to an external error variable.
//
// This should be called in a defer with a named return to allow an error
// to be easily returned if one is collected:
//
//	func pants() (err error) {
//		ec := &xmlemit.ErrCollector{}
//		defer ec.Set(&err)
//		ec.Do(fmt.Errorf("this error will be returned by the pants function"))
//		fmt.Printf("This will print")
//	}
func (e *ErrCollector) Set(err *error) {
	if e.Err != nil {
		*err = e
	}
}

// Do collects the first error in a list of errors and holds on to it.
//
// If you pass the result of multiple functions to Do, they will not be
// short circuited on failure - the first error is retained by the collector
// and the rest are discarded. It is only intended to be used when you know
// that subsequent calls after the first error are safe to make.
func (e *ErrCollector) Do(errs ...error) {
	for i, err := range errs {
		if err != nil {
			_, file, line, _ := runtime.Caller(1)
			e.Err = err
			e.Index = i + 1
			e.File = file
			e.Line = line
			return
		}
	}
}

// Must collects the first error in a list of errors and panics with it.
func (e *ErrCollector) Must(errs ...error) {
	for i, err := range errs {
		if err != nil {
			_, file, line, _ := runtime.Caller(1)
			e.Err = err
			e.Index = i + 1
			e.File = file
			e.Line = line
			panic(e)
		}
	}
}
