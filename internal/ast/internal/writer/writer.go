//Package writer exports a simplified writer that saves error handling
//till the end.
package writer

import "io"

//Writer provides chainable printing helpers and
//records the first error for later inspection.
type Writer struct {
	to  io.Writer
	err error
}

//New wraps a standard io.Writer.
func New(to io.Writer) *Writer {
	if already, ok := to.(*Writer); ok {
		return already
	}
	return &Writer{to: to}
}

//Err reports the first error during processing.
func (w *Writer) Err() error {
	return w.err
}

//Write implements io.Writer, halting output after the first error.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	var n int
	n, w.err = w.to.Write(p)
	return n, w.err
}

//Str writes a string.
func (w *Writer) Str(s string) *Writer {
	if w.err != nil {
		return w
	}
	_, w.err = io.WriteString(w.to, s)
	return w
}

//Sp renders a space.
func (w *Writer) Sp() *Writer {
	return w.Str(" ")
}
