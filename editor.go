package main

import (
	"fmt"
	"io"
	"slices"
	"time"
)

const (
	version    = "0.1.0"
	quitTimes  = 3
	messageTTL = 5 * time.Second
)

// Editor owns the whole session: document, cursor, viewport and status
// line. The control loop holds the single Editor value; nothing else ever
// touches it, so there is no locking anywhere.
type Editor struct {
	cx, cy int // cursor in raw coordinates; cy may equal len(rows)
	rx     int // rendered cursor column, derived from cx every frame

	rowOffset int
	colOffset int

	screenRows int
	screenCols int

	rows  []*row
	dirty int

	filename string

	statusMsg  string
	statusTime time.Time

	quitCount int

	in  *keyReader
	out io.Writer
}

// newEditor builds an editor for a terminal of the given total size. Two
// rows are reserved for the status and message lines.
func newEditor(in io.Reader, out io.Writer, rows, cols int) *Editor {
	return &Editor{
		in:         newKeyReader(in),
		out:        out,
		screenRows: rows - 2,
		screenCols: cols,
		quitCount:  quitTimes,
	}
}

func (e *Editor) currentRow() *row {
	if e.cy >= len(e.rows) {
		return nil
	}
	return e.rows[e.cy]
}

func (e *Editor) setStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}

/*
 * row store
 */

func (e *Editor) insertRow(at int, chars []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	e.rows = slices.Insert(e.rows, at, newRow(chars))
	e.dirty++
}

func (e *Editor) delRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = slices.Delete(e.rows, at, at+1)
	e.dirty++
}

/*
 * edit operations
 */

// insertChar inserts c at the cursor. Typing on the virtual line one past
// the end of the document first appends an empty row.
func (e *Editor) insertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rows[e.cy].insertChar(e.cx, c)
	e.cx++
	e.dirty++
}

// insertNewline splits the current line at the cursor. At column zero the
// split degenerates to inserting an empty line above.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
	} else {
		r := e.rows[e.cy]
		e.insertRow(e.cy+1, r.chars[e.cx:])
		r.chars = r.chars[:e.cx]
		r.update()
	}
	e.cy++
	e.cx = 0
}

// delChar removes the byte left of the cursor. At column zero the current
// line is joined onto the previous one and the cursor lands on the seam.
// A no-op at the start of the document and on the virtual last line.
func (e *Editor) delChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	r := e.rows[e.cy]
	if e.cx > 0 {
		r.delChar(e.cx - 1)
		e.cx--
		e.dirty++
		return
	}

	prev := e.rows[e.cy-1]
	e.cx = len(prev.chars)
	prev.appendChars(r.chars)
	e.delRow(e.cy)
	e.cy--
}

/*
 * cursor and viewport
 */

func (e *Editor) moveCursor(k key) {
	r := e.currentRow()

	switch k {
	case keyArrowLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case keyArrowRight:
		if r != nil && e.cx < len(r.chars) {
			e.cx++
		} else if r != nil && e.cx == len(r.chars) {
			e.cy++
			e.cx = 0
		}
	case keyArrowUp:
		if e.cy > 0 {
			e.cy--
		}
	case keyArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	// the move may have landed on a shorter line
	rowLen := 0
	if r = e.currentRow(); r != nil {
		rowLen = len(r.chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// scroll recomputes rx and clamps the offsets so the cursor stays inside
// the visible frame, scrolling by exactly the amount needed.
func (e *Editor) scroll() {
	e.rx = 0
	if r := e.currentRow(); r != nil {
		e.rx = r.cxToRx(e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}
