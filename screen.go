package main

import (
	"bytes"
	"fmt"
	"time"
)

// VT100 control sequences, written byte-exact.
const (
	vtHideCursor   = "\x1b[?25l"
	vtShowCursor   = "\x1b[?25h"
	vtCursorHome   = "\x1b[H"
	vtClearScreen  = "\x1b[2J"
	vtEraseLine    = "\x1b[K"
	vtReverseVideo = "\x1b[7m"
	vtNormalVideo  = "\x1b[m"
)

func (e *Editor) drawRows(buf *bytes.Buffer) {
	for y := 0; y < e.screenRows; y++ {
		fileRow := y + e.rowOffset
		if fileRow >= len(e.rows) {
			if len(e.rows) == 0 && y == e.screenRows/3 {
				e.drawWelcome(buf)
			} else {
				buf.WriteByte('~')
			}
		} else {
			render := e.rows[fileRow].render
			length := len(render) - e.colOffset
			if length < 0 {
				length = 0
			}
			if length > e.screenCols {
				length = e.screenCols
			}
			if length > 0 {
				buf.Write(render[e.colOffset : e.colOffset+length])
			}
		}
		buf.WriteString(vtEraseLine)
		buf.WriteString("\r\n")
	}
}

func (e *Editor) drawWelcome(buf *bytes.Buffer) {
	welcome := fmt.Sprintf("Mite editor -- version %s", version)
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		buf.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		buf.WriteByte(' ')
	}
	buf.WriteString(welcome)
}

func (e *Editor) drawStatusBar(buf *bytes.Buffer) {
	buf.WriteString(vtReverseVideo)

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if e.dirty > 0 {
		modified = " (modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines%s", name, len(e.rows), modified)
	rstatus := fmt.Sprintf("%d/%d", e.cy+1, len(e.rows))

	length := len(status)
	if length > e.screenCols {
		length = e.screenCols
	}
	buf.WriteString(status[:length])
	for length < e.screenCols {
		if e.screenCols-length == len(rstatus) {
			buf.WriteString(rstatus)
			break
		}
		buf.WriteByte(' ')
		length++
	}

	buf.WriteString(vtNormalVideo)
	buf.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(buf *bytes.Buffer) {
	buf.WriteString(vtEraseLine)
	msg := e.statusMsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if msg != "" && time.Since(e.statusTime) < messageTTL {
		buf.WriteString(msg)
	}
}

// refresh composes one full frame and writes it in a single call so the
// terminal never shows a half-drawn screen. Partial writes are accepted
// best-effort.
func (e *Editor) refresh() {
	e.scroll()

	var buf bytes.Buffer
	buf.WriteString(vtHideCursor)
	buf.WriteString(vtCursorHome)

	e.drawRows(&buf)
	e.drawStatusBar(&buf)
	e.drawMessageBar(&buf)

	fmt.Fprintf(&buf, "\x1b[%d;%dH", (e.cy-e.rowOffset)+1, (e.rx-e.colOffset)+1)
	buf.WriteString(vtShowCursor)

	e.out.Write(buf.Bytes())
}
