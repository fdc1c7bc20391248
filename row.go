package main

import "slices"

const tabStop = 8

// row is one line of the document. chars holds the raw bytes; render is
// the display form with tabs expanded to the next tab stop. render is
// rebuilt on every mutation of chars and is never read stale.
type row struct {
	chars  []byte
	render []byte
}

func newRow(chars []byte) *row {
	r := &row{chars: slices.Clone(chars)}
	r.update()
	return r
}

// update rebuilds render from chars. Invariant: len(render) >= len(chars).
func (r *row) update() {
	r.render = r.render[:0]
	for _, c := range r.chars {
		if c == '\t' {
			r.render = append(r.render, ' ')
			for len(r.render)%tabStop != 0 {
				r.render = append(r.render, ' ')
			}
		} else {
			r.render = append(r.render, c)
		}
	}
}

// cxToRx maps a raw column to its rendered column.
func (r *row) cxToRx(cx int) int {
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	rx := 0
	for _, c := range r.chars[:cx] {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// rxToCx is the inverse of cxToRx: it replays the tab expansion until the
// rendered position passes rx and returns the raw index reached. An rx
// beyond the rendered length maps to the end of the line.
func (r *row) rxToCx(rx int) int {
	curRx := 0
	for cx, c := range r.chars {
		if c == '\t' {
			curRx += (tabStop - 1) - (curRx % tabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return len(r.chars)
}

func (r *row) insertChar(at int, c byte) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = slices.Insert(r.chars, at, c)
	r.update()
}

func (r *row) delChar(at int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = slices.Delete(r.chars, at, at+1)
	r.update()
}

func (r *row) appendChars(s []byte) {
	r.chars = append(r.chars, s...)
	r.update()
}
