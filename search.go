package main

import "bytes"

// find runs an incremental search session on top of the prompt. The last
// match row and the direction live only for the lifetime of the session,
// captured by the callback closure. Arrow keys set the direction, Enter
// ends the session with the cursor left on the match, Escape restores the
// cursor and viewport saved before the session began.
func (e *Editor) find() {
	savedCx, savedCy := e.cx, e.cy
	savedColOffset, savedRowOffset := e.colOffset, e.rowOffset

	lastMatch := -1
	direction := 1

	query := e.prompt("Search: %s (Use ESC/Arrows/Enter)", func(query string, k key) {
		switch k {
		case keyEnter, keyEscape:
			return
		case keyArrowRight, keyArrowDown:
			direction = 1
		case keyArrowLeft, keyArrowUp:
			direction = -1
		default:
			// the query changed: start a fresh forward search
			lastMatch = -1
			direction = 1
		}

		if query == "" {
			return
		}
		if lastMatch == -1 {
			direction = 1
		}

		current := lastMatch
		for range e.rows {
			current += direction
			if current == -1 {
				current = len(e.rows) - 1
			} else if current == len(e.rows) {
				current = 0
			}

			r := e.rows[current]
			idx := bytes.Index(r.render, []byte(query))
			if idx == -1 {
				continue
			}

			lastMatch = current
			e.cy = current
			e.cx = r.rxToCx(idx)
			// force the next scroll clamp to bring the match into view
			// from the bottom
			e.rowOffset = len(e.rows)
			break
		}
	})

	if query == "" {
		e.cx, e.cy = savedCx, savedCy
		e.colOffset, e.rowOffset = savedColOffset, savedRowOffset
	}
}
