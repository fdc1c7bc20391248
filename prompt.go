package main

// promptCallback is invoked after every keystroke of a prompt session,
// including the Enter or Escape that ends it. A nil callback is fine.
type promptCallback func(input string, k key)

// prompt runs a modal line-input session in the message line. template
// must contain one %s verb for the input typed so far. It returns the
// committed input, or "" when the session was cancelled. Enter commits
// only a non-empty buffer; Escape always cancels.
func (e *Editor) prompt(template string, cb promptCallback) string {
	var buf []byte
	for {
		e.setStatusMessage(template, buf)
		e.refresh()

		k := e.in.readKey()
		switch {
		case k == keyBackspace || k == keyDelete || k == ctrl('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case k == keyEscape:
			e.setStatusMessage("")
			if cb != nil {
				cb(string(buf), k)
			}
			return ""
		case k == keyEnter:
			if len(buf) > 0 {
				e.setStatusMessage("")
				if cb != nil {
					cb(string(buf), k)
				}
				return string(buf)
			}
		default:
			if k < 128 && !isControl(byte(k)) {
				buf = append(buf, byte(k))
			}
		}

		if cb != nil {
			cb(string(buf), k)
		}
	}
}
