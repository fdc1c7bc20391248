package main

import "io"

// key is one logical key event. Plain input bytes (printable or control)
// are their byte value; named navigation keys start above the byte range
// so they can never collide with input.
type key int

const (
	keyEnter     key = '\r'
	keyEscape    key = '\x1b'
	keyBackspace key = 127
)

const (
	keyArrowLeft key = 1000 + iota
	keyArrowRight
	keyArrowUp
	keyArrowDown
	keyDelete
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
)

func ctrl(b byte) key {
	return key(b & 0x1f)
}

func isControl(b byte) bool {
	return b < 32 || b == 127
}

// keyReader decodes raw terminal bytes into logical keys. It expects the
// underlying reader to be in VMIN=0/VTIME=1 raw mode, where a timed-out
// read returns no bytes; that short read is what tells a lone ESC apart
// from the start of an escape sequence.
type keyReader struct {
	r   io.Reader
	buf [1]byte
}

func newKeyReader(r io.Reader) *keyReader {
	return &keyReader{r: r}
}

// readByte returns the next input byte, or ok=false on a timed-out or
// failed read.
func (kr *keyReader) readByte() (byte, bool) {
	n, err := kr.r.Read(kr.buf[:])
	if n != 1 || err != nil {
		return 0, false
	}
	return kr.buf[0], true
}

// readKey blocks until one logical key is available. Truncated or
// unrecognized escape sequences degrade to keyEscape, never an error.
func (kr *keyReader) readKey() key {
	var c byte
	for {
		var ok bool
		if c, ok = kr.readByte(); ok {
			break
		}
	}

	if c != byte(keyEscape) {
		return key(c)
	}

	seq0, ok := kr.readByte()
	if !ok {
		return keyEscape
	}
	seq1, ok := kr.readByte()
	if !ok {
		return keyEscape
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok := kr.readByte()
			if !ok || seq2 != '~' {
				return keyEscape
			}
			switch seq1 {
			case '1', '7':
				return keyHome
			case '3':
				return keyDelete
			case '4', '8':
				return keyEnd
			case '5':
				return keyPageUp
			case '6':
				return keyPageDown
			}
		} else {
			switch seq1 {
			case 'A':
				return keyArrowUp
			case 'B':
				return keyArrowDown
			case 'C':
				return keyArrowRight
			case 'D':
				return keyArrowLeft
			case 'H':
				return keyHome
			case 'F':
				return keyEnd
			}
		}
	case 'O':
		switch seq1 {
		case 'H':
			return keyHome
		case 'F':
			return keyEnd
		}
	}

	return keyEscape
}
