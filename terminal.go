package main

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// enableRawMode puts the terminal into byte-at-a-time mode and returns
// the previous settings. VMIN=0/VTIME=1 bounds every read by a tenth of a
// second, which is what lets the key decoder probe for escape-sequence
// continuation bytes without blocking forever.
func enableRawMode(fd int) (*unix.Termios, error) {
	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, err
	}
	return orig, nil
}

func restoreMode(fd int, orig *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TCSETS, orig)
}

// windowSize reports the terminal extents, falling back to the cursor
// position probe when the direct size query is unavailable.
func windowSize(in io.Reader, out io.Writer, fd int) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(fd)
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	return probeWindowSize(in, out)
}

// probeWindowSize pushes the cursor to the far bottom-right and asks the
// terminal to report where it ended up.
func probeWindowSize(in io.Reader, out io.Writer) (rows, cols int, err error) {
	if _, err := out.Write([]byte("\x1b[999C\x1b[999B\x1b[6n")); err != nil {
		return 0, 0, err
	}

	// response looks like \x1b[24;80R
	var resp bytes.Buffer
	b := make([]byte, 1)
	for resp.Len() < 32 {
		n, err := in.Read(b)
		if err != nil || n == 0 {
			break
		}
		resp.WriteByte(b[0])
		if b[0] == 'R' {
			break
		}
	}

	if _, err := fmt.Sscanf(resp.String(), "\x1b[%d;%dR", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor report %q: %w", resp.String(), err)
	}
	return rows, cols, nil
}

// clearScreen erases the display and homes the cursor, used on exit and
// before reporting a fatal error.
func clearScreen(out io.Writer) {
	io.WriteString(out, vtClearScreen)
	io.WriteString(out, vtCursorHome)
}
