package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"
)

func main() {
	flag.Parse()

	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "mite:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: mite [file]")
	}

	inFd := int(os.Stdin.Fd())
	if !term.IsTerminal(inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	orig, err := enableRawMode(inFd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer restoreMode(inFd, orig)

	rows, cols, err := windowSize(os.Stdin, os.Stdout, int(os.Stdout.Fd()))
	if err != nil {
		clearScreen(os.Stdout)
		return fmt.Errorf("determining window size: %w", err)
	}

	e := newEditor(os.Stdin, os.Stdout, rows, cols)

	if len(args) == 1 {
		if err := e.open(args[0]); err != nil {
			e.setStatusMessage("%s", err)
		}
	}

	e.setStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		e.refresh()
		if e.processKey() {
			break
		}
	}

	clearScreen(os.Stdout)
	return nil
}

// processKey reads one logical key and dispatches it. It reports whether
// the editor should exit.
func (e *Editor) processKey() bool {
	k := e.in.readKey()

	switch k {
	case ctrl('q'):
		if e.dirty > 0 && e.quitCount > 0 {
			e.setStatusMessage("WARNING!!! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", e.quitCount)
			e.quitCount--
			return false
		}
		return true

	case ctrl('s'):
		e.save()

	case ctrl('f'):
		e.find()

	case keyEnter:
		e.insertNewline()

	case keyBackspace, ctrl('h'):
		e.delChar()

	case keyDelete:
		e.moveCursor(keyArrowRight)
		e.delChar()

	case keyHome:
		e.cx = 0

	case keyEnd:
		if r := e.currentRow(); r != nil {
			e.cx = len(r.chars)
		}

	case keyPageUp, keyPageDown:
		if k == keyPageUp {
			e.cy = e.rowOffset
		} else {
			e.cy = e.rowOffset + e.screenRows - 1
			if e.cy > len(e.rows) {
				e.cy = len(e.rows)
			}
		}
		dir := keyArrowDown
		if k == keyPageUp {
			dir = keyArrowUp
		}
		for i := 0; i < e.screenRows; i++ {
			e.moveCursor(dir)
		}

	case keyArrowUp, keyArrowDown, keyArrowLeft, keyArrowRight:
		e.moveCursor(k)

	case keyEscape, ctrl('l'):
		// nothing

	default:
		if k == '\t' || (k < 128 && !isControl(byte(k))) {
			e.insertChar(byte(k))
		}
	}

	e.quitCount = quitTimes
	return false
}
