package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// open loads path into the editor, one row per line. A file that does not
// exist yet leaves an empty document carrying the name, so the first save
// creates it.
func (e *Editor) open(path string) error {
	e.filename = path

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := e.readFrom(f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// readFrom splits r on line feeds, stripping a trailing carriage return
// from each line. The document comes out clean: loading never counts as a
// modification.
func (e *Editor) readFrom(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	// lines are unbounded; the default token limit is only 64 KiB
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for scanner.Scan() {
		line := bytes.TrimSuffix(scanner.Bytes(), []byte("\r"))
		e.insertRow(len(e.rows), line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	e.dirty = 0
	return nil
}

// contents serializes the document with a line feed after every line,
// including the last.
func (e *Editor) contents() []byte {
	var buf bytes.Buffer
	for _, r := range e.rows {
		buf.Write(r.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// save writes the whole document back to its path, prompting for one when
// the document is untitled. Failure is recoverable: it is reported in the
// status line and the document keeps its state.
func (e *Editor) save() {
	if e.filename == "" {
		e.filename = e.prompt("Save as: %s (ESC to cancel)", nil)
		if e.filename == "" {
			e.setStatusMessage("Save aborted")
			return
		}
	}

	data := e.contents()
	if err := os.WriteFile(e.filename, data, 0644); err != nil {
		e.setStatusMessage("Can't save! I/O error: %s", err)
		return
	}
	e.dirty = 0
	e.setStatusMessage("%d bytes written to disk", len(data))
}
