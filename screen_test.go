package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func frameEditor(lines ...string) (*Editor, *bytes.Buffer) {
	var out bytes.Buffer
	e := newEditor(strings.NewReader(""), &out, 24, 80)
	for _, l := range lines {
		e.insertRow(len(e.rows), []byte(l))
	}
	e.dirty = 0
	return e, &out
}

func TestRefreshEmptyDocumentFrame(t *testing.T) {
	e, out := frameEditor()

	e.refresh()
	frame := out.String()

	if !strings.HasPrefix(frame, vtHideCursor+vtCursorHome) {
		t.Error("frame must start by hiding the cursor and homing")
	}
	if !strings.HasSuffix(frame, vtShowCursor) {
		t.Error("frame must end by showing the cursor")
	}
	if !strings.Contains(frame, "Mite editor -- version") {
		t.Error("empty document should show the welcome banner")
	}
	if !strings.Contains(frame, "[No Name] - 0 lines") {
		t.Error("status bar should show [No Name] for an untitled buffer")
	}
	if !strings.Contains(frame, vtReverseVideo) {
		t.Error("status bar should enter reverse video")
	}
	if !strings.Contains(frame, "\x1b[1;1H") {
		t.Error("cursor should be positioned at the top-left")
	}
	if n := strings.Count(frame, "~"); n < e.screenRows-1 {
		t.Errorf("tilde rows = %d, want at least %d", n, e.screenRows-1)
	}
}

func TestRefreshWritesSingleFrame(t *testing.T) {
	e, out := frameEditor("hello")

	e.refresh()
	first := out.Len()
	out.Reset()
	e.refresh()

	if out.Len() != first {
		t.Errorf("frame sizes differ between identical refreshes: %d vs %d", first, out.Len())
	}
}

func TestRefreshClipsToViewport(t *testing.T) {
	var line strings.Builder
	for i := 0; i < 200; i++ {
		line.WriteByte(byte('a' + i%26))
	}
	e, out := frameEditor(line.String())
	e.cx = 150

	e.refresh()
	frame := out.String()

	if e.colOffset != 150-e.screenCols+1 {
		t.Fatalf("colOffset = %d, want %d", e.colOffset, 150-e.screenCols+1)
	}
	// first text row sits between the home sequence and the first erase
	start := strings.Index(frame, vtCursorHome) + len(vtCursorHome)
	end := strings.Index(frame, vtEraseLine)
	got := frame[start:end]
	want := line.String()[e.colOffset : e.colOffset+e.screenCols]
	if got != want {
		t.Errorf("visible row = %q, want %q", got, want)
	}
}

func TestStatusBarShowsFileStateAndPosition(t *testing.T) {
	e, out := frameEditor("one", "two", "three")
	e.filename = "notes.txt"
	e.dirty = 1
	e.cy = 1

	e.refresh()
	frame := out.String()

	start := strings.Index(frame, vtReverseVideo) + len(vtReverseVideo)
	end := strings.Index(frame, vtNormalVideo)
	bar := frame[start:end]

	if len(bar) != e.screenCols {
		t.Errorf("status bar width = %d, want %d", len(bar), e.screenCols)
	}
	if !strings.Contains(bar, "notes.txt - 3 lines (modified)") {
		t.Errorf("status bar = %q, missing file state", bar)
	}
	if !strings.HasSuffix(bar, "2/3") {
		t.Errorf("status bar = %q, want position 2/3 right-justified", bar)
	}
}

func TestStatusBarTruncatesLongFilename(t *testing.T) {
	e, out := frameEditor("x")
	e.filename = "a-very-long-filename-that-keeps-going.txt"

	e.refresh()

	if !strings.Contains(out.String(), "a-very-long-filename") {
		t.Error("filename should be truncated to its first 20 bytes")
	}
	if strings.Contains(out.String(), "keeps-going") {
		t.Error("filename beyond 20 bytes should not appear")
	}
}

func TestMessageBarTTL(t *testing.T) {
	e, out := frameEditor("x")
	e.setStatusMessage("HELP: Ctrl-S = save")

	e.refresh()
	if !strings.Contains(out.String(), "HELP: Ctrl-S = save") {
		t.Error("fresh status message should be drawn")
	}

	out.Reset()
	e.statusTime = time.Now().Add(-6 * time.Second)
	e.refresh()
	if strings.Contains(out.String(), "HELP: Ctrl-S = save") {
		t.Error("expired status message should disappear")
	}
}

func TestRefreshPlacesCursorAtRenderPosition(t *testing.T) {
	e, out := frameEditor("\tabc")
	e.cx = 1

	e.refresh()

	// cursor past the tab lands on rendered column 9
	if !strings.Contains(out.String(), "\x1b[1;9H") {
		t.Errorf("frame %q missing cursor position for expanded tab", out.String())
	}
}
