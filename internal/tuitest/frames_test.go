package tuitest

import (
	"bytes"
	"testing"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[Hfirst  \r\n\x1b[1mbold\x1b[0m\n\n\x1b[2J\x1b[Hsecond")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d: %+v", len(frames), frames)
	}
	if frames[0].Plain != "first\nbold" {
		t.Fatalf("unexpected first frame %q", frames[0].Plain)
	}
	rec := &Recording{Raw: raw, Frames: frames}
	last, ok := rec.FinalFrame()
	if !ok || last.Plain != "second" || last.Index != 1 {
		t.Fatalf("unexpected final frame %+v", last)
	}
	if frame, ok := rec.FrameContaining("bold"); !ok || frame.Index != 0 {
		t.Fatalf("FrameContaining returned %+v, %v", frame, ok)
	}
	if _, ok := rec.FrameContaining("missing"); ok {
		t.Fatal("unexpected match")
	}
}

func TestPlainTextStripsEscapes(t *testing.T) {
	rec := &Recording{Raw: []byte("\x1b]11;?\x07\x1b[31mred\x1b[0m\r\n")}
	if got := rec.PlainText(); got != "red\n" {
		t.Fatalf("unexpected plain text %q", got)
	}
}

func TestResponderAnswersQueriesInOrder(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("\x1b]11;?\x07noise\x1b[6n"))
	want := "\x1b]11;rgb:0000/0000/0000\x07\x1b[1;1R"
	if out.String() != want {
		t.Fatalf("unexpected replies %q", out.String())
	}

	out.Reset()
	tr.Process([]byte("\x1b[6"))
	tr.Process([]byte("n"))
	if out.String() != "\x1b[1;1R" {
		t.Fatalf("split query not answered: %q", out.String())
	}
}
