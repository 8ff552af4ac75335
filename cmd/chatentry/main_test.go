package main

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"chatentry/pkg/config"
	"chatentry/pkg/transcript"
	"chatentry/pkg/ui/components/chatentry"
	"chatentry/pkg/version"

	"github.com/charmbracelet/x/ansi"
)

func items() []transcript.Item {
	at := float64(time.Date(2024, 3, 5, 15, 4, 0, 0, time.UTC).UnixMilli())
	return []transcript.Item{
		{ID: "a", Props: chatentry.Props{Locale: "de-DE", Timestamp: at, Message: "Hallo", Origin: chatentry.OriginRemote, Name: "Ana"}},
		{ID: "b", Props: chatentry.Props{Locale: "de-DE", Timestamp: math.NaN(), Message: "order summary: 1x Tee", Origin: chatentry.OriginLocal}},
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := renderHTML(&buf, items(), time.UTC); err != nil {
		t.Fatalf("renderHTML() error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<ul") || !strings.HasSuffix(out, "</ul>\n") {
		t.Errorf("Expected a <ul> wrapper, got:\n%s", out)
	}
	if strings.Count(out, "<li ") != 2 {
		t.Errorf("Expected two list items, got:\n%s", out)
	}
	if !strings.Contains(out, ">15:04<") {
		t.Errorf("Expected German short time, got:\n%s", out)
	}
	if !strings.Contains(out, `title="Invalid Date"`) {
		t.Errorf("Expected invalid timestamp title, got:\n%s", out)
	}
	if !strings.Contains(out, ">1x Tee<") {
		t.Errorf("Expected stripped order summary, got:\n%s", out)
	}
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := renderPlain(&buf, items(), config.Default(), time.UTC); err != nil {
		t.Fatalf("renderPlain() error: %v", err)
	}
	out := ansi.Strip(buf.String())

	if !strings.Contains(out, "Ana 15:04") {
		t.Errorf("Expected hovered header, got:\n%s", out)
	}
	if !strings.Contains(out, "ORDER SUMMARY") {
		t.Errorf("Expected order summary label, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
		t.Errorf("Expected a single trailing newline, got %q", out[len(out)-3:])
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)

	if buf.String() != version.Details() {
		t.Errorf("printVersion() = %q, want %q", buf.String(), version.Details())
	}
	if !strings.Contains(buf.String(), version.Summary()) {
		t.Errorf("Expected version output to include the summary, got %q", buf.String())
	}
}
