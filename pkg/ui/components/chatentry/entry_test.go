package chatentry

import (
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"chatentry/pkg/timefmt"

	"github.com/stretchr/testify/require"
)

// stubFormatter keeps rendering tests independent of CLDR data.
type stubFormatter struct{}

func (stubFormatter) Full(ms float64) string {
	if math.IsNaN(ms) {
		return timefmt.InvalidDate
	}
	return "5 Mar 2024, 15:04:05"
}

func (stubFormatter) Short(ms float64) string {
	if math.IsNaN(ms) {
		return timefmt.InvalidDate
	}
	return "15:04"
}

var sampleMillis = float64(time.Date(2024, 3, 5, 15, 4, 5, 0, time.UTC).UnixMilli())

func build(p Props) Entry {
	return Build(p, WithFormatter(stubFormatter{}))
}

func TestParseOrderSummary(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		ok      bool
	}{
		{"canonical", "Order summary: 2x latte, 1x muffin", "2x latte, 1x muffin", true},
		{"lower case", "order summary: tea", "tea", true},
		{"upper case", "ORDER SUMMARY:tea", "tea", true},
		{"leading whitespace", "  \n\tOrder Summary:   tea  ", "tea", true},
		{"prefix only", "Order summary:", "", true},
		{"multi line", "Order summary:\n- latte\n- muffin\n", "- latte\n- muffin", true},
		{"no colon", "Order summary 2x latte", "", false},
		{"not at start", "Your order summary: tea", "", false},
		{"inner whitespace differs", "Order  summary: tea", "", false},
		{"plain", "hello", "", false},
		{"empty", "", "", false},
		{"unicode fold", "order ſummary: tea", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseOrderSummary(tt.message)
			if ok != tt.ok {
				t.Fatalf("ParseOrderSummary(%q) ok = %v, want %v", tt.message, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseOrderSummary(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestBuild_OrderSummary(t *testing.T) {
	req := require.New(t)

	for _, origin := range []Origin{OriginLocal, OriginRemote} {
		e := build(Props{
			Locale:    "en-US",
			Timestamp: sampleMillis,
			Message:   "Order summary: 2x latte, 1x muffin",
			Origin:    origin,
		})

		req.True(e.Body.OrderSummary)
		req.Equal(OrderSummaryLabel, e.Body.Label)
		req.Equal("2x latte, 1x muffin", e.Body.Text)
		req.Equal(AlignStart, e.Body.Align, "summaries stay left-aligned for %s", origin)
		req.False(e.Body.Muted)
		req.Contains(e.Classes.Body, "border")
		req.Contains(e.Classes.Label, "uppercase")
	}
}

func TestBuild_PlainRemote(t *testing.T) {
	e := build(Props{Message: "hello", Origin: OriginRemote, Timestamp: sampleMillis})

	if e.Body.OrderSummary || e.Body.Label != "" {
		t.Errorf("Expected plain bubble without label, got %+v", e.Body)
	}
	if e.Body.Text != "hello" {
		t.Errorf("Expected body 'hello', got %q", e.Body.Text)
	}
	if e.Body.Align != AlignStart || e.Body.Muted {
		t.Errorf("Expected remote bubble left-aligned without background, got %+v", e.Body)
	}
	if !strings.Contains(e.Classes.Body, "self-start") || strings.Contains(e.Classes.Body, "bg-muted") {
		t.Errorf("Unexpected remote body classes %q", e.Classes.Body)
	}
	if e.Header.Reversed {
		t.Error("Expected remote header in natural order")
	}
}

func TestBuild_PlainLocal(t *testing.T) {
	e := build(Props{Message: "  spaced  ", Origin: OriginLocal, Timestamp: sampleMillis})

	if e.Body.Text != "  spaced  " {
		t.Errorf("Expected verbatim text, got %q", e.Body.Text)
	}
	if e.Body.Align != AlignEnd || !e.Body.Muted {
		t.Errorf("Expected local bubble right-aligned and muted, got %+v", e.Body)
	}
	if !strings.Contains(e.Classes.Body, "self-end bg-muted") {
		t.Errorf("Unexpected local body classes %q", e.Classes.Body)
	}
	if !e.Header.Reversed {
		t.Error("Expected local header to be reversed")
	}
	if !strings.HasSuffix(e.Classes.Header, "flex-row-reverse") {
		t.Errorf("Expected reversed header classes, got %q", e.Classes.Header)
	}
}

func TestBuild_UnknownOriginRendersRemote(t *testing.T) {
	e := build(Props{Message: "hi", Origin: Origin("bot")})

	if e.Origin != OriginRemote || e.Local() {
		t.Errorf("Expected unknown origin to render as remote, got %q", e.Origin)
	}
}

func TestBuild_EditMarker(t *testing.T) {
	edited := build(Props{Message: "x", HasBeenEdited: true})
	if got := edited.Header.TimeText(); got != "*15:04" {
		t.Errorf("Expected edited time '*15:04', got %q", got)
	}

	plain := build(Props{Message: "x"})
	if got := plain.Header.TimeText(); got != "15:04" {
		t.Errorf("Expected unedited time '15:04', got %q", got)
	}
}

func TestBuild_Name(t *testing.T) {
	if e := build(Props{Message: "x", Name: "Ana"}); e.Header.Name != "Ana" {
		t.Errorf("Expected name 'Ana', got %q", e.Header.Name)
	}
	if e := build(Props{Message: "x"}); e.Header.Name != "" {
		t.Errorf("Expected no name, got %q", e.Header.Name)
	}
}

func TestBuild_EmptyMessage(t *testing.T) {
	e := build(Props{Message: "", Origin: OriginLocal})

	if e.Body.OrderSummary || e.Body.Text != "" {
		t.Errorf("Expected empty plain bubble, got %+v", e.Body)
	}
}

func TestBuild_TitleUsesLocale(t *testing.T) {
	p := Props{Locale: "de-DE", Timestamp: sampleMillis, Message: "x"}
	e := Build(p, WithLocation(time.UTC))

	f := timefmt.New("de-DE", time.UTC)
	if e.Title != f.Full(sampleMillis) {
		t.Errorf("Title = %q, want %q", e.Title, f.Full(sampleMillis))
	}
	if e.Header.Time != f.Short(sampleMillis) {
		t.Errorf("Header time = %q, want %q", e.Header.Time, f.Short(sampleMillis))
	}
}

func TestBuild_InvalidTimestamp(t *testing.T) {
	e := Build(Props{Locale: "en-US", Timestamp: math.NaN(), Message: "x"})

	if e.Title != timefmt.InvalidDate {
		t.Errorf("Expected title %q, got %q", timefmt.InvalidDate, e.Title)
	}
	if e.Header.Time != timefmt.InvalidDate {
		t.Errorf("Expected time %q, got %q", timefmt.InvalidDate, e.Header.Time)
	}
}

func TestBuild_Passthrough(t *testing.T) {
	req := require.New(t)

	e := build(Props{
		Message: "x",
		Class:   "mt-2",
		Attrs: map[string]string{
			"class":   "ring-1",
			"title":   "overridden",
			"data-id": "m1",
		},
	})

	req.Equal("group flex flex-col gap-1 px-4 py-1 mt-2 ring-1", e.Classes.Item)
	req.Equal(map[string]string{"data-id": "m1"}, e.Attrs)
	req.Equal("5 Mar 2024, 15:04:05", e.Title)
}

func TestBuild_ReservedAttrs(t *testing.T) {
	req := require.New(t)

	e := build(Props{
		Message: "x",
		Origin:  OriginLocal,
		Attrs: map[string]string{
			"Class":       "ring-1",
			"CLASS":       "ring-2",
			"data-origin": "remote",
			"Data-Origin": "remote",
			"data-id":     "m1",
		},
	})

	req.Equal("group flex flex-col gap-1 px-4 py-1 ring-2 ring-1", e.Classes.Item)
	req.Equal(map[string]string{"data-id": "m1"}, e.Attrs)
	req.Equal(OriginLocal, e.Origin)
}

func TestBuild_DoesNotMutateProps(t *testing.T) {
	attrs := map[string]string{"class": "a", "data-x": "1"}
	p := Props{Message: "Order summary: tea", Attrs: attrs}
	before := p

	_ = build(p)

	if p.Message != before.Message || len(attrs) != 2 {
		t.Errorf("Build mutated its input: %+v", p)
	}
}

func TestBuild_Concurrent(t *testing.T) {
	p := Props{Locale: "fr-FR", Timestamp: sampleMillis, Message: "Order summary: tea", Origin: OriginLocal}
	want := Build(p, WithLocation(time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Build(p, WithLocation(time.UTC))
			if got.Title != want.Title || got.Body != want.Body || got.Classes != want.Classes {
				t.Errorf("concurrent Build differs: %+v vs %+v", got, want)
			}
		}()
	}
	wg.Wait()
}
