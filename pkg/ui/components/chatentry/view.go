package chatentry

import (
	"strings"

	"chatentry/pkg/ui/components/utils"
	"chatentry/pkg/ui/styles"

	"github.com/charmbracelet/x/ansi"
)

// DefaultMaxBubbleWidth caps bubbles when ViewOptions leaves it unset.
const DefaultMaxBubbleWidth = 60

// ViewOptions controls terminal rendering of an entry.
type ViewOptions struct {
	// Width is the column count available to the entry.
	Width int
	// MaxBubbleWidth caps the body width, frame included.
	MaxBubbleWidth int
	// Hovered is true while the entry is under the list cursor.
	Hovered bool
	// Touch keeps headers visible without hover.
	Touch bool
}

// HeaderVisible reports whether the header row is drawn.
func (o ViewOptions) HeaderVisible() bool {
	return o.Hovered || o.Touch
}

func (o ViewOptions) bubbleWidth() int {
	limit := o.MaxBubbleWidth
	if limit <= 0 {
		limit = DefaultMaxBubbleWidth
	}
	if o.Width > 0 && o.Width < limit {
		limit = o.Width
	}
	return limit
}

// View renders e as a terminal block: one header line followed by the
// body. A hidden header still occupies its line so hovering does not shift
// the list.
func View(e Entry, opts ViewOptions) string {
	lines := []string{renderHeader(e, opts)}

	var body []string
	switch {
	case e.Body.OrderSummary:
		body = renderSummary(e.Body, opts.bubbleWidth())
	default:
		body = renderBubble(e.Body, opts.bubbleWidth())
	}
	for _, line := range body {
		if e.Body.Align == AlignEnd {
			lines = append(lines, utils.AlignRight(line, opts.Width))
		} else {
			lines = append(lines, utils.PadStyled(line, opts.Width))
		}
	}
	return strings.Join(lines, "\n")
}

func renderHeader(e Entry, opts ViewOptions) string {
	if !opts.HeaderVisible() {
		return strings.Repeat(" ", max(opts.Width, 0))
	}

	parts := make([]string, 0, 2)
	if e.Header.Name != "" {
		parts = append(parts, styles.EntryNameStyle.Render(e.Header.Name))
	}
	timeText := styles.EntryTimeStyle.Render(e.Header.Time)
	if e.Header.Edited {
		timeText = styles.EntryEditedStyle.Render(EditMarker) + timeText
	}
	parts = append(parts, timeText)

	if e.Header.Reversed {
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
		return utils.AlignRight(strings.Join(parts, " "), opts.Width)
	}
	return utils.PadStyled(strings.Join(parts, " "), opts.Width)
}

func renderBubble(b Body, width int) []string {
	style := styles.BubbleRemoteStyle
	if b.Muted {
		style = styles.BubbleLocalStyle
	}
	inner := width - style.GetHorizontalFrameSize()
	text := wrap(sanitize(b.Text), inner)
	return strings.Split(style.Render(text), "\n")
}

func renderSummary(b Body, width int) []string {
	inner := width - styles.SummaryBoxStyle.GetHorizontalFrameSize()
	label := styles.SummaryLabelStyle.Render(strings.ToUpper(b.Label))
	text := styles.SummaryTextStyle.Render(wrap(sanitize(b.Text), inner))
	return strings.Split(styles.SummaryBoxStyle.Render(label+"\n"+text), "\n")
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

func sanitize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\t", "    ")
}
