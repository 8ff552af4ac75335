// Package chatlist hosts chat entries in a scrollable terminal list.
package chatlist

import (
	"fmt"
	"os"
	"strings"
	"time"

	"chatentry/pkg/transcript"
	"chatentry/pkg/ui/components/chatentry"
	"chatentry/pkg/ui/components/utils"
	"chatentry/pkg/ui/components/welcome"
	"chatentry/pkg/ui/styles"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

const (
	pageStep    = 5
	footerHints = "↑/↓ Move | y Copy | t Touch | q Quit"
)

// Options configure a List.
type Options struct {
	Touch          bool
	MaxBubbleWidth int
	Location       *time.Location
}

// List shows chat entries top to bottom. The cursor plays the role of the
// pointer: the selected entry is the hovered one.
type List struct {
	items    []transcript.Item
	entries  []chatentry.Entry
	selected int
	touch    bool
	width    int
	height   int
	opts     Options

	viewport viewport.Model
	scrollY  int
	offsets  []int // first content line of each entry
	heights  []int
}

// NewList creates an empty list.
func NewList(opts Options) *List {
	return &List{
		touch:    opts.Touch,
		opts:     opts,
		viewport: viewport.New(),
	}
}

// SetItems replaces the list contents and selects the newest entry.
func (l *List) SetItems(items []transcript.Item) {
	l.items = items
	l.entries = make([]chatentry.Entry, len(items))
	for i, item := range items {
		l.entries[i] = chatentry.Build(item.Props, chatentry.WithLocation(l.opts.Location))
	}
	l.selected = len(items) - 1
	l.reflow()
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.items)
}

// SetSize sets the outer dimensions, footer included.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.viewport.SetWidth(width)
	l.viewport.SetHeight(l.bodyHeight())
	l.reflow()
}

// Selected returns the hovered item.
func (l *List) Selected() (transcript.Item, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return transcript.Item{}, false
	}
	return l.items[l.selected], true
}

// HoverTitle is the full timestamp of the hovered entry.
func (l *List) HoverTitle() string {
	if l.selected < 0 || l.selected >= len(l.entries) {
		return ""
	}
	return l.entries[l.selected].Title
}

// IsTouch reports whether headers are pinned visible.
func (l *List) IsTouch() bool {
	return l.touch
}

// ToggleTouch switches between hover and touch header behavior.
func (l *List) ToggleTouch() {
	l.touch = !l.touch
	l.reflow()
}

// Update handles keyboard input for the list.
func (l *List) Update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		l.Select(l.selected - 1)
	case "down", "j":
		l.Select(l.selected + 1)
	case "pgup":
		l.Select(l.selected - pageStep)
	case "pgdown":
		l.Select(l.selected + pageStep)
	case "home", "g":
		l.Select(0)
	case "end", "G":
		l.Select(len(l.items) - 1)
	case "t":
		l.ToggleTouch()
	case "y":
		return l.copyToClipboard()
	}
	return nil
}

// Select moves the cursor to index i, clamped to the list.
func (l *List) Select(i int) {
	if len(l.items) == 0 {
		return
	}
	i = max(0, min(i, len(l.items)-1))
	if i == l.selected {
		return
	}
	l.selected = i
	l.reflow()
}

func (l *List) copyToClipboard() tea.Cmd {
	item, ok := l.Selected()
	if !ok {
		return nil
	}
	text := item.Props.Message
	return func() tea.Msg {
		_, _ = fmt.Fprint(os.Stdout, osc52.New(text))
		return nil
	}
}

// View renders the visible entries and the footer.
func (l *List) View() string {
	if l.width <= 0 || l.height <= 0 {
		return ""
	}

	footer := l.HoverTitle()
	if footer != "" {
		footer += " | "
	}
	footer = utils.TruncateToWidth(footer+footerHints, l.width)
	footer = utils.PadStyled(styles.FooterStyle.Render(footer), l.width)

	if l.height == 1 {
		return footer
	}
	return l.viewport.View() + "\n" + footer
}

func (l *List) bodyHeight() int {
	return max(l.height-1, 0)
}

func (l *List) reflow() {
	l.offsets = l.offsets[:0]
	l.heights = l.heights[:0]

	blocks := make([]string, 0, len(l.entries))
	line := 0
	for i, e := range l.entries {
		block := chatentry.View(e, chatentry.ViewOptions{
			Width:          l.width,
			MaxBubbleWidth: l.opts.MaxBubbleWidth,
			Hovered:        i == l.selected,
			Touch:          l.touch,
		})
		h := strings.Count(block, "\n") + 1
		l.offsets = append(l.offsets, line)
		l.heights = append(l.heights, h)
		blocks = append(blocks, block)
		line += h + 1 // blank separator
	}

	if len(blocks) == 0 {
		l.viewport.SetContent(welcome.EmptyState())
	} else {
		l.viewport.SetContent(strings.Join(blocks, "\n\n"))
	}
	l.ensureVisible()
}

func (l *List) ensureVisible() {
	if l.selected < 0 || l.selected >= len(l.offsets) {
		l.scrollY = 0
		l.viewport.SetYOffset(0)
		return
	}

	body := l.bodyHeight()
	start := l.offsets[l.selected]
	end := start + l.heights[l.selected] - 1

	if start < l.scrollY {
		l.scrollY = start
	} else if end >= l.scrollY+body {
		l.scrollY = max(min(end-body+1, start), 0)
	}
	l.viewport.SetYOffset(l.scrollY)
}

// ScrollY is the first visible content line.
func (l *List) ScrollY() int {
	return l.scrollY
}
