// Package welcome draws the box shown when a transcript has no messages.
package welcome

import (
	"fmt"
	"strings"

	"chatentry/pkg/ui/components/utils"
	"chatentry/pkg/ui/styles"
	"chatentry/pkg/version"

	"github.com/mattn/go-runewidth"
)

const boxWidth = 44 // inner width

var shortcuts = []struct{ key, desc string }{
	{"k/j", "Hover previous/next message"},
	{"g/G", "First/last message"},
	{"t", "Toggle touch headers"},
	{"y", "Copy hovered message"},
	{"q", "Quit"},
}

// EmptyState returns the placeholder box for an empty chat list.
func EmptyState() string {
	makeLine := func(content string, visualWidth int) string {
		pad := max(boxWidth-visualWidth, 0)
		return styles.WelcomeBorderStyle.Render("│") + content + strings.Repeat(" ", pad) + styles.WelcomeBorderStyle.Render("│")
	}
	centered := func(text string) string {
		text = utils.TruncateToWidth(text, boxWidth-4)
		w := runewidth.StringWidth(text)
		left := (boxWidth - w) / 2
		return makeLine(strings.Repeat(" ", left)+styles.WelcomeTitleStyle.Render(text), left+w)
	}

	lines := []string{
		styles.WelcomeBorderStyle.Render("╭" + strings.Repeat("─", boxWidth) + "╮"),
		centered("No messages yet"),
		makeLine("", 0),
	}
	for _, s := range shortcuts {
		key := fmt.Sprintf("  %-9s", s.key)
		line := styles.WelcomeKeyStyle.Render(key) + styles.TextStyle.Render(s.desc)
		lines = append(lines, makeLine(line, runewidth.StringWidth(key)+runewidth.StringWidth(s.desc)))
	}

	ver := utils.TruncateToWidth("chatentry "+version.Summary(), boxWidth-4)
	verLeft := (boxWidth - runewidth.StringWidth(ver)) / 2
	lines = append(lines,
		makeLine("", 0),
		makeLine(strings.Repeat(" ", verLeft)+styles.WelcomeVersionStyle.Render(ver), verLeft+runewidth.StringWidth(ver)),
		styles.WelcomeBorderStyle.Render("╰"+strings.Repeat("─", boxWidth)+"╯"),
	)
	return strings.Join(lines, "\n")
}
