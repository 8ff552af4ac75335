// Package styles provides a centralized theme and style system for the chat UI.
// Styles are values; components derive from them and never mutate them.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors used throughout the application
var (
	// Primary accent color (purple)
	ColorAccent = lipgloss.Color("141")

	// Text colors
	ColorText       = lipgloss.Color("252") // Primary text
	ColorTextMuted  = lipgloss.Color("245") // Secondary/muted text
	ColorTextBright = lipgloss.Color("15")  // Bright/highlighted text

	// Bubble colors
	ColorBubbleLocal = lipgloss.Color("237") // Muted background for local messages

	// Order summary colors
	ColorSummaryBorder = lipgloss.Color("179") // Amber border
	ColorSummaryBg     = lipgloss.Color("236") // Tinted background
	ColorSummaryLabel  = lipgloss.Color("180")
)

// Text styles
var (
	// TextStyle for normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// FooterStyle for footer/help text
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Chat entry styles
var (
	// EntryNameStyle for the sender name in an entry header
	EntryNameStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	// EntryTimeStyle for the short time in an entry header
	EntryTimeStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// EntryEditedStyle for the edit marker
	EntryEditedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// BubbleLocalStyle for messages authored locally
	BubbleLocalStyle = lipgloss.NewStyle().
				Foreground(ColorTextBright).
				Background(ColorBubbleLocal).
				Padding(0, 1)

	// BubbleRemoteStyle for messages from other parties
	BubbleRemoteStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	// SummaryBoxStyle for order summary containers
	SummaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSummaryBorder).
			Background(ColorSummaryBg).
			Padding(0, 1)

	// SummaryLabelStyle for the small uppercase label above a summary
	SummaryLabelStyle = lipgloss.NewStyle().
				Foreground(ColorSummaryLabel).
				Bold(true)

	// SummaryTextStyle for summary content
	SummaryTextStyle = lipgloss.NewStyle().
				Foreground(ColorText)
)

// Empty state styles
var (
	// WelcomeBorderStyle for the empty state box borders
	WelcomeBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("99"))

	// WelcomeTitleStyle for the empty state title
	WelcomeTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("219")).
				Bold(true)

	// WelcomeKeyStyle for keyboard shortcut keys
	WelcomeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")).
			Bold(true)

	// WelcomeVersionStyle for version info (dimmed)
	WelcomeVersionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))
)

// Status bar styles
var (
	// StatusBarStyle is the default status bar style (purple theme)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1)
)
