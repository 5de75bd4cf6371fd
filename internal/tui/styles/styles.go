// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// Muted is for secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Subtle)
)

// Blog card styles
var (
	// Card is a collapsed or expanded blog
	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Subtle).
		PaddingLeft(1).
		PaddingRight(1)

	// CardSelected is the card under the cursor
	CardSelected = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(Highlight).
			PaddingLeft(1).
			PaddingRight(1)

	// CardTitle is the blog title
	CardTitle = lipgloss.NewStyle().
			Bold(true)

	// CardAuthor is the blog author
	CardAuthor = lipgloss.NewStyle().
			Foreground(Subtle)

	// CardURL is the blog link
	CardURL = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#0055CC", Dark: "#66AAFF"}).
		Underline(true)

	// Likes is the like counter
	Likes = lipgloss.NewStyle().
		Foreground(WarningColor)

	// Button is an inline action hint such as [l] like
	Button = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)

	// DangerButton is the delete action hint
	DangerButton = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// Notification styles
var (
	// NotificationSuccess is the style for success messages
	NotificationSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(SuccessColor).
				Padding(0, 1)

	// NotificationError is the style for error messages
	NotificationError = lipgloss.NewStyle().
				Foreground(ErrorColor).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(ErrorColor).
				Padding(0, 1).
				Bold(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Input styles
var (
	// Input is the style for text inputs
	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// InputFocused is for focused inputs
	InputFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	// InputLabel is for input labels
	InputLabel = lipgloss.NewStyle().
			Bold(true)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			MarginBottom(1)
)

// Spinner style
var (
	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)
)
