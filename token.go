package tilemap

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Token is the styled text unit emitted for a single cell: a short fixed
// label plus the lipgloss style it is rendered with.
type Token struct {
	Text  string
	Style lipgloss.Style
}

// NewToken returns an unstyled token for the given label.
func NewToken(text string) Token {
	return Token{Text: text, Style: lipgloss.NewStyle()}
}

// Foreground returns a copy of the token with the given foreground color.
func (t Token) Foreground(c lipgloss.TerminalColor) Token {
	t.Style = t.Style.Foreground(c)
	return t
}

// Background returns a copy of the token with the given background color.
func (t Token) Background(c lipgloss.TerminalColor) Token {
	t.Style = t.Style.Background(c)
	return t
}

// Bold returns a copy of the token rendered bold.
func (t Token) Bold() Token {
	t.Style = t.Style.Bold(true)
	return t
}

// Faint returns a copy of the token rendered faint.
func (t Token) Faint() Token {
	t.Style = t.Style.Faint(true)
	return t
}

// Render returns the token's text with its style applied as terminal escape
// sequences. Under a color profile with no capabilities (a non-terminal
// destination, or Ascii forced through lipgloss.SetColorProfile) the result
// is the plain text.
func (t Token) Render() string {
	return t.Style.Render(t.Text)
}

// Width returns the number of terminal columns the token's text occupies,
// excluding styling. The renderer never pads or truncates tokens; callers
// wanting aligned columns should keep Width consistent across their tokens.
func (t Token) Width() int {
	return runewidth.StringWidth(t.Text)
}
