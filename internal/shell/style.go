package shell

import "github.com/charmbracelet/lipgloss"

// These colors are from the gruvbox vim theme
// https://github.com/morhetz/gruvbox
var (
	red    = lipgloss.Color("#cc241d")
	green  = lipgloss.Color("#98971a")
	blue   = lipgloss.Color("#458588")
	yellow = lipgloss.Color("#d79921")
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(blue).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(red)
	listStyle   = lipgloss.NewStyle().Foreground(green)
	valueStyle  = lipgloss.NewStyle().Foreground(yellow)
)

func (s *Shell) styled(st lipgloss.Style, str string) string {
	if !s.Color {
		return str
	}
	return st.Render(str)
}
