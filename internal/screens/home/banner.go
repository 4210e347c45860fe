package home

import (
	"charm.land/lipgloss/v2"

	"github.com/griciko/QuizN2/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗███████╗███╗   ██╗███████╗██╗  ██╗██╗   ██╗███████╗
 ██╔═══██╗██║   ██║██║╚══███╔╝████╗  ██║██╔════╝╚██╗██╔╝██║   ██║██╔════╝
 ██║   ██║██║   ██║██║  ███╔╝ ██╔██╗ ██║█████╗   ╚███╔╝ ██║   ██║███████╗
 ██║▄▄ ██║██║   ██║██║ ███╔╝  ██║╚██╗██║██╔══╝   ██╔██╗ ██║   ██║╚════██║
 ╚██████╔╝╚██████╔╝██║███████╗██║ ╚████║███████╗██╔╝ ██╗╚██████╔╝███████║
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═╝  ╚═══╝╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝
`

const bannerCompact = "Q U I Z N E X U S"

// RenderBanner returns the banner styled in the primary color. Terminals
// narrower than the art get the compact spelling.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
