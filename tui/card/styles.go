package card

import "github.com/charmbracelet/lipgloss"

var (
	colorWhite  = lipgloss.Color("#ECF0F1")
	colorDim    = lipgloss.Color("#7F8C8D")
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorAmber  = lipgloss.Color("#F0AD4E")
	colorBarBg  = lipgloss.Color("#3B3B4F")
	colorViolet = lipgloss.Color("#9B59B6")
)

// styles is the set of lipgloss styles for one render. Without colours every
// style is plain so output stays stable in pipes and tests.
type styles struct {
	panel   lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	barFill lipgloss.Style
	barRest lipgloss.Style
	icon    func(color string) lipgloss.Style
}

func newStyles(useColors, focused bool) styles {
	border := lipgloss.RoundedBorder()
	if focused {
		border = lipgloss.ThickBorder()
	}

	s := styles{
		panel:   lipgloss.NewStyle().Border(border).Padding(0, 1),
		title:   lipgloss.NewStyle(),
		label:   lipgloss.NewStyle(),
		value:   lipgloss.NewStyle(),
		barFill: lipgloss.NewStyle(),
		barRest: lipgloss.NewStyle(),
		icon: func(string) lipgloss.Style {
			return lipgloss.NewStyle()
		},
	}

	if !useColors {
		return s
	}

	borderColor := colorDim
	if focused {
		borderColor = colorViolet
	}

	s.panel = s.panel.BorderForeground(borderColor)
	s.title = s.title.Foreground(colorWhite).Bold(true)
	s.label = s.label.Foreground(colorDim)
	s.value = s.value.Foreground(colorWhite)
	s.barFill = s.barFill.Foreground(colorBlue)
	s.barRest = s.barRest.Foreground(colorBarBg)
	s.icon = func(color string) lipgloss.Style {
		if color == "" {
			return lipgloss.NewStyle().Foreground(colorAmber)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	}

	return s
}
