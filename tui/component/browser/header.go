package browser

import "fmt"

type headerModel struct {
	title string
}

func newHeaderModel(title string) headerModel {
	return headerModel{title: title}
}

func (h headerModel) view(width, shown, total, position int) string {
	pos := "-"
	if shown > 0 {
		pos = fmt.Sprintf("%d/%d", position+1, shown)
	}

	content := fmt.Sprintf(" fieldcard │ %s │ %s │ %d fields", h.title, pos, total)
	return titleStyle.Width(width).Render(content)
}
