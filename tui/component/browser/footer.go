package browser

type footerModel struct {
	filter    string
	filtering bool
	hideEmpty bool
}

func newFooterModel() footerModel {
	return footerModel{}
}

func (f footerModel) view(width int) string {
	if f.filtering {
		return footerStyle.Width(width).Render(filterStyle.Render("/"+f.filter+"▏") + "  enter apply  esc clear")
	}

	hints := " q quit  ? help  ↑/↓ move  / filter  e empty"
	if f.hideEmpty {
		hints += "  [empty hidden]"
	}
	if f.filter != "" {
		hints += "  filter: " + f.filter
	}
	return footerStyle.Width(width).Render(hints)
}
