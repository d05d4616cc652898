package browser

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/safedep/fieldcard/core/fieldstats"
	"github.com/safedep/fieldcard/tui"
	"github.com/safedep/fieldcard/tui/card"
)

const (
	defaultMaxCardWidth = 72
	pageSize            = 5
)

// Model is the bubbletea model for the interactive field browser.
type Model struct {
	opts   Options
	width  int
	height int

	header headerModel
	footer footerModel
	help   helpModel

	visible []int
	cursor  int
	offset  int

	filter     string
	filterEdit string
	filtering  bool
	hideEmpty  bool
	ready      bool
}

func New(opts Options) Model {
	if opts.MaxCardWidth <= 0 {
		opts.MaxCardWidth = defaultMaxCardWidth
	}

	m := Model{
		opts:      opts,
		header:    newHeaderModel(opts.Title),
		footer:    newFooterModel(),
		help:      newHelpModel(),
		hideEmpty: opts.HideEmpty,
	}
	m.refilter()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.ensureVisible()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return *m, tea.Quit

	case "?":
		m.help.toggle()
		return *m, nil

	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "pgup":
		m.move(-pageSize)
	case "pgdown":
		m.move(pageSize)
	case "home", "g":
		m.move(-len(m.visible))
	case "end", "G":
		m.move(len(m.visible))

	case "/":
		m.filtering = true
		m.filterEdit = m.filter
		m.syncFooter()

	case "e":
		m.hideEmpty = !m.hideEmpty
		m.refilter()

	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.refilter()
		}
	}

	return *m, nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return *m, tea.Quit
	case tea.KeyEnter:
		m.filtering = false
		m.filter = m.filterEdit
		m.refilter()
		return *m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filterEdit = ""
		m.filter = ""
		m.refilter()
		return *m, nil
	case tea.KeyBackspace:
		if r := []rune(m.filterEdit); len(r) > 0 {
			m.filterEdit = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filterEdit += string(msg.Runes)
	}

	m.syncFooter()
	return *m, nil
}

func (m *Model) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.visible)-1, m.cursor+delta))
	m.ensureVisible()
}

// refilter recomputes the visible set, keeping the focused field when it
// survives the new filter.
func (m *Model) refilter() {
	var focused *tui.CardView
	if m.cursor < len(m.visible) {
		focused = m.opts.Cards[m.visible[m.cursor]]
	}

	needle := strings.ToLower(m.filter)
	m.visible = m.visible[:0]
	m.cursor = 0
	for i, c := range m.opts.Cards {
		if m.hideEmpty && fieldstats.Classify(&c.Record) == fieldstats.StateEmpty {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(c.Record.Name), needle) {
			continue
		}
		if c == focused {
			m.cursor = len(m.visible)
		}
		m.visible = append(m.visible, i)
	}

	m.offset = 0
	m.syncFooter()
	m.ensureVisible()
}

func (m *Model) syncFooter() {
	m.footer.filter = m.filter
	if m.filtering {
		m.footer.filter = m.filterEdit
	}
	m.footer.filtering = m.filtering
	m.footer.hideEmpty = m.hideEmpty
}

// ensureVisible scrolls so the focused card is fully inside the content area.
func (m *Model) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if !m.ready {
		return
	}

	avail := m.contentHeight()
	for m.offset < m.cursor && m.spanHeight(m.offset, m.cursor) > avail {
		m.offset++
	}
}

func (m Model) spanHeight(from, to int) int {
	h := 0
	for i := from; i <= to; i++ {
		h += lipgloss.Height(m.renderCard(i))
	}
	return h
}

func (m Model) contentHeight() int {
	return max(1, m.height-2)
}

func (m Model) cardWidth() int {
	return max(card.DefaultCardWidth/2, min(m.width, m.opts.MaxCardWidth))
}

func (m Model) renderCard(pos int) string {
	view := m.opts.Cards[m.visible[pos]]
	return card.RenderTerminal(view.Tree, card.RenderOptions{
		Width:     m.cardWidth(),
		UseColors: m.opts.UseColors,
		Focused:   pos == m.cursor,
		BarWidth:  m.opts.BarWidth,
	})
}

// Focused returns the card under the cursor, or nil when nothing is shown.
func (m Model) Focused() *tui.CardView {
	if m.cursor >= len(m.visible) {
		return nil
	}
	return m.opts.Cards[m.visible[m.cursor]]
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.header.view(m.width, len(m.visible), len(m.opts.Cards), m.cursor)
	footer := m.footer.view(m.width)
	contentHeight := m.contentHeight()

	if m.help.visible {
		helpOverlay := m.help.view(m.width, contentHeight)
		return lipgloss.JoinVertical(lipgloss.Left, header, helpOverlay, footer)
	}

	if len(m.visible) == 0 {
		placeholder := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, "No fields match.")
		return lipgloss.JoinVertical(lipgloss.Left, header, placeholder, footer)
	}

	var cards []string
	used := 0
	for i := m.offset; i < len(m.visible) && used < contentHeight; i++ {
		rendered := m.renderCard(i)
		cards = append(cards, rendered)
		used += lipgloss.Height(rendered)
	}

	content := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, cards...))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
