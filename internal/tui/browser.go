package tui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/ziwei/internal/clipboard"
	"github.com/f3rmion/ziwei/internal/hook"
	"github.com/f3rmion/ziwei/internal/tui/bigchar"
	"github.com/f3rmion/ziwei/internal/ziwei"
)

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Opposite key.Binding
	Life     key.Binding
	Flow     key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Flow, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Opposite, k.Life},
		{k.Flow, k.Copy, k.Help, k.Quit},
	}
}

var defaultKeys = keyMap{
	Next:     key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next palace")),
	Prev:     key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "previous palace")),
	Opposite: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "opposite palace")),
	Life:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "life palace")),
	Flow:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flow year")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy hook json")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// clearCopiedMsg is sent to clear the copied indicator
type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearCopiedMsg{} })
}

// BrowserOption configures NewBrowser.
type BrowserOption func(*BrowserModel)

// WithRomanizer shows pinyin under each palace.
func WithRomanizer(r hook.Romanizer) BrowserOption {
	return func(m *BrowserModel) { m.romanizer = r }
}

// WithCopier replaces the system clipboard.
func WithCopier(fn func(string) error) BrowserOption {
	return func(m *BrowserModel) { m.copy = fn }
}

// WithGlyphs sets the renderer for the selected branch glyph.
func WithGlyphs(r *bigchar.Renderer) BrowserOption {
	return func(m *BrowserModel) { m.glyphs = r }
}

// WithColor toggles ANSI styling of the board.
func WithColor(on bool) BrowserOption {
	return func(m *BrowserModel) { m.color = on }
}

// BrowserModel is the Bubble Tea model for walking a chart palace by palace.
type BrowserModel struct {
	chart     *ziwei.Chart
	rendered  hook.RenderChart
	romanizer hook.Romanizer
	glyphs    *bigchar.Renderer
	copy      func(string) error
	color     bool

	selected ziwei.Branch
	flow     *ziwei.FlowYear

	yearInput textinput.Model
	entering  bool

	keys   keyMap
	help   help.Model
	detail viewport.Model

	copied bool
	err    error
	width  int
	height int
}

// NewBrowser creates a browser positioned on the life palace.
func NewBrowser(c *ziwei.Chart, opts ...BrowserOption) BrowserModel {
	yi := textinput.New()
	yi.Placeholder = "2026"
	yi.CharLimit = 4
	yi.Width = 8

	m := BrowserModel{
		chart:     c,
		copy:      clipboard.Write,
		color:     true,
		selected:  c.Life,
		yearInput: yi,
		keys:      defaultKeys,
		help:      help.New(),
		detail:    viewport.New(48, 16),
	}
	for _, opt := range opts {
		opt(&m)
	}
	var ropts []hook.RenderOption
	if m.romanizer != nil {
		ropts = append(ropts, hook.WithRomanizer(m.romanizer))
	}
	m.rendered = hook.Render(c, ropts...)
	m.refreshDetail()
	return m
}

// Selected returns the branch under the cursor.
func (m BrowserModel) Selected() ziwei.Branch { return m.selected }

// Init initializes the model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entering {
			return m.updateYearInput(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selected = m.selected.Add(1)
		case key.Matches(msg, m.keys.Prev):
			m.selected = m.selected.Add(-1)
		case key.Matches(msg, m.keys.Opposite):
			m.selected = ziwei.Opposite(m.selected)
		case key.Matches(msg, m.keys.Life):
			m.selected = m.chart.Life
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Flow):
			m.entering = true
			m.yearInput.SetValue("")
			m.yearInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Copy):
			return m.copyHook()
		default:
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		m.refreshDetail()
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = max(msg.Width-4, 20)
		m.detail.Height = max(msg.Height-40, 6)
		m.refreshDetail()
	}
	return m, nil
}

func (m BrowserModel) updateYearInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.entering = false
		m.yearInput.Blur()
		year, err := strconv.Atoi(strings.TrimSpace(m.yearInput.Value()))
		if err != nil {
			m.err = fmt.Errorf("flow year: %w", err)
			return m, nil
		}
		fy := ziwei.FlowYearOf(m.chart, year)
		m.flow, m.err = &fy, nil
		m.selected = fy.Palace
		m.refreshDetail()
		return m, nil
	case "esc":
		m.entering = false
		m.yearInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.yearInput, cmd = m.yearInput.Update(msg)
	return m, cmd
}

func (m BrowserModel) copyHook() (tea.Model, tea.Cmd) {
	data, err := json.MarshalIndent(hook.Convert(m.chart), "", "  ")
	if err == nil {
		err = m.copy(string(data))
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	m.copied, m.err = true, nil
	return m, clearCopiedAfter(2 * time.Second)
}

func (m *BrowserModel) refreshDetail() {
	content := PalaceDetail(m.chart, m.rendered, m.selected)
	if m.flow != nil {
		content += "\n" + flowSummary(*m.flow)
	}
	m.detail.SetContent(content)
}

func flowSummary(fy ziwei.FlowYear) string {
	var sb strings.Builder
	sb.WriteString(SubtitleStyle.Render(fmt.Sprintf("流年 %d %s%s  %s  虚岁 %d", fy.Year, fy.Stem, fy.Branch, fy.Role, fy.Age)))
	sb.WriteString("\n")
	if fy.InDecade {
		sb.WriteString(fmt.Sprintf("大限 %s %d-%d\n", fy.Decade.Branch, fy.Decade.StartAge, fy.Decade.EndAge))
	}
	var parts []string
	for _, ft := range fy.Transforms {
		where := "-"
		if ft.Placed {
			where = ft.Branch.String()
		}
		parts = append(parts, fmt.Sprintf("%s%s@%s", ft.Star, ft.Letter, where))
	}
	sb.WriteString(strings.Join(parts, "  "))
	return sb.String()
}

// View renders the board, the detail pane and the status line.
func (m BrowserModel) View() string {
	opts := GridOptions{Color: m.color, Selected: m.selected, HasSelect: true}
	if m.flow != nil {
		opts.FlowBranch = &m.flow.Palace
	}
	board := RenderGrid(m.rendered, opts)

	side := ""
	if glyph := m.glyphs.Render(m.selected.String(), 16, 8); glyph != "" {
		side = GlyphStyle.Render(glyph)
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, board, side)

	var status string
	switch {
	case m.entering:
		status = SearchBoxStyle.Render("流年: " + m.yearInput.View())
	case m.err != nil:
		status = ErrorStyle.Render(m.err.Error())
	case m.copied:
		status = CopiedStyle.Render("copied hook json")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		BoxStyle.Render(m.detail.View()),
		status,
		HelpStyle.Render(m.help.View(m.keys)),
	)
}
